package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptKindOrder(t *testing.T) {
	assert.Equal(t, [NumScriptKinds]ScriptKind{Deploy, Revert, Test}, ScriptKinds)
}

func TestScriptKindString(t *testing.T) {
	assert.Equal(t, "deploy", Deploy.String())
	assert.Equal(t, "revert", Revert.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "ScriptKind(7)", ScriptKind(7).String())
	assert.Equal(t, "revert.tmpl", Revert.TemplateFile())
}

func TestParseScriptKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ScriptKind
		wantErr bool
	}{
		{"deploy", Deploy, false},
		{"REVERT", Revert, false},
		{" test ", Test, false},
		{"verify", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScriptKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
