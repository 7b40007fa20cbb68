package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"auto", "term", "text", "json"}, ui.Formats())
	assert.Equal(t, "term", ui.FormatTerminal.String())
}

func TestParseFormat(t *testing.T) {
	tests := map[string]ui.Format{
		"":         ui.FormatAuto,
		"auto":     ui.FormatAuto,
		"term":     ui.FormatTerminal,
		"TERMINAL": ui.FormatTerminal,
		"text":     ui.FormatText,
		"plain":    ui.FormatText,
		"Json":     ui.FormatJSON,
	}
	for input, want := range tests {
		got, err := ui.ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ui.ParseFormat("yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "unknown format: yaml (want auto, term, text, json)")
}

func TestDetect(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	t.Run("buffer is plain", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.Detect(&bytes.Buffer{}))
	})

	t.Run("redirected output is plain", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.Detect(f))
	})

	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.Detect(os.Stdout))
	})
}
