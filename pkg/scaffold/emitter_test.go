package scaffold

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/filesystem"
	"github.com/arthur-debert/schemer/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitCreatesParentsAndFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	e := NewEmitter(env.FS)

	outcome, err := e.Emit("/project/deploy/nested/widgets.sql", "BEGIN;\n")
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)
	assert.Equal(t, "BEGIN;\n", env.ReadFile("/project/deploy/nested/widgets.sql"))
}

func TestEmitNeverOverwrites(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.WriteFile("/project/revert/widgets.sql", "-- hand edited")
	e := NewEmitter(env.FS)

	outcome, err := e.Emit(path, "-- generated")
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
	assert.Equal(t, "-- hand edited", env.ReadFile(path))
}

func TestEmitOnDisk(t *testing.T) {
	dir := t.TempDir()
	e := NewEmitter(filesystem.NewOS())
	path := filepath.Join(dir, "deploy", "widgets.sql")

	outcome, err := e.Emit(path, "one")
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)

	outcome, err = e.Emit(path, "two")
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
}

func TestEmitRaceLosesToExistingFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.WriteFile("/project/test/widgets.sql", "theirs")

	// Pretend the file was absent when checked
	faulty := testutil.NewFaultyFS(env.FS)
	faulty.Fail(testutil.OpStat, path, os.ErrNotExist)

	outcome, err := NewEmitter(faulty).Emit(path, "ours")
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
	assert.Equal(t, "theirs", env.ReadFile(path))
}

func TestEmitFailures(t *testing.T) {
	boom := stderrors.New("boom")
	path := "/project/deploy/widgets.sql"

	tests := []struct {
		name     string
		op       string
		failPath string
		code     errors.ErrorCode
		detail   string
	}{
		{"directory creation", testutil.OpMkdirAll, "/project/deploy", errors.ErrDirCreate, "/project/deploy"},
		{"open", testutil.OpOpenFile, path, errors.ErrFileOpen, path},
		{"write", testutil.OpWrite, path, errors.ErrFileWrite, path},
		{"close", testutil.OpClose, path, errors.ErrFileClose, path},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			faulty := testutil.NewFaultyFS(filesystem.NewMemoryFS())
			faulty.Fail(tt.op, tt.failPath, boom)

			outcome, err := NewEmitter(faulty).Emit(path, "content")
			require.Error(t, err)
			assert.Equal(t, Failed, outcome)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", errors.GetErrorCode(err))
			assert.True(t, stderrors.Is(err, boom))
			assert.Contains(t, err.Error(), "boom")
			assert.Equal(t, tt.detail, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, Failed, Outcome(0), "the zero value never reads as created")
	assert.Equal(t, "unknown", Outcome(9).String())

	text, err := Skipped.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "skipped", string(text))
}
