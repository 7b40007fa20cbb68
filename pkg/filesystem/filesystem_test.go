package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/schemer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fs types.FS, root string) {
	t.Helper()

	subDir := filepath.Join(root, "deploy", "nested")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	path := filepath.Join(subDir, "users.sql")
	w, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	require.NoError(t, err)
	_, err = w.Write([]byte("-- deploy users\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	assert.True(t, os.IsExist(err), "exclusive create should fail on existing file, got %v", err)

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "-- deploy users\n", string(content))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "users.sql", info.Name())

	moved := filepath.Join(subDir, "moved.sql")
	require.NoError(t, fs.Rename(path, moved))
	_, err = fs.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.WriteFile(path, []byte("again"), 0644))
	require.NoError(t, fs.Remove(moved))
	_, err = fs.Stat(moved)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewMemoryFS(t *testing.T) {
	exerciseFS(t, NewMemoryFS(), "/mem")
}

func TestAferoReadFileOnDirectory(t *testing.T) {
	fs := NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/dir", 0755))
	_, err := fs.ReadFile("/dir")
	assert.Error(t, err)
}
