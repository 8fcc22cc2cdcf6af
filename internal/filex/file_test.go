package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	require.NoError(t, EnsureDir(dir), "must be idempotent")
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.Error(t, EnsureDir(path))
}

func TestWriteSecret_ReplacesContentWithOwnerOnlyMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "token")

	require.NoError(t, WriteSecret(path, []byte("first")))
	require.NoError(t, WriteSecret(path, []byte("second")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(b))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	require.NoError(t, RemoveIfExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, RemoveIfExists(path))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
