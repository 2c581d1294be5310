package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "shared", "clipboards")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clipboards")

	first, err := EnsureDir(dir)
	require.NoError(t, err)
	second, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsWhenPathIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))

	_, err := EnsureDir(filepath.Join(f, "sub"))
	require.Error(t, err)
}

func TestCopyFile_CopiesContentAndCreatesParent(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "selection.nk")
	require.NoError(t, os.WriteFile(src, []byte("Blur {\n size 3\n}\n"), 0o600))

	dst := filepath.Join(tmp, "root", "abc.nk")
	require.NoError(t, CopyFile(src, dst))

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "Blur {\n size 3\n}\n", string(b))

	entries, err := os.ReadDir(filepath.Join(tmp, "root"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := CopyFile(filepath.Join(tmp, "missing"), filepath.Join(tmp, "out"))
	require.Error(t, err)
}

func TestExists(t *testing.T) {
	tmp := t.TempDir()
	ok, err := Exists(tmp)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Exists(filepath.Join(tmp, "nope"))
	require.NoError(t, err)
	require.False(t, ok)
}
