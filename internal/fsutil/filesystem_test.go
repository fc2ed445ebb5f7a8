package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_CreateThenRead(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sub", "data.txt")
	fsys := OSFileSystem{}

	require.NoError(t, fsys.MkdirAll(filepath.Dir(name), 0755))
	w, err := fsys.Create(name)
	require.NoError(t, err)
	_, err = io.WriteString(w, "x y dx dy\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.True(t, fsys.Exists(name))
	data, err := ReadFile(fsys, name)
	require.NoError(t, err)
	assert.Equal(t, "x y dx dy\n", string(data))

	info, err := fsys.Stat(name)
	require.NoError(t, err)
	assert.EqualValues(t, 10, info.Size())
}

func TestOSFileSystem_MissingFile(t *testing.T) {
	fsys := OSFileSystem{}
	_, err := fsys.Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, fsys.Exists("nonexistent_file_xyz.go"))
}

func TestMemoryFileSystem_CreateVisibleAfterClose(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/out/map.npy")
	require.NoError(t, err)
	_, err = w.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := ReadFile(mfs, "/out/map.npy")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
	assert.Equal(t, []string{"/out/map.npy"}, mfs.Files())
}

func TestMemoryFileSystem_WriteFileCopies(t *testing.T) {
	mfs := NewMemoryFileSystem()
	src := []byte("hello")
	mfs.WriteFile("a.txt", src)
	src[0] = 'J'

	data, err := ReadFile(mfs, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestMemoryFileSystem_StatAndDirs(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.MkdirAll("plots/run1", 0755))

	assert.True(t, mfs.Exists("plots"))
	assert.True(t, mfs.Exists("plots/run1"))

	info, err := mfs.Stat("plots/run1")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.Stat("missing.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.Open("missing.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
