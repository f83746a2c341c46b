package fsys

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFS_ReadLines(t *testing.T) {
	m := NewMemFS(map[string]string{
		"data/a.txt": "a\nb",
		"data/b.txt": "c",
	})

	lines, err := m.ReadLines("data/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	lines, err = m.ReadLines("data/b.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, lines)
}

func TestMemFS_ReadLines_CRLFAndTrailingNewline(t *testing.T) {
	m := NewMemFS(map[string]string{
		"crlf.csv":     "one\r\ntwo\r\n",
		"trailing.csv": "one\ntwo\n",
	})

	for _, name := range []string{"crlf.csv", "trailing.csv"} {
		lines, err := m.ReadLines(name)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, lines, name)
	}
}

func TestMemFS_ReadLines_NotFound(t *testing.T) {
	m := NewMemFS(map[string]string{"present.txt": "x"})

	_, err := m.ReadLines("absent.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "absent.txt", pathErr.Path)
}

func TestMemFS_Exists(t *testing.T) {
	m := NewMemFS(map[string]string{"dir/file.txt": "content"})

	assert.True(t, m.Exists("dir/file.txt"))
	assert.True(t, m.Exists("dir"), "parent directories of seeded files exist")
	assert.False(t, m.Exists("dir/other.txt"))
	assert.False(t, m.Exists("elsewhere"))
}

func TestMemFS_PathNormalization(t *testing.T) {
	m := NewMemFS(map[string]string{"dir/file.txt": "x"})

	// Equivalent spellings of the same path resolve to the same entry.
	assert.True(t, m.Exists("./dir/file.txt"))
	assert.True(t, m.Exists("dir//file.txt"))
	data, err := m.ReadFile("dir/../dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMemFS_WriteFile(t *testing.T) {
	m := NewMemFS(nil)

	require.NoError(t, m.WriteFile("out/result.txt", []byte("done"), 0o600))
	assert.True(t, m.Exists("out/result.txt"))
	assert.True(t, m.Exists("out"))

	data, err := m.ReadFile("out/result.txt")
	require.NoError(t, err)
	assert.Equal(t, "done", string(data))
}

func TestMemFS_ReadFile_CopyIsolation(t *testing.T) {
	m := NewMemFS(map[string]string{"f": "abc"})

	data, err := m.ReadFile("f")
	require.NoError(t, err)
	data[0] = 'z'

	again, err := m.ReadFile("f")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemFS_MkdirAll(t *testing.T) {
	m := NewMemFS(nil)

	require.NoError(t, m.MkdirAll("a/b/c", 0o750))
	assert.True(t, m.Exists("a/b/c"))
	assert.True(t, m.Exists("a/b"))

	// Creating an existing directory succeeds, matching os.MkdirAll.
	require.NoError(t, m.MkdirAll("a/b/c", 0o750))

	// A file blocking the path fails with ErrExist.
	require.NoError(t, m.WriteFile("a/file", nil, 0o600))
	err := m.MkdirAll("a/file", 0o750)
	assert.True(t, errors.Is(err, fs.ErrExist))
}

func TestMemFS_FileBlocksDescendants(t *testing.T) {
	m := NewMemFS(map[string]string{"a": "x"})

	// Routing a path through an existing file fails, as the OS would
	// with ENOTDIR, and must not turn the file into a directory.
	err := m.WriteFile("a/b", []byte("y"), 0o600)
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, m.Exists("a/b"))

	err = m.MkdirAll("a/sub/deep", 0o750)
	require.Error(t, err)
	assert.False(t, m.Exists("a/sub"))

	fi, err := m.Stat("a")
	require.NoError(t, err)
	assert.False(t, fi.IsDir(), "a must stay a regular file")

	data, err := m.ReadFile("a")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMemFS_Remove(t *testing.T) {
	m := NewMemFS(map[string]string{"dir/f.txt": "x"})

	// Removing an absent path fails with not-found.
	err := m.Remove("dir/missing.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	// Non-empty directory cannot be removed non-recursively.
	err = m.Remove("dir")
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, m.Remove("dir/f.txt"))
	assert.False(t, m.Exists("dir/f.txt"))

	// Now empty, the directory can go.
	require.NoError(t, m.Remove("dir"))
	assert.False(t, m.Exists("dir"))
}

func TestMemFS_RemoveAll(t *testing.T) {
	m := NewMemFS(map[string]string{
		"tree/a.txt":     "a",
		"tree/sub/b.txt": "b",
		"keep/c.txt":     "c",
	})

	require.NoError(t, m.RemoveAll("tree"))
	assert.False(t, m.Exists("tree"))
	assert.False(t, m.Exists("tree/a.txt"))
	assert.False(t, m.Exists("tree/sub/b.txt"))
	assert.True(t, m.Exists("keep/c.txt"))

	// Absent path is not an error, matching os.RemoveAll.
	require.NoError(t, m.RemoveAll("tree"))
}

func TestMemFS_Stat(t *testing.T) {
	m := NewMemFS(map[string]string{"dir/f.txt": "hello"})

	fi, err := m.Stat("dir/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "f.txt", fi.Name())
	assert.Equal(t, int64(5), fi.Size())
	assert.False(t, fi.IsDir())

	fi, err = m.Stat("dir")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	_, err = m.Stat("nope")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemFS_IndependentInstances(t *testing.T) {
	seed := map[string]string{"shared.txt": "same"}
	a := NewMemFS(seed)
	b := NewMemFS(seed)

	require.NoError(t, a.Remove("shared.txt"))
	require.NoError(t, a.WriteFile("only-a.txt", []byte("x"), 0o600))

	// Mutating one fake must not affect the other.
	assert.True(t, b.Exists("shared.txt"))
	assert.False(t, b.Exists("only-a.txt"))

	lines, err := b.ReadLines("shared.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"same"}, lines)
}
