package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"
)

// errNotEmpty reports a non-recursive Remove on a non-empty directory.
var errNotEmpty = errors.New("directory not empty")

// errNotDir reports a path routed through an existing regular file.
var errNotDir = errors.New("not a directory")

// MemFS is an in-memory FileSystem for tests. It is seeded with a fixed
// path-to-content mapping at construction and never touches real storage.
// Each instance owns its registries, so two fakes built from the same seed
// share no mutable state. MemFS never reports permission errors.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemFS builds a MemFS from a path-to-content seed. Parent directories
// of every seeded file exist implicitly.
func NewMemFS(seed map[string]string) *MemFS {
	m := &MemFS{
		files: make(map[string][]byte, len(seed)),
		dirs:  map[string]bool{".": true, "/": true},
	}
	for p, content := range seed {
		key := Clean(p)
		m.files[key] = []byte(content)
		m.addParents(key)
	}
	return m
}

// addParents registers every ancestor directory of key.
func (m *MemFS) addParents(key string) {
	for dir := path.Dir(key); ; dir = path.Dir(dir) {
		if m.dirs[dir] {
			return
		}
		m.dirs[dir] = true
		if dir == "." || dir == "/" {
			return
		}
	}
}

// ReadFile returns the seeded content for name, or fs.ErrNotExist.
func (m *MemFS) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	// Copy so callers cannot mutate the registry through the slice.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ReadLines returns the seeded content for name split into lines.
func (m *MemFS) ReadLines(name string) ([]string, error) {
	data, err := m.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// Exists reports whether name is a seeded file or a registered directory.
func (m *MemFS) Exists(name string) bool {
	key := Clean(name)
	if _, ok := m.files[key]; ok {
		return true
	}
	return m.dirs[key]
}

// Stat returns a synthetic FileInfo for a seeded file or directory.
func (m *MemFS) Stat(name string) (os.FileInfo, error) {
	key := Clean(name)
	if data, ok := m.files[key]; ok {
		return &memFileInfo{name: path.Base(key), size: int64(len(data))}, nil
	}
	if m.dirs[key] {
		return &memFileInfo{name: path.Base(key), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// WriteFile stores data under name, creating parent directories.
func (m *MemFS) WriteFile(name string, data []byte, _ os.FileMode) error {
	key := Clean(name)
	if m.dirs[key] {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
	}
	if m.fileAncestor(key) != "" {
		return &fs.PathError{Op: "open", Path: name, Err: errNotDir}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[key] = buf
	m.addParents(key)
	return nil
}

// MkdirAll registers path and its parents. Registering an existing
// directory succeeds, matching os.MkdirAll.
func (m *MemFS) MkdirAll(p string, _ os.FileMode) error {
	key := Clean(p)
	if _, ok := m.files[key]; ok {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
	}
	if m.fileAncestor(key) != "" {
		return &fs.PathError{Op: "mkdir", Path: p, Err: errNotDir}
	}
	m.dirs[key] = true
	m.addParents(key)
	return nil
}

// Remove deletes a file or an empty directory from the registries.
func (m *MemFS) Remove(name string) error {
	key := Clean(name)
	if _, ok := m.files[key]; ok {
		delete(m.files, key)
		return nil
	}
	if m.dirs[key] {
		if m.hasChildren(key) {
			return &fs.PathError{Op: "remove", Path: name, Err: errNotEmpty}
		}
		delete(m.dirs, key)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
}

// RemoveAll deletes name and everything under it. Absent paths are not an
// error, matching os.RemoveAll.
func (m *MemFS) RemoveAll(p string) error {
	key := Clean(p)
	prefix := key + "/"
	for f := range m.files {
		if f == key || strings.HasPrefix(f, prefix) {
			delete(m.files, f)
		}
	}
	for d := range m.dirs {
		if d == key || strings.HasPrefix(d, prefix) {
			delete(m.dirs, d)
		}
	}
	return nil
}

// fileAncestor returns the nearest ancestor of key that is a regular
// file, or "" when the ancestor chain is all directories. The real
// filesystem refuses to route a path through a file (ENOTDIR), so the
// fake must too.
func (m *MemFS) fileAncestor(key string) string {
	for dir := path.Dir(key); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if _, ok := m.files[dir]; ok {
			return dir
		}
	}
	return ""
}

// hasChildren reports whether any file or directory lives under dir.
func (m *MemFS) hasChildren(dir string) bool {
	prefix := dir + "/"
	for f := range m.files {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	for d := range m.dirs {
		if strings.HasPrefix(d, prefix) {
			return true
		}
	}
	return false
}

// memFileInfo is the synthetic os.FileInfo returned by MemFS.Stat.
type memFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi *memFileInfo) Name() string { return fi.name }
func (fi *memFileInfo) Size() int64  { return fi.size }
func (fi *memFileInfo) Mode() os.FileMode {
	if fi.dir {
		return os.ModeDir | 0o755
	}
	return 0o644
}
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return fi.dir }
func (fi *memFileInfo) Sys() any           { return nil }

// Compile-time interface check.
var _ FileSystem = (*MemFS)(nil)
