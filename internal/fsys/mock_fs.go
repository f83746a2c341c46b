package fsys

import "os"

// MockFileSystem is a test double for FileSystem. Each method has a
// corresponding function field. When the field is non-nil, the mock calls
// it; otherwise, it falls through to OsFileSystem (real OS behavior).
//
// This design lets tests override only the methods they care about while
// keeping realistic behavior for everything else. Tests that must never
// touch real storage should use MemFS instead.
type MockFileSystem struct {
	ReadFileFn  func(name string) ([]byte, error)
	ReadLinesFn func(name string) ([]string, error)
	ExistsFn    func(name string) bool
	StatFn      func(name string) (os.FileInfo, error)
	WriteFileFn func(name string, data []byte, perm os.FileMode) error
	MkdirAllFn  func(path string, perm os.FileMode) error
	RemoveFn    func(name string) error
	RemoveAllFn func(path string) error
}

var real OsFileSystem

// ReadFile calls ReadFileFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.ReadFileFn != nil {
		return m.ReadFileFn(name)
	}
	return real.ReadFile(name)
}

// ReadLines calls ReadLinesFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) ReadLines(name string) ([]string, error) {
	if m.ReadLinesFn != nil {
		return m.ReadLinesFn(name)
	}
	return real.ReadLines(name)
}

// Exists calls ExistsFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Exists(name string) bool {
	if m.ExistsFn != nil {
		return m.ExistsFn(name)
	}
	return real.Exists(name)
}

// Stat calls StatFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return real.Stat(name)
}

// WriteFile calls WriteFileFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if m.WriteFileFn != nil {
		return m.WriteFileFn(name, data, perm)
	}
	return real.WriteFile(name, data, perm)
}

// MkdirAll calls MkdirAllFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return real.MkdirAll(path, perm)
}

// Remove calls RemoveFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Remove(name string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(name)
	}
	return real.Remove(name)
}

// RemoveAll calls RemoveAllFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) RemoveAll(path string) error {
	if m.RemoveAllFn != nil {
		return m.RemoveAllFn(path)
	}
	return real.RemoveAll(path)
}

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)
