// Package fsys abstracts file system operations behind a narrow interface
// so that consumers can be tested without touching real storage. The
// production implementation (OsFileSystem) delegates to the standard
// library; MemFS serves pre-seeded content entirely from memory.
package fsys

import (
	"os"
	"path/filepath"
)

// FileSystem is the capability set consumers depend on. Implementations
// report failures with the io/fs sentinel errors (fs.ErrNotExist,
// fs.ErrExist, fs.ErrPermission) so callers can use errors.Is without
// knowing which implementation is behind the interface.
type FileSystem interface {
	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// ReadLines reads the named file and returns its contents split into
	// ordered lines. Both \n and \r\n line endings are accepted.
	ReadLines(name string) ([]string, error)

	// Exists reports whether the named path exists. It never fails; any
	// error probing the path is treated as absence.
	Exists(name string) bool

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory named path along with any necessary
	// parents. It succeeds when the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Remove removes the named file or empty directory. It fails with a
	// not-found error when the path is absent.
	Remove(name string) error

	// RemoveAll removes path and any children it contains. Like
	// os.RemoveAll, removing an absent path is not an error.
	RemoveAll(path string) error
}

// OsFileSystem is the production implementation of FileSystem that
// delegates to the os and filepath packages.
type OsFileSystem struct{}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// ReadLines reads the named file and splits it into lines.
func (OsFileSystem) ReadLines(name string) ([]string, error) {
	data, err := os.ReadFile(name) //nolint:gosec // caller controls path
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// Exists reports whether the named path exists on disk.
func (OsFileSystem) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// WriteFile wraps os.WriteFile.
func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

// MkdirAll wraps os.MkdirAll.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove wraps os.Remove.
func (OsFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll wraps os.RemoveAll.
func (OsFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Clean normalizes a path for use as a registry key.
func Clean(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// DefaultFS is the production FileSystem used as the default throughout
// the application. Consumers constructed without an explicit FileSystem
// fall back to this.
var DefaultFS FileSystem = OsFileSystem{}

// Compile-time interface check.
var _ FileSystem = OsFileSystem{}
