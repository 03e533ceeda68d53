// Package filesystem adapts operating system file primitives for injection into services.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements file inspection using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata, following symbolic links.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Abs resolves an absolute path.
func (OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}
