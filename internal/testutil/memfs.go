// Package testutil holds shared fakes for unit tests.
package testutil

import (
	"slices"
	"strings"
)

// MemFS is an in-memory fsutil.FS backed by a flat, ordered list of file
// paths. Directories are implied: any path prefix of a registered file
// (up to a '/' boundary) exists as a directory.
type MemFS struct {
	files []string
}

// NewMemFS returns a MemFS containing the given files, in the given order.
func NewMemFS(files ...string) *MemFS {
	return &MemFS{files: files}
}

// AddFile registers another file. Later walks report it after the files
// registered before it.
func (m *MemFS) AddFile(path string) {
	m.files = append(m.files, path)
}

// IsFile reports whether path was registered as a file.
func (m *MemFS) IsFile(path string) bool {
	return slices.Contains(m.files, path)
}

// Exists reports whether path is a registered file or an implied directory.
func (m *MemFS) Exists(path string) bool {
	if m.IsFile(path) {
		return true
	}
	for _, f := range m.files {
		if strings.HasPrefix(f, path+"/") {
			return true
		}
	}
	return false
}

// Walk returns every registered file under root, in registration order.
func (m *MemFS) Walk(root string) ([]string, error) {
	var files []string
	for _, f := range m.files {
		if strings.HasPrefix(f, root+"/") {
			files = append(files, f)
		}
	}
	return files, nil
}
