// Package fsutil abstracts the filesystem queries the file resolver
// performs, so its state machine is unit-testable without a real filesystem.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the capability the resolver needs: existence checks and a recursive
// walk. Implementations must return walk results in traversal order.
type FS interface {
	// Exists reports whether path names any filesystem entry.
	Exists(path string) bool
	// IsFile reports whether path names an existing regular file.
	IsFile(path string) bool
	// Walk recursively collects every file under root, in traversal order.
	Walk(root string) ([]string, error)
}

// OSFS implements FS against the host filesystem.
type OSFS struct{}

// Exists reports whether path names any filesystem entry.
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path names an existing regular file.
func (OSFS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Walk recursively collects every file under root. Directories themselves
// are not reported. The order is filepath.WalkDir's lexical traversal order.
func (OSFS) Walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
