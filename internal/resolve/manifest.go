package resolve

import "path/filepath"

// Manifest is the ordered outcome of file resolution: the primary files to
// convert, in the order they were resolved, plus the merge sources attached
// to each primary. Every key in Merges was the last primary at the moment
// its "--merge" was processed.
type Manifest struct {
	Files  []string
	Merges map[string][]string
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{Merges: make(map[string][]string)}
}

// Add appends one primary file.
func (m *Manifest) Add(path string) {
	m.Files = append(m.Files, path)
}

// AddAll appends primary files preserving their order.
func (m *Manifest) AddAll(paths []string) {
	m.Files = append(m.Files, paths...)
}

// Last returns the most recently added primary file still in the manifest.
func (m *Manifest) Last() (string, bool) {
	if len(m.Files) == 0 {
		return "", false
	}
	return m.Files[len(m.Files)-1], true
}

// Remove deletes the first occurrence of the exact path and reports whether
// it was present.
func (m *Manifest) Remove(path string) bool {
	for i, f := range m.Files {
		if f == path {
			m.Files = append(m.Files[:i], m.Files[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByBase deletes every primary file whose base name equals name,
// regardless of directory, and returns how many entries were removed.
// Zero matches is not an error.
func (m *Manifest) RemoveByBase(name string) int {
	kept := m.Files[:0]
	removed := 0
	for _, f := range m.Files {
		if filepath.Base(f) == name {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	m.Files = kept
	return removed
}

// OpenMerge registers (or resets) the merge-source list for target.
func (m *Manifest) OpenMerge(target string) {
	m.Merges[target] = []string{}
}

// AddMergeSource appends one merge-source path to target's list.
func (m *Manifest) AddMergeSource(target, path string) {
	m.Merges[target] = append(m.Merges[target], path)
}
