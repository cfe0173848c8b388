package domain

// NotFound is the path reported for a dependency the search utility could not locate.
const NotFound = "NOT_FOUND"

// ResolvedEntry pairs a closure member with the location the path resolver reported for it.
type ResolvedEntry struct {
	// Name is the dependency name as reported by the oracle.
	Name string `json:"name"`

	// Path is an absolute path, or NotFound.
	Path string `json:"path"`
}

// NewResolvedEntry builds an entry, substituting NotFound for an empty path.
func NewResolvedEntry(name, path string) ResolvedEntry {
	if path == "" {
		path = NotFound
	}
	return ResolvedEntry{Name: name, Path: path}
}

// Found reports whether the entry carries a real path.
func (e ResolvedEntry) Found() bool {
	return e.Path != "" && e.Path != NotFound
}
