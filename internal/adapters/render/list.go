package render

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"go.trai.ch/deplist/internal/core/domain"
)

// ListRenderer prints one resolved path per line, skipping unresolved and system entries.
type ListRenderer struct {
	w       io.Writer
	markers []string
}

// NewListRenderer creates a ListRenderer. Markers are matched case-insensitively.
func NewListRenderer(w io.Writer, markers []string) *ListRenderer {
	lowered := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			lowered = append(lowered, m)
		}
	}
	return &ListRenderer{w: w, markers: lowered}
}

// OnEdge is a no-op; the list is produced from the finished closure.
func (r *ListRenderer) OnEdge(domain.Edge) {}

// NeedsPaths reports true: every member is resolved before listing.
func (r *ListRenderer) NeedsPaths() bool {
	return true
}

// Render prints the filtered entries sorted by path, then name, ignoring case.
func (r *ListRenderer) Render(_ *domain.Closure, entries []domain.ResolvedEntry) error {
	ew := &errWriter{w: r.w}
	for _, e := range Filter(entries, r.markers) {
		ew.printf("%s\n", e.Path)
	}
	return ew.result()
}

// Filter returns the entries that have a path outside every system marker, sorted.
// markers must already be lower case.
func Filter(entries []domain.ResolvedEntry, markers []string) []domain.ResolvedEntry {
	kept := make([]domain.ResolvedEntry, 0, len(entries))
	for _, e := range entries {
		if e.Found() && !isSystem(e.Path, markers) {
			kept = append(kept, e)
		}
	}

	slices.SortFunc(kept, func(a, b domain.ResolvedEntry) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Path), strings.ToLower(b.Path)),
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return kept
}

func isSystem(path string, markers []string) bool {
	lower := strings.ToLower(path)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
