package render

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"go.trai.ch/deplist/internal/core/domain"
)

// report is the structured document emitted by the json format.
type report struct {
	Target    string                 `json:"target"`
	TotalDLLs int                    `json:"total_dlls"`
	DLLs      []domain.ResolvedEntry `json:"dlls"`
}

// JSONRenderer emits the whole closure, unfiltered, as one indented document.
type JSONRenderer struct {
	w      io.Writer
	target string
}

// NewJSONRenderer creates a JSONRenderer for target.
func NewJSONRenderer(w io.Writer, target string) *JSONRenderer {
	return &JSONRenderer{w: w, target: target}
}

// OnEdge is a no-op.
func (r *JSONRenderer) OnEdge(domain.Edge) {}

// NeedsPaths reports true.
func (r *JSONRenderer) NeedsPaths() bool {
	return true
}

// Render writes the document with entries sorted by name.
func (r *JSONRenderer) Render(closure *domain.Closure, entries []domain.ResolvedEntry) error {
	doc := report{
		Target:    r.target,
		TotalDLLs: closure.Len(),
		DLLs:      slices.Clone(entries),
	}
	if doc.DLLs == nil {
		doc.DLLs = []domain.ResolvedEntry{}
	}
	slices.SortFunc(doc.DLLs, func(a, b domain.ResolvedEntry) int {
		return cmp.Compare(a.Name, b.Name)
	})

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	return nil
}
