package ports

import "go.trai.ch/deplist/internal/core/domain"

// TraversalObserver is notified of every discovery edge while a closure is being built.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type TraversalObserver interface {
	// OnEdge is called in traversal order, once per (parent, child) pair reported by the oracle.
	OnEdge(edge domain.Edge)
}

// Renderer is the abstraction for output rendering.
// One renderer is created per invocation for the selected format.
type Renderer interface {
	TraversalObserver

	// NeedsPaths reports whether Render expects resolved entries.
	// When false, the path resolver is not consulted at all.
	NeedsPaths() bool

	// Render writes the final output for a completed closure.
	// entries holds one element per closure member when NeedsPaths is true, in no particular order.
	Render(closure *domain.Closure, entries []domain.ResolvedEntry) error
}
