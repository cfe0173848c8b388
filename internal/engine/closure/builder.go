// Package closure computes transitive dependency closures by repeatedly querying an oracle.
package closure

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
)

// Builder expands a root target into the full set of its transitive dependencies.
// A Builder holds no traversal state between Build calls and may be reused.
type Builder struct {
	oracle    ports.Oracle
	observer  ports.TraversalObserver
	recursive bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithObserver registers an observer that is notified of every discovery edge.
func WithObserver(o ports.TraversalObserver) Option {
	return func(b *Builder) {
		b.observer = o
	}
}

// WithRecursive toggles transitive expansion. When disabled only the root is queried.
func WithRecursive(recursive bool) Option {
	return func(b *Builder) {
		b.recursive = recursive
	}
}

// NewBuilder creates a Builder that queries the given oracle. Expansion is recursive by default.
func NewBuilder(oracle ports.Oracle, opts ...Option) *Builder {
	b := &Builder{
		oracle:    oracle,
		recursive: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// frame is one expanded node on the traversal stack.
type frame struct {
	name  string
	deps  []string
	next  int
	depth int
}

// traversal owns the bookkeeping of a single Build call.
type traversal struct {
	visited    mapset.Set[string]
	discovered mapset.Set[string]
	result     *domain.Closure
}

// Build computes the closure of root.
//
// Oracle failures never abort the computation: they are recorded in the returned
// closure and the failing node contributes whatever names the oracle still returned.
// If ctx is canceled, no further names are expanded and the partial closure is returned.
func (b *Builder) Build(ctx context.Context, root string) *domain.Closure {
	t := &traversal{
		visited:    mapset.NewThreadUnsafeSet[string](),
		discovered: mapset.NewThreadUnsafeSet[string](),
		result:     &domain.Closure{Target: root},
	}

	// The root is queried first, so it can never be queried again, but it only
	// becomes a member if some other node reports it.
	t.visited.Add(root)
	stack := []*frame{{name: root, deps: b.query(ctx, t, root)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.deps) {
			stack = stack[:len(stack)-1]
			continue
		}

		child := top.deps[top.next]
		top.next++

		edge := domain.Edge{Parent: top.name, Child: child, Depth: top.depth}
		t.result.Edges = append(t.result.Edges, edge)
		t.discovered.Add(child)
		if b.observer != nil {
			b.observer.OnEdge(edge)
		}

		if !b.recursive || ctx.Err() != nil {
			continue
		}

		// Mark before expanding so cycles short-circuit on the second visit.
		if !t.visited.Add(child) {
			continue
		}

		stack = append(stack, &frame{
			name:  child,
			deps:  b.query(ctx, t, child),
			depth: top.depth + 1,
		})
	}

	t.result.Members = mapset.Sorted(t.discovered)
	return t.result
}

func (b *Builder) query(ctx context.Context, t *traversal, name string) []string {
	deps, err := b.oracle.DirectDependencies(ctx, name)
	if err != nil {
		t.result.Failures = append(t.result.Failures, domain.OracleFailure{Name: name, Err: err})
	}
	return deps
}
