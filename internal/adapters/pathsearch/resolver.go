// Package pathsearch resolves dependency names to paths with the system search utility.
package pathsearch

import (
	"context"
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
)

type result struct {
	path string
	err  error
}

// Resolver implements ports.PathResolver by running `where` or `which -a`.
// Lookups, including misses, are memoized for the lifetime of the Resolver.
type Resolver struct {
	runner ports.CommandRunner
	search domain.SearchConfig
	cache  *lru.Cache[string, result]
}

// NewResolver creates a Resolver that keeps at most cacheEntries lookups.
// A non-positive size selects domain.DefaultPathCacheEntries.
func NewResolver(runner ports.CommandRunner, search domain.SearchConfig, cacheEntries int) (*Resolver, error) {
	if cacheEntries <= 0 {
		cacheEntries = domain.DefaultPathCacheEntries
	}

	cache, err := lru.New[string, result](cacheEntries)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrPathCacheCreateFailed, err), "size", cacheEntries)
	}

	return &Resolver{
		runner: runner,
		search: search,
		cache:  cache,
	}, nil
}

// Resolve returns the first path the search utility reports for name.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	if hit, ok := r.cache.Get(name); ok {
		return hit.path, hit.err
	}

	path, err := r.lookup(ctx, name)
	if ctx.Err() == nil {
		r.cache.Add(name, result{path: path, err: err})
	}
	return path, err
}

func (r *Resolver) lookup(ctx context.Context, name string) (string, error) {
	args := slices.Concat(r.search.Args, []string{name})

	out, err := r.runner.Run(ctx, r.search.Command, args...)
	if err != nil {
		notFound := zerr.With(fmt.Errorf("%w: %w", domain.ErrPathNotFound, err), "name", name)
		return "", notFound
	}

	if path := FirstLine(out); path != "" {
		return path, nil
	}
	return "", zerr.With(zerr.Wrap(domain.ErrPathNotFound, "search returned no candidates"), "name", name)
}

// FirstLine returns the first non-blank line of out, trimmed.
func FirstLine(out []byte) string {
	for line := range strings.Lines(string(out)) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
