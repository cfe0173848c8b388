package ports

import "context"

// PathResolver maps a dependency name to a location on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve returns the preferred absolute path for name.
	// It returns an error wrapping domain.ErrPathNotFound when no candidate exists.
	Resolve(ctx context.Context, name string) (string, error)
}
