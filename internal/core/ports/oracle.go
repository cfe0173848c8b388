package ports

import "context"

// Oracle reports the direct dependencies of a single binary.
//
//go:generate go run go.uber.org/mock/mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type Oracle interface {
	// DirectDependencies returns the names reported for name, in output order.
	//
	// A non-nil error never means the returned names are unusable: callers keep
	// whatever was returned and treat the error as a degraded result.
	DirectDependencies(ctx context.Context, name string) ([]string, error)
}
