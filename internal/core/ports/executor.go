// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
)

// CommandRunner launches a child process and captures its standard output.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run starts executable with args, waits for it to exit and returns its standard output.
	//
	// If the process cannot be started the error wraps domain.ErrCommandStartFailed.
	// If it exits non-zero the error wraps domain.ErrCommandExitNonZero and the
	// output captured so far is still returned.
	Run(ctx context.Context, executable string, args ...string) ([]byte, error)
}
