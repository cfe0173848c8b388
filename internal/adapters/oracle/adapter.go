// Package oracle queries the external direct-dependency oracle.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Adapter implements ports.Oracle on top of a command runner.
type Adapter struct {
	runner     ports.CommandRunner
	executable string
}

// NewAdapter creates an Adapter that launches executable once per query.
func NewAdapter(runner ports.CommandRunner, executable string) *Adapter {
	return &Adapter{
		runner:     runner,
		executable: executable,
	}
}

// DirectDependencies launches the oracle with name as its only argument.
//
// A launch failure yields no names and an error wrapping domain.ErrOracleUnavailable.
// A non-zero exit yields whatever the oracle printed and an error wrapping
// domain.ErrOracleFailureExit.
func (a *Adapter) DirectDependencies(ctx context.Context, name string) ([]string, error) {
	out, err := a.runner.Run(ctx, a.executable, name)
	if err == nil {
		return Parse(out), nil
	}

	if errors.Is(err, domain.ErrCommandStartFailed) {
		oracleErr := zerr.With(fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err), "oracle", a.executable)
		return nil, zerr.With(oracleErr, "binary", name)
	}

	oracleErr := zerr.With(fmt.Errorf("%w: %w", domain.ErrOracleFailureExit, err), "oracle", a.executable)
	return Parse(out), zerr.With(oracleErr, "binary", name)
}

// Parse extracts dependency names from oracle output.
// Each line is a comma-separated record whose first field, trimmed, is a name.
// Lines with an empty first field are skipped; order and duplicates are preserved.
func Parse(out []byte) []string {
	var names []string
	for line := range strings.Lines(string(out)) {
		first, _, _ := strings.Cut(line, ",")
		if name := strings.TrimSpace(first); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Resolve picks the oracle executable for cfg: an explicit path wins, otherwise
// locate is asked to find the configured name.
func Resolve(cfg domain.OracleConfig, locate func(string) string) string {
	if cfg.Path != "" {
		return cfg.Path
	}
	name := cfg.Name
	if name == "" {
		name = domain.DefaultOracleName
	}
	return locate(name)
}
