// Package app implements the application layer for deplist.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/deplist/internal/adapters/oracle"
	"go.trai.ch/deplist/internal/adapters/pathsearch"
	"go.trai.ch/deplist/internal/adapters/render"
	"go.trai.ch/deplist/internal/adapters/shell"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/deplist/internal/engine/closure"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.CommandRunner
	logger       ports.Logger
	stdout       io.Writer
	locate       func(string) string
	oracle       ports.Oracle
	resolver     ports.PathResolver
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, runner ports.CommandRunner, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		logger:       log,
		stdout:       os.Stdout,
		locate:       shell.Locate,
	}
}

// WithOutput redirects rendered output, which goes to os.Stdout by default.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithOracle replaces the process-backed oracle.
// This is primarily used for testing.
func (a *App) WithOracle(o ports.Oracle) *App {
	a.oracle = o
	return a
}

// WithPathResolver replaces the search-utility-backed path resolver.
// This is primarily used for testing.
func (a *App) WithPathResolver(r ports.PathResolver) *App {
	a.resolver = r
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Format     domain.Format
	Recursive  bool
	Quiet      bool
	ConfigPath string
	OraclePath string
	WorkDir    string
}

// Run computes the dependency closure of target and renders it.
//
// Oracle failures degrade the result but never fail the run; errors are returned only
// when the run cannot be set up or the output cannot be written.
func (a *App) Run(ctx context.Context, target string, opts RunOptions) error {
	// 1. Load configuration
	cwd := opts.WorkDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to determine working directory")
		}
		cwd = wd
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.OraclePath != "" {
		cfg.Oracle.Path = opts.OraclePath
	}

	// 2. Initialize renderer and collaborators
	renderer, err := render.New(opts.Format, a.stdout, render.Options{
		Target:        target,
		Quiet:         opts.Quiet,
		SystemMarkers: cfg.Filter.SystemMarkers,
	})
	if err != nil {
		return err
	}

	deps := a.oracle
	if deps == nil {
		deps = oracle.NewAdapter(a.runner, oracle.Resolve(cfg.Oracle, a.locate))
	}

	// 3. Query and expand
	builder := closure.NewBuilder(deps,
		closure.WithObserver(renderer),
		closure.WithRecursive(opts.Recursive),
	)
	result := builder.Build(ctx, target)
	a.reportDegraded(ctx, result)

	// 4. Resolve
	var entries []domain.ResolvedEntry
	if renderer.NeedsPaths() {
		entries, err = a.resolve(ctx, cfg, result)
		if err != nil {
			return err
		}
	}

	// 5. Render
	if err := renderer.Render(result, entries); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write output"), "format", opts.Format.String())
	}
	return nil
}

func (a *App) resolve(ctx context.Context, cfg domain.Config, result *domain.Closure) ([]domain.ResolvedEntry, error) {
	resolver := a.resolver
	if resolver == nil {
		r, err := pathsearch.NewResolver(a.runner, cfg.Search, cfg.Cache.PathEntries)
		if err != nil {
			return nil, err
		}
		resolver = r
	}

	entries := make([]domain.ResolvedEntry, 0, result.Len())
	for _, name := range result.Members {
		path, err := resolver.Resolve(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrPathNotFound) {
			a.logger.Warn(fmt.Sprintf("could not resolve %s: %v", name, err))
		}
		entries = append(entries, domain.NewResolvedEntry(name, path))
	}
	return entries, nil
}

func (a *App) reportDegraded(ctx context.Context, result *domain.Closure) {
	for _, f := range result.Failures {
		a.logger.Warn(fmt.Sprintf("dependency query for %s failed: %v", f.Name, f.Err))
	}
	if result.Degraded() {
		a.logger.Warn(fmt.Sprintf("dependency closure of %s may be incomplete: %d oracle queries failed",
			result.Target, len(result.Failures)))
	}
	if result.Len() == 0 && !result.Degraded() {
		a.logger.Info("no dependencies reported for " + result.Target)
	}
	if ctx.Err() != nil {
		a.logger.Warn("interrupted, dependency closure of " + result.Target + " is incomplete")
	}
}
