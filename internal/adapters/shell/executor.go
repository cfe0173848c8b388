// Package shell provides a process-based command runner.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.CommandRunner using os/exec.
// Each Run spawns exactly one child process and waits for it; no timeout is applied.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run launches executable with args and returns its standard output.
func (e *Executor) Run(ctx context.Context, executable string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // executable comes from configuration

	var stdout bytes.Buffer
	stderr := &tailWriter{limit: domain.MaxCapturedStderr}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrCommandStartFailed, err), "executable", executable)
	}

	if err := cmd.Wait(); err != nil {
		// Capture exit code if possible
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		failure := zerr.With(fmt.Errorf("%w: %w", domain.ErrCommandExitNonZero, err), "executable", executable)
		failure = zerr.With(failure, "exit_code", exitCode)
		if stderr.Len() > 0 {
			failure = zerr.With(failure, "stderr", strings.TrimSpace(stderr.String()))
		}
		return stdout.Bytes(), failure
	}

	return stdout.Bytes(), nil
}

// tailWriter keeps the last limit bytes written to it.
type tailWriter struct {
	limit int
	buf   []byte
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	if over := len(w.buf) - w.limit; over > 0 {
		w.buf = w.buf[over:]
	}
	return len(p), nil
}

func (w *tailWriter) Len() int {
	return len(w.buf)
}

func (w *tailWriter) String() string {
	return string(w.buf)
}

// Locate finds an executable by name.
//
// A name containing a path separator is returned unchanged. Otherwise the directory of
// the running binary is checked first and then the directories on PATH. When neither
// lookup succeeds the bare name is returned, so the launch failure surfaces at Run time.
func Locate(name string) string {
	selfDir := ""
	if self, err := os.Executable(); err == nil {
		selfDir = filepath.Dir(self)
	}
	return locate(name, selfDir, os.Environ())
}

func locate(name, selfDir string, env []string) string {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return name
	}

	if selfDir != "" {
		candidate := filepath.Join(selfDir, name)
		if findExecutable(candidate) == nil {
			return candidate
		}
	}

	if lp, err := lookPath(name, env); err == nil {
		return lp
	}
	return name
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	// Find PATH in env
	var path string
	for _, e := range env {
		if k, v, ok := strings.Cut(e, "="); ok && strings.EqualFold(k, "PATH") {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	// Windows has no executable bit; any regular file will do.
	if runtime.GOOS == "windows" || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
