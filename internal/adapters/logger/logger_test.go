package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deplist/internal/adapters/logger"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("oracle query for broken.dll failed")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: field flavour not found"),
			goldenName: "error_multiline",
		},
		{
			name:       "zerr chain",
			err:        zerr.Wrap(zerr.Wrap(errors.New("exec: not found"), "failed to launch"), "failed to query oracle"),
			goldenName: "error_chain_zerr",
		},
		{
			name: "metadata on main error",
			err: func() error {
				outer := zerr.Wrap(errors.New("connection refused"), "service unavailable")
				outer = zerr.With(outer, "service", "auth-api")
				return zerr.With(outer, "retry_count", 3)
			}(),
			goldenName: "error_metadata_main",
		},
		{
			name: "sentinel joined with cause",
			err: zerr.With(
				fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, os.ErrNotExist),
				"path", "/work/missing.yaml",
			),
			goldenName: "error_sentinel_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON_WithErrorChain(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("exec: not found"), "failed to query oracle"), "binary", "app.exe")

	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error"`)
	assert.Contains(t, out, "failed to query oracle")
	assert.NotContains(t, out, "✗", "JSON format should not have pretty markers")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Warn("warning in json mode")
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPrettyOutput := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.Contains(t, jsonOutput, `"level":"WARN"`)
	assert.Contains(t, jsonOutput, `"msg":"warning in json mode"`)
	assert.Contains(t, backToPrettyOutput, "✗ Error: error back in pretty mode")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		logger.New().SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			lg.Info("concurrent info")
		}()
		go func() {
			defer wg.Done()
			lg.Warn("concurrent warn")
		}()
		go func() {
			defer wg.Done()
			lg.Error(errors.New("concurrent error"))
		}()
	}
	wg.Wait()

	assert.NotEmpty(t, buf.String())
}
