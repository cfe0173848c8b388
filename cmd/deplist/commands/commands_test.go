package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deplist/cmd/deplist/commands"
	"go.trai.ch/deplist/internal/app"
	"go.trai.ch/deplist/internal/build"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	runFunc func(ctx context.Context, target string, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, target string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, target, opts)
	}
	return nil
}

type switchingLogger struct {
	*mocks.MockLogger
	json bool
}

func (s *switchingLogger) SetJSON(enable bool) {
	s.json = enable
}

func newCLI(t *testing.T, a commands.Application, args ...string) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	cli := commands.New(a, mocks.NewMockLogger(ctrl))
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	// A nil slice makes cobra fall back to os.Args.
	cli.SetArgs(append([]string{}, args...))
	return cli, buf
}

func TestCommands_Root(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		var target string

		mock := &mockApp{
			runFunc: func(_ context.Context, tgt string, opts app.RunOptions) error {
				target = tgt
				captured = opts
				return nil
			},
		}

		cli, _ := newCLI(t, mock, "app.exe", "-f", "json", "--config", "ci.yaml", "--oracle", "/opt/deplister.exe")
		require.NoError(t, cli.Execute(context.Background()))

		assert.Equal(t, "app.exe", target)
		assert.Equal(t, domain.FormatJSON, captured.Format)
		assert.Equal(t, "ci.yaml", captured.ConfigPath)
		assert.Equal(t, "/opt/deplister.exe", captured.OraclePath)
	})

	t.Run("recursive and quiet are always on", func(t *testing.T) {
		for _, args := range [][]string{{"app.exe"}, {"app.exe", "-r"}, {"--recursive", "app.exe", "--format", "tree"}} {
			var captured app.RunOptions
			mock := &mockApp{
				runFunc: func(_ context.Context, _ string, opts app.RunOptions) error {
					captured = opts
					return nil
				},
			}

			cli, _ := newCLI(t, mock, args...)
			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, captured.Recursive, "args %v", args)
			assert.True(t, captured.Quiet, "args %v", args)
		}
	})

	t.Run("defaults to list", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli, _ := newCLI(t, mock, "app.exe")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.FormatList, captured.Format)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli, _ := newCLI(t, mock, "app.exe")
		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
		assert.False(t, errors.Is(err, domain.ErrMalformedArguments))
	})
}

func TestCommands_MalformedArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing target", args: []string{}},
		{name: "extra target", args: []string{"a.exe", "b.exe"}},
		{name: "unknown flag", args: []string{"app.exe", "--verbose"}},
		{name: "unknown format", args: []string{"app.exe", "--format", "xml"}},
		{name: "missing flag value", args: []string{"app.exe", "--format"}},
		{name: "uppercase format", args: []string{"app.exe", "--format", "LIST"}},
		{name: "empty format", args: []string{"app.exe", "--format", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{
				runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
					panic("should not be called")
				},
			}

			cli, _ := newCLI(t, mock, tt.args...)
			err := cli.Execute(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedArguments)
		})
	}
}

func TestCommands_LogJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := &switchingLogger{MockLogger: mocks.NewMockLogger(ctrl)}

	cli := commands.New(&mockApp{}, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"app.exe", "--log-json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
}

func TestCommands_Version(t *testing.T) {
	cli, buf := newCLI(t, &mockApp{}, "--version")
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_Help(t *testing.T) {
	cli, buf := newCLI(t, &mockApp{}, "--help")
	require.NoError(t, cli.Execute(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--format")
	assert.Contains(t, out, "--recursive")
}
