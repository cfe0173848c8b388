// Package commands implements the CLI for deplist.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/deplist/internal/app"
	"go.trai.ch/deplist/internal/build"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for deplist.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, target string, opts app.RunOptions) error
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
// The logger is switched to JSON output by --log-json when it supports it.
func New(a Application, logger ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: logger,
	}

	formats := make([]string, 0, len(domain.Formats()))
	for _, f := range domain.Formats() {
		formats = append(formats, f.String())
	}

	rootCmd := &cobra.Command{
		Use:   "deplist <target>",
		Short: "List the transitive DLL dependencies of a binary",
		Long: "deplist asks a dependency oracle for the direct dependencies of <target>,\n" +
			"follows every reported dependency until no new names appear, and prints the result.",
		Args:          exactlyOneTarget,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", domain.ErrMalformedArguments, err)
	})

	rootCmd.Flags().BoolP("recursive", "r", false, "Recursively analyze all dependencies (always on)")
	rootCmd.Flags().StringP("format", "f", domain.FormatList.String(),
		"Output format: "+strings.Join(formats, ", "))
	rootCmd.Flags().String("config", "", "Path to a configuration file (default: ./"+domain.ConfigFileName+")")
	rootCmd.Flags().String("oracle", "", "Path to the dependency oracle executable")
	rootCmd.Flags().Bool("log-json", false, "Write diagnostics to stderr as JSON")

	c.rootCmd = rootCmd
	return c
}

func exactlyOneTarget(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		err := zerr.Wrap(domain.ErrMalformedArguments, "expected exactly one target")
		return zerr.With(err, "got", len(args))
	}
	return nil
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	configPath, _ := cmd.Flags().GetString("config")
	oraclePath, _ := cmd.Flags().GetString("oracle")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	if logJSON {
		if s, ok := c.logger.(jsonSwitcher); ok {
			s.SetJSON(true)
		}
	}

	format, err := domain.ParseFormat(formatFlag)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedArguments, err)
	}

	// Recursive traversal and quiet output are always on; -r is accepted for compatibility.
	return c.app.Run(cmd.Context(), args[0], app.RunOptions{
		Format:     format,
		Recursive:  true,
		Quiet:      true,
		ConfigPath: configPath,
		OraclePath: oraclePath,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
