// Package output provides utilities for creating lipgloss renderers with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the color profile to use when writing to w.
// NO_COLOR and writers that are not terminals get the Ascii profile.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// NewRenderer creates a lipgloss renderer for w whose styles follow ColorProfile(w).
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stderr
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile(w))
	return r
}
