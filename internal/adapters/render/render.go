// Package render implements the list, tree and json presentations of a closure.
package render

import (
	"fmt"
	"io"

	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a renderer.
type Options struct {
	// Target is the root binary the closure was computed for.
	Target string

	// Quiet suppresses per-edge tree output in favour of a summary line.
	Quiet bool

	// SystemMarkers are path fragments that exclude an entry from the list format.
	SystemMarkers []string
}

// New returns the renderer for format, writing to w.
func New(format domain.Format, w io.Writer, opts Options) (ports.Renderer, error) {
	switch format {
	case domain.FormatList:
		return NewListRenderer(w, opts.SystemMarkers), nil
	case domain.FormatTree:
		return NewTreeRenderer(w, opts.Target, opts.Quiet), nil
	case domain.FormatJSON:
		return NewJSONRenderer(w, opts.Target), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "no renderer for format"), "format", string(format))
	}
}

// errWriter remembers the first write error so that rendering can stop checking after every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) result() error {
	if ew.err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrRenderFailed, ew.err)
}
