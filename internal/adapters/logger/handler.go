package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/deplist/internal/ui/output"
	"go.trai.ch/deplist/internal/ui/style"
)

type levelStyles struct {
	err  lipgloss.Style
	warn lipgloss.Style
	info lipgloss.Style
}

func newLevelStyles(r *lipgloss.Renderer) levelStyles {
	return levelStyles{
		err:  r.NewStyle().Foreground(style.Red),
		warn: r.NewStyle().Foreground(style.Yellow),
		info: r.NewStyle().Foreground(style.Slate),
	}
}

// pick returns the icon prefix and style for level.
func (s levelStyles) pick(level slog.Level) (string, lipgloss.Style) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", s.err
	case level >= slog.LevelWarn:
		return style.Warning + " ", s.warn
	default:
		return "", s.info
	}
}

// PrettyHandler is a slog.Handler that writes one colored line per record,
// followed by its attributes as key=value pairs.
type PrettyHandler struct {
	w      io.Writer
	styles levelStyles
	level  slog.Leveler

	// fields holds attributes from WithAttrs, already formatted.
	fields []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{
		w:      w,
		styles: newLevelStyles(output.NewRenderer(w)),
		level:  slog.LevelInfo,
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, st := h.styles.pick(r.Level)

	fields := slices.Clip(h.fields)
	r.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, attr)
		return true
	})

	text := icon + r.Message
	if len(fields) > 0 {
		text += " " + strings.Join(fields, " ")
	}

	// Lines are styled one by one so multi-line messages keep their own widths.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = st.Render(line)
	}

	_, err := io.WriteString(h.w, strings.Join(lines, "\n")+"\n")
	return err
}

// WithAttrs returns a new Handler that always prints attrs.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.fields = make([]string, 0, len(h.fields)+len(attrs))
	clone.fields = append(clone.fields, h.fields...)
	for _, attr := range attrs {
		clone.fields = appendAttr(clone.fields, h.prefix, attr)
	}
	return &clone
}

// WithGroup returns a new Handler that qualifies later keys with name.
// Nested groups are joined with dots.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr appends attr as prefix+key=value, flattening group values.
func appendAttr(fields []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() != slog.KindGroup {
		return append(fields, prefix+attr.Key+"="+attr.Value.String())
	}

	inner := prefix
	if attr.Key != "" {
		inner += attr.Key + "."
	}
	for _, a := range attr.Value.Group() {
		fields = appendAttr(fields, inner, a)
	}
	return fields
}
