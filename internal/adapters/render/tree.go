package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/ui/output"
	"go.trai.ch/deplist/internal/ui/style"
)

type treeStyles struct {
	title  lipgloss.Style
	branch lipgloss.Style
	child  lipgloss.Style
	parent lipgloss.Style
}

func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		title:  r.NewStyle().Bold(true),
		branch: r.NewStyle().Foreground(style.Slate),
		child:  r.NewStyle().Foreground(style.Iris).Bold(true),
		parent: r.NewStyle().Foreground(style.Slate).Faint(true),
	}
}

// TreeRenderer prints discovery edges as they happen, indented by depth.
// In quiet mode it only prints the number of distinct dependencies at the end.
type TreeRenderer struct {
	styles treeStyles
	ew     *errWriter
	target string
	quiet  bool
	header bool
}

// NewTreeRenderer creates a TreeRenderer for target.
func NewTreeRenderer(w io.Writer, target string, quiet bool) *TreeRenderer {
	return &TreeRenderer{
		styles: newTreeStyles(output.NewRenderer(w)),
		ew:     &errWriter{w: w},
		target: target,
		quiet:  quiet,
	}
}

// OnEdge prints one line per edge unless the renderer is quiet.
func (r *TreeRenderer) OnEdge(edge domain.Edge) {
	if r.quiet {
		return
	}
	r.printHeader()

	r.ew.printf("%s%s %s %s\n",
		strings.Repeat("  ", edge.Depth),
		r.styles.branch.Render(style.Branch),
		r.styles.child.Render(edge.Child),
		r.styles.parent.Render("(dependency of "+edge.Parent+")"),
	)
}

// NeedsPaths reports false: the tree never consults the path resolver.
func (r *TreeRenderer) NeedsPaths() bool {
	return false
}

// Render finishes the tree.
func (r *TreeRenderer) Render(closure *domain.Closure, _ []domain.ResolvedEntry) error {
	if r.quiet {
		r.ew.printf("Total unique DLLs found: %d\n", closure.Len())
	} else {
		r.printHeader()
	}
	return r.ew.result()
}

func (r *TreeRenderer) printHeader() {
	if r.header {
		return
	}
	r.header = true
	r.ew.printf("%s\n", r.styles.title.Render("=== Dependency Tree for "+r.target+" ==="))
}
