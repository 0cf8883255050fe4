package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/ui/output"
	"go.trai.ch/cairn/internal/ui/style"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	pipe       = "│   "
	space      = "    "
	repeated   = " (*)"
)

type treeWriter struct {
	g        *domain.Graph
	sb       strings.Builder
	expanded map[string]bool
	name     lipgloss.Style
	detail   lipgloss.Style
}

// writeText prints the graph as a tree rooted at the root package. Packages
// already printed are marked with (*) and not expanded again.
func writeText(w io.Writer, g *domain.Graph) error {
	root := g.Root()
	if root == nil {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	if output.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.Ascii)
	}

	tw := &treeWriter{
		g:        g,
		expanded: make(map[string]bool),
		name:     r.NewStyle().Foreground(style.Cyan).Bold(true),
		detail:   r.NewStyle().Foreground(style.Slate),
	}
	tw.node(root, "", "")

	_, err := io.WriteString(w, tw.sb.String())
	return err
}

func (tw *treeWriter) node(p *domain.Package, prefix, branch string) {
	tw.sb.WriteString(prefix)
	tw.sb.WriteString(branch)
	tw.sb.WriteString(tw.name.Render(p.Name()))
	tw.sb.WriteString(" ")
	tw.sb.WriteString(tw.detail.Render(describe(p)))

	if tw.expanded[p.Name()] {
		tw.sb.WriteString(repeated + "\n")
		return
	}
	tw.sb.WriteString("\n")
	tw.expanded[p.Name()] = true

	childPrefix := prefix
	switch branch {
	case branchMid:
		childPrefix += pipe
	case branchLast:
		childPrefix += space
	}

	deps := tw.g.Dependencies(p.Name())
	for i, name := range deps {
		dep, ok := tw.g.Package(name)
		if !ok {
			continue
		}
		next := branchMid
		if i == len(deps)-1 {
			next = branchLast
		}
		tw.node(dep, childPrefix, next)
	}
}

func describe(p *domain.Package) string {
	s := "v" + p.ID.Version + " (" + p.ID.Source.String()
	if p.Manifest.Commit != "" {
		s += "#" + domain.ShortCommit(p.Manifest.Commit)
	}
	return s + ")"
}
