package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

// ToDOT converts the graph to Graphviz DOT. Edges point from a package to
// its dependencies.
func ToDOT(g *domain.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dependencies {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	root := g.Root()
	for p := range g.Packages() {
		label := p.Name() + "\n" + describe(p)
		attrs := fmt.Sprintf("label=%q", label)
		if p == root {
			attrs += ", penwidth=2"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", p.Name(), attrs)
	}

	buf.WriteString("\n")
	for p := range g.Packages() {
		for _, dep := range g.Dependencies(p.Name()) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", p.Name(), dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to initialize graphviz")
	}
	defer func() { _ = gv.Close() }()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse DOT")
	}
	defer func() { _ = g.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, zerr.Wrap(err, "failed to render SVG")
	}
	return buf.Bytes(), nil
}
