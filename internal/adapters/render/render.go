// Package render writes resolved dependency graphs in display formats.
package render

import (
	"context"
	"io"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

// Supported formats.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// Formats lists the supported formats.
var Formats = []string{FormatText, FormatDOT, FormatSVG, FormatJSON}

// Renderer implements ports.GraphRenderer.
type Renderer struct{}

var _ ports.GraphRenderer = (*Renderer)(nil)

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render implements ports.GraphRenderer.
func (r *Renderer) Render(ctx context.Context, w io.Writer, g *domain.Graph, format string) error {
	switch format {
	case FormatText, "":
		return writeText(w, g)
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(g))
		return err
	case FormatSVG:
		svg, err := RenderSVG(ctx, ToDOT(g))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	case FormatJSON:
		return writeJSON(w, g)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "expected one of text, dot, svg or json"), "format", format)
	}
}
