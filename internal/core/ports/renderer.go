package ports

import (
	"context"
	"io"

	"go.trai.ch/cairn/internal/core/domain"
)

// GraphRenderer writes a resolved dependency graph in a display format.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type GraphRenderer interface {
	// Render writes g to w using format ("text", "dot", "svg" or "json").
	Render(ctx context.Context, w io.Writer, g *domain.Graph, format string) error
}
