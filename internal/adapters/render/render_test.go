package render_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/render"
	"go.trai.ch/cairn/internal/core/domain"
)

func sampleGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	for _, m := range []*domain.Manifest{
		{Name: "hello", Version: "1.0.0", Source: domain.PathSource("/work/hello")},
		{Name: "proxy", Version: "0.1.0", Source: domain.PathSource("/work/hello/proxy")},
		{
			Name: "culprit", Version: "0.1.0",
			Source: domain.GitSource("file:///tmp/culprit", domain.DefaultBranch()),
			Commit: "0123456789abcdef0123456789abcdef01234567",
		},
	} {
		require.NoError(t, g.AddPackage(domain.NewPackage(m)))
	}
	require.NoError(t, g.AddEdge("hello", "proxy"))
	require.NoError(t, g.AddEdge("hello", "culprit"))
	require.NoError(t, g.AddEdge("proxy", "culprit"))
	return g
}

func TestRender_Golden(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	g := sampleGraph(t)

	for _, format := range []string{render.FormatText, render.FormatDOT, render.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.New().Render(context.Background(), &buf, g, format))

			gold := goldie.New(t)
			gold.Assert(t, "tree_"+format, buf.Bytes())
		})
	}
}

func TestRender_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.New().Render(context.Background(), &buf, sampleGraph(t), render.FormatSVG))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "culprit")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := render.New().Render(context.Background(), &bytes.Buffer{}, sampleGraph(t), "png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownFormat))
}

func TestRender_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.New().Render(context.Background(), &buf, domain.NewGraph(), render.FormatText))
	assert.Empty(t, buf.String())
}
