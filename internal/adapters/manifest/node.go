package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/console"  //nolint:depguard // Wired in adapter layer
	"go.trai.ch/cairn/internal/adapters/git"      //nolint:depguard // Wired in adapter layer
	"go.trai.ch/cairn/internal/adapters/metrics"  //nolint:depguard // Wired in adapter layer
	"go.trai.ch/cairn/internal/adapters/registry" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/cairn/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestLoaderFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.NodeID, registry.NodeID, metrics.NodeID, console.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoaderFactory, error) {
			gitCache, err := graft.Dep[ports.GitCacheProvider](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(gitCache, reg, m, reporter), nil
		},
	})
}
