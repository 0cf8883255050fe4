package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/console"           //nolint:depguard // Wired in adapter layer
	"go.trai.ch/cairn/internal/adapters/metrics"           //nolint:depguard // Wired in adapter layer
	"go.trai.ch/cairn/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/cairn/internal/core/ports"
)

// NodeID is the unique identifier for the git cache Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.GitCacheProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{console.NodeID, progrock.NodeID, metrics.NodeID},
		Run: func(ctx context.Context) (ports.GitCacheProvider, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(reporter, telemetry, m), nil
		},
	})
}
