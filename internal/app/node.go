package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/lockfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/render"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/cairn/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			resolver.NodeID,
			lockfile.NodeID,
			render.NodeID,
			console.NodeID,
			logger.NodeID,
			metrics.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			console.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	loaders, err := graft.Dep[ports.ManifestLoaderFactory](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	lockfiles, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.GraphRenderer](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, loaders, res, lockfiles, renderer, reporter, log, m, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, reporter), nil
}
