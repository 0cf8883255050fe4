// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cairn/internal/adapters/config"
	_ "go.trai.ch/cairn/internal/adapters/console"
	_ "go.trai.ch/cairn/internal/adapters/git"
	_ "go.trai.ch/cairn/internal/adapters/lockfile"
	_ "go.trai.ch/cairn/internal/adapters/logger"
	_ "go.trai.ch/cairn/internal/adapters/manifest"
	_ "go.trai.ch/cairn/internal/adapters/metrics"
	_ "go.trai.ch/cairn/internal/adapters/registry"
	_ "go.trai.ch/cairn/internal/adapters/render"
	_ "go.trai.ch/cairn/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/cairn/internal/app"
	_ "go.trai.ch/cairn/internal/engine/resolver"
)
