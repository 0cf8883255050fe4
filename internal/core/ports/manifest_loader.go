package ports

import (
	"context"

	"go.trai.ch/cairn/internal/core/domain"
)

// ManifestLoader loads package manifests for dependencies.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// LoadRoot reads the manifest in dir.
	LoadRoot(ctx context.Context, dir string) (*domain.Manifest, error)

	// Load fetches the source of dep if needed and returns its manifest.
	Load(ctx context.Context, dep domain.Dependency) (*domain.Manifest, error)
}

// ManifestLoaderFactory creates manifest loaders for resolution runs.
type ManifestLoaderFactory interface {
	// NewLoader returns a loader with an empty cache. Git sources listed in pins
	// are checked out at the pinned commit.
	NewLoader(cfg domain.Config, pins map[domain.SourceSpec]string) (ManifestLoader, error)
}
