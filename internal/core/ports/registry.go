package ports

import "context"

// Registry locates packages published to a package registry.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Locate returns the directory holding the manifest of the highest version
	// of name that satisfies requirement.
	Locate(ctx context.Context, registry, name, requirement string) (dir string, err error)
}
