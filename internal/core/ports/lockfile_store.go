package ports

import "go.trai.ch/cairn/internal/core/domain"

// LockfileStore persists resolution results next to the root manifest.
//
//go:generate mockgen -source=lockfile_store.go -destination=mocks/mock_lockfile_store.go -package=mocks
type LockfileStore interface {
	// Read returns the lockfile in dir, or nil if there is none.
	Read(dir string) (*domain.Lockfile, error)
	// Write stores lf in dir.
	Write(dir string, lf *domain.Lockfile) error
}
