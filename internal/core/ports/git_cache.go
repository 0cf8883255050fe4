package ports

import (
	"context"

	"go.trai.ch/cairn/internal/core/domain"
)

// GitCache fetches repositories into a local cache and materializes
// checkouts of specific references.
//
//go:generate mockgen -source=git_cache.go -destination=mocks/mock_git_cache.go -package=mocks
type GitCache interface {
	// FetchOrUpdate makes sure the repository at url is present and, at most
	// once per resolution run, refreshed from the remote.
	FetchOrUpdate(ctx context.Context, url string) (domain.RepoHandle, error)

	// Checkout resolves ref to a commit and returns a working tree at that commit.
	// A non-empty pin overrides the moving reference with an exact commit.
	Checkout(ctx context.Context, repo domain.RepoHandle, ref domain.GitReference, pin string) (domain.Checkout, error)
}

// GitCacheProvider opens git cache sessions. Sessions opened from the same
// provider share the on-disk cache and its locks.
type GitCacheProvider interface {
	// Open returns a session for one resolution run using the cache settings of cfg.
	Open(cfg domain.Config) (GitCache, error)
}
