package ports

// Metrics records counters about resolution runs.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// GitFetch counts a fetch of a repository. Result is "cloned", "updated" or "failed".
	GitFetch(result string)
	// GitCheckout counts a checkout. Cached is true when an existing checkout was reused.
	GitCheckout(cached bool)
	// ManifestLoad counts a manifest load by source kind.
	ManifestLoad(kind string)
	// Conflict counts a resolution failure by kind, for example "source" or "version".
	Conflict(kind string)
	// WriteTo writes the collected metrics to path in text exposition format.
	WriteTo(path string) error
}
