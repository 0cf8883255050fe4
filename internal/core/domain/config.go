package domain

import "runtime"

// VersionConflictPolicy decides what happens when a resolved package does not
// satisfy a version requirement of one of its dependents.
type VersionConflictPolicy string

const (
	// VersionConflictsFailFast aborts on the first unsatisfied requirement.
	VersionConflictsFailFast VersionConflictPolicy = "fail-fast"
	// VersionConflictsCollect finishes resolution and reports every unsatisfied requirement.
	VersionConflictsCollect VersionConflictPolicy = "collect"
	// VersionConflictsIgnore only logs unsatisfied requirements.
	VersionConflictsIgnore VersionConflictPolicy = "ignore"
)

// Valid reports whether p is a known policy.
func (p VersionConflictPolicy) Valid() bool {
	switch p {
	case VersionConflictsFailFast, VersionConflictsCollect, VersionConflictsIgnore:
		return true
	default:
		return false
	}
}

// Config holds the tool settings used for a resolution run.
type Config struct {
	// CacheDir is the root of the git cache.
	CacheDir string
	// Registry is the default registry for dependencies without path or git.
	Registry string
	// Jobs bounds the number of manifests prefetched concurrently. 1 disables prefetching.
	Jobs int
	// Offline forbids network access for git sources.
	Offline bool
	// VersionConflicts selects the policy for unsatisfied version requirements.
	VersionConflicts VersionConflictPolicy
	// MetricsFile, when set, receives resolver metrics in Prometheus text format.
	MetricsFile string
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		CacheDir:         DefaultCacheDir(),
		Jobs:             runtime.NumCPU(),
		VersionConflicts: VersionConflictsFailFast,
	}
}
