package domain

import (
	"os"
	"path/filepath"
)

const (
	// ManifestFileName is the name of a package manifest.
	ManifestFileName = "Cairn.toml"

	// LockFileName is the name of the lockfile written next to the root manifest.
	LockFileName = "Cairn.lock"

	// ConfigFileName is the name of the tool configuration file.
	ConfigFileName = "cairn.yaml"

	// CacheDirEnv overrides the cache directory.
	CacheDirEnv = "CAIRN_CACHE_DIR"

	// OfflineEnv enables offline mode when set to a true value.
	OfflineEnv = "CAIRN_OFFLINE"

	// GitDirName is the name of the git cache directory inside the cache root.
	GitDirName = "git"

	// GitDBDirName holds bare clones of every fetched repository.
	GitDBDirName = "db"

	// GitCheckoutsDirName holds working trees checked out at a specific commit.
	GitCheckoutsDirName = "checkouts"

	// CheckoutReadyFile marks a checkout that was fully materialized.
	CheckoutReadyFile = ".cairn-ok"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDir returns the cache root used when no configuration overrides it.
// It lives under the user cache directory and falls back to a relative
// .cairn directory when that cannot be determined.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".cairn"
	}
	return filepath.Join(base, "cairn")
}

// GitDBPath returns the directory holding bare repositories under cacheDir.
func GitDBPath(cacheDir string) string {
	return filepath.Join(cacheDir, GitDirName, GitDBDirName)
}

// GitCheckoutsPath returns the directory holding checkouts under cacheDir.
func GitCheckoutsPath(cacheDir string) string {
	return filepath.Join(cacheDir, GitDirName, GitCheckoutsDirName)
}
