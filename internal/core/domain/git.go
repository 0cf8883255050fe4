package domain

// RepoHandle refers to a fetched bare repository in the git cache.
type RepoHandle struct {
	// URL is the repository URL as declared by the dependency.
	URL string
	// Canonical is the normalized URL used as cache key.
	Canonical string
	// Path is the directory of the bare repository.
	Path string
}

// Checkout is a working tree of a repository at a fixed commit.
type Checkout struct {
	// Path is the directory of the working tree.
	Path string
	// Commit is the full commit hash checked out.
	Commit string
}

// ShortCommit returns the abbreviated commit hash used in directory names.
func ShortCommit(commit string) string {
	const size = 7
	if len(commit) <= size {
		return commit
	}
	return commit[:size]
}
