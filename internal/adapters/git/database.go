// Package git implements the git cache used to fetch git-sourced packages.
package git

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

// Database owns the on-disk git cache. It is safe for concurrent use and
// shared by every session of a process: operations on one repository are
// serialized while different repositories proceed in parallel.
type Database struct {
	root    string
	offline bool
	git     *runner

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewDatabase creates a Database rooted at cacheDir.
func NewDatabase(cacheDir string, offline bool) *Database {
	return &Database{
		root:    cacheDir,
		offline: offline,
		git:     newRunner(),
		locks:   make(map[string]*sync.Mutex),
	}
}

// Offline reports whether network access is disabled.
func (d *Database) Offline() bool {
	return d.offline
}

// Root returns the cache root directory.
func (d *Database) Root() string {
	return d.root
}

func (d *Database) lock(canonical string) func() {
	d.mu.Lock()
	l, ok := d.locks[canonical]
	if !ok {
		l = &sync.Mutex{}
		d.locks[canonical] = l
	}
	d.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// ident names the cache directories of a repository: the last path segment
// of the URL plus a hash of the canonical URL.
func ident(canonical string) string {
	name := path.Base(strings.ReplaceAll(canonical, ":", "/"))
	if name == "" || name == "." || name == "/" {
		name = "_empty"
	}
	return name + "-" + strconv.FormatUint(xxhash.Sum64String(canonical), 16)
}

// Fetch clones url into the database or updates an existing clone.
// cloned reports whether a fresh clone was made.
func (d *Database) Fetch(ctx context.Context, url string) (handle domain.RepoHandle, cloned bool, err error) {
	canonical := domain.CanonicalGitURL(url)
	handle = domain.RepoHandle{
		URL:       url,
		Canonical: canonical,
		Path:      filepath.Join(domain.GitDBPath(d.root), ident(canonical)),
	}

	unlock := d.lock(canonical)
	defer unlock()

	exists, err := isBareRepo(handle.Path)
	if err != nil {
		return handle, false, err
	}

	switch {
	case exists && d.offline:
		return handle, false, nil
	case exists:
		return handle, false, d.update(ctx, handle)
	case d.offline:
		return handle, false, zerr.With(zerr.Wrap(domain.ErrOfflineUnavailable, "git database missing"), "url", url)
	default:
		return handle, true, d.clone(ctx, handle)
	}
}

func isBareRepo(dir string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, "HEAD"))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to inspect git database"), "path", dir)
	}
}

func (d *Database) clone(ctx context.Context, handle domain.RepoHandle) error {
	parent := filepath.Dir(handle.Path)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create git database directory"), "path", parent)
	}

	tmp, err := os.MkdirTemp(parent, filepath.Base(handle.Path)+".tmp-")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary clone directory"), "path", parent)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	if _, err := d.git.run(ctx, parent, "clone", "--bare", "--quiet", "--", handle.URL, tmp); err != nil {
		return networkError(handle.URL, err)
	}

	if err := os.Rename(tmp, handle.Path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move clone into place"), "path", handle.Path)
	}
	return nil
}

func (d *Database) update(ctx context.Context, handle domain.RepoHandle) error {
	_, err := d.git.run(ctx, handle.Path,
		"fetch", "--quiet", "--force", "--prune", "--tags",
		handle.URL, "+refs/heads/*:refs/heads/*",
	)
	if err != nil {
		return networkError(handle.URL, err)
	}
	return nil
}

func networkError(url string, err error) error {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return &domain.NetworkError{URL: url, Detail: cmdErr.firstLine(), Err: err}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, domain.ErrGitNotInstalled) {
		return err
	}
	return &domain.NetworkError{URL: url, Err: err}
}

// Resolve returns the commit ref points to in the database. A non-empty pin
// that exists in the database wins over ref.
func (d *Database) Resolve(ctx context.Context, handle domain.RepoHandle, ref domain.GitReference, pin string) (string, error) {
	unlock := d.lock(handle.Canonical)
	defer unlock()

	if pin != "" {
		if commit, err := d.revParse(ctx, handle, pin); err == nil {
			return commit, nil
		}
	}

	var spec string
	switch ref.Kind {
	case domain.ReferenceBranch:
		spec = "refs/heads/" + ref.Name
	case domain.ReferenceTag:
		spec = "refs/tags/" + ref.Name
	case domain.ReferenceRev:
		spec = ref.Name
	default:
		spec = "HEAD"
	}

	commit, err := d.revParse(ctx, handle, spec)
	if err != nil {
		var cmdErr *commandError
		if errors.As(err, &cmdErr) {
			return "", &domain.ReferenceNotFoundError{URL: handle.URL, Reference: ref}
		}
		return "", err
	}
	return commit, nil
}

func (d *Database) revParse(ctx context.Context, handle domain.RepoHandle, spec string) (string, error) {
	return d.git.run(ctx, handle.Path, "rev-parse", "--verify", "--quiet", spec+"^{commit}")
}

// Checkout materializes a working tree of commit in a directory named after
// the full commit hash. cached reports whether an existing checkout was reused.
func (d *Database) Checkout(ctx context.Context, handle domain.RepoHandle, commit string) (co domain.Checkout, cached bool, err error) {
	unlock := d.lock(handle.Canonical)
	defer unlock()

	dir := filepath.Join(domain.GitCheckoutsPath(d.root), ident(handle.Canonical), commit)
	co = domain.Checkout{Path: dir, Commit: commit}
	marker := filepath.Join(dir, domain.CheckoutReadyFile)

	if done, err := os.ReadFile(marker); err == nil && string(done) == commit {
		return co, true, nil
	}

	if err := os.RemoveAll(dir); err != nil {
		return co, false, zerr.With(zerr.Wrap(err, "failed to remove stale checkout"), "path", dir)
	}
	if err := os.MkdirAll(filepath.Dir(dir), domain.DirPerm); err != nil {
		return co, false, zerr.With(zerr.Wrap(err, "failed to create checkout directory"), "path", dir)
	}

	if _, err := d.git.run(ctx, filepath.Dir(dir), "clone", "--quiet", "--shared", "--no-checkout", "--", handle.Path, dir); err != nil {
		return co, false, zerr.With(zerr.Wrap(err, "failed to create checkout"), "url", handle.URL)
	}
	if _, err := d.git.run(ctx, dir, "checkout", "--quiet", "--detach", commit); err != nil {
		return co, false, zerr.With(zerr.Wrap(err, "failed to check out commit"), "commit", commit)
	}

	//nolint:gosec // marker lives in a directory owned by the cache
	if err := os.WriteFile(marker, []byte(commit), domain.FilePerm); err != nil {
		return co, false, zerr.With(zerr.Wrap(err, "failed to mark checkout"), "path", marker)
	}
	return co, false, nil
}
