package git

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

type fetchResult struct {
	handle domain.RepoHandle
	err    error
}

// Session is the git cache view of a single resolution run. Each repository
// is fetched at most once per session, whatever reference is requested.
type Session struct {
	db        *Database
	reporter  ports.Reporter
	telemetry ports.Telemetry
	metrics   ports.Metrics

	flight singleflight.Group

	mu       sync.Mutex
	fetched  map[string]fetchResult
	reported map[string]bool
}

var _ ports.GitCache = (*Session)(nil)

// NewSession creates a session over db.
func NewSession(db *Database, reporter ports.Reporter, telemetry ports.Telemetry, metrics ports.Metrics) *Session {
	return &Session{
		db:        db,
		reporter:  reporter,
		telemetry: telemetry,
		metrics:   metrics,
		fetched:   make(map[string]fetchResult),
		reported:  make(map[string]bool),
	}
}

func (s *Session) memo(canonical string) (fetchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.fetched[canonical]
	return r, ok
}

// FetchOrUpdate implements ports.GitCache. Failures are remembered too, so a
// broken repository is reported once per run.
func (s *Session) FetchOrUpdate(ctx context.Context, url string) (domain.RepoHandle, error) {
	canonical := domain.CanonicalGitURL(url)
	if r, ok := s.memo(canonical); ok {
		return r.handle, r.err
	}

	v, _, _ := s.flight.Do(canonical, func() (any, error) {
		if r, ok := s.memo(canonical); ok {
			return r, nil
		}

		r := s.fetch(ctx, url, canonical)
		if errors.Is(r.err, context.Canceled) || errors.Is(r.err, context.DeadlineExceeded) {
			return r, nil
		}

		s.mu.Lock()
		s.fetched[canonical] = r
		s.mu.Unlock()
		return r, nil
	})

	r, _ := v.(fetchResult)
	return r.handle, r.err
}

func (s *Session) fetch(ctx context.Context, url, canonical string) fetchResult {
	s.mu.Lock()
	report := !s.db.Offline() && !s.reported[canonical]
	s.reported[canonical] = true
	s.mu.Unlock()

	if report {
		s.reporter.Status("Updating", "git repository "+url)
	}

	ctx, vertex := s.telemetry.Record(ctx, "fetch "+url, ports.WithGroup("git fetch"))
	handle, cloned, err := s.db.Fetch(ctx, url)

	switch {
	case err != nil:
		s.metrics.GitFetch("failed")
	case s.db.Offline():
		vertex.Cached()
		vertex.Log(domain.LogLevelInfo, "using cached database "+handle.Path)
		s.metrics.GitFetch("offline")
	case cloned:
		vertex.Log(domain.LogLevelInfo, "cloned into "+handle.Path)
		s.metrics.GitFetch("cloned")
	default:
		vertex.Log(domain.LogLevelInfo, "updated "+handle.Path)
		s.metrics.GitFetch("updated")
	}
	vertex.Complete(err)

	return fetchResult{handle: handle, err: err}
}

// Checkout implements ports.GitCache.
func (s *Session) Checkout(
	ctx context.Context,
	repo domain.RepoHandle,
	ref domain.GitReference,
	pin string,
) (domain.Checkout, error) {
	commit, err := s.db.Resolve(ctx, repo, ref, pin)
	if err != nil {
		return domain.Checkout{}, err
	}

	ctx, vertex := s.telemetry.Record(ctx,
		"checkout "+repo.URL+"#"+domain.ShortCommit(commit),
		ports.WithGroup("git checkout"),
	)
	vertex.Log(domain.LogLevelDebug, "resolved "+ref.String()+" to "+commit)
	co, cached, err := s.db.Checkout(ctx, repo, commit)
	if cached {
		vertex.Cached()
	}
	vertex.Complete(err)
	if err != nil {
		return domain.Checkout{}, err
	}

	s.metrics.GitCheckout(cached)
	return co, nil
}

// Provider opens sessions over databases shared for the lifetime of the process.
type Provider struct {
	reporter  ports.Reporter
	telemetry ports.Telemetry
	metrics   ports.Metrics

	mu  sync.Mutex
	dbs map[dbKey]*Database
}

type dbKey struct {
	root    string
	offline bool
}

var _ ports.GitCacheProvider = (*Provider)(nil)

// NewProvider creates a Provider.
func NewProvider(reporter ports.Reporter, telemetry ports.Telemetry, metrics ports.Metrics) *Provider {
	return &Provider{
		reporter:  reporter,
		telemetry: telemetry,
		metrics:   metrics,
		dbs:       make(map[dbKey]*Database),
	}
}

// Open implements ports.GitCacheProvider.
func (p *Provider) Open(cfg domain.Config) (ports.GitCache, error) {
	root := cfg.CacheDir
	if root == "" {
		root = domain.DefaultCacheDir()
	}
	key := dbKey{root: root, offline: cfg.Offline}

	p.mu.Lock()
	defer p.mu.Unlock()

	db, ok := p.dbs[key]
	if !ok {
		db = NewDatabase(root, cfg.Offline)
		p.dbs[key] = db
	}

	return NewSession(db, p.reporter, p.telemetry, p.metrics), nil
}
