package manifest

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

type loadResult struct {
	manifest *domain.Manifest
	err      error
}

// Loader loads manifests for a single resolution run. Every source is read at
// most once; later loads of the same source return the same manifest.
type Loader struct {
	git             ports.GitCache
	registry        ports.Registry
	metrics         ports.Metrics
	reporter        ports.Reporter
	defaultRegistry string
	pins            map[domain.SourceSpec]string

	flight singleflight.Group

	mu    sync.Mutex
	cache map[string]loadResult
}

var _ ports.ManifestLoader = (*Loader)(nil)

// NewLoader creates a Loader. Git sources present in pins are checked out at
// the pinned commit.
func NewLoader(
	git ports.GitCache,
	registry ports.Registry,
	metrics ports.Metrics,
	reporter ports.Reporter,
	defaultRegistry string,
	pins map[domain.SourceSpec]string,
) *Loader {
	return &Loader{
		git:             git,
		registry:        registry,
		metrics:         metrics,
		reporter:        reporter,
		defaultRegistry: defaultRegistry,
		pins:            pins,
		cache:           make(map[string]loadResult),
	}
}

// LoadRoot implements ports.ManifestLoader.
func (l *Loader) LoadRoot(_ context.Context, dir string) (*domain.Manifest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve manifest directory"), "path", dir)
	}
	source := domain.PathSource(abs)

	return l.cached(source.String(), func() (*domain.Manifest, error) {
		return l.read(abs, source)
	})
}

// Load implements ports.ManifestLoader.
func (l *Loader) Load(ctx context.Context, dep domain.Dependency) (*domain.Manifest, error) {
	key := dep.Source.String()
	if dep.Source.Kind == domain.SourceKindRegistry {
		// A registry serves many packages, so the name and requirement select the manifest.
		key += "#" + dep.Name + "@" + dep.Requirement
	}

	m, err := l.cached(key, func() (*domain.Manifest, error) {
		return l.load(ctx, dep)
	})
	if err != nil {
		return nil, err
	}

	if m.Name != dep.Name {
		return nil, zerr.With(
			zerr.With(
				zerr.Wrap(domain.ErrPackageNameMismatch, "dependency `"+dep.Name+"` resolved to package `"+m.Name+"`"),
				"source", dep.Source.String(),
			),
			"path", m.Root,
		)
	}
	return m, nil
}

func (l *Loader) cached(key string, load func() (*domain.Manifest, error)) (*domain.Manifest, error) {
	l.mu.Lock()
	r, ok := l.cache[key]
	l.mu.Unlock()
	if ok {
		return r.manifest, r.err
	}

	v, _, _ := l.flight.Do(key, func() (any, error) {
		l.mu.Lock()
		r, ok := l.cache[key]
		l.mu.Unlock()
		if ok {
			return r, nil
		}

		m, err := load()
		r = loadResult{manifest: m, err: err}
		if isCancellation(err) {
			return r, nil
		}

		l.mu.Lock()
		l.cache[key] = r
		l.mu.Unlock()
		return r, nil
	})

	r, _ = v.(loadResult)
	return r.manifest, r.err
}

// isCancellation reports whether err only means the caller gave up. Such
// results are not cached.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (l *Loader) load(ctx context.Context, dep domain.Dependency) (*domain.Manifest, error) {
	switch dep.Source.Kind {
	case domain.SourceKindPath:
		return l.read(dep.Source.Location, dep.Source)

	case domain.SourceKindGit:
		repo, err := l.git.FetchOrUpdate(ctx, dep.Source.Location)
		if err != nil {
			return nil, err
		}
		co, err := l.git.Checkout(ctx, repo, dep.Source.Reference, l.pins[dep.Source])
		if err != nil {
			return nil, err
		}
		m, err := l.read(co.Path, dep.Source)
		if err != nil {
			return nil, err
		}
		m.Commit = co.Commit
		return m, nil

	case domain.SourceKindRegistry:
		dir, err := l.registry.Locate(ctx, dep.Source.Location, dep.Name, dep.Requirement)
		if err != nil {
			return nil, err
		}
		return l.read(dir, dep.Source)

	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSource, "unknown source kind"), "source", dep.Source.String())
	}
}

func (l *Loader) read(dir string, source domain.SourceSpec) (*domain.Manifest, error) {
	parsed, err := ReadFile(dir, source, l.defaultRegistry)
	if err != nil {
		return nil, err
	}

	if len(parsed.Unknown) > 0 {
		l.reporter.Warn("ignoring unknown manifest keys in `" + parsed.Manifest.Name + "`: " +
			strings.Join(parsed.Unknown, ", "))
	}
	l.metrics.ManifestLoad(source.Kind.String())
	return parsed.Manifest, nil
}

// Factory creates loaders backed by the shared git cache and registry.
type Factory struct {
	git      ports.GitCacheProvider
	registry ports.Registry
	metrics  ports.Metrics
	reporter ports.Reporter
}

var _ ports.ManifestLoaderFactory = (*Factory)(nil)

// NewFactory creates a Factory.
func NewFactory(git ports.GitCacheProvider, registry ports.Registry, metrics ports.Metrics, reporter ports.Reporter) *Factory {
	return &Factory{git: git, registry: registry, metrics: metrics, reporter: reporter}
}

// NewLoader implements ports.ManifestLoaderFactory.
func (f *Factory) NewLoader(cfg domain.Config, pins map[domain.SourceSpec]string) (ports.ManifestLoader, error) {
	session, err := f.git.Open(cfg)
	if err != nil {
		return nil, err
	}
	return NewLoader(session, f.registry, f.metrics, f.reporter, cfg.Registry, pins), nil
}
