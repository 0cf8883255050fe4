package resolver_test

import (
	"context"
	"sync"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

// fakeLoader is an in-memory ports.ManifestLoader. Git sources emit one
// "Updating" event per URL, like the git cache does.
type fakeLoader struct {
	mu        sync.Mutex
	manifests map[domain.SourceSpec]*domain.Manifest
	failures  map[domain.SourceSpec]error
	updated   map[string]bool
	events    []string
	loads     map[domain.SourceSpec]int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		manifests: make(map[domain.SourceSpec]*domain.Manifest),
		failures:  make(map[domain.SourceSpec]error),
		updated:   make(map[string]bool),
		loads:     make(map[domain.SourceSpec]int),
	}
}

// add registers a package available at src.
func (f *fakeLoader) add(src domain.SourceSpec, name, version string, deps ...domain.Dependency) *domain.Manifest {
	m := &domain.Manifest{Name: name, Version: version, Source: src, Dependencies: deps}
	f.manifests[src] = m
	return m
}

func (f *fakeLoader) fail(src domain.SourceSpec, err error) {
	f.failures[src] = err
}

func (f *fakeLoader) LoadRoot(_ context.Context, dir string) (*domain.Manifest, error) {
	return f.Load(context.Background(), domain.Dependency{Source: domain.PathSource(dir)})
}

func (f *fakeLoader) Load(_ context.Context, dep domain.Dependency) (*domain.Manifest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loads[dep.Source]++
	if dep.Source.IsGit() && !f.updated[dep.Source.Location] {
		f.updated[dep.Source.Location] = true
		f.events = append(f.events, "Updating git repository "+dep.Source.Location)
	}

	if err, ok := f.failures[dep.Source]; ok {
		return nil, err
	}
	m, ok := f.manifests[dep.Source]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "no such package"), "source", dep.Source.String())
	}
	return m, nil
}

func (f *fakeLoader) Events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func gitDep(name, url string, ref domain.GitReference) domain.Dependency {
	return domain.Dependency{Name: name, Source: domain.GitSource(url, ref)}
}

func pathDep(name, dir string) domain.Dependency {
	return domain.Dependency{Name: name, Source: domain.PathSource(dir)}
}
