package manifest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/git"
	"go.trai.ch/cairn/internal/adapters/manifest"
	"go.trai.ch/cairn/internal/adapters/metrics"
	"go.trai.ch/cairn/internal/adapters/telemetry"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writePackage(t *testing.T, dir, name, version, deps string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	content := "[package]\nname = \"" + name + "\"\nversion = \"" + version + "\"\n"
	if deps != "" {
		content += "\n[dependencies]\n" + deps
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(content), 0o600))
}

type fixture struct {
	git      *mocks.MockGitCache
	registry *mocks.MockRegistry
	reporter *mocks.MockReporter
	loader   *manifest.Loader
}

func newFixture(t *testing.T, pins map[domain.SourceSpec]string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		git:      mocks.NewMockGitCache(ctrl),
		registry: mocks.NewMockRegistry(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
	}
	f.loader = manifest.NewLoader(f.git, f.registry, metrics.New(), f.reporter, "file:///srv/index", pins)
	return f
}

func TestLoader_LoadRoot(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, "hello", "1.0.0", "proxy = { path = \"proxy\" }\n")

	f := newFixture(t, nil)
	m, err := f.loader.LoadRoot(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "hello", m.Name)
	assert.Equal(t, domain.PathSource(dir), m.Source)
	assert.Equal(t, []domain.Dependency{{Name: "proxy", Source: domain.PathSource(filepath.Join(dir, "proxy"))}}, m.Dependencies)

	// A path dependency pointing at the root returns the same manifest.
	again, err := f.loader.Load(context.Background(), domain.Dependency{Name: "hello", Source: domain.PathSource(dir)})
	require.NoError(t, err)
	assert.Same(t, m, again)
}

func TestLoader_PathCached(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, "proxy", "0.1.0", "")

	f := newFixture(t, nil)
	dep := domain.Dependency{Name: "proxy", Source: domain.PathSource(dir)}

	first, err := f.loader.Load(context.Background(), dep)
	require.NoError(t, err)

	// Changes on disk are not observed within a run.
	writePackage(t, dir, "proxy", "0.2.0", "")
	second, err := f.loader.Load(context.Background(), dep)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "0.1.0", second.Version)
}

func TestLoader_Git(t *testing.T) {
	checkout := t.TempDir()
	writePackage(t, checkout, "culprit", "0.1.0", "")

	src := domain.GitSource("file:///tmp/culprit", domain.Branch("branchy"))
	repo := domain.RepoHandle{URL: "file:///tmp/culprit", Canonical: "file:///tmp/culprit", Path: "/cache/db/culprit"}
	pins := map[domain.SourceSpec]string{src: "0123456789"}

	f := newFixture(t, pins)
	ctx := context.Background()
	f.git.EXPECT().FetchOrUpdate(ctx, "file:///tmp/culprit").Return(repo, nil).Times(1)
	f.git.EXPECT().Checkout(ctx, repo, domain.Branch("branchy"), "0123456789").
		Return(domain.Checkout{Path: checkout, Commit: "0123456789abcdef"}, nil).Times(1)

	dep := domain.Dependency{Name: "culprit", Source: src}
	m, err := f.loader.Load(ctx, dep)
	require.NoError(t, err)
	assert.Equal(t, src, m.Source)
	assert.Equal(t, "0123456789abcdef", m.Commit)
	assert.Equal(t, checkout, m.Root)

	again, err := f.loader.Load(ctx, dep)
	require.NoError(t, err)
	assert.Same(t, m, again)
}

func TestLoader_GitErrorIsRemembered(t *testing.T) {
	src := domain.GitSource("file:///tmp/culprit", domain.Branch("nope"))
	repo := domain.RepoHandle{URL: "file:///tmp/culprit"}
	notFound := &domain.ReferenceNotFoundError{URL: "file:///tmp/culprit", Reference: domain.Branch("nope")}

	f := newFixture(t, nil)
	ctx := context.Background()
	f.git.EXPECT().FetchOrUpdate(ctx, "file:///tmp/culprit").Return(repo, nil).Times(1)
	f.git.EXPECT().Checkout(ctx, repo, domain.Branch("nope"), "").Return(domain.Checkout{}, notFound).Times(1)

	dep := domain.Dependency{Name: "culprit", Source: src}
	for range 2 {
		_, err := f.loader.Load(ctx, dep)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrReferenceNotFound))
	}
}

func TestLoader_Registry(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, "core", "1.4.0", "")

	f := newFixture(t, nil)
	ctx := context.Background()
	f.registry.EXPECT().Locate(ctx, "file:///srv/index", "core", "^1.2").Return(dir, nil).Times(1)

	m, err := f.loader.Load(ctx, domain.Dependency{
		Name: "core", Source: domain.RegistrySource("file:///srv/index"), Requirement: "^1.2",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", m.Version)
	assert.Equal(t, domain.RegistrySource("file:///srv/index"), m.Source)
}

func TestLoader_NameMismatch(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, "proxy", "0.1.0", "")

	f := newFixture(t, nil)
	_, err := f.loader.Load(context.Background(), domain.Dependency{Name: "culprit", Source: domain.PathSource(dir)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPackageNameMismatch))
	assert.Contains(t, err.Error(), "dependency `culprit` resolved to package `proxy`")
}

func TestLoader_WarnsOnUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName),
		[]byte("[package]\nname = \"proxy\"\nversion = \"0.1.0\"\nauthors = []\n"), 0o600))

	f := newFixture(t, nil)
	f.reporter.EXPECT().Warn("ignoring unknown manifest keys in `proxy`: package.authors").Times(1)

	_, err := f.loader.Load(context.Background(), domain.Dependency{Name: "proxy", Source: domain.PathSource(dir)})
	require.NoError(t, err)
}

func TestFactory_NewLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockGitCacheProvider(ctrl)
	cfg := domain.Config{CacheDir: "/cache", Registry: "file:///srv/index"}
	provider.EXPECT().Open(cfg).Return(mocks.NewMockGitCache(ctrl), nil)

	factory := manifest.NewFactory(provider, mocks.NewMockRegistry(ctrl), metrics.New(), mocks.NewMockReporter(ctrl))
	loader, err := factory.NewLoader(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, loader)
}

func TestFactory_PathOnlyWithoutGit(t *testing.T) {
	t.Setenv("PATH", "")

	dir := t.TempDir()
	writePackage(t, filepath.Join(dir, "hello"), "hello", "1.0.0", "proxy = { path = \"../proxy\" }\n")
	writePackage(t, filepath.Join(dir, "proxy"), "proxy", "0.1.0", "")

	ctrl := gomock.NewController(t)
	provider := git.NewProvider(mocks.NewMockReporter(ctrl), telemetry.NewNoOp(), metrics.New())
	factory := manifest.NewFactory(provider, mocks.NewMockRegistry(ctrl), metrics.New(), mocks.NewMockReporter(ctrl))

	loader, err := factory.NewLoader(domain.Config{CacheDir: t.TempDir()}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	root, err := loader.LoadRoot(ctx, filepath.Join(dir, "hello"))
	require.NoError(t, err)
	proxy, err := loader.Load(ctx, root.Dependencies[0])
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", proxy.Version)
}
