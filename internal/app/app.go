// Package app implements the application layer for cairn.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/cairn/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	loaders      ports.ManifestLoaderFactory
	resolver     *resolver.Resolver
	lockfiles    ports.LockfileStore
	renderer     ports.GraphRenderer
	reporter     ports.Reporter
	logger       ports.Logger
	metrics      ports.Metrics
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	loaders ports.ManifestLoaderFactory,
	res *resolver.Resolver,
	lockfiles ports.LockfileStore,
	renderer ports.GraphRenderer,
	reporter ports.Reporter,
	logger ports.Logger,
	metrics ports.Metrics,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		loaders:      loaders,
		resolver:     res,
		lockfiles:    lockfiles,
		renderer:     renderer,
		reporter:     reporter,
		logger:       logger,
		metrics:      metrics,
		telemetry:    telemetry,
	}
}

// Options controls a single command invocation.
type Options struct {
	// ManifestPath is the package directory or the path of its Cairn.toml.
	// It defaults to the working directory.
	ManifestPath string
	// Offline forbids network access, overriding the configuration when set.
	Offline bool
	// Jobs overrides the configured prefetch parallelism when positive.
	Jobs int
	// Update ignores the pins of an existing lockfile.
	Update bool
}

// Result is a successful resolution.
type Result struct {
	Root   *domain.Manifest
	Graph  *domain.Graph
	Order  []*domain.Package
	Config domain.Config
}

// Resolve resolves the dependencies of the package at opts.ManifestPath,
// writes the lockfile and returns the packages in build order.
func (a *App) Resolve(ctx context.Context, opts Options) (res *Result, err error) {
	dir, err := manifestDir(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	cfg, err := a.loadConfig(dir, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if writeErr := a.writeMetrics(cfg); writeErr != nil && err == nil {
			err = writeErr
		}
	}()

	ctx, vertex := a.telemetry.Record(ctx, "resolve "+dir)
	defer func() { vertex.Complete(err) }()

	var pins map[domain.SourceSpec]string
	if !opts.Update {
		lf, lockErr := a.lockfiles.Read(dir)
		if lockErr != nil {
			return nil, lockErr
		}
		pins = lf.Pins()
	}

	loader, err := a.loaders.NewLoader(cfg, pins)
	if err != nil {
		return nil, err
	}

	root, err := loader.LoadRoot(ctx, dir)
	if err != nil {
		return nil, err
	}

	g, err := a.resolver.Resolve(ctx, loader, root, resolver.Options{
		Jobs:             cfg.Jobs,
		VersionConflicts: cfg.VersionConflicts,
	})
	if err != nil {
		return nil, err
	}

	order, err := g.BuildOrder()
	if err != nil {
		return nil, err
	}

	if err := a.lockfiles.Write(dir, domain.NewLockfile(g, order)); err != nil {
		return nil, err
	}

	a.logger.Debug("lockfile written", "path", filepath.Join(dir, domain.LockFileName))
	a.reporter.Status("Resolved", strconv.Itoa(len(order))+" packages")

	return &Result{Root: root, Graph: g, Order: order, Config: cfg}, nil
}

// Tree resolves dependencies and renders the graph to w.
func (a *App) Tree(ctx context.Context, opts Options, w io.Writer, format string) error {
	res, err := a.Resolve(ctx, opts)
	if err != nil {
		return err
	}
	return a.renderer.Render(ctx, w, res.Graph, format)
}

// Update resolves dependencies ignoring locked commits and rewrites the lockfile.
func (a *App) Update(ctx context.Context, opts Options) (*Result, error) {
	opts.Update = true
	return a.Resolve(ctx, opts)
}

// Clean removes the git cache.
func (a *App) Clean(opts Options) error {
	dir, err := manifestDir(opts.ManifestPath)
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig(dir, opts)
	if err != nil {
		return err
	}

	gitDir := filepath.Join(cfg.CacheDir, domain.GitDirName)
	if _, statErr := os.Stat(gitDir); errors.Is(statErr, os.ErrNotExist) {
		a.logger.Debug("nothing to clean", "path", gitDir)
		return nil
	}

	if err := os.RemoveAll(gitDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove git cache"), "path", gitDir)
	}
	a.reporter.Status("Removed", gitDir)
	return nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) loadConfig(dir string, opts Options) (domain.Config, error) {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Offline {
		cfg.Offline = true
	}
	if opts.Jobs > 0 {
		cfg.Jobs = opts.Jobs
	}
	return cfg, nil
}

func (a *App) writeMetrics(cfg domain.Config) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteTo(cfg.MetricsFile); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", cfg.MetricsFile)
	}
	return nil
}

// manifestDir returns the absolute package directory for a --manifest-path value.
func manifestDir(path string) (string, error) {
	if path == "" {
		path = "."
	}
	if filepath.Base(path) == domain.ManifestFileName {
		path = filepath.Dir(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve manifest path"), "path", path)
	}
	return abs, nil
}
