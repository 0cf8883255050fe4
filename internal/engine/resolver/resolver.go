// Package resolver builds dependency graphs from package manifests.
package resolver

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PackageState tracks a package name through a resolution run.
type PackageState string

const (
	// StateUnvisited indicates the package has not been reached yet.
	StateUnvisited PackageState = "Unvisited"
	// StateLoading indicates the manifest of the package is being loaded.
	StateLoading PackageState = "Loading"
	// StateResolved indicates the package is part of the graph.
	StateResolved PackageState = "Resolved"
	// StateFailed indicates the manifest could not be loaded.
	StateFailed PackageState = "Failed"
	// StateConflicted indicates the package was required from two sources.
	StateConflicted PackageState = "Conflicted"
)

// Options configures a resolution run.
type Options struct {
	// Jobs bounds concurrent manifest prefetching. Values below 2 resolve sequentially.
	Jobs int
	// VersionConflicts selects how unsatisfied version requirements are handled.
	VersionConflicts domain.VersionConflictPolicy
}

// Resolver computes the transitive closure of a root manifest.
type Resolver struct {
	logger  ports.Logger
	metrics ports.Metrics
}

// New creates a new Resolver.
func New(logger ports.Logger, metrics ports.Metrics) *Resolver {
	return &Resolver{logger: logger, metrics: metrics}
}

// ErrInvalidTransition is returned when a package name moves between
// states out of order.
var ErrInvalidTransition = zerr.New("invalid package state transition")

// transitions lists the states a package may move to from each state.
// Resolved, Failed and Conflicted are terminal except that a resolved name
// may still be reported as conflicting by a later dependency.
var transitions = map[PackageState][]PackageState{
	StateUnvisited: {StateLoading},
	StateLoading:   {StateResolved, StateFailed},
	StateResolved:  {StateConflicted},
}

// item is a dependency edge waiting in the worklist.
type item struct {
	parent string
	dep    domain.Dependency
}

type entry struct {
	source domain.SourceSpec
	state  PackageState
}

// transition moves e to state to.
func (e *entry) transition(name string, to PackageState) error {
	for _, next := range transitions[e.state] {
		if next == to {
			e.state = to
			return nil
		}
	}
	return zerr.With(zerr.Wrap(ErrInvalidTransition, string(e.state)+" -> "+string(to)), "package", name)
}

type run struct {
	id     string
	r      *Resolver
	loader ports.ManifestLoader
	opts   Options

	graph      *domain.Graph
	registry   map[string]*entry
	mismatches []error
}

// Resolve walks the dependencies of root breadth first and returns the
// resulting graph. Each package name may come from exactly one source: the
// first source seen for a name wins and any later, different source aborts
// the run with a *domain.SourceConflictError. No graph is returned on error.
func (r *Resolver) Resolve(
	ctx context.Context,
	loader ports.ManifestLoader,
	root *domain.Manifest,
	opts Options,
) (*domain.Graph, error) {
	ru := &run{
		id:       uuid.NewString(),
		r:        r,
		loader:   loader,
		opts:     opts,
		graph:    domain.NewGraph(),
		registry: make(map[string]*entry),
	}
	if ru.opts.VersionConflicts == "" {
		ru.opts.VersionConflicts = domain.VersionConflictsFailFast
	}

	r.logger.Debug("resolving dependencies", "run", ru.id, "root", root.Name, "jobs", opts.Jobs)

	g, err := ru.resolve(ctx, root)
	if err != nil {
		r.logger.Debug("resolution failed", "run", ru.id)
		return nil, err
	}

	r.logger.Debug("resolution finished", "run", ru.id, "packages", g.Len())
	return g, nil
}

func (ru *run) resolve(ctx context.Context, root *domain.Manifest) (*domain.Graph, error) {
	if err := ru.graph.AddPackage(domain.NewPackage(root)); err != nil {
		return nil, err
	}
	ru.registry[root.Name] = &entry{source: root.Source, state: StateResolved}

	queue := ru.enqueue(nil, root)
	prefetched := 0

	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if ru.opts.Jobs > 1 && head >= prefetched {
			ru.prefetch(ctx, queue[head:])
			prefetched = len(queue)
		}

		it := queue[head]
		name := it.dep.Name

		if e, seen := ru.registry[name]; seen {
			if e.source != it.dep.Source {
				if err := e.transition(name, StateConflicted); err != nil {
					return nil, err
				}
				ru.r.metrics.Conflict("source")
				return nil, &domain.SourceConflictError{Name: name, First: e.source, Second: it.dep.Source}
			}
			if e.state != StateResolved {
				return nil, zerr.With(zerr.Wrap(ErrInvalidTransition, "revisited while "+string(e.state)), "package", name)
			}
			if err := ru.link(it); err != nil {
				return nil, err
			}
			continue
		}

		e := &entry{source: it.dep.Source, state: StateUnvisited}
		if err := e.transition(name, StateLoading); err != nil {
			return nil, err
		}
		ru.registry[name] = e

		m, err := ru.loader.Load(ctx, it.dep)
		if err != nil {
			_ = e.transition(name, StateFailed)
			ru.r.logger.Debug("package failed", "run", ru.id, "package", name, "state", string(e.state))
			return nil, ru.loadError(it, err)
		}

		if err := ru.graph.AddPackage(domain.NewPackage(m)); err != nil {
			return nil, err
		}
		if err := e.transition(name, StateResolved); err != nil {
			return nil, err
		}

		if err := ru.link(it); err != nil {
			return nil, err
		}
		queue = ru.enqueue(queue, m)
	}

	if len(ru.mismatches) > 0 {
		return nil, errors.Join(ru.mismatches...)
	}
	return ru.graph, nil
}

func (ru *run) enqueue(queue []item, m *domain.Manifest) []item {
	for _, dep := range m.Dependencies {
		queue = append(queue, item{parent: m.Name, dep: dep})
	}
	return queue
}

// link records the edge of it and checks its version requirement.
func (ru *run) link(it item) error {
	if err := ru.graph.AddEdge(it.parent, it.dep.Name); err != nil {
		return err
	}
	if it.dep.Requirement == "" {
		return nil
	}

	p, _ := ru.graph.Package(it.dep.Name)
	ok, err := domain.SatisfiesRequirement(it.dep.Requirement, p.ID.Version)
	if err != nil {
		return zerr.With(err, "package", it.dep.Name)
	}
	if ok {
		return nil
	}

	mismatch := &domain.VersionMismatchError{
		Name:        it.dep.Name,
		Dependent:   it.parent,
		Requirement: it.dep.Requirement,
		Version:     p.ID.Version,
	}
	ru.r.metrics.Conflict("version")

	switch ru.opts.VersionConflicts {
	case domain.VersionConflictsIgnore:
		ru.r.logger.Warn(mismatch.Error(), "run", ru.id)
		return nil
	case domain.VersionConflictsCollect:
		ru.mismatches = append(ru.mismatches, mismatch)
		return nil
	default:
		return mismatch
	}
}

// prefetch loads the manifests of pending items concurrently so the
// sequential pass finds them in the loader cache. Pending items are replayed
// in queue order against the names registered so far: only the first source
// of every unseen name is loaded, and prefetching stops at the first item
// that the sequential pass will reject as a source conflict.
func (ru *run) prefetch(ctx context.Context, pending []item) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ru.opts.Jobs)

	claimed := make(map[string]domain.SourceSpec)
	for _, it := range pending {
		name := it.dep.Name
		source, seen := claimed[name]
		if e, ok := ru.registry[name]; ok {
			source, seen = e.source, true
		}
		if seen {
			if source != it.dep.Source {
				ru.r.logger.Debug("prefetch stopped at conflict", "run", ru.id, "package", name)
				break
			}
			continue
		}
		claimed[name] = it.dep.Source

		dep := it.dep
		g.Go(func() error {
			_, err := ru.loader.Load(gctx, dep)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		ru.r.logger.Debug("prefetch stopped", "run", ru.id, "reason", err.Error())
	}
}

// loadError attaches the dependency edge to err. Conflicts and cancellations
// are returned unchanged.
func (ru *run) loadError(it item, err error) error {
	var conflict *domain.SourceConflictError
	if errors.As(err, &conflict) || errors.Is(err, context.Canceled) {
		return err
	}
	return zerr.With(zerr.With(err, "dependency", it.dep.Name), "required_by", it.parent)
}
