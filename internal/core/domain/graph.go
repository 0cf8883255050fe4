// Package domain contains the core domain models of the dependency resolver.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is a dependency graph with at most one package per name.
// Packages and edges keep the order in which they were added.
type Graph struct {
	packages map[string]*Package
	order    []string
	edges    map[string][]string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		packages: make(map[string]*Package),
		edges:    make(map[string][]string),
	}
}

// AddPackage adds a package to the graph.
// It returns an error if a package with the same name already exists.
func (g *Graph) AddPackage(p *Package) error {
	name := p.Name()
	if _, exists := g.packages[name]; exists {
		return zerr.With(ErrPackageAlreadyExists, "package", name)
	}
	g.packages[name] = p
	g.order = append(g.order, name)
	return nil
}

// AddEdge records that from depends on to. Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.packages[from]; !ok {
		return zerr.With(ErrMissingPackage, "package", from)
	}
	if _, ok := g.packages[to]; !ok {
		return zerr.With(ErrMissingPackage, "package", to)
	}
	for _, existing := range g.edges[from] {
		if existing == to {
			return nil
		}
	}
	g.edges[from] = append(g.edges[from], to)
	return nil
}

// Package returns the package registered under name.
func (g *Graph) Package(name string) (*Package, bool) {
	p, ok := g.packages[name]
	return p, ok
}

// Len returns the number of packages in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Root returns the first package added to the graph, or nil for an empty graph.
func (g *Graph) Root() *Package {
	if len(g.order) == 0 {
		return nil
	}
	return g.packages[g.order[0]]
}

// Packages yields packages in discovery order.
func (g *Graph) Packages() iter.Seq[*Package] {
	return func(yield func(*Package) bool) {
		for _, name := range g.order {
			if !yield(g.packages[name]) {
				return
			}
		}
	}
}

// Dependencies returns the direct dependencies of name in declaration order.
func (g *Graph) Dependencies(name string) []string {
	deps := g.edges[name]
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// BuildOrder returns the packages ordered so that every package appears
// after all of its dependencies. Ties are broken by discovery order for
// roots and declaration order for dependencies, so the result is stable
// for a given graph. A cycle yields a *CycleError.
func (g *Graph) BuildOrder() ([]*Package, error) {
	order, err := g.sort()
	if err != nil {
		return nil, err
	}

	out := make([]*Package, 0, len(order))
	for _, name := range order {
		out = append(out, g.packages[name])
	}
	return out, nil
}

// Walk yields packages in build order. A cycle is yielded once as a nil
// package with a *CycleError, and nothing else is yielded.
func (g *Graph) Walk() iter.Seq2[*Package, error] {
	return func(yield func(*Package, error) bool) {
		order, err := g.sort()
		if err != nil {
			yield(nil, err)
			return
		}
		for _, name := range order {
			if !yield(g.packages[name], nil) {
				return
			}
		}
	}
}

func (g *Graph) sort() ([]string, error) {
	order := make([]string, 0, len(g.order))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.edges[u] {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
		return nil
	}

	for _, name := range g.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// buildCycleError cuts the DFS path down to the cycle closing at dep.
func buildCycleError(path []string, dep string) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	cycle = append(cycle, dep)
	return &CycleError{Path: cycle}
}
