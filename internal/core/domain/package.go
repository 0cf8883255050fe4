package domain

import "fmt"

// PackageID identifies a resolved package. Two IDs with the same name and
// different sources describe a conflict.
type PackageID struct {
	Name    string
	Version string
	Source  SourceSpec
}

// String renders the ID as "name vX.Y.Z (source)".
func (id PackageID) String() string {
	return fmt.Sprintf("%s v%s (%s)", id.Name, id.Version, id.Source)
}

// Manifest is the parsed metadata of a single package.
// It is not modified after loading.
type Manifest struct {
	Name         string
	Version      string
	Dependencies []Dependency

	// Root is the directory containing the manifest file.
	Root string
	// Source is where the manifest was loaded from.
	Source SourceSpec
	// Commit is the resolved commit for git sources and empty otherwise.
	Commit string
}

// ID returns the package ID described by the manifest.
func (m *Manifest) ID() PackageID {
	return PackageID{Name: m.Name, Version: m.Version, Source: m.Source}
}

// Package is a node of the dependency graph.
type Package struct {
	ID       PackageID
	Manifest *Manifest
}

// NewPackage creates a graph node for the given manifest.
func NewPackage(m *Manifest) *Package {
	return &Package{ID: m.ID(), Manifest: m}
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.ID.Name
}
