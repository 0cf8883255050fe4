// Package manifest reads Cairn.toml package manifests.
package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

const dependenciesTable = "dependencies"

type manifestFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies map[string]toml.Primitive `toml:"dependencies"`
}

type dependencyTable struct {
	Version  string `toml:"version"`
	Path     string `toml:"path"`
	Git      string `toml:"git"`
	Branch   string `toml:"branch"`
	Tag      string `toml:"tag"`
	Rev      string `toml:"rev"`
	Registry string `toml:"registry"`
}

// Parsed is the result of parsing a manifest file.
type Parsed struct {
	Manifest *domain.Manifest
	// Unknown lists keys that are not part of the manifest format.
	Unknown []string
}

// ReadFile reads the manifest in dir. The returned manifest is attributed to source.
func ReadFile(dir string, source domain.SourceSpec, defaultRegistry string) (*Parsed, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	//nolint:gosec // manifest paths come from normalized dependency sources
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.ManifestNotFoundError{Path: path}
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	return Parse(data, dir, source, defaultRegistry)
}

// Parse decodes manifest data. Dependencies keep the order in which they are
// declared and relative paths are resolved against root.
func Parse(data []byte, root string, source domain.SourceSpec, defaultRegistry string) (*Parsed, error) {
	path := filepath.Join(root, domain.ManifestFileName)
	fail := func(err error) (*Parsed, error) {
		return nil, &domain.ManifestParseError{Path: path, Source: source.String(), Err: err}
	}

	var raw manifestFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return fail(err)
	}

	if raw.Package.Name == "" {
		return fail(zerr.New("missing package.name"))
	}
	if raw.Package.Version == "" {
		return fail(zerr.New("missing package.version"))
	}
	if _, err := semver.StrictNewVersion(raw.Package.Version); err != nil {
		return fail(zerr.With(zerr.Wrap(domain.ErrInvalidVersion, err.Error()), "version", raw.Package.Version))
	}

	m := &domain.Manifest{
		Name:    raw.Package.Name,
		Version: raw.Package.Version,
		Root:    root,
		Source:  source,
	}

	for _, name := range dependencyOrder(md) {
		prim, ok := raw.Dependencies[name]
		if !ok {
			continue
		}

		decl, err := decodeDependency(md, name, prim)
		if err != nil {
			return fail(err)
		}

		dep, err := domain.NormalizeDependency(decl, root, defaultRegistry)
		if err != nil {
			return fail(err)
		}
		m.Dependencies = append(m.Dependencies, dep)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}

	return &Parsed{Manifest: m, Unknown: unknown}, nil
}

// dependencyOrder returns dependency names in declaration order.
func dependencyOrder(md toml.MetaData) []string {
	var names []string
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != dependenciesTable || seen[key[1]] {
			continue
		}
		seen[key[1]] = true
		names = append(names, key[1])
	}
	return names
}

// decodeDependency accepts both `name = "<requirement>"` and the table form.
func decodeDependency(md toml.MetaData, name string, prim toml.Primitive) (domain.DependencyDeclaration, error) {
	var requirement string
	if err := md.PrimitiveDecode(prim, &requirement); err == nil {
		return domain.DependencyDeclaration{Name: name, Version: strings.TrimSpace(requirement)}, nil
	}

	var t dependencyTable
	if err := md.PrimitiveDecode(prim, &t); err != nil {
		return domain.DependencyDeclaration{}, zerr.With(zerr.Wrap(err, "invalid dependency"), "dependency", name)
	}

	return domain.DependencyDeclaration{
		Name:     name,
		Version:  t.Version,
		Path:     t.Path,
		Git:      t.Git,
		Branch:   t.Branch,
		Tag:      t.Tag,
		Rev:      t.Rev,
		Registry: t.Registry,
	}, nil
}
