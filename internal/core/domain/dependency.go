package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// DependencyDeclaration is a dependency exactly as written in a manifest,
// before any normalization.
type DependencyDeclaration struct {
	Name     string
	Version  string
	Path     string
	Git      string
	Branch   string
	Tag      string
	Rev      string
	Registry string
}

// Dependency is a normalized dependency edge: a package name, the source it
// must come from and an optional version requirement.
type Dependency struct {
	Name        string
	Source      SourceSpec
	Requirement string
}

// scpLikeURL matches git's user@host:path shorthand.
var scpLikeURL = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:`)

// NormalizeDependency converts a declaration into a Dependency. Relative
// paths are resolved against baseDir, the directory of the declaring
// manifest. Declarations without path or git fall back to the registry
// named in the declaration or to defaultRegistry.
func NormalizeDependency(decl DependencyDeclaration, baseDir, defaultRegistry string) (Dependency, error) {
	fail := func(reason string) (Dependency, error) {
		return Dependency{}, zerr.With(zerr.Wrap(ErrInvalidDependency, reason), "dependency", decl.Name)
	}

	if decl.Name == "" {
		return fail("dependency name is empty")
	}

	if decl.Version != "" {
		if _, err := semver.NewConstraint(decl.Version); err != nil {
			return fail("invalid version requirement " + decl.Version)
		}
	}

	qualifiers := 0
	for _, q := range []string{decl.Branch, decl.Tag, decl.Rev} {
		if q != "" {
			qualifiers++
		}
	}

	switch {
	case decl.Path != "" && decl.Git != "":
		return fail("only one of path or git may be specified")
	case decl.Registry != "" && (decl.Path != "" || decl.Git != ""):
		return fail("registry cannot be combined with path or git")
	case qualifiers > 0 && decl.Git == "":
		return fail("branch, tag and rev require a git source")
	case qualifiers > 1:
		return fail("only one of branch, tag or rev may be specified")
	}

	dep := Dependency{Name: decl.Name, Requirement: decl.Version}

	switch {
	case decl.Path != "":
		dep.Source = PathSource(absJoin(baseDir, decl.Path))
	case decl.Git != "":
		ref := DefaultBranch()
		switch {
		case decl.Branch != "":
			ref = Branch(decl.Branch)
		case decl.Tag != "":
			ref = Tag(decl.Tag)
		case decl.Rev != "":
			ref = Rev(decl.Rev)
		}
		dep.Source = GitSource(normalizeGitLocation(decl.Git, baseDir), ref)
	default:
		registry := decl.Registry
		if registry == "" {
			registry = defaultRegistry
		}
		if registry == "" {
			return fail("no source specified and no default registry configured")
		}
		dep.Source = RegistrySource(registry)
	}

	return dep, nil
}

// normalizeGitLocation turns local repository paths into file:// URLs so
// they render the same way regardless of how they were written.
func normalizeGitLocation(location, baseDir string) string {
	if strings.Contains(location, "://") || scpLikeURL.MatchString(location) {
		return location
	}
	return "file://" + filepath.ToSlash(absJoin(baseDir, location))
}

func absJoin(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}

// SatisfiesRequirement reports whether version meets requirement. An empty
// requirement accepts any version.
func SatisfiesRequirement(requirement, version string) (bool, error) {
	if requirement == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(requirement)
	if err != nil {
		return false, zerr.With(zerr.Wrap(ErrInvalidDependency, "invalid version requirement"), "requirement", requirement)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, zerr.With(zerr.Wrap(ErrInvalidVersion, "invalid package version"), "version", version)
	}
	return c.Check(v), nil
}
