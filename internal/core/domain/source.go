package domain

import (
	"net/url"
	"strings"

	"go.trai.ch/zerr"
)

// SourceKind identifies where a package comes from.
type SourceKind int

const (
	// SourceKindPath is a package on the local filesystem.
	SourceKindPath SourceKind = iota
	// SourceKindRegistry is a package served by a package registry.
	SourceKindRegistry
	// SourceKindGit is a package stored in a git repository.
	SourceKindGit
)

// String returns the scheme used when rendering a source of this kind.
func (k SourceKind) String() string {
	switch k {
	case SourceKindPath:
		return "path"
	case SourceKindRegistry:
		return "registry"
	case SourceKindGit:
		return "git"
	default:
		return "unknown"
	}
}

// ReferenceKind qualifies which revision of a git repository is requested.
type ReferenceKind int

const (
	// ReferenceDefaultBranch follows whatever HEAD of the remote points at.
	ReferenceDefaultBranch ReferenceKind = iota
	// ReferenceBranch follows the tip of a named branch.
	ReferenceBranch
	// ReferenceTag pins a named tag.
	ReferenceTag
	// ReferenceRev pins a commit hash or any other revision git understands.
	ReferenceRev
)

// GitReference is the qualifier attached to a git source.
type GitReference struct {
	Kind ReferenceKind
	Name string
}

// DefaultBranch returns the reference to the remote's default branch.
func DefaultBranch() GitReference {
	return GitReference{Kind: ReferenceDefaultBranch}
}

// Branch returns a reference to the named branch.
func Branch(name string) GitReference {
	return GitReference{Kind: ReferenceBranch, Name: name}
}

// Tag returns a reference to the named tag.
func Tag(name string) GitReference {
	return GitReference{Kind: ReferenceTag, Name: name}
}

// Rev returns a reference to an exact revision.
func Rev(rev string) GitReference {
	return GitReference{Kind: ReferenceRev, Name: rev}
}

// Query renders the reference as the query part of a git source string.
// The default branch renders as an empty string.
func (r GitReference) Query() string {
	switch r.Kind {
	case ReferenceBranch:
		return "branch=" + r.Name
	case ReferenceTag:
		return "tag=" + r.Name
	case ReferenceRev:
		return "rev=" + r.Name
	default:
		return ""
	}
}

// String returns a human readable form of the reference.
func (r GitReference) String() string {
	if r.Kind == ReferenceDefaultBranch {
		return "HEAD"
	}
	return r.Query()
}

// SourceSpec is the normalized identity of a package origin.
// Two specs are the same source if and only if they compare equal with ==.
// A bare git URL and the same URL qualified with a branch are different
// sources even when both resolve to the same commit.
type SourceSpec struct {
	Kind      SourceKind
	Location  string
	Reference GitReference
}

// PathSource returns a source for a package living in dir.
func PathSource(dir string) SourceSpec {
	return SourceSpec{Kind: SourceKindPath, Location: dir}
}

// RegistrySource returns a source for a package served by the registry at location.
func RegistrySource(location string) SourceSpec {
	return SourceSpec{Kind: SourceKindRegistry, Location: location}
}

// GitSource returns a source for a package in the git repository at location.
func GitSource(location string, ref GitReference) SourceSpec {
	return SourceSpec{Kind: SourceKindGit, Location: location, Reference: ref}
}

// IsGit reports whether the source is a git repository.
func (s SourceSpec) IsGit() bool {
	return s.Kind == SourceKindGit
}

// String renders the source in its stable textual form, for example
// git+file:///tmp/culprit?branch=branchy.
func (s SourceSpec) String() string {
	var sb strings.Builder
	sb.WriteString(s.Kind.String())
	sb.WriteByte('+')
	sb.WriteString(s.Location)
	if s.Kind == SourceKindGit {
		if q := s.Reference.Query(); q != "" {
			sb.WriteByte('?')
			sb.WriteString(q)
		}
	}
	return sb.String()
}

// ParseSourceSpec parses the output of SourceSpec.String.
func ParseSourceSpec(raw string) (SourceSpec, error) {
	scheme, location, ok := strings.Cut(raw, "+")
	if !ok || location == "" {
		return SourceSpec{}, zerr.With(zerr.Wrap(ErrInvalidSource, "missing kind prefix"), "source", raw)
	}

	switch scheme {
	case "path":
		return PathSource(location), nil
	case "registry":
		return RegistrySource(location), nil
	case "git":
		return parseGitSource(raw, location)
	default:
		return SourceSpec{}, zerr.With(zerr.Wrap(ErrInvalidSource, "unknown kind "+scheme), "source", raw)
	}
}

func parseGitSource(raw, location string) (SourceSpec, error) {
	idx := strings.LastIndexByte(location, '?')
	if idx < 0 {
		return GitSource(location, DefaultBranch()), nil
	}

	base, query := location[:idx], location[idx+1:]
	key, value, ok := strings.Cut(query, "=")
	if !ok || value == "" {
		return SourceSpec{}, zerr.With(zerr.Wrap(ErrInvalidSource, "malformed git reference"), "source", raw)
	}

	switch key {
	case "branch":
		return GitSource(base, Branch(value)), nil
	case "tag":
		return GitSource(base, Tag(value)), nil
	case "rev":
		return GitSource(base, Rev(value)), nil
	default:
		return SourceSpec{}, zerr.With(zerr.Wrap(ErrInvalidSource, "unknown git reference "+key), "source", raw)
	}
}

// CanonicalGitURL normalizes a repository URL for use as a cache key.
// It lowercases the scheme and host and strips a trailing slash and ".git"
// suffix. It is never used to decide whether two sources are equal.
func CanonicalGitURL(raw string) string {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(raw, "/"), ".git")

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" {
		return trimmed
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
