package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrPackageAlreadyExists is returned when a second node with the same name is added to a graph.
	ErrPackageAlreadyExists = zerr.New("package already exists")

	// ErrMissingPackage is returned when an edge references a package that is not in the graph.
	ErrMissingPackage = zerr.New("missing package")

	// ErrCycleDetected is returned when the dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrSourceConflict is returned when one package name is required from two different sources.
	ErrSourceConflict = zerr.New("conflicting package sources")

	// ErrVersionMismatch is returned when a resolved version does not satisfy a requirement.
	ErrVersionMismatch = zerr.New("version requirement not satisfied")

	// ErrNetwork is returned when a remote repository cannot be reached.
	ErrNetwork = zerr.New("network error")

	// ErrReferenceNotFound is returned when a branch, tag or revision does not exist.
	ErrReferenceNotFound = zerr.New("reference not found")

	// ErrManifestNotFound is returned when a package directory has no manifest.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestParse is returned when a manifest cannot be decoded.
	ErrManifestParse = zerr.New("failed to parse manifest")

	// ErrPackageNameMismatch is returned when a dependency resolves to a manifest with another name.
	ErrPackageNameMismatch = zerr.New("package name mismatch")

	// ErrInvalidDependency is returned for malformed dependency declarations.
	ErrInvalidDependency = zerr.New("invalid dependency")

	// ErrInvalidSource is returned when a source string cannot be parsed.
	ErrInvalidSource = zerr.New("invalid source")

	// ErrInvalidVersion is returned when a package version is not valid semver.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrGitNotInstalled is returned when the git binary is not on PATH.
	ErrGitNotInstalled = zerr.New("git executable not found")

	// ErrOfflineUnavailable is returned when offline mode needs a repository that was never fetched.
	ErrOfflineUnavailable = zerr.New("repository not available offline")

	// ErrRegistryUnsupported is returned for registries that are not local directories.
	ErrRegistryUnsupported = zerr.New("unsupported registry")

	// ErrPackageNotInRegistry is returned when no registry version satisfies a requirement.
	ErrPackageNotInRegistry = zerr.New("package not found in registry")

	// ErrLockfileRead is returned when the lockfile exists but cannot be read.
	ErrLockfileRead = zerr.New("failed to read lockfile")

	// ErrLockfileWrite is returned when the lockfile cannot be written.
	ErrLockfileWrite = zerr.New("failed to write lockfile")

	// ErrConfigRead is returned when the tool configuration cannot be read.
	ErrConfigRead = zerr.New("failed to read configuration")

	// ErrConfigInvalid is returned when the tool configuration has invalid values.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrUnknownFormat is returned when a render format is not supported.
	ErrUnknownFormat = zerr.New("unknown output format")
)

// SourceConflictError reports that one package name was required from two
// incompatible sources. First is the source seen first during resolution.
type SourceConflictError struct {
	Name   string
	First  SourceSpec
	Second SourceSpec
}

func (e *SourceConflictError) Error() string {
	return fmt.Sprintf(
		"found dependencies on the same package `%s` coming from incompatible sources:\nsource 1: %s\nsource 2: %s",
		e.Name, e.First, e.Second,
	)
}

// Is reports whether target is ErrSourceConflict.
func (e *SourceConflictError) Is(target error) bool {
	return target == ErrSourceConflict
}

// CycleError reports a dependency cycle. Path starts and ends with the same package.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "cyclic package dependencies: " + strings.Join(e.Path, " -> ")
}

// Is reports whether target is ErrCycleDetected.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// ReferenceNotFoundError reports a git reference missing from a repository.
type ReferenceNotFoundError struct {
	URL       string
	Reference GitReference
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("failed to find %s in git repository %s", describeReference(e.Reference), e.URL)
}

// Is reports whether target is ErrReferenceNotFound.
func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

func describeReference(ref GitReference) string {
	switch ref.Kind {
	case ReferenceBranch:
		return "branch `" + ref.Name + "`"
	case ReferenceTag:
		return "tag `" + ref.Name + "`"
	case ReferenceRev:
		return "revision `" + ref.Name + "`"
	default:
		return "default branch"
	}
}

// NetworkError reports a failed fetch of a remote repository.
type NetworkError struct {
	URL    string
	Detail string
	Err    error
}

func (e *NetworkError) Error() string {
	msg := "failed to fetch git repository " + e.URL
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNetwork.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// ManifestNotFoundError reports a missing manifest file.
type ManifestNotFoundError struct {
	Path string
}

func (e *ManifestNotFoundError) Error() string {
	return "failed to read manifest at " + e.Path
}

// Is reports whether target is ErrManifestNotFound.
func (e *ManifestNotFoundError) Is(target error) bool {
	return target == ErrManifestNotFound
}

// ManifestParseError reports a manifest that could not be decoded.
// Source is the rendered source the manifest belongs to.
type ManifestParseError struct {
	Path   string
	Source string
	Err    error
}

func (e *ManifestParseError) Error() string {
	msg := "failed to parse manifest at " + e.Path
	if e.Source != "" {
		msg += " (" + e.Source + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying decode error.
func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrManifestParse.
func (e *ManifestParseError) Is(target error) bool {
	return target == ErrManifestParse
}

// VersionMismatchError reports that a resolved package does not satisfy the
// requirement declared by one of its dependents.
type VersionMismatchError struct {
	Name        string
	Dependent   string
	Requirement string
	Version     string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf(
		"package `%s` requires `%s %s`, but version %s was resolved",
		e.Dependent, e.Name, e.Requirement, e.Version,
	)
}

// Is reports whether target is ErrVersionMismatch.
func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}
