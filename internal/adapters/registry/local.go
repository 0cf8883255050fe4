// Package registry locates packages in a local file-system registry index.
//
// An index is a directory laid out as <index>/<name>/<version>/Cairn.toml.
package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

const fileScheme = "file://"

// Local implements ports.Registry for file:// registries.
type Local struct {
	logger ports.Logger
}

var _ ports.Registry = (*Local)(nil)

// NewLocal creates a Local registry.
func NewLocal(logger ports.Logger) *Local {
	return &Local{logger: logger}
}

// Locate implements ports.Registry. It returns the directory of the highest
// version of name that satisfies requirement. Pre-releases are only selected
// by requirements that mention one.
func (r *Local) Locate(ctx context.Context, registry, name, requirement string) (string, error) {
	index, ok := strings.CutPrefix(registry, fileScheme)
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrRegistryUnsupported, "only file:// registries are supported"), "registry", registry)
	}

	constraint, err := parseRequirement(requirement)
	if err != nil {
		return "", err
	}

	pkgDir := filepath.Join(index, name)
	entries, err := os.ReadDir(pkgDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", notFound(registry, name, requirement)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read registry index"), "path", pkgDir)
	}

	var best *semver.Version
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !entry.IsDir() {
			continue
		}
		v, err := semver.StrictNewVersion(entry.Name())
		if err != nil {
			r.logger.Debug("skipping registry entry", "package", name, "entry", entry.Name())
			continue
		}
		switch {
		case constraint == nil && v.Prerelease() != "":
			continue
		case constraint != nil && !constraint.Check(v):
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}

	if best == nil {
		return "", notFound(registry, name, requirement)
	}
	return filepath.Join(pkgDir, best.Original()), nil
}

func parseRequirement(requirement string) (*semver.Constraints, error) {
	if requirement == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(requirement)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidVersion, err.Error()), "requirement", requirement)
	}
	return c, nil
}

func notFound(registry, name, requirement string) error {
	msg := "no version of `" + name + "` found"
	if requirement != "" {
		msg = "no version of `" + name + "` matches `" + requirement + "`"
	}
	return zerr.With(zerr.Wrap(domain.ErrPackageNotInRegistry, msg), "registry", registry)
}
