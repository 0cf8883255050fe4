package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestSourceConflictError(t *testing.T) {
	err := &domain.SourceConflictError{
		Name:   "culprit",
		First:  domain.GitSource("file:///tmp/culprit", domain.DefaultBranch()),
		Second: domain.GitSource("file:///tmp/culprit", domain.Branch("branchy")),
	}

	assert.Equal(t,
		"found dependencies on the same package `culprit` coming from incompatible sources:\n"+
			"source 1: git+file:///tmp/culprit\n"+
			"source 2: git+file:///tmp/culprit?branch=branchy",
		err.Error(),
	)

	wrapped := zerr.With(zerr.Wrap(err, "resolution failed"), "run", "1")
	assert.True(t, errors.Is(wrapped, domain.ErrSourceConflict))

	var conflict *domain.SourceConflictError
	assert.True(t, errors.As(wrapped, &conflict))
	assert.Equal(t, "culprit", conflict.Name)
}

func TestErrorClassification(t *testing.T) {
	inner := errors.New("exit status 128")
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "ReferenceNotFound",
			err:      &domain.ReferenceNotFoundError{URL: "file:///tmp/x", Reference: domain.Branch("nope")},
			sentinel: domain.ErrReferenceNotFound,
			message:  "failed to find branch `nope` in git repository file:///tmp/x",
		},
		{
			name:     "ReferenceNotFoundDefault",
			err:      &domain.ReferenceNotFoundError{URL: "file:///tmp/x", Reference: domain.DefaultBranch()},
			sentinel: domain.ErrReferenceNotFound,
			message:  "failed to find default branch in git repository file:///tmp/x",
		},
		{
			name:     "Network",
			err:      &domain.NetworkError{URL: "https://example.com/x", Detail: "could not resolve host", Err: inner},
			sentinel: domain.ErrNetwork,
			message:  "failed to fetch git repository https://example.com/x: could not resolve host",
		},
		{
			name:     "ManifestNotFound",
			err:      &domain.ManifestNotFoundError{Path: "/x/Cairn.toml"},
			sentinel: domain.ErrManifestNotFound,
			message:  "failed to read manifest at /x/Cairn.toml",
		},
		{
			name:     "ManifestParse",
			err:      &domain.ManifestParseError{Path: "/x/Cairn.toml", Source: "path+/x", Err: inner},
			sentinel: domain.ErrManifestParse,
			message:  "failed to parse manifest at /x/Cairn.toml (path+/x): exit status 128",
		},
		{
			name:     "VersionMismatch",
			err:      &domain.VersionMismatchError{Name: "core", Dependent: "app", Requirement: "^2", Version: "1.0.0"},
			sentinel: domain.ErrVersionMismatch,
			message:  "package `app` requires `core ^2`, but version 1.0.0 was resolved",
		},
		{
			name:     "Cycle",
			err:      &domain.CycleError{Path: []string{"a", "b", "a"}},
			sentinel: domain.ErrCycleDetected,
			message:  "cyclic package dependencies: a -> b -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.True(t, errors.Is(zerr.Wrap(tt.err, "context"), tt.sentinel))
			assert.False(t, errors.Is(tt.err, domain.ErrSourceConflict))
		})
	}
}
