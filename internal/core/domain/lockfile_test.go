package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/core/domain"
)

func TestNewLockfile(t *testing.T) {
	culpritSrc := domain.GitSource("file:///tmp/culprit", domain.DefaultBranch())

	g := domain.NewGraph()
	require.NoError(t, g.AddPackage(domain.NewPackage(&domain.Manifest{
		Name: "hello", Version: "1.0.0", Source: domain.PathSource("/work/hello"),
	})))
	require.NoError(t, g.AddPackage(domain.NewPackage(&domain.Manifest{
		Name: "culprit", Version: "0.1.0", Source: culpritSrc, Commit: "0123456789abcdef",
	})))
	require.NoError(t, g.AddEdge("hello", "culprit"))

	order, err := g.BuildOrder()
	require.NoError(t, err)

	lf := domain.NewLockfile(g, order)
	assert.Equal(t, domain.LockfileVersion, lf.Version)
	assert.Equal(t, []domain.LockedPackage{
		{Name: "culprit", Version: "0.1.0", Source: "git+file:///tmp/culprit", Commit: "0123456789abcdef", Dependencies: []string{}},
		{Name: "hello", Version: "1.0.0", Dependencies: []string{"culprit"}},
	}, lf.Packages)

	pins := lf.Pins()
	assert.Equal(t, map[domain.SourceSpec]string{culpritSrc: "0123456789abcdef"}, pins)
}

func TestLockfile_Pins_SkipsInvalid(t *testing.T) {
	lf := &domain.Lockfile{Packages: []domain.LockedPackage{
		{Name: "a", Source: "bogus", Commit: "abc"},
		{Name: "b", Source: "path+/x", Commit: "abc"},
		{Name: "c", Source: "git+file:///c"},
	}}
	assert.Empty(t, lf.Pins())

	var nilLock *domain.Lockfile
	assert.Empty(t, nilLock.Pins())
}
