package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/core/domain"
)

func TestNormalizeDependency(t *testing.T) {
	const base = "/work/hello"
	const registry = "file:///srv/index"

	tests := []struct {
		name string
		decl domain.DependencyDeclaration
		want domain.Dependency
	}{
		{
			name: "RelativePath",
			decl: domain.DependencyDeclaration{Name: "proxy", Path: "vendor/proxy"},
			want: domain.Dependency{Name: "proxy", Source: domain.PathSource("/work/hello/vendor/proxy")},
		},
		{
			name: "AbsolutePath",
			decl: domain.DependencyDeclaration{Name: "proxy", Path: "/opt/proxy/"},
			want: domain.Dependency{Name: "proxy", Source: domain.PathSource("/opt/proxy")},
		},
		{
			name: "GitURL",
			decl: domain.DependencyDeclaration{Name: "x", Git: "https://example.com/x.git"},
			want: domain.Dependency{Name: "x", Source: domain.GitSource("https://example.com/x.git", domain.DefaultBranch())},
		},
		{
			name: "GitLocalPath",
			decl: domain.DependencyDeclaration{Name: "culprit", Git: "/tmp/culprit"},
			want: domain.Dependency{Name: "culprit", Source: domain.GitSource("file:///tmp/culprit", domain.DefaultBranch())},
		},
		{
			name: "GitRelativePath",
			decl: domain.DependencyDeclaration{Name: "culprit", Git: "../culprit"},
			want: domain.Dependency{Name: "culprit", Source: domain.GitSource("file:///work/culprit", domain.DefaultBranch())},
		},
		{
			name: "GitScpLike",
			decl: domain.DependencyDeclaration{Name: "x", Git: "git@github.com:org/x.git"},
			want: domain.Dependency{Name: "x", Source: domain.GitSource("git@github.com:org/x.git", domain.DefaultBranch())},
		},
		{
			name: "GitBranch",
			decl: domain.DependencyDeclaration{Name: "culprit", Git: "file:///tmp/culprit", Branch: "branchy"},
			want: domain.Dependency{Name: "culprit", Source: domain.GitSource("file:///tmp/culprit", domain.Branch("branchy"))},
		},
		{
			name: "GitTag",
			decl: domain.DependencyDeclaration{Name: "culprit", Git: "file:///tmp/culprit", Tag: "v1"},
			want: domain.Dependency{Name: "culprit", Source: domain.GitSource("file:///tmp/culprit", domain.Tag("v1"))},
		},
		{
			name: "GitRev",
			decl: domain.DependencyDeclaration{Name: "culprit", Git: "file:///tmp/culprit", Rev: "abc"},
			want: domain.Dependency{Name: "culprit", Source: domain.GitSource("file:///tmp/culprit", domain.Rev("abc"))},
		},
		{
			name: "DefaultRegistry",
			decl: domain.DependencyDeclaration{Name: "core", Version: "^1.2"},
			want: domain.Dependency{Name: "core", Source: domain.RegistrySource(registry), Requirement: "^1.2"},
		},
		{
			name: "ExplicitRegistry",
			decl: domain.DependencyDeclaration{Name: "core", Version: "1.0.0", Registry: "file:///other"},
			want: domain.Dependency{Name: "core", Source: domain.RegistrySource("file:///other"), Requirement: "1.0.0"},
		},
		{
			name: "PathWithRequirement",
			decl: domain.DependencyDeclaration{Name: "proxy", Path: "proxy", Version: ">=0.1"},
			want: domain.Dependency{Name: "proxy", Source: domain.PathSource("/work/hello/proxy"), Requirement: ">=0.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeDependency(tt.decl, base, registry)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDependency_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		decl     domain.DependencyDeclaration
		registry string
		reason   string
	}{
		{"EmptyName", domain.DependencyDeclaration{Path: "x"}, "", "name is empty"},
		{"PathAndGit", domain.DependencyDeclaration{Name: "x", Path: "x", Git: "file:///x"}, "", "only one of path or git"},
		{"RegistryAndPath", domain.DependencyDeclaration{Name: "x", Path: "x", Registry: "r"}, "", "registry cannot be combined"},
		{"BranchWithoutGit", domain.DependencyDeclaration{Name: "x", Branch: "dev"}, "r", "require a git source"},
		{"BranchAndTag", domain.DependencyDeclaration{Name: "x", Git: "file:///x", Branch: "dev", Tag: "v1"}, "", "only one of branch, tag or rev"},
		{"NoSource", domain.DependencyDeclaration{Name: "x", Version: "1.0.0"}, "", "no source specified"},
		{"BadRequirement", domain.DependencyDeclaration{Name: "x", Path: "x", Version: "not a version"}, "", "invalid version requirement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NormalizeDependency(tt.decl, "/base", tt.registry)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidDependency))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestSatisfiesRequirement(t *testing.T) {
	tests := []struct {
		requirement string
		version     string
		want        bool
	}{
		{"", "0.0.1", true},
		{"^1.2", "1.4.0", true},
		{"^1.2", "2.0.0", false},
		{">=0.1, <0.3", "0.2.5", true},
		{"=1.0.0", "1.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.requirement+"@"+tt.version, func(t *testing.T) {
			ok, err := domain.SatisfiesRequirement(tt.requirement, tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	_, err := domain.SatisfiesRequirement("^1", "banana")
	assert.True(t, errors.Is(err, domain.ErrInvalidVersion))
}
