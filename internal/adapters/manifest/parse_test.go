package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/manifest"
	"go.trai.ch/cairn/internal/core/domain"
)

func TestParse_DeclarationOrder(t *testing.T) {
	data := []byte(`
[package]
name = "hello"
version = "1.0.0"

[dependencies]
zeta = { path = "../zeta" }
culprit = { git = "file:///tmp/culprit", branch = "branchy" }
alpha = "^0.2"

[dependencies.proxy]
path = "proxy"
version = ">=0.1"
`)

	parsed, err := manifest.Parse(data, "/work/hello", domain.PathSource("/work/hello"), "file:///srv/index")
	require.NoError(t, err)
	assert.Empty(t, parsed.Unknown)

	m := parsed.Manifest
	assert.Equal(t, "hello", m.Name)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, "/work/hello", m.Root)
	assert.Equal(t, []domain.Dependency{
		{Name: "zeta", Source: domain.PathSource("/work/zeta")},
		{Name: "culprit", Source: domain.GitSource("file:///tmp/culprit", domain.Branch("branchy"))},
		{Name: "alpha", Source: domain.RegistrySource("file:///srv/index"), Requirement: "^0.2"},
		{Name: "proxy", Source: domain.PathSource("/work/hello/proxy"), Requirement: ">=0.1"},
	}, m.Dependencies)
}

func TestParse_UnknownKeys(t *testing.T) {
	data := []byte(`
[package]
name = "hello"
version = "1.0.0"
edition = "2024"

[dependencies]
proxy = { path = "proxy", features = ["x"] }
`)

	parsed, err := manifest.Parse(data, "/work/hello", domain.PathSource("/work/hello"), "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"package.edition", "dependencies.proxy.features"}, parsed.Unknown)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		reason string
	}{
		{"Syntax", "[package\nname = 1", ""},
		{"MissingName", "[package]\nversion = \"1.0.0\"", "missing package.name"},
		{"MissingVersion", "[package]\nname = \"x\"", "missing package.version"},
		{"BadVersion", "[package]\nname = \"x\"\nversion = \"one\"", "invalid version"},
		{"BadDependency", "[package]\nname = \"x\"\nversion = \"1.0.0\"\n[dependencies]\ny = { path = \"a\", git = \"b\" }", "only one of path or git"},
		{"WrongType", "[package]\nname = \"x\"\nversion = \"1.0.0\"\n[dependencies]\ny = 3", "invalid dependency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := domain.GitSource("file:///tmp/x", domain.DefaultBranch())
			_, err := manifest.Parse([]byte(tt.data), "/tmp/x", src, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrManifestParse))

			var parseErr *domain.ManifestParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "git+file:///tmp/x", parseErr.Source)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestReadFile_NotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := manifest.ReadFile(dir, domain.PathSource(dir), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestNotFound))
	assert.Contains(t, err.Error(), filepath.Join(dir, domain.ManifestFileName))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName),
		[]byte("[package]\nname = \"proxy\"\nversion = \"0.1.0\"\n"), 0o600))

	parsed, err := manifest.ReadFile(dir, domain.PathSource(dir), "")
	require.NoError(t, err)
	assert.Equal(t, "proxy", parsed.Manifest.Name)
	assert.Empty(t, parsed.Manifest.Dependencies)
}
