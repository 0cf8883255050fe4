package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/config"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	l := config.NewLoader(logger)
	l.Getenv = func(key string) string { return env[key] }
	return l
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := newLoader(t, nil).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
cache_dir: .cache
registry: index
jobs: 3
version_conflicts: collect
metrics_file: out/metrics.prom
`)
	cwd := filepath.Join(root, "packages", "hello")
	require.NoError(t, os.MkdirAll(cwd, 0o750))

	cfg, err := newLoader(t, nil).Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, domain.Config{
		CacheDir:         filepath.Join(root, ".cache"),
		Registry:         "file://" + filepath.ToSlash(filepath.Join(root, "index")),
		Jobs:             3,
		VersionConflicts: domain.VersionConflictsCollect,
		MetricsFile:      filepath.Join(root, "out", "metrics.prom"),
	}, cfg)
}

func TestLoad_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "jobs: 2\n")
	nested := filepath.Join(root, "nested")
	writeConfig(t, nested, "jobs: 5\nregistry: https://registry.example.com\n")

	cfg, err := newLoader(t, nil).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Jobs)
	assert.Equal(t, "https://registry.example.com", cfg.Registry)
}

func TestLoad_EnvOverrides(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "cache_dir: /from/file\n")

	cfg, err := newLoader(t, map[string]string{
		domain.CacheDirEnv: "/from/env",
		domain.OfflineEnv:  "true",
	}).Load(root)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.CacheDir)
	assert.True(t, cfg.Offline)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		sentinel error
	}{
		{"Syntax", "jobs: [", nil, domain.ErrConfigRead},
		{"Jobs", "jobs: 0\n", nil, domain.ErrConfigInvalid},
		{"Policy", "version_conflicts: maybe\n", nil, domain.ErrConfigInvalid},
		{"OfflineEnv", "", map[string]string{domain.OfflineEnv: "sometimes"}, domain.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			_, err := newLoader(t, tt.env).Load(root)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}
