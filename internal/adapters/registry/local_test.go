package registry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/registry"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newIndex(t *testing.T, entries map[string][]string) string {
	t.Helper()
	index := t.TempDir()
	for name, versions := range entries {
		for _, v := range versions {
			require.NoError(t, os.MkdirAll(filepath.Join(index, name, v), 0o750))
		}
	}
	return index
}

func TestLocal_Locate(t *testing.T) {
	index := newIndex(t, map[string][]string{
		"core": {"1.0.0", "1.2.0", "1.4.1", "2.0.0", "2.1.0-beta.1", "junk"},
	})
	require.NoError(t, os.WriteFile(filepath.Join(index, "core", "README"), nil, 0o600))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug("skipping registry entry", "package", "core", "entry", "junk").AnyTimes()

	r := registry.NewLocal(logger)
	url := "file://" + index

	tests := []struct {
		requirement string
		want        string
	}{
		{"", "2.0.0"},
		{"^1.2", "1.4.1"},
		{"~1.2.0", "1.2.0"},
		{"=1.0.0", "1.0.0"},
		{">=2.1.0-0", "2.1.0-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.requirement, func(t *testing.T) {
			dir, err := r.Locate(context.Background(), url, "core", tt.requirement)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(index, "core", tt.want), dir)
		})
	}
}

func TestLocal_Locate_Errors(t *testing.T) {
	index := newIndex(t, map[string][]string{"core": {"1.0.0"}})
	url := "file://" + index

	ctrl := gomock.NewController(t)
	r := registry.NewLocal(mocks.NewMockLogger(ctrl))
	ctx := context.Background()

	_, err := r.Locate(ctx, "https://registry.example.com", "core", "")
	assert.True(t, errors.Is(err, domain.ErrRegistryUnsupported))

	_, err = r.Locate(ctx, url, "missing", "")
	assert.True(t, errors.Is(err, domain.ErrPackageNotInRegistry))

	_, err = r.Locate(ctx, url, "core", "^2")
	assert.True(t, errors.Is(err, domain.ErrPackageNotInRegistry))
	assert.Contains(t, err.Error(), "no version of `core` matches `^2`")

	_, err = r.Locate(ctx, url, "core", "not a requirement")
	assert.True(t, errors.Is(err, domain.ErrInvalidVersion))
}
