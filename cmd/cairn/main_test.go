package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cairn.toml"), []byte(content), 0o600))
}

func TestRun(t *testing.T) {
	t.Setenv("CAIRN_CACHE_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	tmpDir := t.TempDir()
	writeManifest(t, filepath.Join(tmpDir, "hello"), `[package]
name = "hello"
version = "1.0.0"

[dependencies]
proxy = { path = "../proxy" }
`)
	writeManifest(t, filepath.Join(tmpDir, "proxy"), `[package]
name = "proxy"
version = "0.1.0"
`)

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "Resolve path dependencies",
			args:         []string{"resolve", "--manifest-path", filepath.Join(tmpDir, "hello")},
			expectedExit: 0,
		},
		{
			name:         "Missing manifest",
			args:         []string{"resolve", "--manifest-path", filepath.Join(tmpDir, "missing")},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
		},
		{
			name:         "Version",
			args:         []string{"version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}

	assert.FileExists(t, filepath.Join(tmpDir, "hello", "Cairn.lock"))
}
