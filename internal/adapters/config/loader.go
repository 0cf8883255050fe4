// Package config provides the configuration loader for cairn.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// Getenv looks up environment overrides. It defaults to os.Getenv.
	Getenv func(string) string
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

// Load finds cairn.yaml in cwd or one of its parents and returns the
// effective configuration, with environment overrides applied.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := findConfiguration(cwd)
	if found {
		l.Logger.Debug("using configuration", "path", configPath)

		var file Configfile
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.Config{}, err
		}
		if err := apply(&cfg, &file, filepath.Dir(configPath)); err != nil {
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
	}

	if err := l.applyEnv(&cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file *Configfile, configDir string) error {
	if file.CacheDir != "" {
		cfg.CacheDir = resolvePath(configDir, file.CacheDir)
	}
	if file.Registry != "" {
		cfg.Registry = resolveRegistry(configDir, file.Registry)
	}
	if file.Jobs != nil {
		if *file.Jobs < 1 {
			return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "jobs must be at least 1"), "jobs", *file.Jobs)
		}
		cfg.Jobs = *file.Jobs
	}
	if file.Offline {
		cfg.Offline = true
	}
	if file.VersionConflicts != "" {
		policy := domain.VersionConflictPolicy(file.VersionConflicts)
		if !policy.Valid() {
			return zerr.With(
				zerr.Wrap(domain.ErrConfigInvalid, "version_conflicts must be fail-fast, collect or ignore"),
				"version_conflicts", file.VersionConflicts,
			)
		}
		cfg.VersionConflicts = policy
	}
	if file.MetricsFile != "" {
		cfg.MetricsFile = resolvePath(configDir, file.MetricsFile)
	}
	return nil
}

func (l *Loader) applyEnv(cfg *domain.Config) error {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if dir := getenv(domain.CacheDirEnv); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, err.Error()), domain.CacheDirEnv, dir)
		}
		cfg.CacheDir = abs
	}

	if raw := getenv(domain.OfflineEnv); raw != "" {
		offline, err := strconv.ParseBool(raw)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "expected a boolean"), domain.OfflineEnv, raw)
		}
		cfg.Offline = offline
	}
	return nil
}

// resolvePath makes p absolute relative to the directory of the config file.
func resolvePath(configDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(configDir, p))
}

// resolveRegistry turns a plain directory into a file:// registry URL.
func resolveRegistry(configDir, registry string) string {
	if strings.Contains(registry, "://") {
		return registry
	}
	return "file://" + filepath.ToSlash(resolvePath(configDir, registry))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigRead, err.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigRead, parseErr.Error()), "path", configPath)
	}

	return nil
}
