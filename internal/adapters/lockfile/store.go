// Package lockfile persists resolution results as a YAML lockfile.
package lockfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const header = "# This file is generated by cairn. It is not intended for manual editing.\n"

// Store reads and writes Cairn.lock files.
type Store struct{}

var _ ports.LockfileStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read implements ports.LockfileStore. A missing lockfile is not an error.
func (s *Store) Read(dir string) (*domain.Lockfile, error) {
	path := filepath.Join(dir, domain.LockFileName)

	//nolint:gosec // path is derived from the manifest directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileRead, err.Error()), "path", path)
	}

	var lf domain.Lockfile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileRead, err.Error()), "path", path)
	}
	if lf.Version != domain.LockfileVersion {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrLockfileRead, "unsupported lockfile version "+strconv.Itoa(lf.Version)),
			"path", path,
		)
	}
	return &lf, nil
}

// Write implements ports.LockfileStore. The file is replaced atomically.
func (s *Store) Write(dir string, lf *domain.Lockfile) error {
	path := filepath.Join(dir, domain.LockFileName)

	var buf bytes.Buffer
	buf.WriteString(header)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(lf); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWrite, err.Error()), "path", path)
	}
	if err := enc.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWrite, err.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, domain.LockFileName+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWrite, err.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrLockfileWrite, err.Error()), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrLockfileWrite, err.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWrite, err.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWrite, err.Error()), "path", path)
	}
	return nil
}
