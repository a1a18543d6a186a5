// Package file persists the snapshot as a JSON document on the local filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence"
)

// Store writes the snapshot to <dir>/<key>.json, replacing it atomically.
type Store struct {
	path string
}

// New returns a file-backed slot under dir, creating dir if needed.
func New(dir, key string) (*Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if key == "" {
		key = persistence.DefaultKey
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return nil, fmt.Errorf("invalid storage key %q", key)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	return &Store{path: filepath.Join(dir, key+".json")}, nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

func (s *Store) Driver() persistence.Driver { return persistence.DriverFile }

func (s *Store) Load(_ context.Context) (models.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := persistence.Decode(data)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *Store) Save(_ context.Context, snap models.Snapshot) error {
	data, err := persistence.Encode(snap)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// atomically move into place
	return os.Rename(tmp.Name(), s.path)
}
