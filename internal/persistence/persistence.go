// Package persistence defines the durable key-value slot the store writes its
// full snapshot to, and the envelope the snapshot is encoded in.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diewo77/go-billing/internal/models"
)

// DefaultKey is the fixed storage identifier of the billing snapshot.
const DefaultKey = "billing-storage"

// SnapshotVersion is written into every envelope.
const SnapshotVersion = 0

// Driver identifies a concrete snapshot backend.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-memory (tests, dev)
	DriverFile     Driver = "file"     // local JSON file
	DriverSQLite   Driver = "sqlite"   // gorm + sqlite
	DriverPostgres Driver = "postgres" // gorm + postgres
	DriverS3       Driver = "s3"       // S3 / MinIO compatible
)

// ErrUnsupportedDriver is returned when no backend matches the configured driver.
var ErrUnsupportedDriver = errors.New("persistence: unsupported driver")

// Snapshotter saves and loads the full store snapshot under one key.
// Load reports false when nothing has been saved yet.
type Snapshotter interface {
	Load(ctx context.Context) (models.Snapshot, bool, error)
	Save(ctx context.Context, snap models.Snapshot) error
	Driver() Driver
}

type envelope struct {
	State   models.Snapshot `json:"state"`
	Version int             `json:"version"`
}

// Encode serializes a snapshot into its persisted JSON envelope.
func Encode(snap models.Snapshot) ([]byte, error) {
	data, err := json.Marshal(envelope{State: snap, Version: SnapshotVersion})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a persisted envelope.
func Decode(data []byte) (models.Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if env.Version != SnapshotVersion {
		return models.Snapshot{}, fmt.Errorf("decode snapshot: unsupported version %d", env.Version)
	}
	return env.State, nil
}
