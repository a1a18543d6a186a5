// Package sqldb persists the snapshot as one row of the snapshots table through gorm.
package sqldb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/go-billing/internal/db"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence"
)

// Store is a SQL-backed snapshot slot keyed by Key.
type Store struct {
	db     *gorm.DB
	key    string
	driver persistence.Driver
}

// New wraps an open gorm connection. The snapshots table must already exist
// (see db.Migrate or db.RunSQLMigrations).
func New(gdb *gorm.DB, driver persistence.Driver, key string) *Store {
	if key == "" {
		key = persistence.DefaultKey
	}
	return &Store{db: gdb, key: key, driver: driver}
}

func (s *Store) Driver() persistence.Driver { return s.driver }

func (s *Store) Load(ctx context.Context) (models.Snapshot, bool, error) {
	var rec db.SnapshotRecord
	err := s.db.WithContext(ctx).Where(&db.SnapshotRecord{Key: s.key}).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("load snapshot %q: %w", s.key, err)
	}
	snap, err := persistence.Decode(rec.Payload)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *Store) Save(ctx context.Context, snap models.Snapshot) error {
	payload, err := persistence.Encode(snap)
	if err != nil {
		return err
	}
	rec := db.SnapshotRecord{Key: s.key, Payload: payload, UpdatedAt: time.Now().UTC()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", s.key, err)
	}
	return nil
}
