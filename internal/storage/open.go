// Package storage builds the snapshot backend selected by configuration.
package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/diewo77/go-billing/internal/config"
	"github.com/diewo77/go-billing/internal/db"
	"github.com/diewo77/go-billing/internal/persistence"
	"github.com/diewo77/go-billing/internal/persistence/file"
	"github.com/diewo77/go-billing/internal/persistence/memory"
	"github.com/diewo77/go-billing/internal/persistence/s3"
	"github.com/diewo77/go-billing/internal/persistence/sqldb"
)

// Open returns the snapshot backend for cfg.Storage.Driver. SQL backends are
// migrated before use: golang-migrate for postgres when MIGRATIONS is set,
// gorm AutoMigrate otherwise.
func Open(ctx context.Context, cfg *config.Config) (persistence.Snapshotter, error) {
	st := cfg.Storage
	switch persistence.Driver(st.Driver) {
	case persistence.DriverMemory, "":
		return memory.New(), nil
	case persistence.DriverFile:
		return file.New(st.Dir, st.Key)
	case persistence.DriverSQLite:
		gdb, err := db.Open("sqlite", st.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(gdb); err != nil {
			return nil, err
		}
		return sqldb.New(gdb, persistence.DriverSQLite, st.Key), nil
	case persistence.DriverPostgres:
		dsn := cfg.Database.DSN()
		if cfg.App.Migrations {
			log.Println("[db] running SQL migrations")
			if err := db.RunSQLMigrations(dsn); err != nil {
				return nil, err
			}
		}
		gdb, err := db.Open("postgres", dsn)
		if err != nil {
			return nil, err
		}
		if !cfg.App.Migrations {
			if err := db.Migrate(gdb); err != nil {
				return nil, err
			}
		}
		return sqldb.New(gdb, persistence.DriverPostgres, st.Key), nil
	case persistence.DriverS3:
		return s3.New(ctx, s3.Config{
			Bucket:    st.S3Bucket,
			Region:    st.S3Region,
			Endpoint:  st.S3Endpoint,
			PathStyle: st.S3PathStyle,
			Prefix:    st.S3Prefix,
			Key:       st.Key,
		})
	}
	return nil, fmt.Errorf("%w: %q", persistence.ErrUnsupportedDriver, st.Driver)
}
