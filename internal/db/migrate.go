package db

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SnapshotRecord is the single-row-per-key table holding encoded snapshots.
type SnapshotRecord struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName keeps the table name aligned with the SQL migrations.
func (SnapshotRecord) TableName() string { return "snapshots" }

// Open connects to sqlite or postgres. Postgres connections are retried to
// leave the server time to start.
func Open(driver, dsn string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = "billing.db"
		}
		db, err := gorm.Open(sqlite.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	case "postgres":
		dsn = NormalizeDSN(dsn)
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_DSN is empty")
		}
		var db *gorm.DB
		var err error
		for i := 0; i < 5; i++ {
			db, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			log.Printf("[db] attempt %d/5 failed, retrying: %v", i+1, err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to connect database after retries: %w", err)
		}
		if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
			return nil, fmt.Errorf("db ping failed: %w", pingErr)
		}
		log.Println("[db] using DSN:", MaskDSN(dsn))
		return db, nil
	}
	return nil, fmt.Errorf("unsupported sql driver %q", driver)
}

// Migrate runs AutoMigrate for the snapshot table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return fmt.Errorf("automigrate %T: %w", &SnapshotRecord{}, err)
	}
	if !db.Migrator().HasTable("snapshots") {
		return errors.New("missing table after migration: snapshots")
	}
	return nil
}

// RunSQLMigrations applies the embedded SQL migrations with golang-migrate.
// Only postgres is supported; sqlite uses Migrate.
func RunSQLMigrations(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, ToURLDSN(NormalizeDSN(dsn)))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sql migrations failed: %w", err)
	}
	return nil
}
