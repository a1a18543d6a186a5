// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/go-billing/internal/models"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	App      AppConfig
	Company  models.CompanyInfo
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// StorageConfig selects where the billing snapshot is persisted.
type StorageConfig struct {
	Driver      string // memory, file, sqlite, postgres, s3
	Key         string
	Dir         string // file driver
	SQLitePath  string // sqlite driver
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool
	S3Prefix    string
}

// DatabaseConfig holds PostgreSQL connection settings. DATABASE_DSN, when set,
// wins over the individual DB_* variables.
type DatabaseConfig struct {
	RawDSN   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev          bool
	Migrations   bool
	Seed         bool
	SeedRandom   uint64
	RecentWindow int
}

// DSN returns the PostgreSQL connection string in key=value format.
func (d DatabaseConfig) DSN() string {
	if d.RawDSN != "" {
		return d.RawDSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Timeout converts a seconds setting into a duration.
func Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(getEnv("STORAGE_DRIVER", "memory")),
			Key:         getEnv("STORAGE_KEY", "billing-storage"),
			Dir:         getEnv("STORAGE_DIR", "./data"),
			SQLitePath:  getEnv("SQLITE_PATH", "billing.db"),
			S3Bucket:    getEnv("S3_BUCKET", ""),
			S3Region:    getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:  getEnv("S3_ENDPOINT", ""),
			S3PathStyle: getEnvBool("S3_PATH_STYLE", false),
			S3Prefix:    getEnv("S3_PREFIX", ""),
		},
		Database: DatabaseConfig{
			RawDSN:   getEnv("DATABASE_DSN", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "billing"),
			Password: getEnv("DB_PASSWORD", "billing"),
			DBName:   getEnv("DB_NAME", "billing"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		App: AppConfig{
			Dev:          getEnvBool("DEV", true),
			Migrations:   getEnvBool("MIGRATIONS", false),
			Seed:         getEnvBool("SEED", false),
			SeedRandom:   uint64(getEnvInt("SEED_RANDOM", 0)),
			RecentWindow: getEnvInt("RECENT_WINDOW", 10),
		},
		Company: models.CompanyInfo{
			Name:    getEnv("COMPANY_NAME", "Your Company"),
			Address: getEnv("COMPANY_ADDRESS", ""),
			Email:   getEnv("COMPANY_EMAIL", ""),
			Phone:   getEnv("COMPANY_PHONE", ""),
			TaxID:   getEnv("COMPANY_TAX_ID", ""),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
