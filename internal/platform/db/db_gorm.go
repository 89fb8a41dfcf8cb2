// Package db opens the GORM database connection for the server.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "finos_backend/internal/feature/auth/domain/entity"
	resolverentity "finos_backend/internal/feature/resolver/domain/entity"
)

const (
	// DriverSQLite is the default driver for local development.
	DriverSQLite = "sqlite"
	// DriverPostgres is used in deployed environments.
	DriverPostgres = "postgres"
)

// Config holds the database connection settings.
type Config struct {
	Driver   string
	Path     string // sqlite file path
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// LoadConfigFromEnv reads the database settings from the environment.
// With no DB_DRIVER set the server runs on a local sqlite file.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:   os.Getenv("DB_DRIVER"),
		Path:     os.Getenv("DB_PATH"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.Path == "" {
		cfg.Path = "finos.db"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg
}

// BuildDSN renders the driver-specific connection string.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	}
	return cfg.Path
}

// Opener abstracts gorm.Open so connection retries are testable.
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor returns the Opener matching the configured driver.
// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey
// on every driver.
func OpenerFor(driver string) Opener {
	gormCfg := &gorm.Config{TranslateError: true}
	if driver == DriverPostgres {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), gormCfg)
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gsqlite.Open(dsn), gormCfg)
	}
}

// ConnectWithRetry keeps retrying the connection until timeout so the
// server survives a database that comes up slower than it does.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects using the environment configuration and optionally
// runs migrations. It exits the process on failure.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()
	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, OpenerFor(cfg.Driver))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&resolverentity.Instrument{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
