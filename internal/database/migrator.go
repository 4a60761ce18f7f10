package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finance-view/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
	defaultReadyAttempts  = 30
	defaultReadyInterval  = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationStatus describes the schema version after a migration run
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// Applied is false when the schema was already current
	Applied bool
}

// Migrator applies the SQL migrations and optional seed files of db/
type Migrator struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
	readyAttempts  int
	readyInterval  time.Duration
	logger         *slog.Logger
}

// NewMigrator creates a migrator from the database configuration
func NewMigrator(db *sql.DB, cfg *config.DatabaseConfig) *Migrator {
	m := &Migrator{
		db:             db,
		migrationsPath: cfg.MigrationsPath,
		seedsPath:      cfg.SeedsPath,
		seed:           cfg.SeedDatabase,
		readyAttempts:  cfg.ReadyAttempts,
		readyInterval:  cfg.ReadyInterval,
		logger:         slog.Default().With("component", "migrator"),
	}
	if m.migrationsPath == "" {
		m.migrationsPath = defaultMigrationsPath
	}
	if m.seedsPath == "" {
		m.seedsPath = defaultSeedsPath
	}
	if m.readyAttempts <= 0 {
		m.readyAttempts = defaultReadyAttempts
	}
	if m.readyInterval <= 0 {
		m.readyInterval = defaultReadyInterval
	}
	return m
}

// Run waits for the database, applies pending migrations and loads seeds.
// Seed failures are logged and do not fail the run.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	status, err := m.Up()
	if err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	m.logger.Info("Schema migrated", "version", status.Version, "dirty", status.Dirty, "applied", status.Applied)

	applied, err := m.LoadSeeds()
	if err != nil {
		m.logger.Warn("Seed loading failed", "error", err.Error())
	} else if applied > 0 {
		m.logger.Info("Seeds loaded", "files", applied)
	}

	return nil
}

// WaitForDatabase pings until the database answers, the attempts run out or ctx ends
func (m *Migrator) WaitForDatabase(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= m.readyAttempts; attempt++ {
		if err = m.db.PingContext(ctx); err == nil {
			return nil
		}
		m.logger.Info("Database not ready", "attempt", attempt, "max_attempts", m.readyAttempts, "error", err.Error())

		if attempt == m.readyAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.readyInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", m.readyAttempts, err)
}

// Up applies all pending migrations. A dirty schema is forced back to its
// recorded version first.
func (m *Migrator) Up() (MigrationStatus, error) {
	instance, err := m.instance()
	if err != nil {
		return MigrationStatus{}, err
	}

	version, dirty, err := instance.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		m.logger.Warn("Schema is dirty, forcing version", "version", version)
		if err := instance.Force(int(version)); err != nil {
			return MigrationStatus{}, fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	status := MigrationStatus{Applied: true}
	if err := instance.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return MigrationStatus{}, fmt.Errorf("migration failed: %w", err)
		}
		status.Applied = false
	}

	status.Version, status.Dirty, err = instance.Version()
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("failed to read migration version: %w", err)
	}
	return status, nil
}

// Status reports the current schema version without migrating
func (m *Migrator) Status() (MigrationStatus, error) {
	instance, err := m.instance()
	if err != nil {
		return MigrationStatus{}, err
	}
	version, dirty, err := instance.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, fmt.Errorf("failed to read migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}

// LoadSeeds executes the seed files in name order and returns how many
// succeeded. A failing file is skipped; an unreadable one aborts.
func (m *Migrator) LoadSeeds() (int, error) {
	if !m.seed {
		return 0, nil
	}
	if _, err := os.Stat(m.seedsPath); os.IsNotExist(err) {
		m.logger.Info("Seeds directory not found, skipping", "path", m.seedsPath)
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(m.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to find seed files: %w", err)
	}

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if _, err := m.db.Exec(string(content)); err != nil {
			m.logger.Warn("Seed file failed", "file", filepath.Base(file), "error", err.Error())
			continue
		}
		applied++
	}
	return applied, nil
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	if _, err := os.Stat(m.migrationsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, m.migrationsPath)
	}
	absPath, err := filepath.Abs(m.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	instance, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return instance, nil
}
