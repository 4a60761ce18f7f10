package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"finance-view/internal/config"
	"finance-view/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Account{},
		&models.Category{},
		&models.Subcategory{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_date_category ON transactions(date, category)",
		"CREATE INDEX IF NOT EXISTS idx_subcategories_category_id ON subcategories(category_id)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_subcategories_category_name ON subcategories(category_id, name)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// SeedCategories inserts the default categories that do not exist yet
func (db *DB) SeedCategories() error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, name := range models.DefaultCategories() {
			var existing models.Category
			err := tx.Where("name = ?", name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up category %s: %w", name, err)
			}

			if err := tx.Create(&models.Category{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", name, err)
			}
		}
		return nil
	})
}

// Initialize connects, prepares the schema, creates indexes and seeds the
// default categories
func Initialize(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := db.prepareSchema(ctx, NewMigrator(sqlDB, &cfg.Database)); err != nil {
		return nil, err
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	if err := db.SeedCategories(); err != nil {
		log.Printf("Warning: failed to seed categories: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}

// prepareSchema runs the SQL migrations when enabled and falls back to the
// GORM models when they are disabled or fail
func (db *DB) prepareSchema(ctx context.Context, migrator *Migrator) error {
	if !db.config.AutoMigrate {
		log.Println("SQL migrations disabled (AUTO_MIGRATE != true), using GORM AutoMigrate")
		return db.autoMigrate()
	}

	if err := migrator.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")
		return db.autoMigrate()
	}
	return nil
}

func (db *DB) autoMigrate() error {
	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
