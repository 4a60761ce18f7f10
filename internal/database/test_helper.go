package database

import (
	"fmt"
	"testing"
	"time"

	"finance-view/internal/config"
	"finance-view/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, name string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:        name,
		Institution: "Test Bank",
		Mask:        "1234",
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCategory(t *testing.T, db *DB, name string, subcategories ...string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	for _, sub := range subcategories {
		category.Subcategories = append(category.Subcategories, models.Subcategory{Name: sub})
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, accountID *uuid.UUID, date time.Time, amount string, isDebit bool, category, merchant string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AccountID: accountID,
		Date:      date,
		Amount:    decimal.RequireFromString(amount),
		IsDebit:   isDebit,
		Category:  category,
		Merchant:  merchant,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"subcategories",
		"categories",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
