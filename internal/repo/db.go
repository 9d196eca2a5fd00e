// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver), schema migrations, and category seeding.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// EnableTracing installs the GORM OpenTelemetry plugin so queries emit
// spans. Metrics are disabled; Prometheus covers the HTTP layer.
func EnableTracing(db *gorm.DB) error {
	return db.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

// AutoMigrate creates or updates the trivia schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Category{},
		&domain.Question{},
	)
}

// defaultCategories is the canonical seed set. Categories are managed
// out-of-band; this only backfills an empty table on first boot.
var defaultCategories = []domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// SeedCategories inserts the default category set when the table is empty.
// It is safe to call on every boot.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&defaultCategories).Error
}
