package repo

import (
	"path/filepath"
	"testing"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
)

func TestOpenSQLite_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trivia.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "trivia.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestSeedCategories_BackfillsOnceOnly(t *testing.T) {
	db := newTestDB(t, &domain.Category{})

	if err := SeedCategories(db); err != nil {
		t.Fatalf("SeedCategories: %v", err)
	}
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 seeded categories, got %d", count)
	}

	// Second call must be a no-op, not a duplicate insert.
	if err := SeedCategories(db); err != nil {
		t.Fatalf("SeedCategories (again): %v", err)
	}
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("seeding is not idempotent: got %d categories", count)
	}
}

func TestSeedCategories_SkipsNonEmptyTable(t *testing.T) {
	db := newTestDB(t, &domain.Category{})
	if err := db.Create(&domain.Category{ID: 42, Type: "Custom"}).Error; err != nil {
		t.Fatalf("seed custom: %v", err)
	}

	if err := SeedCategories(db); err != nil {
		t.Fatalf("SeedCategories: %v", err)
	}
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected existing rows to be left alone, got %d", count)
	}
}
