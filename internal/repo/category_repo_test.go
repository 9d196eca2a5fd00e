package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
)

// newTestDB opens a throwaway SQLite database and migrates the given models.
func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, cats ...domain.Category) {
	t.Helper()
	for _, c := range cats {
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed category %d: %v", c.ID, err)
		}
	}
}

func TestListCategories_OrderedAscending(t *testing.T) {
	db := newTestDB(t, &domain.Category{})
	seedCategories(t, db,
		domain.Category{ID: 3, Type: "Geography"},
		domain.Category{ID: 1, Type: "Science"},
		domain.Category{ID: 2, Type: "Art"},
	)

	cats, err := ListCategories(context.Background(), db)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}
	if cats[0].ID != 1 || cats[1].ID != 2 || cats[2].ID != 3 {
		t.Fatalf("unexpected order: %#v", cats)
	}
}

func TestListCategories_EmptyTable(t *testing.T) {
	db := newTestDB(t, &domain.Category{})
	cats, err := ListCategories(context.Background(), db)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("expected empty result, got %#v", cats)
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	db := newTestDB(t, &domain.Category{})
	_, err := GetCategory(context.Background(), db, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCategory_Success(t *testing.T) {
	db := newTestDB(t, &domain.Category{})
	seedCategories(t, db, domain.Category{ID: 1, Type: "Science"})

	c, err := GetCategory(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if c.ID != 1 || c.Type != "Science" {
		t.Fatalf("unexpected category: %+v", c)
	}
}

func TestCategoryMap_Shape(t *testing.T) {
	db := newTestDB(t, &domain.Category{})
	seedCategories(t, db,
		domain.Category{ID: 1, Type: "Science"},
		domain.Category{ID: 2, Type: "Art"},
	)

	m, err := CategoryMap(context.Background(), db)
	if err != nil {
		t.Fatalf("CategoryMap: %v", err)
	}
	if len(m) != 2 || m[1] != "Science" || m[2] != "Art" {
		t.Fatalf("unexpected map: %#v", m)
	}
}

func TestCategoryMap_Error_NoTable(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	if _, err := CategoryMap(context.Background(), db); err == nil {
		t.Fatalf("expected error when table missing")
	}
}
