// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Category
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a category is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (connectivity issues, missing schema, etc.), the raw
//     gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListCategories returns all categories ordered by id ascending. It
// returns an empty slice when the table is empty. On DB error, it returns
// the error.
func ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var out []domain.Category
	err := db.WithContext(ctx).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetCategory fetches a single category by its id. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetCategory(ctx context.Context, db *gorm.DB, id int) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CategoryMap returns all categories as an id → type mapping, the shape
// embedded in most list responses. An empty table yields an empty map.
func CategoryMap(ctx context.Context, db *gorm.DB) (map[int]string, error) {
	cats, err := ListCategories(ctx, db)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(cats))
	for _, c := range cats {
		out[c.ID] = c.Type
	}
	return out, nil
}
