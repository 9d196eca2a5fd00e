// Package services – CategoryService
//
// This file implements the CategoryService, which exposes the read-only
// category surface. Categories are seed data; the only operation is the
// id → type mapping embedded in list responses and served verbatim by the
// category listing endpoint.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/repo"
)

// CategoryService provides read access to the category table.
type CategoryService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Map returns the full id → type category mapping.
//
// An empty category table yields ErrNoCategories: the listing endpoint
// has always treated "no categories" as a client error (400) rather than
// an empty result, and callers depend on it.
func (s *CategoryService) Map(ctx context.Context) (map[int]string, error) {
	m, err := repo.CategoryMap(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, ErrNoCategories
	}
	return m, nil
}
