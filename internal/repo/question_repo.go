// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Question
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a question is not found, functions return gorm.ErrRecordNotFound
//     (exported as ErrNotFound in this package).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
)

// ListQuestions returns every question ordered by id ascending.
// It returns an empty slice when the table is empty. On DB error, it
// returns the error.
func ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// ListQuestionsPage returns a slice of questions ordered by id ascending,
// bounded by offset and limit. The caller is responsible for computing the
// offset (e.g. (page-1)*limit). On DB error, it returns the error.
func ListQuestionsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListQuestionsByCategory returns every question in categoryID ordered by
// id ascending. On DB error, it returns the error.
func ListQuestionsByCategory(ctx context.Context, db *gorm.DB, categoryID int) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// ListQuestionsByCategoryPage returns a page of questions in categoryID
// ordered by id ascending, bounded by offset and limit. On DB error, it
// returns the error.
func ListQuestionsByCategoryPage(ctx context.Context, db *gorm.DB, categoryID, offset, limit int) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// SearchQuestions returns every question whose prompt contains term as a
// case-insensitive substring, ordered by id ascending. An empty result is
// not an error. On DB error, it returns the error.
func SearchQuestions(ctx context.Context, db *gorm.DB, term string) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetQuestion fetches a single question by its id. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetQuestion(ctx context.Context, db *gorm.DB, id int) (*domain.Question, error) {
	var q domain.Question
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuestion inserts q and backfills its auto-assigned id.
// On failure, it returns a DB error.
func CreateQuestion(ctx context.Context, db *gorm.DB, q *domain.Question) error {
	return db.WithContext(ctx).Create(q).Error
}

// DeleteQuestion removes the question with the given id. If no rows are
// affected (question missing), it returns ErrNotFound. On DB error, the
// raw error is returned.
func DeleteQuestion(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountQuestions returns the total number of stored questions.
// On DB error, it returns the error.
func CountQuestions(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Question{}).
		Count(&total).Error
	return total, err
}
