// Package services – QuestionService
//
// This file implements the QuestionService, which coordinates the question
// CRUD surface: paginated listing, category-filtered listing, substring
// search, insertion, and transactional deletion. Pagination policy
// (defaults, offsets, page-local totals) lives here so handlers stay
// transport-thin.
//
// Two totals deliberately disagree and must stay that way: listing reports
// the size of the returned page, while search reports the aggregate match
// count. Existing clients rely on each endpoint's own semantics.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/repo"
)

// DefaultPageSize is the number of questions per page when the client
// does not supply a limit.
const DefaultPageSize = 10

// QuestionPage is a bounded, ordered subset of questions together with
// the category context embedded in every list-shaped response.
type QuestionPage struct {
	Questions       []domain.Question
	Total           int
	CurrentCategory string
	Categories      map[int]string
}

// QuestionService implements the use-cases around trivia questions.
// It is context-aware and opens its own transaction for write operations.
type QuestionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// PageSize overrides DefaultPageSize when > 0.
	PageSize int
}

func (s *QuestionService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return DefaultPageSize
}

// ListPage returns one page of all questions ordered by ascending id.
//
// Semantics:
//   - limit <= 0 falls back to the configured page size; page < 1 is
//     treated as page 1 (pages are 1-indexed).
//   - Total is the size of the returned page, not the table's row count.
//   - CurrentCategory is always empty for the unfiltered listing.
//   - A page beyond the available rows yields ErrPageOutOfRange.
func (s *QuestionService) ListPage(ctx context.Context, limit, page int) (*QuestionPage, error) {
	if limit <= 0 {
		limit = s.pageSize()
	}
	if page < 1 {
		page = 1
	}

	questions, err := repo.ListQuestionsPage(ctx, s.DB, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrPageOutOfRange
	}

	cats, err := repo.CategoryMap(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  questions,
		Total:      len(questions),
		Categories: cats,
	}, nil
}

// ListByCategory returns one page of the questions belonging to
// categoryID, with CurrentCategory set to that category's type.
//
// An unknown categoryID yields ErrCategoryNotFound. Unlike ListPage, an
// empty page is not an error here: the caller receives an empty slice.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID, limit, page int) (*QuestionPage, error) {
	if limit <= 0 {
		limit = s.pageSize()
	}
	if page < 1 {
		page = 1
	}

	cat, err := repo.GetCategory(ctx, s.DB, categoryID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	questions, err := repo.ListQuestionsByCategoryPage(ctx, s.DB, categoryID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	cats, err := repo.CategoryMap(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:       questions,
		Total:           len(questions),
		CurrentCategory: cat.Type,
		Categories:      cats,
	}, nil
}

// Search returns the questions whose prompt contains term as a
// case-insensitive substring.
//
// The result is always the first page (page size items at most), while
// Total carries the aggregate match count. No matches is a valid, empty
// result, never an error.
func (s *QuestionService) Search(ctx context.Context, term string) (*QuestionPage, error) {
	matches, err := repo.SearchQuestions(ctx, s.DB, term)
	if err != nil {
		return nil, err
	}

	page := matches
	if n := s.pageSize(); len(page) > n {
		page = page[:n]
	}

	cats, err := repo.CategoryMap(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  page,
		Total:      len(matches),
		Categories: cats,
	}, nil
}

// Add persists a new question inside a transaction and backfills its
// auto-assigned id. Constraint violations roll back and surface the DB
// error to the caller.
func (s *QuestionService) Add(ctx context.Context, q *domain.Question) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreateQuestion(ctx, tx, q)
	})
}

// Delete removes the question with the given id and returns the full
// remaining question list (unpaginated, ordered by id).
//
// The lookup and delete run inside one transaction; any failure rolls
// back. A missing id yields ErrQuestionNotFound and leaves the stored
// rows untouched.
func (s *QuestionService) Delete(ctx context.Context, id int) ([]domain.Question, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetQuestion(ctx, tx, id); err != nil {
			return err
		}
		return repo.DeleteQuestion(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	return repo.ListQuestions(ctx, s.DB)
}
