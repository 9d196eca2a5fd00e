// Package services – QuizService
//
// This file implements the QuizService, which drives the quiz flow: given
// the ids already served in a session and an optional category filter, it
// picks the next question uniformly at random from the ids that remain.
// Category id 0 is the sentinel for "any category".
package services

import (
	"context"
	"errors"
	"math/rand/v2"

	"gorm.io/gorm"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/repo"
)

// QuizService selects quiz questions from the stored pool.
type QuizService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// pickN returns a uniform value in [0, n). Overridable in tests for
	// deterministic selection; nil means math/rand.
	pickN func(n int) int
}

// NewQuizService constructs a QuizService with the default random source.
func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{DB: db, pickN: rand.IntN}
}

// Next returns the next quiz question.
//
// Semantics:
//   - categoryID == 0 draws from all questions; any other value restricts
//     the pool to that category and yields ErrCategoryNotFound when the
//     category does not exist.
//   - previous lists the question ids already served; the candidate set is
//     the pool minus those ids (a set difference, so pool order is not
//     preserved).
//   - An exhausted candidate set returns (nil, nil): the caller reports
//     the empty-string sentinel, not an error.
//   - Otherwise one candidate is chosen uniformly at random. The returned
//     shape omits category and difficulty on purpose.
func (s *QuizService) Next(ctx context.Context, categoryID int, previous []int) (*domain.QuizQuestion, error) {
	var (
		pool []domain.Question
		err  error
	)
	if categoryID != 0 {
		if _, err = repo.GetCategory(ctx, s.DB, categoryID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		pool, err = repo.ListQuestionsByCategory(ctx, s.DB, categoryID)
	} else {
		pool, err = repo.ListQuestions(ctx, s.DB)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	pick := s.pickN
	if pick == nil {
		pick = rand.IntN
	}
	q := candidates[pick(len(candidates))]
	return &domain.QuizQuestion{
		ID:       q.ID,
		Question: q.Question,
		Answer:   q.Answer,
	}, nil
}
