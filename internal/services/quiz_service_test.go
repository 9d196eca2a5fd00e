package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
)

func quizFixture(t *testing.T) *QuizService {
	t.Helper()
	db := newServiceDB(t)
	seedTrivia(t, db,
		[]domain.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}},
		[]domain.Question{
			{ID: 1, Question: "s1", Answer: "a1", CategoryID: 1, Difficulty: 1},
			{ID: 2, Question: "s2", Answer: "a2", CategoryID: 1, Difficulty: 2},
			{ID: 3, Question: "art1", Answer: "a3", CategoryID: 2, Difficulty: 3},
		})
	return NewQuizService(db)
}

func TestQuizNext_AnyCategoryDrawsFromFullPool(t *testing.T) {
	svc := quizFixture(t)
	svc.pickN = func(n int) int { return 0 } // deterministic: first candidate

	q, err := svc.Next(context.Background(), 0, nil)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q == nil || q.ID != 1 {
		t.Fatalf("expected first candidate from full pool, got %+v", q)
	}
	if q.Question != "s1" || q.Answer != "a1" {
		t.Fatalf("unexpected shape: %+v", q)
	}
}

func TestQuizNext_ExcludesPreviousQuestions(t *testing.T) {
	svc := quizFixture(t)
	svc.pickN = func(n int) int { return 0 }

	q, err := svc.Next(context.Background(), 0, []int{1, 2})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q == nil || q.ID != 3 {
		t.Fatalf("expected the only unseen question, got %+v", q)
	}
}

func TestQuizNext_CategoryScopedPool(t *testing.T) {
	svc := quizFixture(t)
	svc.pickN = func(n int) int { return n - 1 } // deterministic: last candidate

	q, err := svc.Next(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q == nil || q.ID != 2 {
		t.Fatalf("expected a science question, got %+v", q)
	}
}

func TestQuizNext_ExhaustedPoolReturnsNil(t *testing.T) {
	svc := quizFixture(t)

	q, err := svc.Next(context.Background(), 0, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q != nil {
		t.Fatalf("expected nil for exhausted pool, got %+v", q)
	}
}

func TestQuizNext_UnknownCategory(t *testing.T) {
	svc := quizFixture(t)

	_, err := svc.Next(context.Background(), 99, nil)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestQuizNext_DefaultPickerIsUsable(t *testing.T) {
	svc := quizFixture(t)
	// Exercise the real random path; with a single candidate the result is
	// still deterministic.
	q, err := svc.Next(context.Background(), 2, nil)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if q == nil || q.ID != 3 {
		t.Fatalf("expected the single art question, got %+v", q)
	}
}
