// Question HTTP handlers.
//
// This file exposes REST endpoints for question resources:
//   - GET    /questions          (list, paginated)
//   - POST   /questions          (add)
//   - DELETE /questions/{id}     (delete, returns remaining list)
//   - POST   /questions/search   (substring search)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses using the fixed
// error envelope.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/services"
	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/utils"
)

//
// Service contracts (context-aware)
//

// CategoryService defines the read-only category operations consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CategoryService interface {
	// Map returns the id → type mapping of all categories, or
	// services.ErrNoCategories when none exist.
	Map(ctx context.Context) (map[int]string, error)
}

// QuestionService defines question CRUD operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuestionService interface {
	// ListPage returns one page of all questions ordered by id.
	ListPage(ctx context.Context, limit, page int) (*services.QuestionPage, error)
	// ListByCategory returns one page of a category's questions.
	ListByCategory(ctx context.Context, categoryID, limit, page int) (*services.QuestionPage, error)
	// Search returns the first page of case-insensitive substring matches.
	Search(ctx context.Context, term string) (*services.QuestionPage, error)
	// Add persists a new question.
	Add(ctx context.Context, q *domain.Question) error
	// Delete removes a question and returns the remaining list.
	Delete(ctx context.Context, id int) ([]domain.Question, error)
}

// QuizService defines the quiz next-question operation.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuizService interface {
	// Next picks a random question outside previous, optionally scoped to
	// a category (0 means any). A nil question means the pool is exhausted.
	Next(ctx context.Context, categoryID int, previous []int) (*domain.QuizQuestion, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for categories, questions, and
// quizzes. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	catSvc  CategoryService
	qSvc    QuestionService
	quizSvc QuizService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(catSvc CategoryService, qSvc QuestionService, quizSvc QuizService) *Handlers {
	return &Handlers{catSvc: catSvc, qSvc: qSvc, quizSvc: quizSvc}
}

//
// DTOs
//

// QuestionsResponse is the list-shaped payload shared by the paginated
// listing, category listing, and search endpoints.
//
// TotalQuestions carries each endpoint's own total semantics: the size of
// the returned page for the listings, the aggregate match count for search.
type QuestionsResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
	Categories      map[int]string    `json:"categories"`
}

// DeleteQuestionResponse wraps the full remaining question list returned
// after a successful delete.
type DeleteQuestionResponse struct {
	Questions []domain.Question `json:"questions"`
}

// AddQuestionRequest is the JSON payload for creating a question. All four
// fields are required; Category accepts both the legacy string form and a
// plain number.
type AddQuestionRequest struct {
	Question   *string            `json:"question"   binding:"required" example:"What is the heaviest organ in the human body?"`
	Answer     *string            `json:"answer"     binding:"required" example:"The Liver"`
	Category   *domain.CategoryID `json:"category"   binding:"required" swaggertype:"integer" example:"1"`
	Difficulty *int               `json:"difficulty" binding:"required" example:"4"`
}

// SearchQuestionsRequest is the JSON payload for the search endpoint.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required" example:"heaviest"`
}

//
// Helpers
//

// pageParams parses the limit/pages query parameters, falling back to the
// defaults (10 per page, first page). Pages are 1-indexed.
func pageParams(c *gin.Context) (limit, page int) {
	limit = utils.AtoiDefault(c.Query("limit"), services.DefaultPageSize)
	page = utils.AtoiDefault(c.Query("pages"), 1)
	return
}

// questionsPayload shapes a service page into the wire payload, coercing a
// nil slice to an empty JSON array.
func questionsPayload(p *services.QuestionPage) QuestionsResponse {
	qs := p.Questions
	if qs == nil {
		qs = []domain.Question{}
	}
	return QuestionsResponse{
		Questions:       qs,
		TotalQuestions:  p.Total,
		CurrentCategory: p.CurrentCategory,
		Categories:      p.Categories,
	}
}

//
// Handlers
//

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List questions (paginated)
// @Description Returns one page of questions ordered by id, plus the category mapping. total_questions is the size of the returned page.
// @Tags        Questions
// @Produce     json
//
// @Param       limit  query  int  false "Items per page"      default(10)
// @Param       pages  query  int  false "Page number (1-indexed)" default(1)
//
// @Success     200  {object}  handlers.QuestionsResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Page beyond available rows"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	limit, page := pageParams(c)

	p, err := h.qSvc.ListPage(c.Request.Context(), limit, page)
	if err != nil {
		if errors.Is(err, services.ErrPageOutOfRange) {
			fail(c, http.StatusNotFound)
			return
		}
		fail(c, http.StatusInternalServerError)
		return
	}
	ok(c, http.StatusOK, questionsPayload(p))
}

// AddQuestion godoc
// @ID          addQuestion
// @Summary     Add a question
// @Description Persists a new question and echoes the submitted question text (not the created object).
// @Tags        Questions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.AddQuestionRequest  true  "New question"
//
// @Success     200  {string}  string  "The submitted question text"
// @Failure     422  {object}  handlers.ErrorResponse  "Malformed payload or constraint violation"
// @Router      /questions [post]
func (h *Handlers) AddQuestion(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity)
		return
	}

	q := &domain.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		CategoryID: *req.Category,
		Difficulty: *req.Difficulty,
	}
	if err := h.qSvc.Add(c.Request.Context(), q); err != nil {
		fail(c, http.StatusUnprocessableEntity)
		return
	}

	// Contract: the body is the bare question string, not the created row.
	ok(c, http.StatusOK, *req.Question)
}

// DeleteQuestion godoc
// @ID          deleteQuestion
// @Summary     Delete a question
// @Description Permanently removes a question and returns the full remaining list (unpaginated).
// @Tags        Questions
// @Produce     json
//
// @Param       id  path  int  true  "Question ID"
//
// @Success     200  {object}  handlers.DeleteQuestionResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown id or delete failure"
// @Router      /questions/{id} [delete]
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound)
		return
	}

	// Every failure on this path (missing row, rollback, list fetch) is
	// reported as 404; callers cannot distinguish the causes.
	remaining, err := h.qSvc.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound)
		return
	}
	if remaining == nil {
		remaining = []domain.Question{}
	}
	ok(c, http.StatusOK, DeleteQuestionResponse{Questions: remaining})
}

// SearchQuestions godoc
// @ID          searchQuestions
// @Summary     Search questions
// @Description Case-insensitive substring match on the question text. Returns at most the first 10 matches; total_questions is the aggregate match count. Empty results are a valid 200, never an error.
// @Tags        Questions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SearchQuestionsRequest  true  "Search term"
//
// @Success     200  {object}  handlers.QuestionsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Malformed body or internal error"
// @Router      /questions/search [post]
func (h *Handlers) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusInternalServerError)
		return
	}

	p, err := h.qSvc.Search(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		fail(c, http.StatusInternalServerError)
		return
	}
	ok(c, http.StatusOK, questionsPayload(p))
}
