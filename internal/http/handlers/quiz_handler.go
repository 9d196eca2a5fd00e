// Quiz HTTP handler.
//
// This file exposes the quiz next-question endpoint:
//   - POST /quizzes
//
// The response's "question" field is polymorphic by contract: a trimmed
// question object while candidates remain, and the empty string "" (not
// null, not an object) once the pool is exhausted.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/domain"
	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/services"
)

// QuizCategoryRef identifies the category scope of a quiz round. ID 0 is
// the sentinel for "any category". The type label is accepted but ignored.
type QuizCategoryRef struct {
	ID   domain.CategoryID `json:"id" swaggertype:"integer" example:"1"`
	Type string            `json:"type,omitempty" example:"Science"`
}

// QuizRequest is the JSON payload for requesting the next quiz question.
type QuizRequest struct {
	PreviousQuestions []int           `json:"previous_questions"`
	QuizCategory      QuizCategoryRef `json:"quiz_category"`
}

// QuizResponse carries either a domain.QuizQuestion or the "" exhaustion
// sentinel.
type QuizResponse struct {
	Question any `json:"question"`
}

// NextQuizQuestion godoc
// @ID          nextQuizQuestion
// @Summary     Next quiz question
// @Description Picks a uniformly random question whose id is not in previous_questions, optionally restricted to a category (id 0 means any). Returns {"question": ""} once the pool is exhausted.
// @Tags        Quizzes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.QuizRequest  true  "Quiz state"
//
// @Success     200  {object}  handlers.QuizResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown quiz category"
// @Failure     500  {object}  handlers.ErrorResponse  "Malformed body or internal error"
// @Router      /quizzes [post]
func (h *Handlers) NextQuizQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusInternalServerError)
		return
	}

	q, err := h.quizSvc.Next(c.Request.Context(), int(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			fail(c, http.StatusNotFound)
			return
		}
		fail(c, http.StatusInternalServerError)
		return
	}

	if q == nil {
		// Quiz exhausted: the sentinel is the empty string, not null.
		ok(c, http.StatusOK, QuizResponse{Question: ""})
		return
	}
	ok(c, http.StatusOK, QuizResponse{Question: q})
}
