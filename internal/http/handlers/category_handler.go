// Category HTTP handlers.
//
// This file exposes REST endpoints for category resources:
//   - GET /categories                  (id → type mapping)
//   - GET /categories/{id}/questions   (category-filtered question page)
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-Alaa-ElDin/go-trivia-api/internal/services"
)

// CategoriesResponse wraps the id → type category mapping.
type CategoriesResponse struct {
	Categories map[int]string `json:"categories"`
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List categories
// @Description Returns all categories as an id → type mapping. An empty category table is reported as 400, a long-standing compatibility quirk.
// @Tags        Categories
// @Produce     json
//
// @Success     200  {object}  handlers.CategoriesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "No categories exist"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	m, err := h.catSvc.Map(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoCategories) {
			fail(c, http.StatusBadRequest)
			return
		}
		fail(c, http.StatusInternalServerError)
		return
	}
	ok(c, http.StatusOK, CategoriesResponse{Categories: m})
}

// ListCategoryQuestions godoc
// @ID          listCategoryQuestions
// @Summary     List a category's questions (paginated)
// @Description Returns one page of the category's questions ordered by id, with current_category set to the category's type.
// @Tags        Categories
// @Produce     json
//
// @Param       id     path   int  true  "Category ID"
// @Param       limit  query  int  false "Items per page"          default(10)
// @Param       pages  query  int  false "Page number (1-indexed)" default(1)
//
// @Success     200  {object}  handlers.QuestionsResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown category or lookup failure"
// @Router      /categories/{id}/questions [get]
func (h *Handlers) ListCategoryQuestions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound)
		return
	}
	limit, page := pageParams(c)

	// An unknown category and an internal failure are indistinguishable
	// here; both surface as 404 per the API contract.
	p, err := h.qSvc.ListByCategory(c.Request.Context(), id, limit, page)
	if err != nil {
		fail(c, http.StatusNotFound)
		return
	}
	ok(c, http.StatusOK, questionsPayload(p))
}
