// Package services defines the business logic for categories, questions,
// and quizzes. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer and
// translation into the fixed user-facing envelopes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrNoCategories is returned when the category table is empty. The
	// public API reports this as a 400, a long-standing compatibility
	// quirk of the category listing endpoint.
	ErrNoCategories = errors.New("no categories found")

	// ErrCategoryNotFound indicates that the requested category id does
	// not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrQuestionNotFound indicates that the requested question does not
	// exist.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrPageOutOfRange is returned when a requested page offset lies
	// beyond the available rows.
	ErrPageOutOfRange = errors.New("page out of range")
)
