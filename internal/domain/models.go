// Package domain defines the persistence models for trivia categories and
// questions. These types are mapped with GORM and form the core data layer
// of the trivia application.
package domain

import (
	"encoding/json"
	"strconv"
)

// Category is a labeled grouping for questions (e.g. "Science").
// Categories are created out-of-band as seed data and are read-only
// through the public API surface.
//
// Fields:
//   - ID: integer primary key, stable identity.
//   - Type: human-readable label.
type Category struct {
	ID   int    `json:"id"   gorm:"primaryKey"`
	Type string `json:"type" gorm:"type:varchar(64);not null"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// CategoryID is an integer category reference that tolerates legacy JSON
// payloads. Historical clients posted the category as a quoted string
// ("category": "2") while newer ones send a number; both decode to the
// same integer, and it always marshals back as a number.
type CategoryID int

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (c *CategoryID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = CategoryID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*c = CategoryID(n)
	return nil
}

// Question represents a single trivia prompt/answer pair. Rows are created
// via the add-question endpoint and deleted via the delete endpoint; they
// are never updated in place.
//
// Fields:
//   - ID: integer primary key, auto-assigned on insert, stable once assigned.
//   - Question / Answer: prompt and expected answer text.
//   - CategoryID: integer reference to Category.ID. Serialized as
//     "category" for wire compatibility. The association is not enforced
//     with a database foreign key; dangling references are tolerated.
//   - Difficulty: integer rating.
type Question struct {
	ID         int        `json:"id"         gorm:"primaryKey;autoIncrement"`
	Question   string     `json:"question"   gorm:"type:text;not null"`
	Answer     string     `json:"answer"     gorm:"type:text;not null"`
	CategoryID CategoryID `json:"category"   gorm:"column:category_id;index:idx_question_category"`
	Difficulty int        `json:"difficulty" gorm:"not null"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// QuizQuestion is the trimmed question shape returned by the quiz
// endpoint: category and difficulty are deliberately omitted.
type QuizQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
