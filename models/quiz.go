package models

import (
	"time"
)

type QuestionType string

const (
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionText     QuestionType = "text"
	QuestionDropdown QuestionType = "dropdown"
)

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionRadio, QuestionCheckbox, QuestionText, QuestionDropdown:
		return true
	}
	return false
}

// HasOptions reports whether the type carries a fixed option list. Free-text
// questions are the only type without one.
func (t QuestionType) HasOptions() bool {
	return t != QuestionText
}

// Quiz groups the questions published for one calendar date. The unique index
// on Date guarantees at most one quiz per day; questions are created together
// with their quiz in a single transaction and are immutable afterwards.
type Quiz struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Date      string     `json:"date" gorm:"size:10;uniqueIndex;not null"`
	CreatedAt time.Time  `json:"created_at"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

type Question struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	QuizID        uint         `json:"quiz_id" gorm:"not null;index"`
	Text          string       `json:"question" gorm:"not null"`
	Type          QuestionType `json:"type" gorm:"size:20;not null"`
	Options       []string     `json:"options" gorm:"serializer:json"` // null for free-text questions
	CorrectAnswer string       `json:"correct_answer" gorm:"not null"` // comma-separated set for checkbox
	Position      int          `json:"-" gorm:"not null"`
	CreatedAt     time.Time    `json:"created_at"`
}
