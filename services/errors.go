package services

import (
	"errors"
	"fmt"
)

var (
	// ErrQuizNotFound is returned when no quiz has been published for the
	// requested date.
	ErrQuizNotFound = errors.New("no quiz available for the requested date")
	// ErrAlreadyCompleted is returned when a result has already been recorded
	// for the requested date.
	ErrAlreadyCompleted = errors.New("quiz already completed for the requested date")
	// ErrQuizExists is returned when authoring targets a date that already has
	// a published quiz.
	ErrQuizExists = errors.New("a quiz already exists for the requested date")
)

// ValidationError describes malformed authoring or submission input. Question
// is the 1-based index of the offending question, or 0 for quiz-level errors.
type ValidationError struct {
	Question int
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Question > 0 {
		return fmt.Sprintf("question %d: %s %s", e.Question, e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return e.Message
}

func validationErr(question int, field, message string) *ValidationError {
	return &ValidationError{Question: question, Field: field, Message: message}
}
