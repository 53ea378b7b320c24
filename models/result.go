package models

import (
	"time"
)

// Result is the persisted outcome of one graded attempt. The per-question
// breakdown is returned to the caller at submission time but only the
// aggregate is stored. The unique index on Date enforces the
// one-attempt-per-day rule at the database level, so two racing submissions
// cannot both be recorded.
type Result struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Date           string    `json:"date" gorm:"size:10;uniqueIndex;not null"`
	Score          int       `json:"score" gorm:"not null"`
	TimeTaken      int       `json:"time_taken" gorm:"not null"` // seconds
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}
