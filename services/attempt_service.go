package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dailyquiz/models"

	"gorm.io/gorm"
)

const defaultResultsLimit = 30

type AttemptService struct {
	db      *gorm.DB
	quizzes *QuizService
	loc     *time.Location
}

func NewAttemptService(db *gorm.DB, quizzes *QuizService, loc *time.Location) *AttemptService {
	return &AttemptService{
		db:      db,
		quizzes: quizzes,
		loc:     loc,
	}
}

// AttemptStatus is the attempt-gate verdict for one date.
type AttemptStatus struct {
	HasQuiz     bool `json:"hasQuiz"`
	IsCompleted bool `json:"isCompleted"`
	CanTakeQuiz bool `json:"canTakeQuiz"`
}

type Submission struct {
	Date      string                      `json:"date"`
	Answers   map[uint]models.AnswerValue `json:"answers"`
	TimeTaken int                         `json:"time_taken"`
}

// Today returns the current calendar date in the service's reference zone.
// Handlers call it once per request and thread the value through every store
// and gate call, so a midnight rollover cannot give two components a
// different idea of "today" within one request.
func (s *AttemptService) Today() string {
	return time.Now().In(s.loc).Format(quizDateFormat)
}

// Status evaluates the attempt gate for date: an attempt is allowed iff a
// quiz is published and no result has been recorded yet.
func (s *AttemptService) Status(ctx context.Context, date string) (*AttemptStatus, error) {
	hasQuiz := true
	if _, err := s.quizzes.QuizForDate(ctx, date); err != nil {
		if !errors.Is(err, ErrQuizNotFound) {
			return nil, err
		}
		hasQuiz = false
	}

	completed, err := s.HasResultForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &AttemptStatus{
		HasQuiz:     hasQuiz,
		IsCompleted: completed,
		CanTakeQuiz: hasQuiz && !completed,
	}, nil
}

func (s *AttemptService) HasResultForDate(ctx context.Context, date string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Result{}).
		Where("date = ?", date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Submit grades a submission against the authoritative quiz for date and
// records the aggregate result. The gate is checked before grading and again
// by the unique index on results.date at insert time, so two racing
// submissions resolve to exactly one recorded result and one
// ErrAlreadyCompleted.
func (s *AttemptService) Submit(ctx context.Context, date string, sub *Submission) (*GradeReport, error) {
	if sub.Date != "" && sub.Date != date {
		return nil, validationErr(0, "date",
			fmt.Sprintf("submission is for %s but the current quiz date is %s", sub.Date, date))
	}
	if sub.TimeTaken < 0 {
		return nil, validationErr(0, "time_taken", "must not be negative")
	}

	quiz, err := s.quizzes.QuizForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	completed, err := s.HasResultForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if completed {
		return nil, ErrAlreadyCompleted
	}

	report := Grade(quiz.Questions, sub.Answers, sub.TimeTaken)

	result := models.Result{
		Date:           date,
		Score:          report.Score,
		TimeTaken:      sub.TimeTaken,
		TotalQuestions: report.TotalQuestions,
	}
	if err := s.db.WithContext(ctx).Create(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	return report, nil
}

// RecentResults lists recorded results newest first. A non-positive limit
// falls back to the default window of 30.
func (s *AttemptService) RecentResults(ctx context.Context, limit int) ([]models.Result, error) {
	if limit <= 0 {
		limit = defaultResultsLimit
	}

	var results []models.Result
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// ResultStats aggregates the whole result history for the progress view.
type ResultStats struct {
	TotalAttempts       int     `json:"totalAttempts"`
	BestScorePercent    float64 `json:"bestScorePercent"`
	AverageScorePercent float64 `json:"averageScorePercent"`
	AverageTimeSeconds  float64 `json:"averageTimeSeconds"`
	CurrentStreak       int     `json:"currentStreak"`
}

// Stats computes score and timing aggregates over every recorded result.
// today anchors the streak calculation and comes from the same per-request
// date as everything else.
func (s *AttemptService) Stats(ctx context.Context, today string) (*ResultStats, error) {
	var results []models.Result
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&results).Error; err != nil {
		return nil, err
	}

	stats := &ResultStats{TotalAttempts: len(results)}
	if len(results) == 0 {
		return stats, nil
	}

	var scoreSum, timeSum float64
	for _, result := range results {
		percent := 0.0
		if result.TotalQuestions > 0 {
			percent = float64(result.Score) / float64(result.TotalQuestions) * 100
		}
		if percent > stats.BestScorePercent {
			stats.BestScorePercent = percent
		}
		scoreSum += percent
		timeSum += float64(result.TimeTaken)
	}
	stats.AverageScorePercent = scoreSum / float64(len(results))
	stats.AverageTimeSeconds = timeSum / float64(len(results))

	dates := make([]string, 0, len(results))
	for _, result := range results {
		dates = append(dates, result.Date)
	}
	stats.CurrentStreak = currentStreak(dates, today)

	return stats, nil
}

// currentStreak counts consecutive days with a recorded result, walking
// backwards from today (or yesterday, when today's quiz has not been taken
// yet). dates must be unique and sorted newest first.
func currentStreak(dates []string, today string) int {
	if len(dates) == 0 {
		return 0
	}

	day, err := time.Parse(quizDateFormat, today)
	if err != nil {
		return 0
	}
	if dates[0] != today {
		day = day.AddDate(0, 0, -1)
		if dates[0] != day.Format(quizDateFormat) {
			return 0
		}
	}

	streak := 0
	for _, date := range dates {
		if date != day.Format(quizDateFormat) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
