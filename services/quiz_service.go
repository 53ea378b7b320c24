package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"dailyquiz/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// quizDateFormat is the calendar-day granularity used everywhere a date
// crosses a boundary: storage, the attempt gate, and the API.
const quizDateFormat = "2006-01-02"

type QuizService struct {
	db       *gorm.DB
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewQuizService builds the quiz store. redis may be nil, in which case every
// read goes straight to the database.
func NewQuizService(db *gorm.DB, redis *redis.Client, cacheTTL time.Duration) *QuizService {
	return &QuizService{
		db:       db,
		redis:    redis,
		cacheTTL: cacheTTL,
	}
}

type CreateQuizRequest struct {
	Date      string                  `json:"date" binding:"required"`
	Questions []CreateQuestionRequest `json:"questions" binding:"required,min=1"`
}

type CreateQuestionRequest struct {
	Text          string              `json:"question"`
	Type          models.QuestionType `json:"type"`
	Options       []string            `json:"options"`
	CorrectAnswer string              `json:"correct_answer"`
}

// PublicQuestion is a question with the correct answer stripped, safe to hand
// to the quiz-taking flow.
type PublicQuestion struct {
	ID      uint                `json:"id"`
	Text    string              `json:"question"`
	Type    models.QuestionType `json:"type"`
	Options []string            `json:"options"`
}

type PublicQuiz struct {
	ID        uint             `json:"id"`
	Date      string           `json:"date"`
	Questions []PublicQuestion `json:"questions"`
}

// Redact strips correct answers from a quiz, preserving question and option
// order exactly.
func Redact(quiz *models.Quiz) *PublicQuiz {
	public := &PublicQuiz{
		ID:        quiz.ID,
		Date:      quiz.Date,
		Questions: make([]PublicQuestion, 0, len(quiz.Questions)),
	}
	for _, question := range quiz.Questions {
		public.Questions = append(public.Questions, PublicQuestion{
			ID:      question.ID,
			Text:    question.Text,
			Type:    question.Type,
			Options: question.Options,
		})
	}
	return public
}

// CreateQuiz validates and persists a quiz for one date in a single
// transaction. The unique index on quizzes.date makes a second authoring
// write for the same date fail with ErrQuizExists instead of appending
// questions to the published quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, req *CreateQuizRequest) (*models.Quiz, error) {
	date, err := NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	if len(req.Questions) == 0 {
		return nil, validationErr(0, "questions", "must contain at least one question")
	}
	for i, question := range req.Questions {
		if err := validateQuestion(i+1, &question); err != nil {
			return nil, err
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	quiz := models.Quiz{Date: date}
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrQuizExists
		}
		return nil, err
	}

	for i, qReq := range req.Questions {
		question := models.Question{
			QuizID:        quiz.ID,
			Text:          strings.TrimSpace(qReq.Text),
			Type:          qReq.Type,
			CorrectAnswer: qReq.CorrectAnswer,
			Position:      i + 1,
		}
		if qReq.Type.HasOptions() {
			question.Options = qReq.Options
		}

		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, date)
	return s.QuizForDate(ctx, date)
}

// QuizForDate returns the quiz published for date with questions in authored
// order, including correct answers. Returns ErrQuizNotFound when no quiz
// exists for the date.
func (s *QuizService) QuizForDate(ctx context.Context, date string) (*models.Quiz, error) {
	if quiz := s.cachedQuiz(ctx, date); quiz != nil {
		return quiz, nil
	}

	var quiz models.Quiz
	err := s.db.WithContext(ctx).Where("date = ?", date).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position")
		}).
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	s.storeQuiz(ctx, &quiz)
	return &quiz, nil
}

// NormalizeDate validates a calendar date and returns its canonical
// YYYY-MM-DD form.
func NormalizeDate(raw string) (string, error) {
	parsed, err := time.Parse(quizDateFormat, strings.TrimSpace(raw))
	if err != nil {
		return "", validationErr(0, "date", "must be a calendar date in YYYY-MM-DD form")
	}
	return parsed.Format(quizDateFormat), nil
}

func validateQuestion(index int, req *CreateQuestionRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return validationErr(index, "question", "must not be empty")
	}
	if !req.Type.Valid() {
		return validationErr(index, "type", "must be one of radio, checkbox, text, dropdown")
	}
	if req.CorrectAnswer == "" {
		return validationErr(index, "correct_answer", "must not be empty")
	}

	if !req.Type.HasOptions() {
		if len(req.Options) > 0 {
			return validationErr(index, "options", "must be null for text questions")
		}
		return nil
	}

	if len(req.Options) < 2 {
		return validationErr(index, "options", "must list at least two options")
	}
	available := make(map[string]bool, len(req.Options))
	for _, option := range req.Options {
		if strings.TrimSpace(option) == "" {
			return validationErr(index, "options", "must not contain empty options")
		}
		available[option] = true
	}

	// The correct answer has to reference listed options: each comma token
	// for checkbox questions, the whole value otherwise.
	if req.Type == models.QuestionCheckbox {
		for _, token := range strings.Split(req.CorrectAnswer, ",") {
			if !available[token] {
				return validationErr(index, "correct_answer", "must reference listed options")
			}
		}
		return nil
	}
	if !available[req.CorrectAnswer] {
		return validationErr(index, "correct_answer", "must be one of the listed options")
	}
	return nil
}

func quizCacheKey(date string) string {
	return "quiz:" + date
}

func (s *QuizService) cachedQuiz(ctx context.Context, date string) *models.Quiz {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, quizCacheKey(date)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error getting quiz for %s: %v", date, err)
		}
		return nil
	}

	var quiz models.Quiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		log.Printf("Failed to decode cached quiz for %s: %v", date, err)
		return nil
	}
	return &quiz
}

func (s *QuizService) storeQuiz(ctx context.Context, quiz *models.Quiz) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, quizCacheKey(quiz.Date), data, s.cacheTTL).Err(); err != nil {
		log.Printf("Failed to store quiz in Redis: %v", err)
	}
}

func (s *QuizService) invalidateCache(ctx context.Context, date string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, quizCacheKey(date)).Err(); err != nil {
		log.Printf("Failed to invalidate quiz cache for %s: %v", date, err)
	}
}
