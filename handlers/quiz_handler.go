package handlers

import (
	"net/http"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService    *services.QuizService
	attemptService *services.AttemptService
}

func NewQuizHandler(quizService *services.QuizService, attemptService *services.AttemptService) *QuizHandler {
	return &QuizHandler{
		quizService:    quizService,
		attemptService: attemptService,
	}
}

// GetTodayQuiz returns today's quiz with correct answers stripped. A date
// that has already been completed is reported as a conflict, distinct from
// the not-found case, so the client can show the right message.
func (h *QuizHandler) GetTodayQuiz(c *gin.Context) {
	date := h.attemptService.Today()

	quiz, err := h.quizService.QuizForDate(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	completed, err := h.attemptService.HasResultForDate(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if completed {
		writeServiceError(c, services.ErrAlreadyCompleted)
		return
	}

	c.JSON(http.StatusOK, services.Redact(quiz))
}

func (h *QuizHandler) GetQuizStatus(c *gin.Context) {
	date := h.attemptService.Today()

	status, err := h.attemptService.Status(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var submission services.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := h.attemptService.Today()
	report, err := h.attemptService.Submit(c.Request.Context(), date, &submission)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
