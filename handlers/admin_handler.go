package handlers

import (
	"net/http"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	quizService *services.QuizService
}

func NewAdminHandler(quizService *services.QuizService) *AdminHandler {
	return &AdminHandler{
		quizService: quizService,
	}
}

// CreateQuiz publishes a quiz for a date. Malformed input is rejected before
// any write; a date that already has a quiz is a conflict.
func (h *AdminHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}
