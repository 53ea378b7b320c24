package handlers

import (
	"errors"
	"net/http"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors onto the API's error taxonomy:
// 404 for a missing quiz, 409 for completed attempts and duplicate quizzes,
// 400 for validation failures, 500 for storage errors.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No quiz available for today"})
	case errors.Is(err, services.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "Today's quiz has already been completed"})
	case errors.Is(err, services.ErrQuizExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
