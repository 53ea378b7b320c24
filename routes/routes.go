package routes

import (
	"net/http"

	"dailyquiz/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	resultHandler *handlers.ResultHandler,
	adminHandler *handlers.AdminHandler,
) {
	// API routes
	api := router.Group("/api")
	{
		// Quiz-taking flow
		api.GET("/quiz", quizHandler.GetTodayQuiz)
		api.GET("/quiz/status", quizHandler.GetQuizStatus)
		api.POST("/submit", quizHandler.SubmitQuiz)

		// History and progress
		results := api.Group("/results")
		{
			results.GET("", resultHandler.GetResults)
			results.GET("/stats", resultHandler.GetStats)
		}

		// Authoring
		admin := api.Group("/admin")
		{
			admin.POST("/quizzes", adminHandler.CreateQuiz)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
