package main

import (
	"log"
	"os"

	"dailyquiz/config"
	"dailyquiz/handlers"
	"dailyquiz/middleware"
	"dailyquiz/models"
	"dailyquiz/routes"
	"dailyquiz/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dailyquiz",
		Short: "One-quiz-per-day web service",
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newInitDBCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			if err := migrate(db); err != nil {
				return err
			}
			log.Println("Database initialized successfully")
			return nil
		},
	}
}

func runServer() error {
	// Load configuration
	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	if err := migrate(db); err != nil {
		return err
	}

	// Initialize Redis (optional quiz cache)
	redisClient := config.InitRedis(cfg)

	// Initialize services
	quizService := services.NewQuizService(db, redisClient, cfg.QuizCacheTTL)
	attemptService := services.NewAttemptService(db, quizService, loc)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService, attemptService)
	resultHandler := handlers.NewResultHandler(attemptService)
	adminHandler := handlers.NewAdminHandler(quizService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router, quizHandler, resultHandler, adminHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Result{},
	)
}
