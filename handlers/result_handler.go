package handlers

import (
	"net/http"
	"strconv"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	attemptService *services.AttemptService
}

func NewResultHandler(attemptService *services.AttemptService) *ResultHandler {
	return &ResultHandler{
		attemptService: attemptService,
	}
}

func (h *ResultHandler) GetResults(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	results, err := h.attemptService.RecentResults(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetStats(c *gin.Context) {
	today := h.attemptService.Today()

	stats, err := h.attemptService.Stats(c.Request.Context(), today)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
