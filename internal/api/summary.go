package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slimmom/backend/internal/dateutil"
	"github.com/slimmom/backend/internal/middleware"
	"github.com/slimmom/backend/internal/service"
	"github.com/slimmom/backend/internal/types"
)

// SummaryHandler exposes the daily summary over HTTP
type SummaryHandler struct {
	summary   service.ISummaryService
	validator middleware.TokenValidator
}

func NewSummaryHandler(summary service.ISummaryService, validator middleware.TokenValidator) *SummaryHandler {
	return &SummaryHandler{summary: summary, validator: validator}
}

func (h *SummaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	diary := router.Group("/diary")
	diary.Use(middleware.AuthMiddleware(h.validator))
	{
		diary.GET("/summary/:date", h.GetDailySummary)
	}
}

// GetDailySummary computes and returns the totals for one day. A day with
// nothing logged is a 404, not a zero summary.
func (h *SummaryHandler) GetDailySummary(c *gin.Context) {
	date := c.Param("date")
	userID := currentUserID(c)

	record, err := h.summary.GetDailySummary(c.Request.Context(), userID, date)
	if err != nil {
		switch {
		case errors.Is(err, dateutil.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		case errors.Is(err, service.ErrNoEntriesForDate):
			c.JSON(http.StatusNotFound, gin.H{"message": "No diary entry found for this date."})
		default:
			log.Printf("daily summary: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error calculating summary"})
		}
		return
	}

	c.JSON(http.StatusOK, types.DailySummaryResponse{
		Date:          date,
		DailyConsumed: record.DailyConsumed,
		DailyRate:     record.DailyRate,
		DailyLeft:     record.DailyLeft,
		Percentage:    record.Percentage,
	})
}
