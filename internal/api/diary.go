package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/slimmom/backend/internal/dateutil"
	"github.com/slimmom/backend/internal/middleware"
	"github.com/slimmom/backend/internal/service"
	"github.com/slimmom/backend/internal/types"
)

// DiaryHandler exposes the consumption diary over HTTP
type DiaryHandler struct {
	diary     service.IDiaryService
	validator middleware.TokenValidator
}

func NewDiaryHandler(diary service.IDiaryService, validator middleware.TokenValidator) *DiaryHandler {
	return &DiaryHandler{diary: diary, validator: validator}
}

func (h *DiaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	diary := router.Group("/diary")
	diary.Use(middleware.AuthMiddleware(h.validator))
	{
		diary.POST("/consumed", h.AddConsumed)
		diary.GET("/consumed/:date", h.ListConsumed)
		diary.DELETE("/remove/:date/:entryId", h.RemoveConsumed)
	}
}

// AddConsumed logs a consumed product for the current day. Logging the same
// product twice on one day updates the earlier entry.
func (h *DiaryHandler) AddConsumed(c *gin.Context) {
	var req types.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID and weight are required"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	userID := currentUserID(c)
	entry, diary, err := h.diary.RecordConsumption(c.Request.Context(), userID, productID, req.Weight)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		case errors.Is(err, service.ErrInvalidWeight):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID and weight are required"})
		default:
			log.Printf("add consumed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding/updating consumed product"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Consumed product added/updated successfully",
		"entry":      entry,
		"diaryEntry": diary,
	})
}

// ListConsumed returns everything logged on the given day, possibly empty
func (h *DiaryHandler) ListConsumed(c *gin.Context) {
	date := c.Param("date")
	userID := currentUserID(c)

	consumed, err := h.diary.ListConsumption(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, dateutil.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
			return
		}
		log.Printf("list consumed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching consumed products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":             date,
		"consumedProducts": consumed,
	})
}

// RemoveConsumed removes one entry by identity within the given day
func (h *DiaryHandler) RemoveConsumed(c *gin.Context) {
	date := c.Param("date")
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid entry ID"})
		return
	}

	userID := currentUserID(c)
	if err := h.diary.RemoveConsumption(c.Request.Context(), userID, date, entryID); err != nil {
		switch {
		case errors.Is(err, dateutil.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		case errors.Is(err, service.ErrDiaryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Diary entry not found for this date!"})
		case errors.Is(err, service.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found in diary for this date!"})
		default:
			log.Printf("remove consumed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product!"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Consumed product removed successfully!"})
}

// currentUserID reads the identity placed into the context by the auth
// middleware. Routes registered here are always behind that middleware.
func currentUserID(c *gin.Context) uuid.UUID {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
