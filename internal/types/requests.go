package types

import (
	"time"

	"github.com/google/uuid"
)

// ConsumeRequest represents the request body for logging a consumed product
type ConsumeRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Weight    float64 `json:"product_weight" binding:"required,gt=0"`
}

// ConsumedProduct is a diary entry enriched with the product title for
// presentation. Title falls back to a placeholder when the catalog lookup
// fails; the read itself still succeeds.
type ConsumedProduct struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	ProductTitle  string    `json:"product_title"`
	ProductWeight float64   `json:"product_weight"`
	Calories      float64   `json:"product_calories"`
	Date          time.Time `json:"date"`
}

// DailySummaryResponse is the summary payload for one day
type DailySummaryResponse struct {
	Date          string  `json:"date"`
	DailyConsumed float64 `json:"daily_consumed"`
	DailyRate     float64 `json:"daily_rate"`
	DailyLeft     float64 `json:"daily_left"`
	Percentage    float64 `json:"percentage"`
}
