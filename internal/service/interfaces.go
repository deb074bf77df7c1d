package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slimmom/backend/internal/models"
	"github.com/slimmom/backend/internal/types"
)

// IProductService defines the catalog lookup capability the diary depends on
type IProductService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

// IDiaryService defines the diary ledger operations
type IDiaryService interface {
	RecordConsumption(ctx context.Context, userID, productID uuid.UUID, weight float64) (*models.DiaryEntry, *models.Diary, error)
	RemoveConsumption(ctx context.Context, userID uuid.UUID, date string, entryID uuid.UUID) error
	ListConsumption(ctx context.Context, userID uuid.UUID, date string) ([]types.ConsumedProduct, error)
	EntriesInWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*models.Diary, []models.DiaryEntry, error)
}

// ISummaryService defines the daily summary aggregation
type ISummaryService interface {
	GetDailySummary(ctx context.Context, userID uuid.UUID, date string) (*models.SummaryRecord, error)
}
