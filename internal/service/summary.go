package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/slimmom/backend/internal/dateutil"
	"github.com/slimmom/backend/internal/models"
	"gorm.io/gorm"
)

// DailyRate is the fixed daily calorie allowance summaries are computed
// against. Per-user rates are a future concern.
const DailyRate = 2800

// SummaryService derives daily totals from the diary and maintains the
// per-user cached history of summary records. It shares the diary's per-user
// locks so summary upserts and diary mutations for one user never interleave.
type SummaryService struct {
	db    *gorm.DB
	diary *DiaryService
}

var _ ISummaryService = (*SummaryService)(nil)

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(db *gorm.DB, diary *DiaryService) *SummaryService {
	return &SummaryService{db: db, diary: diary}
}

// GetDailySummary computes the totals for one (user, day), upserts the
// cached record for that day and returns it. A day with no logged entries is
// reported as ErrNoEntriesForDate rather than a zero summary. Recomputing
// over unchanged entries yields the same record.
func (s *SummaryService) GetDailySummary(ctx context.Context, userID uuid.UUID, date string) (*models.SummaryRecord, error) {
	dayStart, dayEnd, err := dateutil.ParseDay(date)
	if err != nil {
		return nil, err
	}

	unlock := s.diary.locks.Lock(userID)
	defer unlock()

	diary, entries, err := s.diary.EntriesInWindow(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if diary == nil || len(entries) == 0 {
		return nil, ErrNoEntriesForDate
	}

	var consumed float64
	for _, e := range entries {
		consumed += e.Calories
	}
	percentage := round2(consumed / DailyRate * 100)

	var record *models.SummaryRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		summary, err := findOrCreateSummary(tx, userID)
		if err != nil {
			return err
		}

		// The record's own date is the upsert key. Matching through the
		// referenced diary's entries, as the historical implementation did,
		// breaks once an entry is removed and leaks duplicate records.
		var existing models.SummaryRecord
		err = tx.Where("summary_id = ? AND date >= ? AND date < ?",
			summary.ID, dayStart, dayEnd).
			First(&existing).Error
		switch {
		case err == nil:
			existing.DiaryID = diary.ID
			existing.DailyConsumed = consumed
			existing.DailyRate = DailyRate
			existing.DailyLeft = DailyRate - consumed
			existing.Percentage = percentage
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			record = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.SummaryRecord{
				SummaryID:     summary.ID,
				DiaryID:       diary.ID,
				Date:          dayStart,
				DailyConsumed: consumed,
				DailyRate:     DailyRate,
				DailyLeft:     DailyRate - consumed,
				Percentage:    percentage,
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			record = &created
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("computing daily summary: %w", err)
	}
	return record, nil
}

func findOrCreateSummary(tx *gorm.DB, userID uuid.UUID) (*models.Summary, error) {
	var summary models.Summary
	err := tx.Where("user_id = ?", userID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		summary = models.Summary{UserID: userID}
		err = tx.Create(&summary).Error
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
