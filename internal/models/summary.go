package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Summary mirrors the Diary structure: one per user, holding the cached
// history of daily summary records.
type Summary struct {
	ID        uuid.UUID       `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	UserID    uuid.UUID       `gorm:"type:varchar(36);not null;uniqueIndex" json:"userId"`
	Records   []SummaryRecord `json:"summaryInfo"`
}

// SummaryRecord caches the derived totals for one (user, day). Date is the
// UTC day start and is the upsert key; recomputation overwrites the existing
// record for that day. DiaryID references the diary the totals were derived
// from.
type SummaryRecord struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	SummaryID     uuid.UUID `gorm:"type:varchar(36);not null;index" json:"summaryId"`
	DiaryID       uuid.UUID `gorm:"type:varchar(36);not null" json:"diaryId"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	DailyConsumed float64   `json:"daily_consumed"`
	DailyRate     float64   `json:"daily_rate"`
	DailyLeft     float64   `json:"daily_left"`
	Percentage    float64   `json:"percentage"`
}

func (s *Summary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (r *SummaryRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
