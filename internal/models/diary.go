package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Diary is the per-user container of consumption entries. It is created
// lazily on the first consumption and never deleted by the application.
type Diary struct {
	ID        uuid.UUID    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	UserID    uuid.UUID    `gorm:"type:varchar(36);not null;uniqueIndex" json:"userId"`
	Entries   []DiaryEntry `json:"entries"`
}

// DiaryEntry is one consumed product. At most one entry exists per
// (product, UTC calendar day) within a diary; logging the same product again
// on the same day overwrites this row instead of appending a new one, so the
// entry ID stays stable across same-day corrections.
type DiaryEntry struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	DiaryID       uuid.UUID `gorm:"type:varchar(36);not null;index" json:"diaryId"`
	ProductID     uuid.UUID `gorm:"type:varchar(36);not null" json:"productId"`
	ProductWeight float64   `gorm:"not null" json:"product_weight"`
	Calories      float64   `gorm:"not null" json:"product_calories"`
	Date          time.Time `gorm:"not null;index" json:"date"`
}

func (d *Diary) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (e *DiaryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
