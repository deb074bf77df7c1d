package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBBoolArray handles the catalog's blood-group exclusion flags, stored as
// a JSONB array. Entries may be null (index 0 is unused in the source data),
// hence the pointer element type.
type JSONBBoolArray []*bool

// Value implements the driver.Valuer interface
func (a JSONBBoolArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBBoolArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBBoolArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Product is a catalog entry. The diary only reads it: title for display and
// calories per 100g for the consumption formula.
type Product struct {
	ID                   uuid.UUID      `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	Title                string         `gorm:"size:255;not null;index" json:"title"`
	Categories           string         `gorm:"size:100" json:"categories"`
	Weight               float64        `json:"weight"`
	Calories             float64        `gorm:"not null" json:"calories"`
	GroupBloodNotAllowed JSONBBoolArray `gorm:"type:jsonb;default:'[]'" json:"groupBloodNotAllowed"`
}

// BeforeCreate assigns an ID so the model works on both postgres and the
// sqlite test driver.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
