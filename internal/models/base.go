package models

import (
	"time"

	"moneyharbor/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Rows are never soft-deleted:
// leads are append-only and batches and reminders only change status.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
