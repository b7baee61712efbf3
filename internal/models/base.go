package models

import (
	"time"

	"gulfacorns/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for mutable tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every model managed by AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&RoundUpRule{},
		&Purchase{},
		&InvestLot{},
		&SpareLedgerEntry{},
	}
}
