package models

import (
	"time"

	"github.com/shopspring/decimal"

	"gulfacorns/internal/uuid"

	"gorm.io/gorm"
)

// Purchase is a simulated card purchase. Its round-up is fixed at creation
// from the rule in force at that moment; purchases are never updated.
type Purchase struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Merchant  string          `gorm:"size:100;not null" json:"merchant"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	Currency  string          `gorm:"size:3;not null" json:"currency"`
	Roundup   decimal.Decimal `gorm:"type:numeric(20,3);not null" json:"roundup"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
