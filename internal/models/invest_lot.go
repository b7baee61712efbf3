package models

import (
	"time"

	"github.com/shopspring/decimal"

	"gulfacorns/internal/uuid"

	"gorm.io/gorm"
)

// DefaultPortfolio is used when an invest request names no portfolio.
const DefaultPortfolio = "balanced"

// InvestLot records one sweep of pending spare change in a single currency.
// This is append-only data: no Base embed, no updates.
type InvestLot struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,3);not null" json:"amount"`
	Currency  string          `gorm:"size:3;not null" json:"currency"`
	Portfolio string          `gorm:"size:50;not null" json:"portfolio"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (l *InvestLot) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New()
	}
	return nil
}
