package models

import "github.com/shopspring/decimal"

// LedgerStatus is the settlement state of a spare-change entry.
type LedgerStatus string

const (
	LedgerStatusPending LedgerStatus = "pending"
	LedgerStatusSettled LedgerStatus = "settled"
)

// SpareLedgerEntry holds the round-up of one purchase until it is swept into
// an InvestLot. Entries only ever move from pending to settled.
type SpareLedgerEntry struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index:idx_ledger_user_status" json:"user_id"`
	PurchaseID  string          `gorm:"type:uuid;not null" json:"purchase_id"`
	InvestLotID *string         `gorm:"type:uuid" json:"invest_lot_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,3);not null" json:"amount"`
	Currency    string          `gorm:"size:3;not null" json:"currency"`
	Status      LedgerStatus    `gorm:"size:16;not null;index:idx_ledger_user_status" json:"status"`
}
