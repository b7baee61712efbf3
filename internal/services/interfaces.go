package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gulfacorns/internal/models"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/roundup"
	"gulfacorns/internal/statement"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	EnsureUser(email, name string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// RuleServicer defines the contract for reading and replacing a user's round-up rule.
type RuleServicer interface {
	GetCurrentRule(userID string) (*models.RoundUpRule, error)
	GetOrCreateRule(userID string) (*models.RoundUpRule, error)
	SetRule(userID string, ruleType roundup.RuleType, value decimal.Decimal, multiplier int, currency string) (*models.RoundUpRule, error)
}

// PurchaseResult is the outcome of recording a purchase.
type PurchaseResult struct {
	Purchase   *models.Purchase `json:"purchase"`
	PendingSum decimal.Decimal  `json:"pending_sum"`
}

// PurchaseServicer defines the contract for purchase ingestion.
type PurchaseServicer interface {
	RecordPurchase(userID, merchant string, amount decimal.Decimal, currency string) (*PurchaseResult, error)
	GetUserPurchases(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error)
}

// CurrencyTotal is an amount in a single currency.
type CurrencyTotal = statement.Total

// LedgerServicer defines the contract for the spare-change ledger.
type LedgerServicer interface {
	ListPending(userID string) ([]models.SpareLedgerEntry, error)
	SumPending(userID, currency string) (decimal.Decimal, error)
	PendingTotals(userID string) ([]CurrencyTotal, error)
	SettleAll(tx *gorm.DB, userID, currency, lotID string) (int64, error)
	GetUserEntries(userID string, status *models.LedgerStatus, page pagination.PageRequest) (*pagination.PageResponse[models.SpareLedgerEntry], error)
}

// InvestResult is the outcome of an invest sweep. Invested is the sum over
// all lots; there is one lot per pending currency.
type InvestResult struct {
	Invested decimal.Decimal    `json:"invested"`
	Lots     []models.InvestLot `json:"lots"`
}

// InvestServicer defines the contract for sweeping pending spare change into lots.
type InvestServicer interface {
	Invest(userID, portfolio string) (*InvestResult, error)
	GetUserLots(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.InvestLot], error)
}

// Feed is the aggregated dashboard read.
//
// PendingAmount and TotalInvested add amounts across currencies and are only
// meaningful while the user holds a single currency. Pending and Invested
// carry the per-currency totals clients should display.
type Feed struct {
	Purchases []models.Purchase  `json:"purchases"`
	Lots      []models.InvestLot `json:"lots"`
	// PendingAmount is the unconverted sum of Pending.
	PendingAmount decimal.Decimal `json:"pending_amount"`
	Pending       []CurrencyTotal `json:"pending"`
	// TotalInvested is the unconverted sum of Invested.
	TotalInvested decimal.Decimal     `json:"total_invested"`
	Invested      []CurrencyTotal     `json:"invested"`
	Rule          *models.RoundUpRule `json:"rule"`
}

// FeedServicer defines the contract for the dashboard feed.
type FeedServicer interface {
	GetFeed(userID string) (*Feed, error)
}

// StatementServicer defines the contract for monthly statements.
type StatementServicer interface {
	GetStatement(userID, month string) (*statement.Data, error)
}
