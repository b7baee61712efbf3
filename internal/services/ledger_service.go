package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/models"
	"gulfacorns/internal/money"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/statement"
)

// ledgerService reads and settles spare-change ledger entries.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// ListPending returns the user's pending entries, oldest first.
func (s *ledgerService) ListPending(userID string) ([]models.SpareLedgerEntry, error) {
	return findPending(s.db, userID, "")
}

// SumPending returns the total pending amount for one currency.
func (s *ledgerService) SumPending(userID, currency string) (decimal.Decimal, error) {
	entries, err := findPending(s.db, userID, money.Normalize(currency))
	if err != nil {
		return decimal.Zero, err
	}
	return sumEntries(entries), nil
}

// PendingTotals returns the pending amount per currency.
func (s *ledgerService) PendingTotals(userID string) ([]CurrencyTotal, error) {
	entries, err := findPending(s.db, userID, "")
	if err != nil {
		return nil, err
	}
	return entryTotals(entries), nil
}

// SettleAll marks every pending entry of the user in currency as settled
// against lotID. It must run inside the caller's transaction.
func (s *ledgerService) SettleAll(tx *gorm.DB, userID, currency, lotID string) (int64, error) {
	result := tx.Model(&models.SpareLedgerEntry{}).
		Where("user_id = ? AND currency = ? AND status = ?", userID, currency, models.LedgerStatusPending).
		Updates(map[string]interface{}{
			"status":        models.LedgerStatusSettled,
			"invest_lot_id": lotID,
		})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrPersistenceFailure, result.Error)
	}
	return result.RowsAffected, nil
}

// GetUserEntries retrieves a paginated list of ledger entries, newest first,
// optionally filtered by status.
func (s *ledgerService) GetUserEntries(userID string, status *models.LedgerStatus, page pagination.PageRequest) (*pagination.PageResponse[models.SpareLedgerEntry], error) {
	base := s.db.Model(&models.SpareLedgerEntry{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	result, err := pagination.Find[models.SpareLedgerEntry](base, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return result, nil
}

// findPending loads pending entries with the given db handle, which may be a
// transaction. An empty currency matches every currency.
func findPending(db *gorm.DB, userID, currency string) ([]models.SpareLedgerEntry, error) {
	q := db.Where("user_id = ? AND status = ?", userID, models.LedgerStatusPending)
	if currency != "" {
		q = q.Where("currency = ?", currency)
	}

	var entries []models.SpareLedgerEntry
	if err := q.Order("created_at ASC").Order("id ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return entries, nil
}

func sumEntries(entries []models.SpareLedgerEntry) decimal.Decimal {
	amounts := make([]decimal.Decimal, len(entries))
	for i, e := range entries {
		amounts[i] = e.Amount
	}
	return money.Sum(amounts...)
}

func entryTotals(entries []models.SpareLedgerEntry) []CurrencyTotal {
	return statement.Totals(entries,
		func(e models.SpareLedgerEntry) string { return e.Currency },
		func(e models.SpareLedgerEntry) decimal.Decimal { return e.Amount },
	)
}
