package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/events"
	"gulfacorns/internal/logger"
	"gulfacorns/internal/models"
	"gulfacorns/internal/money"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/roundup"
)

// Purchase bounds enforced on ingestion.
var maxPurchaseAmount = decimal.NewFromInt(100000)

const maxMerchantLength = 100

// purchaseService records purchases and their round-ups.
type purchaseService struct {
	db       *gorm.DB
	locks    *KeyedMutex
	notifier *notifier
}

// NewPurchaseService creates a new PurchaseServicer. locks must be shared
// with the invest service so ingestion and sweeps for a user never interleave.
func NewPurchaseService(db *gorm.DB, locks *KeyedMutex, publisher events.Publisher) PurchaseServicer {
	return &purchaseService{
		db:       db,
		locks:    locks,
		notifier: newNotifier(publisher),
	}
}

// RecordPurchase stores a purchase with the round-up computed from the user's
// current rule and appends a pending ledger entry when the round-up is
// positive. An empty currency defaults to the rule's currency.
func (s *purchaseService) RecordPurchase(userID, merchant string, amount decimal.Decimal, currency string) (*PurchaseResult, error) {
	// Validate input
	merchant = strings.TrimSpace(merchant)
	if merchant == "" || utf8.RuneCountInString(merchant) > maxMerchantLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "merchant must be between 1 and 100 characters")
	}
	if !amount.IsPositive() || amount.GreaterThan(maxPurchaseAmount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than 0 and at most 100000")
	}
	if currency != "" && !money.ValidCode(currency) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must be a 2 or 3 letter code")
	}

	result, err := s.recordPurchaseLocked(userID, merchant, amount, money.Normalize(currency))
	if err != nil {
		return nil, err
	}

	p := result.Purchase
	logger.Get().Infow("purchase recorded",
		"user_id", userID,
		"purchase_id", p.ID,
		"amount", p.Amount.String(),
		"roundup", p.Roundup.String(),
		"currency", p.Currency,
	)
	if p.Roundup.IsPositive() {
		s.notifier.Notify(events.NewRoundUpRecorded(p))
	}

	return result, nil
}

// recordPurchaseLocked runs the ingestion transaction while holding the
// user's lock. The lock is released before any event is published.
func (s *purchaseService) recordPurchaseLocked(userID, merchant string, amount decimal.Decimal, currency string) (*PurchaseResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var result *PurchaseResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.recordPurchaseWithDB(tx, userID, merchant, amount, currency)
		return txErr
	})
	return result, err
}

// recordPurchaseWithDB runs the ingestion steps on tx.
func (s *purchaseService) recordPurchaseWithDB(tx *gorm.DB, userID, merchant string, amount decimal.Decimal, currency string) (*PurchaseResult, error) {
	rule, err := findRule(tx, userID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, apperrors.ErrNoRuleConfigured
	}
	if currency == "" {
		currency = rule.Currency
	}
	if !money.WithinPlaces(amount, money.Places(currency)) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("amount must have at most %d decimal places for %s", money.Places(currency), currency))
	}

	purchase := &models.Purchase{
		UserID:   userID,
		Merchant: merchant,
		Amount:   amount,
		Currency: currency,
		Roundup:  roundup.Calculate(amount, rule.Rule(), currency),
	}
	if err := tx.Create(purchase).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	if purchase.Roundup.IsPositive() {
		entry := &models.SpareLedgerEntry{
			UserID:     userID,
			PurchaseID: purchase.ID,
			Amount:     purchase.Roundup,
			Currency:   currency,
			Status:     models.LedgerStatusPending,
		}
		if err := tx.Create(entry).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
		}
	}

	pending, err := findPending(tx, userID, currency)
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{Purchase: purchase, PendingSum: sumEntries(pending)}, nil
}

// GetUserPurchases retrieves a paginated list of purchases, newest first.
func (s *purchaseService) GetUserPurchases(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error) {
	base := s.db.Model(&models.Purchase{}).Where("user_id = ?", userID)

	result, err := pagination.Find[models.Purchase](base, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return result, nil
}
