package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gulfacorns/internal/models"
	"gulfacorns/internal/roundup"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email: email,
		Name:  "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRule stores a round-up rule for the user.
func CreateTestRule(t *testing.T, db *gorm.DB, userID string, ruleType roundup.RuleType, value string, multiplier int, currency string) *models.RoundUpRule {
	t.Helper()

	rule := &models.RoundUpRule{
		UserID:     userID,
		Type:       ruleType,
		Value:      decimal.RequireFromString(value),
		Multiplier: multiplier,
		Currency:   currency,
	}
	if err := db.Create(rule).Error; err != nil {
		t.Fatalf("failed to create test rule: %v", err)
	}
	return rule
}

// CreateTestPurchase inserts a purchase row directly, bypassing the calculator.
func CreateTestPurchase(t *testing.T, db *gorm.DB, userID, amount, roundupAmount, currency string) *models.Purchase {
	t.Helper()

	purchase := &models.Purchase{
		UserID:    userID,
		Merchant:  fmt.Sprintf("Merchant %d", nextID()),
		Amount:    decimal.RequireFromString(amount),
		Currency:  currency,
		Roundup:   decimal.RequireFromString(roundupAmount),
		CreatedAt: time.Now(),
	}
	if err := db.Create(purchase).Error; err != nil {
		t.Fatalf("failed to create test purchase: %v", err)
	}
	return purchase
}

// CreateTestPendingEntry creates a purchase together with its pending ledger entry.
func CreateTestPendingEntry(t *testing.T, db *gorm.DB, userID, amount, currency string) *models.SpareLedgerEntry {
	t.Helper()

	purchase := CreateTestPurchase(t, db, userID, "10", amount, currency)
	entry := &models.SpareLedgerEntry{
		UserID:     userID,
		PurchaseID: purchase.ID,
		Amount:     decimal.RequireFromString(amount),
		Currency:   currency,
		Status:     models.LedgerStatusPending,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test ledger entry: %v", err)
	}
	return entry
}

// CreateTestInvestLot creates a lot in the balanced portfolio.
func CreateTestInvestLot(t *testing.T, db *gorm.DB, userID, amount, currency string) *models.InvestLot {
	t.Helper()

	lot := &models.InvestLot{
		UserID:    userID,
		Amount:    decimal.RequireFromString(amount),
		Currency:  currency,
		Portfolio: models.DefaultPortfolio,
		CreatedAt: time.Now(),
	}
	if err := db.Create(lot).Error; err != nil {
		t.Fatalf("failed to create test invest lot: %v", err)
	}
	return lot
}
