package handlers

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gulfacorns/internal/models"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/roundup"
	"gulfacorns/internal/services"
	"gulfacorns/internal/statement"
)

// --- mock rule service ---

type mockRuleService struct {
	getCurrentRuleFn  func(userID string) (*models.RoundUpRule, error)
	getOrCreateRuleFn func(userID string) (*models.RoundUpRule, error)
	setRuleFn         func(userID string, ruleType roundup.RuleType, value decimal.Decimal, multiplier int, currency string) (*models.RoundUpRule, error)
}

func (m *mockRuleService) GetCurrentRule(userID string) (*models.RoundUpRule, error) {
	if m.getCurrentRuleFn != nil {
		return m.getCurrentRuleFn(userID)
	}
	return &models.RoundUpRule{}, nil
}

func (m *mockRuleService) GetOrCreateRule(userID string) (*models.RoundUpRule, error) {
	if m.getOrCreateRuleFn != nil {
		return m.getOrCreateRuleFn(userID)
	}
	return &models.RoundUpRule{}, nil
}

func (m *mockRuleService) SetRule(userID string, ruleType roundup.RuleType, value decimal.Decimal, multiplier int, currency string) (*models.RoundUpRule, error) {
	if m.setRuleFn != nil {
		return m.setRuleFn(userID, ruleType, value, multiplier, currency)
	}
	return &models.RoundUpRule{}, nil
}

// --- mock purchase service ---

type mockPurchaseService struct {
	recordPurchaseFn   func(userID, merchant string, amount decimal.Decimal, currency string) (*services.PurchaseResult, error)
	getUserPurchasesFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error)
}

func (m *mockPurchaseService) RecordPurchase(userID, merchant string, amount decimal.Decimal, currency string) (*services.PurchaseResult, error) {
	if m.recordPurchaseFn != nil {
		return m.recordPurchaseFn(userID, merchant, amount, currency)
	}
	return &services.PurchaseResult{Purchase: &models.Purchase{}}, nil
}

func (m *mockPurchaseService) GetUserPurchases(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error) {
	if m.getUserPurchasesFn != nil {
		return m.getUserPurchasesFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Purchase{}, 1, 20, 0)
	return &resp, nil
}

// --- mock ledger service ---

type mockLedgerService struct {
	listPendingFn    func(userID string) ([]models.SpareLedgerEntry, error)
	pendingTotalsFn  func(userID string) ([]services.CurrencyTotal, error)
	getUserEntriesFn func(userID string, status *models.LedgerStatus, page pagination.PageRequest) (*pagination.PageResponse[models.SpareLedgerEntry], error)
}

func (m *mockLedgerService) ListPending(userID string) ([]models.SpareLedgerEntry, error) {
	if m.listPendingFn != nil {
		return m.listPendingFn(userID)
	}
	return []models.SpareLedgerEntry{}, nil
}

func (m *mockLedgerService) SumPending(userID, currency string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *mockLedgerService) PendingTotals(userID string) ([]services.CurrencyTotal, error) {
	if m.pendingTotalsFn != nil {
		return m.pendingTotalsFn(userID)
	}
	return []services.CurrencyTotal{}, nil
}

func (m *mockLedgerService) SettleAll(tx *gorm.DB, userID, currency, lotID string) (int64, error) {
	return 0, nil
}

func (m *mockLedgerService) GetUserEntries(userID string, status *models.LedgerStatus, page pagination.PageRequest) (*pagination.PageResponse[models.SpareLedgerEntry], error) {
	if m.getUserEntriesFn != nil {
		return m.getUserEntriesFn(userID, status, page)
	}
	resp := pagination.NewPageResponse([]models.SpareLedgerEntry{}, 1, 20, 0)
	return &resp, nil
}

// --- mock invest service ---

type mockInvestService struct {
	investFn      func(userID, portfolio string) (*services.InvestResult, error)
	getUserLotsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.InvestLot], error)
}

func (m *mockInvestService) Invest(userID, portfolio string) (*services.InvestResult, error) {
	if m.investFn != nil {
		return m.investFn(userID, portfolio)
	}
	return &services.InvestResult{Invested: decimal.Zero, Lots: []models.InvestLot{}}, nil
}

func (m *mockInvestService) GetUserLots(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.InvestLot], error) {
	if m.getUserLotsFn != nil {
		return m.getUserLotsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.InvestLot{}, 1, 20, 0)
	return &resp, nil
}

// --- mock feed service ---

type mockFeedService struct {
	getFeedFn func(userID string) (*services.Feed, error)
}

func (m *mockFeedService) GetFeed(userID string) (*services.Feed, error) {
	if m.getFeedFn != nil {
		return m.getFeedFn(userID)
	}
	return &services.Feed{}, nil
}

// --- mock statement service ---

type mockStatementService struct {
	getStatementFn func(userID, month string) (*statement.Data, error)
}

func (m *mockStatementService) GetStatement(userID, month string) (*statement.Data, error) {
	if m.getStatementFn != nil {
		return m.getStatementFn(userID, month)
	}
	return &statement.Data{}, nil
}

// verify interface compliance
var (
	_ services.RuleServicer      = (*mockRuleService)(nil)
	_ services.PurchaseServicer  = (*mockPurchaseService)(nil)
	_ services.LedgerServicer    = (*mockLedgerService)(nil)
	_ services.InvestServicer    = (*mockInvestService)(nil)
	_ services.FeedServicer      = (*mockFeedService)(nil)
	_ services.StatementServicer = (*mockStatementService)(nil)
)
