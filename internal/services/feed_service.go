package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/models"
	"gulfacorns/internal/money"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/statement"
)

// Feed window sizes.
const (
	feedPurchaseLimit = 50
	feedLotLimit      = 20
)

// feedService builds the dashboard projection. Concurrent reads for the same
// user share one set of queries.
type feedService struct {
	db    *gorm.DB
	group singleflight.Group
}

// NewFeedService creates a new FeedServicer.
func NewFeedService(db *gorm.DB) FeedServicer {
	return &feedService{db: db}
}

// GetFeed returns recent purchases and lots, pending and invested totals and
// the current rule, which is nil when none has been configured.
func (s *feedService) GetFeed(userID string) (*Feed, error) {
	v, err, _ := s.group.Do(userID, func() (interface{}, error) {
		return s.buildFeed(userID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Feed), nil
}

func (s *feedService) buildFeed(userID string) (*Feed, error) {
	feed := &Feed{
		Purchases: []models.Purchase{},
		Lots:      []models.InvestLot{},
	}

	if err := s.db.Where("user_id = ?", userID).
		Scopes(pagination.Latest(feedPurchaseLimit)).
		Find(&feed.Purchases).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	if err := s.db.Where("user_id = ?", userID).
		Scopes(pagination.Latest(feedLotLimit)).
		Find(&feed.Lots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	pending, err := findPending(s.db, userID, "")
	if err != nil {
		return nil, err
	}
	feed.Pending = entryTotals(pending)
	feed.PendingAmount = sumEntries(pending)

	var lots []models.InvestLot
	if err := s.db.Select("currency", "amount").Where("user_id = ?", userID).Find(&lots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	feed.Invested = lotTotals(lots)
	amounts := make([]decimal.Decimal, len(lots))
	for i, l := range lots {
		amounts[i] = l.Amount
	}
	feed.TotalInvested = money.Sum(amounts...)

	feed.Rule, err = findRule(s.db, userID)
	if err != nil {
		return nil, err
	}

	return feed, nil
}

func lotTotals(lots []models.InvestLot) []CurrencyTotal {
	return statement.Totals(lots,
		func(l models.InvestLot) string { return l.Currency },
		func(l models.InvestLot) decimal.Decimal { return l.Amount },
	)
}
