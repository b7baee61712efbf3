package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/events"
	"gulfacorns/internal/logger"
	"gulfacorns/internal/models"
	"gulfacorns/internal/pagination"
)

const maxPortfolioLength = 50

// investService sweeps pending spare change into invest lots.
type investService struct {
	db       *gorm.DB
	ledger   LedgerServicer
	locks    *KeyedMutex
	notifier *notifier
}

// NewInvestService creates a new InvestServicer. locks must be the same
// KeyedMutex given to the purchase service.
func NewInvestService(db *gorm.DB, ledger LedgerServicer, locks *KeyedMutex, publisher events.Publisher) InvestServicer {
	return &investService{
		db:       db,
		ledger:   ledger,
		locks:    locks,
		notifier: newNotifier(publisher),
	}
}

// Invest moves every pending entry of the user into new lots, one per
// currency. With nothing pending it returns a zero result and creates no lot.
// The read, the lot inserts and the status flips share one transaction.
func (s *investService) Invest(userID, portfolio string) (*InvestResult, error) {
	portfolio = strings.TrimSpace(portfolio)
	if portfolio == "" {
		portfolio = models.DefaultPortfolio
	}
	if len(portfolio) > maxPortfolioLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "portfolio must be at most 50 characters")
	}

	result, err := s.sweepLocked(userID, portfolio)
	if err != nil {
		logger.Get().Errorw("invest sweep failed", "user_id", userID, "error", err)
		return nil, err
	}

	if len(result.Lots) == 0 {
		logger.Get().Infow("nothing to invest", "user_id", userID)
		return result, nil
	}

	for i := range result.Lots {
		lot := &result.Lots[i]
		logger.Get().Infow("invest lot created",
			"user_id", userID,
			"lot_id", lot.ID,
			"amount", lot.Amount.String(),
			"currency", lot.Currency,
			"portfolio", lot.Portfolio,
		)
		s.notifier.Notify(events.NewInvestSettled(lot))
	}

	return result, nil
}

// sweepLocked runs the sweep transaction while holding the user's lock. The
// lock is released before any event is published.
func (s *investService) sweepLocked(userID, portfolio string) (*InvestResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	result := &InvestResult{Invested: decimal.Zero, Lots: []models.InvestLot{}}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pending, err := findPending(tx, userID, "")
		if err != nil {
			return err
		}

		for _, group := range groupByCurrency(pending) {
			lot := models.InvestLot{
				UserID:    userID,
				Amount:    sumEntries(group.entries),
				Currency:  group.currency,
				Portfolio: portfolio,
			}
			if err := tx.Create(&lot).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
			}

			settled, err := s.ledger.SettleAll(tx, userID, group.currency, lot.ID)
			if err != nil {
				return err
			}
			if settled != int64(len(group.entries)) {
				return apperrors.Wrap(apperrors.ErrPersistenceFailure,
					fmt.Errorf("settled %d %s entries, expected %d", settled, group.currency, len(group.entries)))
			}

			result.Lots = append(result.Lots, lot)
			result.Invested = result.Invested.Add(lot.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetUserLots retrieves a paginated list of invest lots, newest first.
func (s *investService) GetUserLots(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.InvestLot], error) {
	base := s.db.Model(&models.InvestLot{}).Where("user_id = ?", userID)

	result, err := pagination.Find[models.InvestLot](base, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return result, nil
}

type currencyGroup struct {
	currency string
	entries  []models.SpareLedgerEntry
}

// groupByCurrency splits entries by currency, ordered by currency code.
func groupByCurrency(entries []models.SpareLedgerEntry) []currencyGroup {
	index := make(map[string]int)
	var groups []currencyGroup
	for _, e := range entries {
		i, ok := index[e.Currency]
		if !ok {
			i = len(groups)
			index[e.Currency] = i
			groups = append(groups, currencyGroup{currency: e.Currency})
		}
		groups[i].entries = append(groups[i].entries, e)
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a].currency < groups[b].currency })
	return groups
}
