package services

import (
	"gorm.io/gorm"

	"gulfacorns/internal/events"
)

// Services bundles every service wired against one database and publisher.
// Purchase and invest share a lock set so one user's writes never interleave.
type Services struct {
	User      UserServicer
	Rule      RuleServicer
	Ledger    LedgerServicer
	Purchase  PurchaseServicer
	Invest    InvestServicer
	Feed      FeedServicer
	Statement StatementServicer
}

// New builds the full service set.
func New(db *gorm.DB, publisher events.Publisher) *Services {
	locks := NewKeyedMutex()
	user := NewUserService(db)
	ledger := NewLedgerService(db)
	return &Services{
		User:      user,
		Rule:      NewRuleService(db),
		Ledger:    ledger,
		Purchase:  NewPurchaseService(db, locks, publisher),
		Invest:    NewInvestService(db, ledger, locks, publisher),
		Feed:      NewFeedService(db),
		Statement: NewStatementService(db, user),
	}
}
