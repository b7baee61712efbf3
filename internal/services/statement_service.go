package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/models"
	"gulfacorns/internal/statement"
)

// statementService collects the data shown on a monthly statement.
type statementService struct {
	db          *gorm.DB
	userService UserServicer
	now         func() time.Time
}

// NewStatementService creates a new StatementServicer.
func NewStatementService(db *gorm.DB, userService UserServicer) StatementServicer {
	return &statementService{
		db:          db,
		userService: userService,
		now:         time.Now,
	}
}

// GetStatement gathers purchases and lots created during month (YYYY-MM,
// empty for the current month) together with the user's pending balance.
func (s *statementService) GetStatement(userID, month string) (*statement.Data, error) {
	now := s.now()
	start, end, err := statement.MonthRange(month, now, time.Local)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must use the YYYY-MM format")
	}

	user, err := s.userService.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	data := &statement.Data{
		UserName:    user.Name,
		Month:       start,
		GeneratedAt: now,
	}

	if err := s.db.Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&data.Purchases).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	if err := s.db.Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&data.Lots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	pending, err := findPending(s.db, userID, "")
	if err != nil {
		return nil, err
	}

	data.RoundUps = statement.Totals(data.Purchases,
		func(p models.Purchase) string { return p.Currency },
		func(p models.Purchase) decimal.Decimal { return p.Roundup },
	)
	data.Invested = lotTotals(data.Lots)
	data.Pending = entryTotals(pending)

	return data, nil
}
