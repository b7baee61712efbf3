package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/models"
	"gulfacorns/internal/money"
	"gulfacorns/internal/roundup"
)

// Rule bounds enforced on write.
var (
	maxRuleValue  = decimal.NewFromInt(1000)
	minMultiplier = 1
	maxMultiplier = 10
)

// ruleValuePlaces matches the scale of the rule value column.
const ruleValuePlaces = 4

// ruleService stores one round-up rule per user.
type ruleService struct {
	db *gorm.DB
}

// NewRuleService creates a new RuleServicer.
func NewRuleService(db *gorm.DB) RuleServicer {
	return &ruleService{db: db}
}

// GetCurrentRule returns the user's rule or ErrNoRuleConfigured.
func (s *ruleService) GetCurrentRule(userID string) (*models.RoundUpRule, error) {
	rule, err := findRule(s.db, userID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, apperrors.ErrNoRuleConfigured
	}
	return rule, nil
}

// GetOrCreateRule returns the user's rule, creating the default one on first read.
func (s *ruleService) GetOrCreateRule(userID string) (*models.RoundUpRule, error) {
	rule := &models.RoundUpRule{
		UserID:     userID,
		Type:       models.DefaultRuleType,
		Value:      models.DefaultRuleValue,
		Multiplier: models.DefaultRuleMultiplier,
		Currency:   models.DefaultRuleCurrency,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(rule).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	return s.GetCurrentRule(userID)
}

// SetRule replaces the user's rule wholesale.
func (s *ruleService) SetRule(userID string, ruleType roundup.RuleType, value decimal.Decimal, multiplier int, currency string) (*models.RoundUpRule, error) {
	if !ruleType.Valid() {
		return nil, apperrors.ErrInvalidRuleType
	}
	if !value.IsPositive() || value.GreaterThan(maxRuleValue) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value must be greater than 0 and at most 1000")
	}
	if !money.WithinPlaces(value, ruleValuePlaces) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value must have at most 4 decimal places")
	}
	if multiplier < minMultiplier || multiplier > maxMultiplier {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "multiplier must be between 1 and 10")
	}
	if !money.ValidCode(currency) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must be a 2 or 3 letter code")
	}

	rule := &models.RoundUpRule{
		UserID:     userID,
		Type:       ruleType,
		Value:      value,
		Multiplier: multiplier,
		Currency:   money.Normalize(currency),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"type":       rule.Type,
			"value":      rule.Value,
			"multiplier": rule.Multiplier,
			"currency":   rule.Currency,
			"updated_at": time.Now(),
		}),
	}).Create(rule).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	return s.GetCurrentRule(userID)
}

// findRule loads the user's rule, returning nil when none exists.
func findRule(db *gorm.DB, userID string) (*models.RoundUpRule, error) {
	var rule models.RoundUpRule
	if err := db.Where("user_id = ?", userID).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return &rule, nil
}
