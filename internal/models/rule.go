package models

import (
	"github.com/shopspring/decimal"

	"gulfacorns/internal/roundup"
)

// Defaults applied when a user's rule is created lazily.
var (
	DefaultRuleType       = roundup.TypeRoundUp
	DefaultRuleValue      = decimal.NewFromInt(1)
	DefaultRuleMultiplier = 1
	DefaultRuleCurrency   = "USD"
)

// RoundUpRule is a user's single active round-up policy. It is replaced
// wholesale on update, never patched.
type RoundUpRule struct {
	Base
	UserID     string           `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Type       roundup.RuleType `gorm:"size:16;not null" json:"type"`
	Value      decimal.Decimal  `gorm:"type:numeric(12,4);not null" json:"value"`
	Multiplier int              `gorm:"not null;default:1" json:"multiplier"`
	Currency   string           `gorm:"size:3;not null" json:"currency"`
}

// Rule returns the calculator input for this rule.
func (r *RoundUpRule) Rule() roundup.Rule {
	return roundup.Rule{Type: r.Type, Value: r.Value, Multiplier: r.Multiplier}
}
