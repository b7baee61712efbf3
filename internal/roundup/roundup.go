// Package roundup computes the spare change generated by a purchase.
package roundup

import (
	"github.com/shopspring/decimal"

	"gulfacorns/internal/money"
)

// RuleType selects how spare change is derived from a purchase amount.
type RuleType string

const (
	// TypeRoundUp rounds the amount up to the next multiple of the rule value.
	TypeRoundUp RuleType = "roundup"
	// TypePercent takes a percentage of the amount.
	TypePercent RuleType = "percent"
	// TypeFixed adds the rule value regardless of the amount.
	TypeFixed RuleType = "fixed"
)

// Valid reports whether t is a known rule type.
func (t RuleType) Valid() bool {
	switch t {
	case TypeRoundUp, TypePercent, TypeFixed:
		return true
	}
	return false
}

// Rule is the calculation input derived from a user's configured rule.
type Rule struct {
	Type       RuleType
	Value      decimal.Decimal
	Multiplier int
}

var hundred = decimal.NewFromInt(100)

// Calculate returns the spare change for amount under rule, rounded half-up
// to the precision of currency. Arithmetic is exact; only the final result is
// rounded.
//
// For TypeRoundUp an amount that is already a multiple of the rule value
// yields zero, not a full extra unit.
func Calculate(amount decimal.Decimal, rule Rule, currency string) decimal.Decimal {
	var raw decimal.Decimal

	switch rule.Type {
	case TypeRoundUp:
		if !rule.Value.IsPositive() {
			return decimal.Zero
		}
		remainder := amount.Mod(rule.Value)
		if remainder.IsZero() {
			raw = decimal.Zero
		} else {
			raw = rule.Value.Sub(remainder)
		}
	case TypePercent:
		raw = amount.Mul(rule.Value).Div(hundred)
	case TypeFixed:
		raw = rule.Value
	default:
		return decimal.Zero
	}

	multiplier := rule.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	return money.Round(raw.Mul(decimal.NewFromInt(int64(multiplier))), currency)
}
