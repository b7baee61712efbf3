// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"gulfacorns/internal/models"
	"gulfacorns/internal/money"
	"gulfacorns/internal/roundup"
	"gulfacorns/internal/statement"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom tags on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("roundup_rule_type", validateRuleType)
	_ = v.RegisterValidation("ledger_status", validateLedgerStatus)
	_ = v.RegisterValidation("statement_month", validateStatementMonth)
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return money.ValidCode(fl.Field().String())
}

func validateRuleType(fl validator.FieldLevel) bool {
	return roundup.RuleType(fl.Field().String()).Valid()
}

func validateLedgerStatus(fl validator.FieldLevel) bool {
	switch models.LedgerStatus(fl.Field().String()) {
	case models.LedgerStatusPending, models.LedgerStatusSettled:
		return true
	}
	return false
}

func validateStatementMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(statement.MonthLayout, fl.Field().String())
	return err == nil
}
