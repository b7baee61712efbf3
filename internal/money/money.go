// Package money holds the currency precision table and the rounding and
// formatting helpers shared by the round-up calculator, the ledger and the
// statement renderer.
package money

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultPlaces is used for any currency missing from the precision table.
const DefaultPlaces int32 = 2

// decimalPlaces is the number of minor-unit digits kept per currency.
// OMR is deliberately kept at 2 places.
var decimalPlaces = map[string]int32{
	"USD": 2,
	"SAR": 2,
	"AED": 2,
	"QAR": 2,
	"OMR": 2,
	"KWD": 3,
	"BHD": 3,
}

// Normalize upper-cases and trims a currency code.
func Normalize(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// ValidCode reports whether currency is a two or three letter code.
func ValidCode(currency string) bool {
	if len(currency) < 2 || len(currency) > 3 {
		return false
	}
	for _, r := range currency {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// Places returns the number of decimal places used when rounding amounts in
// the given currency.
func Places(currency string) int32 {
	if p, ok := decimalPlaces[Normalize(currency)]; ok {
		return p
	}
	return DefaultPlaces
}

// Round rounds amount half-up to the currency's precision.
func Round(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(Places(currency))
}

// WithinPlaces reports whether amount needs no more than places fractional
// digits, ignoring trailing zeros.
func WithinPlaces(amount decimal.Decimal, places int32) bool {
	return amount.Equal(amount.Truncate(places))
}

// Fixed renders amount with exactly the currency's number of decimal places,
// e.g. "0.500" for KWD.
func Fixed(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(Places(currency))
}

// Format renders amount for display using the currency's symbol and
// template, e.g. "$1,234.50". Unknown codes fall back to "1,234.50 XYZ".
func Format(amount decimal.Decimal, currency string) string {
	code := Normalize(currency)
	places := Places(code)

	grapheme, template, dec, thousand := code, "1 $", ".", ","
	if c := gomoney.GetCurrency(code); c != nil {
		grapheme, template = c.Grapheme, c.Template
		if c.Decimal != "" {
			dec = c.Decimal
		}
		if c.Thousand != "" {
			thousand = c.Thousand
		}
	}

	minor := Round(amount, code).Shift(places).IntPart()
	return gomoney.NewFormatter(int(places), dec, thousand, grapheme, template).Format(minor)
}

// Sum adds amounts; an empty list sums to zero.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
