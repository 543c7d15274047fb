package output

import (
	decutil "github.com/nestegg/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return decutil.NewMoneyFromDecimal(amount).Round().Display()
}

// FormatPercentage formats a decimal fraction as a percentage with 2 decimals.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
