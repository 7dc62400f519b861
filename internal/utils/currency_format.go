package utils

import (
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount with the ledger's display precision.
// Example: 12.3456 returns "12.35", 7 returns "7.00"
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, domain.CurrencyPrecision)
}

// FormatWithPrecision formats an amount with the given number of decimals,
// padding with zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
