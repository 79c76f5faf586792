package utils

import (
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the fixed two-digit precision used on receipts and exports.
// Example: 12.3 returns "12.30", 16.665 returns "16.67"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(accounting.MoneyPrecision)
}
