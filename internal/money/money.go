// Package money holds the exact-arithmetic helpers used to verify client
// computed totals and to accumulate report sums, plus the VND display format
// used in outbound notifications.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// LineTotal computes quantity x unit price as an exact decimal.
func LineTotal(unitPrice float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}

// Equal reports whether the exact amount d equals the client-supplied float f.
func Equal(d decimal.Decimal, f float64) bool {
	return d.Equal(decimal.NewFromFloat(f))
}

// FormatVND renders an amount with thousands separators and at most two
// fraction digits, e.g. 25000000 -> "25,000,000".
func FormatVND(amount float64) string {
	return printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(2)))
}
