package homeledger

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount in the given currency with the currency's
// own grapheme, fraction and separator rules, e.g. "$1,234.50" for USD.
// Records store plain decimal amounts; the display currency comes from the
// settings singleton.
func FormatMoney(amount decimal.Decimal, currency string) string {
	// the Money constructor is the only way to get a never-nil currency,
	// unknown codes fall back to a generic one.
	cur := money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSignedMoney is FormatMoney with an explicit sign, and "-" for zero.
func FormatSignedMoney(amount decimal.Decimal, currency string) string {
	if amount.IsZero() {
		return "-"
	}
	if amount.IsPositive() {
		return "+" + FormatMoney(amount, currency)
	}
	return FormatMoney(amount, currency)
}
