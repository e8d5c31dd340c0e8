package fxmath

import "github.com/shopspring/decimal"

// MYRScale is the storage precision for derived MYR amounts. Display-level
// 2-decimal rounding happens downstream in exports and the UI.
const MYRScale = 4

// DeriveMYR converts a foreign-currency amount to MYR at the given rate,
// rounded half away from zero at the 4th decimal place. Returns nil when
// either input is absent. Pure: expected and actual conversions never share
// rounding state.
func DeriveMYR(amount, rate *decimal.Decimal) *decimal.Decimal {
	if amount == nil || rate == nil {
		return nil
	}
	v := amount.Mul(*rate).Round(MYRScale)
	return &v
}
