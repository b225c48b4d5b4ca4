package types

import "github.com/shopspring/decimal"

// MoneyPrecision is the number of decimal places every monetary amount is
// kept at. All amounts are in a single currency with cent precision.
const MoneyPrecision int32 = 2

// MoneyTolerance absorbs floating point drift introduced upstream of the
// API boundary: one cent.
var MoneyTolerance = decimal.New(1, -2)

// RoundMoney rounds an amount half-up at the cent. Every monetary
// add/subtract/multiply result must pass through here so drift cannot
// accumulate across repeated operations.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	// decimal.Round rounds half away from zero, i.e. half-up for the
	// non-negative amounts this system deals in.
	return amount.Round(MoneyPrecision)
}
