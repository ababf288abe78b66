// README: Common money rounding helpers used across modules.
package types

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places.
// Decimal arithmetic avoids the float drift of math.Round(v*100)/100.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
