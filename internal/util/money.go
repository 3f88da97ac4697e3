package util

import (
	"github.com/shopspring/decimal"
)

// Round2 rounds to cents, half away from zero. All monetary amounts
// and display ratios are rounded through here at the point of
// computation, never deferred.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
