package helpers

import (
	"math"

	"github.com/shopspring/decimal"
)

// CentTolerance absorbs floating-point noise in currency comparisons.
// Currency values must never be compared with ==.
const CentTolerance = 0.01

// Round2 rounds a currency amount to 2 decimal places.
func Round2(amount float64) float64 {
	out, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return out
}

// SameAmount reports whether two currency amounts are equal within a cent.
func SameAmount(a, b float64) bool {
	return math.Abs(a-b) <= CentTolerance
}

func FormatFloat(num float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(num*pow) / pow
}
