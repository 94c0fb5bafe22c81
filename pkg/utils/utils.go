package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Placeholders rendered when no value could be computed.
const (
	RatePlaceholder    = "--- %"
	RateCapPlaceholder = "--- bps"
)

// CentsToDecimal converts integer minor units to currency units.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatRate renders an annual rate as a fixed-point percentage, e.g.
// 0.0526 becomes "5.26 %". When ok is false the placeholder is returned.
func FormatRate(rate float64, ok bool) string {
	if !ok {
		return RatePlaceholder
	}
	percent := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100))
	return percent.Round(2).StringFixed(2) + " %"
}

// FormatRateCap renders a rate ceiling in basis points, e.g. "1234 bps".
// When ok is false the placeholder is returned.
func FormatRateCap(bps int, ok bool) string {
	if !ok {
		return RateCapPlaceholder
	}
	return fmt.Sprintf("%d bps", bps)
}
