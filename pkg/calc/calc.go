package calc

import "github.com/shopspring/decimal"

// SafeDiv returns num/den, or 0 when den is 0.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Percent returns part/total*100 with the same zero guard as SafeDiv.
func Percent(part, total float64) float64 {
	return SafeDiv(part, total) * 100
}

// PercentChange returns the change from previous to current in percent.
// A zero previous value has no meaningful baseline and yields 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// NonNegative clamps negative values to 0.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
