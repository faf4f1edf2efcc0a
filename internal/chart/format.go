package chart

import (
	"math"

	"github.com/shopspring/decimal"
)

var abbreviations = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
	{1, ""},
}

// FormatNumber renders a token amount with a magnitude suffix, e.g. 1234567 -> "1.23M".
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	for _, a := range abbreviations {
		if math.Abs(v) >= a.threshold {
			return decimal.NewFromFloat(v).Div(decimal.NewFromFloat(a.threshold)).StringFixed(2) + a.suffix
		}
	}
	return decimal.NewFromFloat(v).Round(2).String()
}

// ToPercentage renders part as a percentage of total. A zero total yields "0%".
func ToPercentage(part, total float64) string {
	if total == 0 || math.IsNaN(total) || math.IsNaN(part) {
		return "0%"
	}
	pct := decimal.NewFromFloat(part).Div(decimal.NewFromFloat(total)).Mul(decimal.NewFromInt(100))
	return pct.StringFixed(2) + "%"
}
