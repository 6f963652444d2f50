package conversion

import (
	"math"
	"strconv"

	"poeconv/internal/domain"

	"github.com/shopspring/decimal"
)

const resultPlaces = 2

// Total sums the basket in the reference unit, before division and rounding.
// Lines without a currency, with unparsable or negative amounts, or with unusable rates contribute zero.
func Total(lines []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(lineValue(line))
	}
	return total
}

// Convert returns the basket value expressed in target units, rounded half away from zero to two places.
// A nil target or a target without a positive rate yields 0.
func Convert(lines []domain.LineItem, target *domain.CurrencyItem) float64 {
	targetRate, ok := rate(target)
	if !ok || !targetRate.IsPositive() {
		return 0
	}
	return round(Total(lines).Div(targetRate))
}

// ConvertCurrency converts a single amount between two currencies.
func ConvertCurrency(amount float64, from, to *domain.CurrencyItem) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0
	}
	fromRate, ok := rate(from)
	if !ok {
		return 0
	}
	toRate, ok := rate(to)
	if !ok || !toRate.IsPositive() {
		return 0
	}
	return round(decimal.NewFromFloat(amount).Mul(fromRate).Div(toRate))
}

// ParseAmount reads basket amount text. Empty, malformed and non-finite input is reported as not ok.
func ParseAmount(text string) (decimal.Decimal, bool) {
	if text == "" {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func lineValue(line domain.LineItem) decimal.Decimal {
	lineRate, ok := rate(line.Currency)
	if !ok {
		return decimal.Zero
	}
	amount, ok := ParseAmount(line.Amount)
	if !ok || amount.IsNegative() {
		return decimal.Zero
	}
	return amount.Mul(lineRate)
}

func rate(item *domain.CurrencyItem) (decimal.Decimal, bool) {
	if item == nil {
		return decimal.Zero, false
	}
	v := item.ChaosValue
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v), true
}

func round(d decimal.Decimal) float64 {
	f, _ := d.Round(resultPlaces).Float64()
	return f
}
