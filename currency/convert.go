package currency

import (
	"fmt"
	"math"
)

// LocalCurrency is the zero-decimal local-currency sentinel. Prices destined
// for it are assumed to already be in the display currency and are never
// converted; it does not appear in the external rate table.
const LocalCurrency = "ALL"

const localSuffix = "Lek"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Convert converts price from one currency to another through USD using a
// USD-based rate table. No rounding is applied; that is Format's job. A
// currency missing from the table yields the price unchanged rather than
// propagating NaN into display formatting.
func Convert(price float64, from, to string, rates map[string]float64) float64 {
	if to == LocalCurrency {
		return price
	}
	if from == to {
		return price
	}
	usd := price
	if from != "USD" {
		r, ok := rates[from]
		if !ok || r == 0 {
			return price
		}
		usd = price / r
	}
	if to == "USD" {
		return usd
	}
	r, ok := rates[to]
	if !ok {
		return price
	}
	return usd * r
}

// Format renders a price for display. The local currency formats as a whole
// number with the Lek label; recognized codes get their symbol and two
// decimals; unknown codes fall back to an empty symbol.
func Format(price float64, currency string) string {
	if currency == LocalCurrency {
		return fmt.Sprintf("%d %s", int64(math.Round(price)), localSuffix)
	}
	return fmt.Sprintf("%s%.2f", symbols[currency], price)
}

// FromCents converts stored minor units to the float the converter works in.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// ToCents converts a parsed decimal amount to stored minor units.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
