package utils

import "fmt"

// DollarsToCents converts a whole-dollar price into minor currency units
// for the payment gateway.
func DollarsToCents(dollars int64) int64 {
	return dollars * 100
}

// FormatUSD renders a whole-dollar amount, e.g. "$135".
func FormatUSD(dollars int64) string {
	if dollars < 0 {
		return fmt.Sprintf("-$%d", -dollars)
	}
	return fmt.Sprintf("$%d", dollars)
}

// FormatUSDCents renders a minor-unit amount, e.g. "$135.00".
func FormatUSDCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
