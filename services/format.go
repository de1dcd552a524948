package services

import (
	"fmt"
	"strings"
)

// FormatINR formats an amount as Indian Rupees with Indian digit grouping
// (e.g. ₹1,23,45,678.90) and exactly two decimal places.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	parts := strings.SplitN(fmt.Sprintf("%.2f", amount), ".", 2)
	result := "₹" + groupIndian(parts[0]) + "." + parts[1]
	if negative {
		return "-" + result
	}
	return result
}

// FormatINRWhole formats an amount as whole rupees, dropping the decimal
// part. Dashboard amounts (budgets, quotes, counter-offers) are shown this
// way.
func FormatINRWhole(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.0f", amount)
	result := "₹" + groupIndian(whole)
	if negative {
		return "-" + result
	}
	return result
}

// groupIndian inserts commas per the Indian numbering system: the rightmost
// three digits form one group, then pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	out := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}
	return rest + "," + out
}
