package services

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

// FormatCurrency renders an amount for display: rupees, Indian digit grouping,
// no decimals (e.g. "₹ 1,23,457"). Stored amounts are never rounded.
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return currencySymbol + " NaN"
	case math.IsInf(amount, 1):
		return currencySymbol + " ∞"
	case math.IsInf(amount, -1):
		return "-" + currencySymbol + " ∞"
	}
	d := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + currencySymbol + " " + groupIndian(d.Abs().StringFixed(0))
}

// FormatAmount is FormatCurrency with an ASCII "INR" prefix, for renderers
// whose fonts lack the rupee glyph.
func FormatAmount(amount float64) string {
	return strings.Replace(FormatCurrency(amount), currencySymbol, "INR", 1)
}

// groupIndian inserts separators as 12,34,567: the last three digits, then pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}

// FormatDate renders t as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateShort renders t as "Jan 2".
func FormatDateShort(t time.Time) string {
	return t.Format("Jan 2")
}
