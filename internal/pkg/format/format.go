// Package format renders amounts and account identifiers for display.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var naira = message.NewPrinter(language.English)

// Currency renders a non-negative amount as Nigerian Naira with grouped
// thousands and two decimals, e.g. Currency(1000) == "₦1,000.00".
func Currency(amount float64) string {
	return naira.Sprintf("₦%.2f", amount)
}

// AccountNumber derives the payable 10-digit account number from an
// 11-digit phone number by dropping its leading 0.
func AccountNumber(phone string) string {
	return strings.TrimPrefix(phone, "0")
}
