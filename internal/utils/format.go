package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCredits renders an amount with digit grouping, e.g. "1,250 credits"
func FormatCredits(amount int64) string {
	if amount == 1 || amount == -1 {
		return printer.Sprintf("%d credit", amount)
	}
	return printer.Sprintf("%d credits", amount)
}

// FormatNumber renders n with digit grouping
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}
