package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupees = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders an amount in rupees with Indian digit grouping.
func FormatPrice(amount int64) string {
	return rupees.Sprintf("₹%d", amount)
}
