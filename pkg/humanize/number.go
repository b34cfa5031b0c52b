package humanize

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number renders n with locale-appropriate digit grouping, e.g. 1234567
// becomes "1,234,567" in English.
func Number(n int64) string {
	return NumberIn(language.English, n)
}

// NumberIn renders n with the digit grouping of the given locale.
func NumberIn(tag language.Tag, n int64) string {
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(n))
}

// Float renders f with locale-appropriate digit grouping.
func Float(f float64) string {
	return message.NewPrinter(language.English).Sprintf("%v", number.Decimal(f))
}
