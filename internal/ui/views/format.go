package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCount renders n with English thousands separators, e.g. 200,000
func FormatCount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
