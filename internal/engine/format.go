package engine

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// danishPrinter renders display-ready metric values with Danish number
// formatting (decimal comma, dot thousands separator). Trace lines never go
// through it; they stay locale-free for golden comparisons.
var danishPrinter = message.NewPrinter(language.Danish)

func danishNum(v float64, decimals int) string {
	return danishPrinter.Sprintf("%.*f", decimals, v)
}
