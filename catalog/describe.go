package catalog

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/unitkit/units"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatFactor formats a conversion factor for display with thousand
// separators. Integral factors render without a fractional part:
// FormatFactor(3600) returns "3,600".
func FormatFactor(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return printer.Sprintf("%d", int64(f))
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Describe renders a human-readable conversion line for a unit, e.g.
// "1 h = 3,600 s" for the hour. Standard units describe themselves.
func Describe(b units.BaseUnit) string {
	if b.Kind() == units.Standard {
		return fmt.Sprintf("%s (%s) is a standard unit", b.Long(), b.Short())
	}
	return fmt.Sprintf("1 %s = %s %s", b.Short(), FormatFactor(b.Factor()), b.StandardUnit())
}
