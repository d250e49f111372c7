package units

import (
	"sort"
	"strconv"
	"strings"
)

// Display is the structured rendering of a derived unit. Prefix is
// reserved for splitting an aggregate prefix out of the value string
// and is currently always empty; Value holds the human-readable unit.
type Display struct {
	Prefix string
	Value  string
}

// String returns the human-readable rendering of the unit, e.g. "km/h",
// "m²" or "s⁻¹". It is the Value of ToDisplay.
func (u DerivedUnit) String() string {
	return u.ToDisplay().Value
}

// ToDisplay renders the unit for humans. Components are simplified,
// ordered by descending exponent and split into a positive- and a
// negative-exponent group. Each component renders as prefix symbol,
// short name and exponent symbol ("km", "m²", "h"). The groups join
// with "·" and combine as:
//
//	positive                when there is no negative group
//	negative (as-is)        when there is no positive group
//	positive/negative       for a single negative component, sign
//	                        flipped for display
//	positive/(n1·n2·…)      for several negative components
func (u DerivedUnit) ToDisplay() Display {
	cs := u.Simplify().components
	ordered := append([]Component(nil), cs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Exponent > ordered[j].Exponent
	})

	var pos, neg []Component
	for _, c := range ordered {
		if c.Exponent > 0 {
			pos = append(pos, c)
		} else {
			neg = append(neg, c)
		}
	}

	var value string
	switch {
	case len(neg) == 0:
		value = joinComponents(pos, false)
	case len(pos) == 0:
		value = joinComponents(neg, false)
	case len(neg) == 1:
		value = joinComponents(pos, false) + "/" + joinComponents(neg, true)
	default:
		value = joinComponents(pos, false) + "/(" + joinComponents(neg, true) + ")"
	}
	return Display{Value: value}
}

// joinComponents renders a component group joined with "·", optionally
// flipping exponent signs for display after a "/".
func joinComponents(cs []Component, flip bool) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		e := c.Exponent
		if flip {
			e = -e
		}
		parts[i] = prefixSymbol(c.Prefix) + c.Base.Short() + exponentSymbol(e)
	}
	return strings.Join(parts, "·")
}

// prefixSymbol renders a prefix value as its SI symbol, falling back to
// an explicit power of ten for values outside the table.
func prefixSymbol(value float64) string {
	if s, ok := PrefixSymbol(value); ok {
		return s
	}
	return "10^" + formatNumber(value) + "·"
}

// superscripts for exponent magnitudes 1 through 5.
var superscripts = map[float64]string{1: "¹", 2: "²", 3: "³", 4: "⁴", 5: "⁵"}

// exponentSymbol renders an exponent. Positive 1 renders empty ("m",
// not "m¹"); magnitudes 1–5 use Unicode superscripts; anything else
// renders as "^(<n>)". Negative exponents render as "⁻" followed by
// the negated positive form, so -1 is "⁻¹".
func exponentSymbol(e float64) string {
	if e < 0 {
		return "⁻" + positiveExponent(-e)
	}
	if e == 1 {
		return ""
	}
	return positiveExponent(e)
}

func positiveExponent(e float64) string {
	if s, ok := superscripts[e]; ok {
		return s
	}
	return "^(" + formatNumber(e) + ")"
}

// formatNumber renders a float without trailing zeros: 2 not 2.0,
// 2.5 as-is.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
