// Package timeunits catalogs the common non-standard time units,
// defined by their factor against the SI second. It is configuration
// data, not logic: the pattern other unit catalogs should follow.
package timeunits

import (
	"github.com/rshade/unitkit/si"
	"github.com/rshade/unitkit/units"
)

// Non-standard time units as BaseUnit values.
var (
	MinuteUnit = units.MakeNonStandard("minute", "min", 60, si.Second)
	HourUnit   = units.MakeNonStandard("hour", "h", 3600, si.Second)
	DayUnit    = units.MakeNonStandard("day", "d", 86400, si.Second)
	WeekUnit   = units.MakeNonStandard("week", "wk", 604800, si.Second)
)

// The same units wrapped as DerivedUnits.
var (
	Minute = units.FromBaseUnit(MinuteUnit)
	Hour   = units.FromBaseUnit(HourUnit)
	Day    = units.FromBaseUnit(DayUnit)
	Week   = units.FromBaseUnit(WeekUnit)
)
