package units

import "fmt"

// Kind discriminates the two BaseUnit variants.
type Kind int

const (
	// Standard marks a base unit that is itself the canonical
	// representative of its dimension (e.g. the second for time).
	Standard Kind = iota

	// NonStandard marks a base unit defined by a fixed multiplicative
	// factor relative to a standard unit (e.g. minute = 60 seconds).
	NonStandard
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "Standard"
	case NonStandard:
		return "NonStandard"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// BaseUnit is a named atomic unit. It is either standard, or defined by
// a conversion factor against a standard unit. BaseUnits are immutable
// once constructed and are freely shared between DerivedUnits.
//
// Non-standard definitions must bottom out in standard units: the
// standard-unit chain of a NonStandard base unit may not contain cycles
// and should point directly at true standard units. This is a
// construction-time contract of catalog authors, not checked here.
type BaseUnit struct {
	long     string
	short    string
	kind     Kind
	standard DerivedUnit
	factor   float64
}

// MakeStandard constructs a standard base unit with the given long and
// short names.
func MakeStandard(long, short string) BaseUnit {
	return BaseUnit{long: long, short: short, kind: Standard}
}

// MakeNonStandard constructs a base unit that equals factor times the
// given standard unit. The standard unit should be expressed purely in
// standard base units; see the BaseUnit contract.
func MakeNonStandard(long, short string, factor float64, standardUnit DerivedUnit) BaseUnit {
	return BaseUnit{
		long:     long,
		short:    short,
		kind:     NonStandard,
		standard: standardUnit,
		factor:   factor,
	}
}

// Long returns the unit's long name, e.g. "meter".
func (b BaseUnit) Long() string { return b.long }

// Short returns the unit's short name, e.g. "m". The short name is the
// sort key for canonical ordering inside DerivedUnits.
func (b BaseUnit) Short() string { return b.short }

// Kind reports whether the unit is Standard or NonStandard.
func (b BaseUnit) Kind() Kind { return b.kind }

// Factor returns the conversion factor to the standard unit. It is 1
// for Standard units.
func (b BaseUnit) Factor() float64 {
	if b.kind == Standard {
		return 1
	}
	return b.factor
}

// StandardUnit returns the standard unit a NonStandard unit converts
// to. For Standard units it returns the unit itself, wrapped as a
// DerivedUnit.
func (b BaseUnit) StandardUnit() DerivedUnit {
	if b.kind == Standard {
		return FromBaseUnit(b)
	}
	return b.standard
}

// Equal reports whether two base units are the same unit: long name,
// short name, and kind, including the nested standard unit and factor
// of NonStandard units, must all match.
func (b BaseUnit) Equal(o BaseUnit) bool {
	if b.long != o.long || b.short != o.short || b.kind != o.kind {
		return false
	}
	if b.kind == NonStandard {
		return b.factor == o.factor && b.standard.structuralEqual(o.standard)
	}
	return true
}

// String returns the short name.
func (b BaseUnit) String() string { return b.short }

// unityBase is the synthetic dimensionless placeholder introduced by
// WithPrefix when no component can carry the prefix. Equality filters
// it out; see DerivedUnit.Equal.
var unityBase = BaseUnit{long: "unity", short: ""}

// isUnityPlaceholder reports whether b is the synthetic placeholder.
func (b BaseUnit) isUnityPlaceholder() bool {
	return b.kind == Standard && b.long == unityBase.long && b.short == unityBase.short
}
