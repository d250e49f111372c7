package units

import "math"

// ToStandardUnit rewrites the unit purely in terms of standard units
// and returns it together with the aggregate scale factor: one of the
// rewritten unit is worth factor of it. For example, converting the
// minute yields (second, 60) and converting km² yields (m², 1e6).
//
// Each component (prefix, base, exponent) contributes the base unit's
// standard unit raised to the exponent, and a local factor of
// (10^prefix · f)^exponent where f is 1 for Standard base units and
// the declared conversion factor for NonStandard ones. Contributions
// are combined with Multiply, so the result is canonical.
//
// The substitution is single-level: the standard unit declared by a
// NonStandard base unit is used as-is, not standardized again. Catalogs
// are expected to declare standard units directly (the BaseUnit
// contract), so one level always suffices for well-formed definitions.
func (u DerivedUnit) ToStandardUnit() (DerivedUnit, float64) {
	result := Unity()
	factor := 1.0
	for _, c := range u.components {
		result = result.Multiply(c.Base.StandardUnit().Power(c.Exponent))
		factor *= math.Pow(math.Pow(10, c.Prefix)*c.Base.Factor(), c.Exponent)
	}
	return result, factor
}
