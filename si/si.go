// Package si defines the SI base units as package-level values. Other
// unit catalogs build on these: a catalog of non-standard units always
// converts into units from this package.
package si

import "github.com/rshade/unitkit/units"

// The SI base units as BaseUnit values.
var (
	SecondUnit  = units.MakeStandard("second", "s")
	MeterUnit   = units.MakeStandard("meter", "m")
	GramUnit    = units.MakeStandard("gram", "g")
	AmpereUnit  = units.MakeStandard("ampere", "A")
	KelvinUnit  = units.MakeStandard("kelvin", "K")
	MoleUnit    = units.MakeStandard("mole", "mol")
	CandelaUnit = units.MakeStandard("candela", "cd")
)

// The same units wrapped as DerivedUnits, ready for the combinators.
var (
	Second  = units.FromBaseUnit(SecondUnit)
	Meter   = units.FromBaseUnit(MeterUnit)
	Gram    = units.FromBaseUnit(GramUnit)
	Ampere  = units.FromBaseUnit(AmpereUnit)
	Kelvin  = units.FromBaseUnit(KelvinUnit)
	Mole    = units.FromBaseUnit(MoleUnit)
	Candela = units.FromBaseUnit(CandelaUnit)

	// Kilogram is the SI base unit of mass, expressed here as the
	// kilo-prefixed gram.
	Kilogram = units.Kilo(Gram)
)
