// Package units implements a symbolic algebra for physical units:
// construction, multiplication, division, exponentiation, canonical
// simplification, equivalence, conversion to standard units, and
// human-readable rendering of compound units such as "km²/h".
//
// The package is the core of a quantity library: numeric values tagged
// with a DerivedUnit rely on it to track conversions precisely. All
// values are immutable and every operation is a total pure function, so
// concurrent read-only use needs no synchronization.
//
// Catalogs of named units (SI base units, time units, domain catalogs
// loaded from configuration) live in sibling packages and are built
// exclusively through MakeStandard and MakeNonStandard.
package units
