package units

import (
	"fmt"
	"sort"
	"strings"
)

// Component is one factor of a derived unit: (10^Prefix · Base)^Exponent.
type Component struct {
	// Prefix is the base-10 exponent of the power-of-ten multiplier
	// attached to this component, e.g. 3 for kilo.
	Prefix float64

	// Base is the atomic unit being raised.
	Base BaseUnit

	// Exponent is the power the prefixed base unit is raised to. It may
	// be negative or fractional.
	Exponent float64
}

// DerivedUnit is a product of prefixed base units raised to exponents.
// The underlying component order is not semantically meaningful: two
// permutations denote the same unit, and Simplify imposes a canonical
// order for comparison. The zero value is Unity, the dimensionless
// multiplicative identity.
//
// DerivedUnit values are immutable; every operation returns a new
// value and never mutates its receiver or arguments.
type DerivedUnit struct {
	components []Component
}

// Unity returns the dimensionless unit, the identity for Multiply.
func Unity() DerivedUnit { return DerivedUnit{} }

// FromBaseUnit wraps a base unit as a one-component derived unit with
// prefix 0 and exponent 1.
func FromBaseUnit(b BaseUnit) DerivedUnit {
	return DerivedUnit{components: []Component{{Base: b, Exponent: 1}}}
}

// FromComponents constructs a derived unit from an explicit component
// sequence. The slice is copied. Most callers want FromBaseUnit and the
// combinators instead; this exists for catalog and debugging tooling.
func FromComponents(cs []Component) DerivedUnit {
	return DerivedUnit{components: append([]Component(nil), cs...)}
}

// Components returns a copy of the underlying component sequence in its
// current (not necessarily canonical) order.
func (u DerivedUnit) Components() []Component {
	return append([]Component(nil), u.components...)
}

// IsUnity reports whether the unit has no components at all. Note that
// a unit carrying only synthetic placeholder components compares Equal
// to Unity() without IsUnity reporting true.
func (u DerivedUnit) IsUnity() bool { return len(u.components) == 0 }

// Multiply combines two units by concatenating their components and
// simplifying. It is associative, has Unity as identity, and is
// commutative under Equal (the raw sequences of a·b and b·a may differ,
// the canonical forms do not).
func (u DerivedUnit) Multiply(o DerivedUnit) DerivedUnit {
	cs := make([]Component, 0, len(u.components)+len(o.components))
	cs = append(cs, u.components...)
	cs = append(cs, o.components...)
	return DerivedUnit{components: cs}.Simplify()
}

// Power raises the unit to the n-th power by scaling every component
// exponent. n may be negative or fractional. No simplification happens:
// components whose exponent becomes zero are only dropped by Simplify.
func (u DerivedUnit) Power(n float64) DerivedUnit {
	cs := make([]Component, len(u.components))
	for i, c := range u.components {
		c.Exponent *= n
		cs[i] = c
	}
	return DerivedUnit{components: cs}
}

// Divide returns u/o, i.e. u multiplied by o raised to -1.
func (u DerivedUnit) Divide(o DerivedUnit) DerivedUnit {
	return u.Multiply(o.Power(-1))
}

// WithPrefix adds p to the prefix of the unit's primary component: the
// first component, in current sequence order, whose exponent is exactly
// 1. SI prefixes conventionally modify one designated unit in a
// compound ("km/h" prefixes the kilometer, not the hour), and the first
// exponent-1 component is the tie-break.
//
// If no component has exponent 1 (including when u is Unity), a
// synthetic dimensionless component carrying the prefix is prepended,
// so prefixing applies to dimensionless quantities too. Equal knows to
// ignore the placeholder.
func (u DerivedUnit) WithPrefix(p float64) DerivedUnit {
	cs := append([]Component(nil), u.components...)
	for i := range cs {
		if cs[i].Exponent == 1 {
			cs[i].Prefix += p
			return DerivedUnit{components: cs}
		}
	}
	placeholder := Component{Prefix: p, Base: unityBase, Exponent: 1}
	return DerivedUnit{components: append([]Component{placeholder}, cs...)}
}

// Simplify canonicalizes the unit: components are stably sorted by
// base-unit short name, consecutive components sharing both base unit
// and prefix are merged by summing exponents, and components whose
// exponent comes out exactly zero are dropped. The grouping key is the
// (base unit, prefix) pair: components of the same base unit with
// different prefixes stay distinct.
//
// Simplify is idempotent and is the form Equal and String operate on.
func (u DerivedUnit) Simplify() DerivedUnit {
	if len(u.components) == 0 {
		return u
	}
	cs := append([]Component(nil), u.components...)
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Base.Short() < cs[j].Base.Short()
	})

	merged := cs[:0]
	for _, c := range cs {
		if n := len(merged); n > 0 &&
			merged[n-1].Prefix == c.Prefix &&
			merged[n-1].Base.Equal(c.Base) {
			merged[n-1].Exponent += c.Exponent
			continue
		}
		merged = append(merged, c)
	}

	out := make([]Component, 0, len(merged))
	for _, c := range merged {
		if c.Exponent != 0 {
			out = append(out, c)
		}
	}
	return DerivedUnit{components: out}
}

// Equal reports whether two derived units denote the same unit. Both
// sides are simplified and stripped of synthetic placeholder
// components; they are equal when the canonical base-unit and exponent
// sequences match element-wise and the global prefix, the sum of
// prefix·exponent over all components, agrees. Abstracting prefixes
// into the global sum makes kilo(kilo(m)) equal mega(m) even though the
// groupings differ.
func (u DerivedUnit) Equal(o DerivedUnit) bool {
	a := u.Simplify().withoutPlaceholders()
	b := o.Simplify().withoutPlaceholders()
	if len(a) != len(b) {
		return false
	}
	var ga, gb float64
	for i := range a {
		if a[i].Exponent != b[i].Exponent || !a[i].Base.Equal(b[i].Base) {
			return false
		}
		ga += a[i].Prefix * a[i].Exponent
		gb += b[i].Prefix * b[i].Exponent
	}
	return ga == gb
}

// withoutPlaceholders filters components introduced by WithPrefix on a
// unit with no exponent-1 component.
func (u DerivedUnit) withoutPlaceholders() []Component {
	out := make([]Component, 0, len(u.components))
	for _, c := range u.components {
		if !c.Base.isUnityPlaceholder() {
			out = append(out, c)
		}
	}
	return out
}

// structuralEqual compares the raw component sequences element-wise,
// with no simplification, reordering or prefix abstraction. BaseUnit
// equality uses it to compare nested standard units.
func (u DerivedUnit) structuralEqual(o DerivedUnit) bool {
	if len(u.components) != len(o.components) {
		return false
	}
	for i := range u.components {
		a, b := u.components[i], o.components[i]
		if a.Prefix != b.Prefix || a.Exponent != b.Exponent || !a.Base.Equal(b.Base) {
			return false
		}
	}
	return true
}

// GoString returns a debug-oriented structural rendering of the raw
// component sequence, e.g. "(10^3·meter)^2·(10^0·hour)^-1". Unlike
// String it exposes order, prefixes and placeholders exactly as
// stored. It backs the %#v verb.
func (u DerivedUnit) GoString() string {
	if len(u.components) == 0 {
		return "unity"
	}
	parts := make([]string, len(u.components))
	for i, c := range u.components {
		parts[i] = fmt.Sprintf("(10^%s·%s)^%s",
			formatNumber(c.Prefix), c.Base.Long(), formatNumber(c.Exponent))
	}
	return strings.Join(parts, "·")
}
