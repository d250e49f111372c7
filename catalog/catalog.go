// Package catalog resolves unit catalogs declared as YAML documents
// into BaseUnit values. A document lists non-standard units by their
// conversion factor against named standard units; resolution happens
// through a Registry of known standard units, typically seeded from
// the si package.
//
// This is structured configuration, not unit-expression parsing: the
// document names units, it never contains compound expressions like
// "km/h".
package catalog

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rshade/unitkit/si"
	"github.com/rshade/unitkit/units"
)

// Registry holds the standard units a catalog document may refer to,
// keyed by long name.
type Registry struct {
	byName map[string]units.DerivedUnit
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]units.DerivedUnit)}
}

// SIRegistry returns a registry pre-seeded with the SI base units.
func SIRegistry() *Registry {
	r := NewRegistry()
	r.Register("second", si.Second)
	r.Register("meter", si.Meter)
	r.Register("gram", si.Gram)
	r.Register("kilogram", si.Kilogram)
	r.Register("ampere", si.Ampere)
	r.Register("kelvin", si.Kelvin)
	r.Register("mole", si.Mole)
	r.Register("candela", si.Candela)
	return r
}

// Register adds a standard unit under the given name. A duplicate
// registration keeps the first entry and logs a warning.
func (r *Registry) Register(name string, u units.DerivedUnit) {
	if _, exists := r.byName[name]; exists {
		log.Warn().Str("unit", name).Msg("duplicate standard unit registration ignored")
		return
	}
	r.byName[name] = u
}

// Lookup returns the standard unit registered under name.
func (r *Registry) Lookup(name string) (units.DerivedUnit, bool) {
	u, ok := r.byName[name]
	return u, ok
}

// Document is the YAML shape of a unit catalog.
type Document struct {
	// Catalog names the catalog, e.g. "time".
	Catalog string `yaml:"catalog"`

	// Units lists the non-standard unit definitions.
	Units []Entry `yaml:"units"`
}

// Entry declares one non-standard unit: factor standard units make one
// of it, e.g. {long: minute, short: min, factor: 60, standard: second}.
type Entry struct {
	Long     string  `yaml:"long"`
	Short    string  `yaml:"short"`
	Factor   float64 `yaml:"factor"`
	Standard string  `yaml:"standard"`
}

// Catalog is a resolved set of named units.
type Catalog struct {
	name  string
	units map[string]units.BaseUnit
	order []string
}

// Name returns the catalog's declared name.
func (c *Catalog) Name() string { return c.name }

// Lookup returns the catalog unit with the given long name, wrapped as
// a DerivedUnit ready for the combinators.
func (c *Catalog) Lookup(long string) (units.DerivedUnit, bool) {
	b, ok := c.units[long]
	if !ok {
		return units.Unity(), false
	}
	return units.FromBaseUnit(b), true
}

// BaseUnit returns the raw catalog unit with the given long name.
func (c *Catalog) BaseUnit(long string) (units.BaseUnit, bool) {
	b, ok := c.units[long]
	return b, ok
}

// Units returns the catalog's units in declaration order.
func (c *Catalog) Units() []units.BaseUnit {
	out := make([]units.BaseUnit, 0, len(c.order))
	for _, long := range c.order {
		out = append(out, c.units[long])
	}
	return out
}

// Load reads a YAML catalog document from r and resolves it against
// the registry.
func Load(r io.Reader, reg *Registry) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data, reg)
}

// Parse resolves a YAML catalog document against the registry. Every
// entry must carry both names, a positive factor and a standard unit
// known to the registry. A long name declared twice keeps its first
// definition and logs a warning.
func Parse(data []byte, reg *Registry) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	cat := &Catalog{name: doc.Catalog, units: make(map[string]units.BaseUnit)}
	for _, e := range doc.Units {
		if e.Long == "" || e.Short == "" {
			return nil, fmt.Errorf("entry %q/%q: %w", e.Long, e.Short, ErrMissingName)
		}
		if e.Factor <= 0 {
			return nil, fmt.Errorf("unit %q: factor %v: %w", e.Long, e.Factor, ErrNonPositiveFactor)
		}
		std, ok := reg.Lookup(e.Standard)
		if !ok {
			return nil, fmt.Errorf("unit %q: %q: %w", e.Long, e.Standard, ErrUnknownStandardUnit)
		}
		if _, dup := cat.units[e.Long]; dup {
			log.Warn().
				Str("catalog", doc.Catalog).
				Str("unit", e.Long).
				Msg("duplicate catalog unit ignored")
			continue
		}
		cat.units[e.Long] = units.MakeNonStandard(e.Long, e.Short, e.Factor, std)
		cat.order = append(cat.order, e.Long)
	}
	return cat, nil
}
