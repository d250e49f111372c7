package units

// SI prefix table, standard steps from -18 to +18. Prefix values are
// base-10 exponents; 0 carries no prefix and is not listed.
var siPrefixes = []struct {
	value  float64
	symbol string
	name   string
}{
	{-18, "a", "atto"},
	{-15, "f", "femto"},
	{-12, "p", "pico"},
	{-9, "n", "nano"},
	{-6, "µ", "micro"},
	{-3, "m", "milli"},
	{-2, "c", "centi"},
	{-1, "d", "deci"},
	{1, "da", "deka"},
	{2, "h", "hecto"},
	{3, "k", "kilo"},
	{6, "M", "mega"},
	{9, "G", "giga"},
	{12, "T", "tera"},
	{15, "P", "peta"},
	{18, "E", "exa"},
}

// PrefixName returns the long SI name for a prefix value, e.g.
// PrefixName(3) returns ("kilo", true). The second return is false for
// values outside the fixed table; callers fall back to rendering the
// value numerically rather than treating the miss as an error.
func PrefixName(value float64) (string, bool) {
	for _, p := range siPrefixes {
		if p.value == value {
			return p.name, true
		}
	}
	return "", false
}

// PrefixSymbol returns the symbol for a prefix value, e.g. "k" for 3,
// "n" for -9 and the empty string for 0. The second return is false
// for values outside the table.
func PrefixSymbol(value float64) (string, bool) {
	if value == 0 {
		return "", true
	}
	for _, p := range siPrefixes {
		if p.value == value {
			return p.symbol, true
		}
	}
	return "", false
}

// Named prefix helpers. Each is a thin application of WithPrefix to the
// corresponding power of ten, so Kilo(Kilo(u)) accumulates to 6 on the
// primary component.

func Atto(u DerivedUnit) DerivedUnit { return u.WithPrefix(-18) }

func Femto(u DerivedUnit) DerivedUnit { return u.WithPrefix(-15) }

func Pico(u DerivedUnit) DerivedUnit { return u.WithPrefix(-12) }

func Nano(u DerivedUnit) DerivedUnit { return u.WithPrefix(-9) }

func Micro(u DerivedUnit) DerivedUnit { return u.WithPrefix(-6) }

func Centi(u DerivedUnit) DerivedUnit { return u.WithPrefix(-2) }

func Deci(u DerivedUnit) DerivedUnit { return u.WithPrefix(-1) }

func Hecto(u DerivedUnit) DerivedUnit { return u.WithPrefix(2) }

func Kilo(u DerivedUnit) DerivedUnit { return u.WithPrefix(3) }

func Mega(u DerivedUnit) DerivedUnit { return u.WithPrefix(6) }

func Giga(u DerivedUnit) DerivedUnit { return u.WithPrefix(9) }

func Tera(u DerivedUnit) DerivedUnit { return u.WithPrefix(12) }

func Peta(u DerivedUnit) DerivedUnit { return u.WithPrefix(15) }

func Exa(u DerivedUnit) DerivedUnit { return u.WithPrefix(18) }
