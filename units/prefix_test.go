package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixName(t *testing.T) {
	tests := []struct {
		value    float64
		wantName string
		wantOK   bool
	}{
		{-18, "atto", true},
		{-15, "femto", true},
		{-12, "pico", true},
		{-9, "nano", true},
		{-6, "micro", true},
		{-3, "milli", true},
		{-2, "centi", true},
		{-1, "deci", true},
		{1, "deka", true},
		{2, "hecto", true},
		{3, "kilo", true},
		{6, "mega", true},
		{9, "giga", true},
		{12, "tera", true},
		{15, "peta", true},
		{18, "exa", true},
		{4, "", false},
		{-7, "", false},
		{0.5, "", false},
	}

	for _, tt := range tests {
		name, ok := PrefixName(tt.value)
		assert.Equal(t, tt.wantOK, ok, "PrefixName(%v)", tt.value)
		assert.Equal(t, tt.wantName, name, "PrefixName(%v)", tt.value)
	}
}

func TestPrefixSymbol(t *testing.T) {
	tests := []struct {
		value      float64
		wantSymbol string
		wantOK     bool
	}{
		{-9, "n", true},
		{-3, "m", true},
		{-2, "c", true},
		{0, "", true},
		{2, "h", true},
		{3, "k", true},
		{6, "M", true},
		{18, "E", true},
		{5, "", false},
	}

	for _, tt := range tests {
		sym, ok := PrefixSymbol(tt.value)
		assert.Equal(t, tt.wantOK, ok, "PrefixSymbol(%v)", tt.value)
		assert.Equal(t, tt.wantSymbol, sym, "PrefixSymbol(%v)", tt.value)
	}
}

func TestPrefixHelpers(t *testing.T) {
	m := testMeter()

	tests := []struct {
		name   string
		helper func(DerivedUnit) DerivedUnit
		want   float64
	}{
		{"Atto", Atto, -18},
		{"Femto", Femto, -15},
		{"Pico", Pico, -12},
		{"Nano", Nano, -9},
		{"Micro", Micro, -6},
		{"Centi", Centi, -2},
		{"Deci", Deci, -1},
		{"Hecto", Hecto, 2},
		{"Kilo", Kilo, 3},
		{"Mega", Mega, 6},
		{"Giga", Giga, 9},
		{"Tera", Tera, 12},
		{"Peta", Peta, 15},
		{"Exa", Exa, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := tt.helper(m).Components()
			require.Len(t, cs, 1)
			assert.InDelta(t, tt.want, cs[0].Prefix, 0)
		})
	}
}
