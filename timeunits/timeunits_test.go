package timeunits

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/unitkit/si"
	"github.com/rshade/unitkit/units"
)

func TestConversionFactors(t *testing.T) {
	tests := []struct {
		name string
		in   units.DerivedUnit
		want float64
	}{
		{"minute", Minute, 60},
		{"hour", Hour, 3600},
		{"day", Day, 86400},
		{"week", Week, 604800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, factor := tt.in.ToStandardUnit()
			assert.True(t, got.Equal(si.Second))
			assert.InEpsilon(t, tt.want, factor, 1e-12)
		})
	}
}

func TestKilometersPerHour(t *testing.T) {
	kmh := units.Kilo(si.Meter).Divide(Hour)
	assert.Equal(t, "km/h", kmh.String())

	got, factor := kmh.ToStandardUnit()
	assert.True(t, got.Equal(si.Meter.Divide(si.Second)))
	assert.InEpsilon(t, 1000.0/3600.0, factor, 1e-12)
}
