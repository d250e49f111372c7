package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStandardUnit(t *testing.T) {
	second := testSecond()
	meter := testMeter()
	minute := FromBaseUnit(MakeNonStandard("minute", "min", 60, second))
	hour := testHour()

	tests := []struct {
		name       string
		in         DerivedUnit
		wantUnit   DerivedUnit
		wantFactor float64
	}{
		{
			name:       "standard unit converts to itself",
			in:         second,
			wantUnit:   second,
			wantFactor: 1,
		},
		{
			name:       "minute converts to sixty seconds",
			in:         minute,
			wantUnit:   second,
			wantFactor: 60,
		},
		{
			name:       "hour converts to 3600 seconds",
			in:         hour,
			wantUnit:   second,
			wantFactor: 3600,
		},
		{
			name:       "square kilometer converts to square meters",
			in:         Kilo(meter).Power(2),
			wantUnit:   meter.Power(2),
			wantFactor: 1e6,
		},
		{
			name:       "compound km per hour",
			in:         Kilo(meter).Divide(hour),
			wantUnit:   meter.Divide(second),
			wantFactor: 1000.0 / 3600.0,
		},
		{
			name:       "inverse non-standard unit divides the factor",
			in:         hour.Power(-1),
			wantUnit:   second.Power(-1),
			wantFactor: 1.0 / 3600.0,
		},
		{
			name:       "unity converts to unity",
			in:         Unity(),
			wantUnit:   Unity(),
			wantFactor: 1,
		},
		{
			name:       "prefixed unity contributes only a factor",
			in:         Unity().WithPrefix(3),
			wantUnit:   Unity(),
			wantFactor: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, factor := tt.in.ToStandardUnit()
			assert.True(t, got.Equal(tt.wantUnit),
				"got %v, want %v", got, tt.wantUnit)
			assert.InEpsilon(t, tt.wantFactor, factor, 1e-12)
		})
	}
}

func TestToStandardUnitIsSingleLevel(t *testing.T) {
	// A chained definition: fortnight -> week -> second. Only the
	// immediate standard unit is substituted, so the result still
	// contains the week and the factor covers one hop only.
	second := testSecond()
	week := FromBaseUnit(MakeNonStandard("week", "wk", 604800, second))
	fortnight := FromBaseUnit(MakeNonStandard("fortnight", "fn", 2, week))

	got, factor := fortnight.ToStandardUnit()
	assert.True(t, got.Equal(week))
	assert.InEpsilon(t, 2, factor, 1e-12)
}
