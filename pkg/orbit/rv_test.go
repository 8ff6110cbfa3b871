package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitkit/rvorbit/pkg/units"
)

func testElements(t *testing.T) Elements {
	t.Helper()
	el, err := NewElements(
		units.Days(10),
		units.KilometersPerSec(5),
		0.3,
		units.Radians(0),
		units.Radians(1.0),
	)
	require.NoError(t, err)
	return el
}

func TestRVAtPericenter(t *testing.T) {
	// P=10 d, K=5 km/s, e=0.3, omega=1 rad, phi0=0: at t=0 the mean,
	// eccentric and true anomalies are all zero, so
	// RV = K*(1+e)*cos(omega) ~ 3.512 km/s.
	el := testElements(t)

	rv, err := el.RVValues([]float64{0})
	require.NoError(t, err)
	require.Len(t, rv, 1)
	assert.InDelta(t, 5000*1.3*math.Cos(1.0), rv[0], 1e-6)
}

func TestRVCurveTaggedUnits(t *testing.T) {
	el := testElements(t)

	series, err := el.RVCurve([]float64{0, 2.5}, units.KilometersPerSecond)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, units.KilometersPerSecond, series[0].RV.Unit)
	assert.InDelta(t, 5*1.3*math.Cos(1.0), series[0].RV.Value, 1e-9)
	assert.Equal(t, 2.5, series[1].Time)
}

func TestRVPeriodicity(t *testing.T) {
	el := testElements(t)
	p := el.PeriodDays()

	base := []float64{0.1, 1.9, 4.4, 7.3}
	rv0, err := el.RVValues(base)
	require.NoError(t, err)

	for _, shift := range []float64{p, 2 * p, 5 * p} {
		shifted := make([]float64, len(base))
		for i, t0 := range base {
			shifted[i] = t0 + shift
		}
		rv, err := el.RVValues(shifted)
		require.NoError(t, err)
		for i := range rv {
			assert.InDelta(t, rv0[i], rv[i], 1e-6, "shift %v sample %d", shift, i)
		}
	}
}

func TestRadialVelocitiesDeterministic(t *testing.T) {
	nu := []float64{0, 0.5, 1.5, 3.0, 5.5}
	a := RadialVelocities(nu, 0.4, 2.1, 3000)
	b := RadialVelocities(nu, 0.4, 2.1, 3000)
	assert.Equal(t, a, b)
}

func TestNewElementsValidation(t *testing.T) {
	_, err := NewElements(units.Days(0), units.KilometersPerSec(5), 0.3,
		units.Radians(0), units.Radians(0))
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewElements(units.Days(-1), units.KilometersPerSec(5), 0.3,
		units.Radians(0), units.Radians(0))
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewElements(units.Days(10), units.KilometersPerSec(5), 1.0,
		units.Radians(0), units.Radians(0))
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewElements(units.Days(10), units.KilometersPerSec(5), -0.1,
		units.Radians(0), units.Radians(0))
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewElementsUnitHandling(t *testing.T) {
	// a period tagged in years normalizes to days
	el, err := NewElements(units.Years(1), units.MetersPerSec(100), 0,
		units.Degrees(90), units.Degrees(0))
	require.NoError(t, err)
	assert.InDelta(t, 365.25, el.PeriodDays(), 1e-9)
	assert.InDelta(t, math.Pi/2, el.Phi0().Value, 1e-12)

	// a velocity where a time belongs fails before validation
	_, err = NewElements(units.KilometersPerSec(10), units.KilometersPerSec(5), 0,
		units.Radians(0), units.Radians(0))
	require.ErrorIs(t, err, units.ErrUnitMismatch)
}
