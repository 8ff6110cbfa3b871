package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertWithinDimension(t *testing.T) {
	v, err := KilometersPerSec(5).In(MetersPerSecond)
	require.NoError(t, err)
	assert.InDelta(t, 5000.0, v, 1e-12)

	v, err = Days(1).In(Hour)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, v, 1e-12)

	v, err = Years(2).In(Day)
	require.NoError(t, err)
	assert.InDelta(t, 730.5, v, 1e-9)

	v, err = Degrees(180).In(Radian)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v, 1e-12)
}

func TestConvertRoundTrip(t *testing.T) {
	q := Radians(1.234)
	deg, err := q.Convert(Degree)
	require.NoError(t, err)
	back, err := deg.Convert(Radian)
	require.NoError(t, err)
	assert.InDelta(t, q.Value, back.Value, 1e-12)
}

func TestConvertRejectsCrossDimension(t *testing.T) {
	_, err := Days(1).Convert(MetersPerSecond)
	require.ErrorIs(t, err, ErrUnitMismatch)

	_, err = Radians(1).In(Day)
	require.ErrorIs(t, err, ErrUnitMismatch)
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("km/s")
	require.NoError(t, err)
	assert.Equal(t, KilometersPerSecond, u)

	u, err = ParseUnit("days")
	require.NoError(t, err)
	assert.Equal(t, Day, u)

	_, err = ParseUnit("parsec")
	require.ErrorIs(t, err, ErrUnitMismatch)
}

func TestPMod(t *testing.T) {
	assert.InDelta(t, 0.5, PMod(-0.5, 1.0), 1e-15)
	assert.InDelta(t, 0.3, PMod(10.3, 1.0), 1e-12)
	assert.InDelta(t, 0.0, PMod(-2.0, 1.0), 1e-15)
	assert.InDelta(t, 1.5, PMod(-4.5, 3.0), 1e-12)

	// result stays inside [0, y)
	for _, x := range []float64{-7.25, -1e-9, 0, 1e-9, 123.456} {
		r := PMod(x, 2*math.Pi)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.Less(t, r, 2*math.Pi)
	}
}
