package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeplerResidualAcrossEccentricities(t *testing.T) {
	s := DefaultSolver()
	for e := 0.0; e <= 0.99; e += 0.03 {
		for m := 0.0; m < twoPi; m += twoPi / 37 {
			E, err := s.EccentricAnomaly(m, e)
			require.NoError(t, err, "e=%v M=%v", e, m)

			residual := math.Abs(E - e*math.Sin(E) - m)
			assert.Less(t, residual, 1e-9, "e=%v M=%v", e, m)
		}
	}
}

func TestCircularOrbitBypassesIteration(t *testing.T) {
	s := DefaultSolver()
	for m := 0.0; m < twoPi; m += 0.17 {
		E, err := s.EccentricAnomaly(m, 0)
		require.NoError(t, err)
		assert.Equal(t, m, E)
	}
}

func TestCircularTrueAnomalyEqualsMean(t *testing.T) {
	times := []float64{0, 1.25, 3.7, 9.99}
	p := 10.0
	nu, err := TrueAnomalies(times, p, 0, 0)
	require.NoError(t, err)

	ms := MeanAnomalies(times, p, 0)
	for i := range nu {
		// Atan2 maps to (-pi, pi]; compare on the circle.
		d := math.Mod(nu[i]-ms[i], twoPi)
		if d > math.Pi {
			d -= twoPi
		} else if d < -math.Pi {
			d += twoPi
		}
		assert.InDelta(t, 0, d, 1e-12, "sample %d", i)
	}
}

func TestTrueAnomalyQuadrants(t *testing.T) {
	// At M just below 2*pi the orbit approaches pericenter from behind; a
	// naive arctan would fold the angle into the wrong quadrant.
	s := DefaultSolver()
	e := 0.6
	m := twoPi - 0.1

	E, err := s.EccentricAnomaly(m, e)
	require.NoError(t, err)
	nu := trueAnomalyFromEccentric(E, e)

	// nu and E sit on the same side of the ellipse
	assert.Negative(t, math.Sin(nu))
	assert.Negative(t, math.Sin(E))
}

func TestEmptyTimeArray(t *testing.T) {
	nu, err := TrueAnomalies([]float64{}, 10, 0.3, 0)
	require.NoError(t, err)
	assert.Empty(t, nu)
}

func TestTrueAnomaliesRejectsBadParameters(t *testing.T) {
	times := []float64{0, 1}

	_, err := TrueAnomalies(times, 0, 0.3, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = TrueAnomalies(times, -5, 0.3, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = TrueAnomalies(times, 10, 1.0, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = TrueAnomalies(times, 10, -0.1, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSolverNonConvergence(t *testing.T) {
	s := Solver{Tolerance: 1e-16, MaxIterations: 2, HighEccSeed: 0.8}
	_, err := s.EccentricAnomaly(2.5, 0.95)
	require.ErrorIs(t, err, ErrNonConvergence)
}

func TestMeanAnomalyWrapsNegativeTimes(t *testing.T) {
	ms := MeanAnomalies([]float64{-2.5}, 10, 0)
	require.Len(t, ms, 1)
	assert.GreaterOrEqual(t, ms[0], 0.0)
	assert.Less(t, ms[0], twoPi)
	assert.InDelta(t, twoPi*0.75, ms[0], 1e-12)
}
