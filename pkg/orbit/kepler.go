package orbit

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	"github.com/orbitkit/rvorbit/pkg/units"
)

const twoPi = 2 * math.Pi

// Solver iterates Kepler's equation M = E - e*sin(E) with Newton-Raphson.
type Solver struct {
	Tolerance     float64 // absolute step tolerance, radians
	MaxIterations int
	// HighEccSeed is the eccentricity above which the iteration starts from
	// E = pi instead of E = M.
	HighEccSeed float64
}

// DefaultSolver uses a 1e-10 rad tolerance and a 50 iteration cap.
func DefaultSolver() Solver {
	return Solver{Tolerance: 1e-10, MaxIterations: 50, HighEccSeed: 0.8}
}

// MeanAnomalies computes M(t) = 2*pi*((t - t_ref)/P mod 1) + phi0 for every
// sample, wrapped into [0, 2*pi). The reference epoch t_ref is 0 in the
// internal day scale.
func MeanAnomalies(times []float64, p, phi0 float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = units.PMod(twoPi*units.PMod(t/p, 1)+phi0, twoPi)
	}
	return out
}

// EccentricAnomaly solves Kepler's equation for a single mean anomaly.
func (s Solver) EccentricAnomaly(m, e float64) (float64, error) {
	if e == 0 {
		return m, nil
	}

	E := m
	if e > s.HighEccSeed {
		E = math.Pi
	}

	for i := 0; i < s.MaxIterations; i++ {
		f := E - e*math.Sin(E) - m
		fp := 1 - e*math.Cos(E)

		dE := f / fp
		E -= dE

		if math.Abs(dE) < s.Tolerance {
			return E, nil
		}
	}
	return 0, errorsmod.Wrapf(ErrNonConvergence,
		"M=%v e=%v after %d iterations", m, e, s.MaxIterations)
}

// trueAnomalyFromEccentric converts E to the true anomaly via the half-angle
// relation, quadrant-corrected with a two-argument arctangent.
func trueAnomalyFromEccentric(E, e float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2),
	)
}

// TrueAnomalies computes the true anomaly for every time sample. An empty
// time slice yields an empty result. A sample that fails to converge aborts
// the call with ErrNonConvergence identifying the sample index.
func (s Solver) TrueAnomalies(times []float64, p, e, phi0 float64) ([]float64, error) {
	if p <= 0 {
		return nil, errorsmod.Wrapf(ErrInvalidParameter, "period %v must be positive", p)
	}
	if e < 0 || e >= 1 {
		return nil, errorsmod.Wrapf(ErrInvalidParameter, "eccentricity %v outside [0, 1)", e)
	}

	ms := MeanAnomalies(times, p, phi0)
	nu := make([]float64, len(ms))
	for i, m := range ms {
		E, err := s.EccentricAnomaly(m, e)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "sample %d (t=%v)", i, times[i])
		}
		nu[i] = trueAnomalyFromEccentric(E, e)
	}
	return nu, nil
}

// TrueAnomalies runs the default solver over the time samples.
func TrueAnomalies(times []float64, p, e, phi0 float64) ([]float64, error) {
	return DefaultSolver().TrueAnomalies(times, p, e, phi0)
}
