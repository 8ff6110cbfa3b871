package orbit

import (
	"math"

	"github.com/orbitkit/rvorbit/pkg/units"
)

// RadialVelocities applies the single-lined spectroscopic-binary RV law
//
//	RV = K * (cos(nu + omega) + e*cos(omega))
//
// to a true anomaly array. K is in m/s and the result is in m/s; the systemic
// velocity term is deliberately absent and is the caller's to add.
func RadialVelocities(nu []float64, e, omega, k float64) []float64 {
	out := make([]float64, len(nu))
	eCosW := e * math.Cos(omega)
	for i, v := range nu {
		out[i] = k * (math.Cos(v+omega) + eCosW)
	}
	return out
}

// RVPoint pairs a time sample with its tagged radial velocity.
type RVPoint struct {
	Time float64 // internal day scale
	RV   units.Quantity
}

// RVSeries is an ordered RV time series, one point per input time sample.
type RVSeries []RVPoint

// RVValues computes the RV curve at the given times in the internal m/s
// convention.
func (el Elements) RVValues(times []float64) ([]float64, error) {
	nu, err := TrueAnomalies(times, el.p, el.e, el.phi0)
	if err != nil {
		return nil, err
	}
	return RadialVelocities(nu, el.e, el.omega, el.k), nil
}

// RVCurve computes the RV curve and tags each velocity in the requested unit.
func (el Elements) RVCurve(times []float64, rvUnit units.Unit) (RVSeries, error) {
	raw, err := el.RVValues(times)
	if err != nil {
		return nil, err
	}
	series := make(RVSeries, len(raw))
	for i, v := range raw {
		q, err := units.MetersPerSec(v).Convert(rvUnit)
		if err != nil {
			return nil, err
		}
		series[i] = RVPoint{Time: times[i], RV: q}
	}
	return series, nil
}
