package ensemble

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/orbitkit/rvorbit/internal/types"
	"github.com/orbitkit/rvorbit/pkg/orbit"
	"github.com/orbitkit/rvorbit/pkg/units"
)

// DefaultMaxCurves caps how many ensemble members are handed to a sink.
const DefaultMaxCurves = 128

// Style carries the presentation directives that cross the rendering
// boundary as plain data. The engine never interprets them.
type Style struct {
	LineStyle  string
	Color      string
	Alpha      float64
	Rasterized bool
}

// DefaultStyle returns the house style for ensemble over-plots, with the
// line transparency scaled to the number of curves drawn.
func DefaultStyle(nCurves int) Style {
	return Style{
		LineStyle:  "-",
		Color:      "#555555",
		Alpha:      LineAlpha(nCurves),
		Rasterized: true,
	}
}

// LineAlpha scales line transparency down as the plot gets more crowded.
func LineAlpha(nCurves int) float64 {
	const q = 4.0
	return 0.05 + q/(float64(nCurves)+q)
}

// CurveSink renders a family of curves sharing an x axis. Implementations
// live outside the engine; the returned error is propagated untouched.
type CurveSink interface {
	Draw(x []float64, y [][]float64, style Style) error
}

// RenderOptions controls how a CurveSet is handed to a sink.
type RenderOptions struct {
	// MaxCurves caps the number of members drawn; 0 means DefaultMaxCurves.
	MaxCurves int
	// RVUnit is the velocity unit for the y values; zero value means km/s.
	RVUnit units.Unit
	// RelativeToT0 shifts the x axis by T0 before drawing.
	RelativeToT0 bool
	// T0 is the axis origin used when RelativeToT0 is set, on the internal
	// day scale. Callers typically obtain it from orbit.FindPericenterTime.
	T0 float64
	// Style overrides the default style when non-zero.
	Style *Style
}

// PericenterOrigin computes the t0 axis origin for a relative-to-t0 render
// from the first ensemble member: its pericenter passage nearest epoch.
func PericenterOrigin(samples []orbit.Elements, epoch float64) (float64, error) {
	if len(samples) == 0 {
		return 0, errorsmod.Wrap(orbit.ErrInvalidParameter, "empty sample set")
	}
	return samples[0].PericenterTime(epoch)
}

// Render hands the curve set to the sink, applying the curve cap, unit
// conversion and optional t0-relative axis shift.
func (m *Manager) Render(sink CurveSink, cs *types.CurveSet, opts RenderOptions) error {
	nPlot := opts.MaxCurves
	if nPlot <= 0 {
		nPlot = DefaultMaxCurves
	}
	if nPlot > cs.Samples() {
		nPlot = cs.Samples()
	}

	rvUnit := opts.RVUnit
	if rvUnit == units.None {
		rvUnit = units.KilometersPerSecond
	}

	x := cs.Grid
	if opts.RelativeToT0 {
		shifted := make([]float64, len(cs.Grid))
		for i, t := range cs.Grid {
			shifted[i] = t - opts.T0
		}
		x = shifted
	}

	y := make([][]float64, nPlot)
	for i := 0; i < nPlot; i++ {
		row := make([]float64, len(cs.RV[i]))
		for j, v := range cs.RV[i] {
			q, err := units.MetersPerSec(v).Convert(rvUnit)
			if err != nil {
				return errorsmod.Wrapf(err, "curve %d", i)
			}
			row[j] = q.Value
		}
		y[i] = row
	}

	style := DefaultStyle(nPlot)
	if opts.Style != nil {
		style = *opts.Style
	}

	return sink.Draw(x, y, style)
}
