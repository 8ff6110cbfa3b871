// Package ensemble runs the orbit engine over a set of parameter samples and
// a shared time grid, producing the curve matrix handed to a rendering sink.
package ensemble

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/orbitkit/rvorbit/internal/types"
	"github.com/orbitkit/rvorbit/pkg/orbit"
)

// Manager computes RV curve ensembles.
type Manager struct {
	workers int
	solver  orbit.Solver
}

// NewManager creates an ensemble manager. workers <= 0 means one worker per
// CPU.
func NewManager(workers int) *Manager {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Manager{workers: workers, solver: orbit.DefaultSolver()}
}

// WithSolver overrides the default Kepler solver settings.
func (m *Manager) WithSolver(s orbit.Solver) *Manager {
	m.solver = s
	return m
}

// Curves evaluates every sample on the shared time grid and collects the
// n_samples x len(grid) RV matrix with per-epoch mean and standard deviation.
// Samples are independent and run in parallel; the first failure cancels the
// remaining work and aborts the whole ensemble with the failing sample named
// in the error.
func (m *Manager) Curves(ctx context.Context, samples []orbit.Elements, grid []float64) (*types.CurveSet, error) {
	start := time.Now()
	log.Printf("Computing RV curves for %d samples over %d grid points", len(samples), len(grid))

	matrix := make([][]float64, len(samples))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i := range samples {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			el := samples[i]
			nu, err := m.solver.TrueAnomalies(grid, el.PeriodDays(), el.Eccentricity(), el.Phi0().Value)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			matrix[i] = orbit.RadialVelocities(nu, el.Eccentricity(), el.Omega().Value, el.SemiAmplitudeMS())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mean, std := summarize(matrix, len(grid))

	cs := &types.CurveSet{
		ID:     uuid.NewString(),
		Grid:   grid,
		RV:     matrix,
		MeanRV: mean,
		StdRV:  std,
		Metadata: map[string]string{
			"num_samples": fmt.Sprintf("%d", len(samples)),
			"num_epochs":  fmt.Sprintf("%d", len(grid)),
			"rv_unit":     "m/s",
		},
		Timestamp: time.Now(),
		Duration:  time.Since(start),
	}

	log.Printf("Ensemble %s completed in %v", cs.ID, cs.Duration)
	return cs, nil
}

// summarize computes the per-epoch ensemble mean and standard deviation.
func summarize(matrix [][]float64, nEpochs int) (mean, std []float64) {
	mean = make([]float64, nEpochs)
	std = make([]float64, nEpochs)
	if len(matrix) == 0 {
		return mean, std
	}

	col := make([]float64, len(matrix))
	for j := 0; j < nEpochs; j++ {
		for i := range matrix {
			col[i] = matrix[i][j]
		}
		mean[j] = stat.Mean(col, nil)
		if len(col) > 1 {
			std[j] = stat.StdDev(col, nil)
		}
	}
	return mean, std
}

// TimeGrid builds a uniform grid of n points spanning [tMin, tMax] on the
// internal day scale.
func TimeGrid(tMin, tMax float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{tMin}
	}
	grid := make([]float64, n)
	step := (tMax - tMin) / float64(n-1)
	for i := range grid {
		grid[i] = tMin + float64(i)*step
	}
	return grid
}
