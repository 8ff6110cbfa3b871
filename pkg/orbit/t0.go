package orbit

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	"github.com/orbitkit/rvorbit/pkg/units"
)

// FindPericenterTime un-wraps the periodic pericenter phase into the single
// absolute time nearest epoch. phi0 fixes the pericenter time only modulo
// the period: the base offset -phi0/(2*pi)*P is reduced into [0, P) and then
// shifted by the whole number of periods that lands closest to epoch, so
// |t0 - epoch| <= P/2 always holds. A tie at exactly P/2 resolves toward the
// later occurrence (math.Round, half away from zero). All values are on the
// internal day scale with reference epoch 0.
func FindPericenterTime(phi0, p, epoch float64) (float64, error) {
	if p <= 0 {
		return 0, errorsmod.Wrapf(ErrInvalidParameter, "period %v must be positive", p)
	}

	t0Base := units.PMod(-phi0/twoPi*p, p)
	n := math.Round((epoch - t0Base) / p)
	return t0Base + n*p, nil
}

// PericenterTime returns the pericenter passage nearest epoch for these
// elements.
func (el Elements) PericenterTime(epoch float64) (float64, error) {
	return FindPericenterTime(el.phi0, el.p, epoch)
}
