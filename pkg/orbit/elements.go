// Package orbit is the two-body Keplerian radial-velocity engine: orbital
// element validation, Kepler's equation, the spectroscopic RV law, and
// pericenter-time unwrapping.
//
// Internally everything runs on a fixed numeric convention: days for time,
// meters per second for velocity, radians for angle, with times counted on a
// continuous day scale whose reference epoch is t = 0.
package orbit

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/orbitkit/rvorbit/pkg/units"
)

// Elements holds the five orbital elements of a single-lined spectroscopic
// binary, normalized to the internal unit convention at construction.
// Immutable once built.
type Elements struct {
	p     float64 // period, days
	k     float64 // RV semi-amplitude, m/s
	e     float64 // eccentricity
	phi0  float64 // mean anomaly at the reference epoch, radians
	omega float64 // argument of periastron, radians
}

// NewElements validates and normalizes the five orbital elements. The period
// must be positive and the eccentricity within [0, 1); parabolic and
// hyperbolic orbits are not supported. Unit conversion happens here, before
// any numeric work, so dimensionally wrong inputs fail up front.
func NewElements(period, semiAmplitude units.Quantity, ecc float64, phi0, omega units.Quantity) (Elements, error) {
	p, err := period.In(units.Day)
	if err != nil {
		return Elements{}, err
	}
	k, err := semiAmplitude.In(units.MetersPerSecond)
	if err != nil {
		return Elements{}, err
	}
	phi, err := phi0.In(units.Radian)
	if err != nil {
		return Elements{}, err
	}
	w, err := omega.In(units.Radian)
	if err != nil {
		return Elements{}, err
	}

	if p <= 0 {
		return Elements{}, errorsmod.Wrapf(ErrInvalidParameter, "period %v must be positive", p)
	}
	if ecc < 0 || ecc >= 1 {
		return Elements{}, errorsmod.Wrapf(ErrInvalidParameter, "eccentricity %v outside [0, 1)", ecc)
	}

	return Elements{p: p, k: k, e: ecc, phi0: phi, omega: w}, nil
}

// Period returns the orbital period tagged in days.
func (el Elements) Period() units.Quantity { return units.Days(el.p) }

// SemiAmplitude returns the RV semi-amplitude tagged in m/s.
func (el Elements) SemiAmplitude() units.Quantity { return units.MetersPerSec(el.k) }

// Eccentricity returns the dimensionless eccentricity.
func (el Elements) Eccentricity() float64 { return el.e }

// Phi0 returns the mean anomaly at the reference epoch, tagged in radians.
func (el Elements) Phi0() units.Quantity { return units.Radians(el.phi0) }

// Omega returns the argument of periastron, tagged in radians.
func (el Elements) Omega() units.Quantity { return units.Radians(el.omega) }

// PeriodDays returns the period in the internal convention.
func (el Elements) PeriodDays() float64 { return el.p }

// SemiAmplitudeMS returns the semi-amplitude in the internal convention.
func (el Elements) SemiAmplitudeMS() float64 { return el.k }
