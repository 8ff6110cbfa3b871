package orbit

import (
	errorsmod "cosmossdk.io/errors"
)

// Engine error codespace. Unit conversion failures are reported by
// pkg/units with its own registered error.
var (
	// ErrInvalidParameter reports malformed orbital elements: a non-positive
	// period or an eccentricity outside [0, 1).
	ErrInvalidParameter = errorsmod.Register("orbit", 2, "invalid orbital parameter")

	// ErrNonConvergence reports that the Kepler root-finder exhausted its
	// iteration budget without reaching tolerance.
	ErrNonConvergence = errorsmod.Register("orbit", 3, "kepler solver did not converge")
)
