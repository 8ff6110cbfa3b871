// Package units attaches physical dimensions to plain float64 values.
//
// The engine's internal convention is days for time, meters per second for
// velocity, and radians for angle. A Quantity carries a value together with
// its unit; Convert moves it between units of the same dimension and fails
// on anything else, so dimension errors surface before any orbital math runs.
package units

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// ErrUnitMismatch reports a conversion between units of different dimensions.
var ErrUnitMismatch = errorsmod.Register("units", 2, "unit mismatch")

// Dimension classifies units by physical dimension.
type Dimension int

const (
	Dimensionless Dimension = iota
	Time
	Velocity
	Angle
)

func (d Dimension) String() string {
	switch d {
	case Time:
		return "time"
	case Velocity:
		return "velocity"
	case Angle:
		return "angle"
	default:
		return "dimensionless"
	}
}

// Unit identifies a concrete measurement unit.
type Unit int

const (
	None Unit = iota
	Day
	Hour
	Second
	Year // Julian year, 365.25 days
	MetersPerSecond
	KilometersPerSecond
	Radian
	Degree
)

// Dimension returns the physical dimension the unit measures.
func (u Unit) Dimension() Dimension {
	switch u {
	case Day, Hour, Second, Year:
		return Time
	case MetersPerSecond, KilometersPerSecond:
		return Velocity
	case Radian, Degree:
		return Angle
	default:
		return Dimensionless
	}
}

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Second:
		return "s"
	case Year:
		return "yr"
	case MetersPerSecond:
		return "m/s"
	case KilometersPerSecond:
		return "km/s"
	case Radian:
		return "rad"
	case Degree:
		return "deg"
	default:
		return ""
	}
}

// baseFactor is the multiplier from this unit to the dimension's base unit
// (day, m/s, radian).
func (u Unit) baseFactor() float64 {
	switch u {
	case Day, MetersPerSecond, Radian, None:
		return 1
	case Hour:
		return 1.0 / 24.0
	case Second:
		return 1.0 / 86400.0
	case Year:
		return 365.25
	case KilometersPerSecond:
		return 1000
	case Degree:
		return math.Pi / 180.0
	default:
		return 1
	}
}

// ParseUnit maps a unit name as used in config files and CLI flags.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "day", "days", "d":
		return Day, nil
	case "hour", "hours", "h":
		return Hour, nil
	case "s", "sec", "second", "seconds":
		return Second, nil
	case "yr", "year", "years":
		return Year, nil
	case "m/s", "mps":
		return MetersPerSecond, nil
	case "km/s", "kms":
		return KilometersPerSecond, nil
	case "rad", "radian", "radians":
		return Radian, nil
	case "deg", "degree", "degrees":
		return Degree, nil
	}
	return None, errorsmod.Wrapf(ErrUnitMismatch, "unknown unit %q", s)
}

// Quantity is a value tagged with its unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Convert returns the quantity expressed in the target unit.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if q.Unit.Dimension() != to.Dimension() {
		return Quantity{}, errorsmod.Wrapf(ErrUnitMismatch,
			"cannot convert %s to %s", q.Unit.Dimension(), to.Dimension())
	}
	v := q.Value * q.Unit.baseFactor() / to.baseFactor()
	return Quantity{Value: v, Unit: to}, nil
}

// In is Convert returning only the numeric value.
func (q Quantity) In(to Unit) (float64, error) {
	c, err := q.Convert(to)
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}

func Days(v float64) Quantity             { return Quantity{Value: v, Unit: Day} }
func Years(v float64) Quantity            { return Quantity{Value: v, Unit: Year} }
func MetersPerSec(v float64) Quantity     { return Quantity{Value: v, Unit: MetersPerSecond} }
func KilometersPerSec(v float64) Quantity { return Quantity{Value: v, Unit: KilometersPerSecond} }
func Radians(v float64) Quantity          { return Quantity{Value: v, Unit: Radian} }
func Degrees(v float64) Quantity          { return Quantity{Value: v, Unit: Degree} }

// PMod returns x mod y with a non-negative result for y > 0, also when x is
// negative. math.Mod keeps the sign of the dividend, which is the wrong
// convention for phase arithmetic.
func PMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}
