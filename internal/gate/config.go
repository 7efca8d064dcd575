package gate

import (
	"fmt"

	"github.com/banshee-data/gatepath/internal/units"
	"gonum.org/v1/gonum/spatial/r3"
)

// Handedness selects the direction in which positive rotations turn.
type Handedness string

const (
	// CounterClockwise rotates +X towards +Y for positive angles.
	CounterClockwise Handedness = "ccw"
	// Clockwise rotates +X towards -Y for positive angles.
	Clockwise Handedness = "cw"
)

// YawMode selects how waypoint yaw is derived.
type YawMode string

const (
	// YawFromGate gives every waypoint its gate's commanded rotation.
	YawFromGate YawMode = "gate"
	// YawFromTangent points every waypoint at the next one in the path.
	YawFromTangent YawMode = "tangent"
)

// Config carries the conventions used during synthesis. The zero value
// is equivalent to DefaultConfig.
type Config struct {
	AngleUnit  string // units.Degrees or units.Radians
	Handedness Handedness
	YawMode    YawMode
	// OriginShift is added to every gate center, moving the vehicle
	// origin relative to the gate survey origin.
	OriginShift r3.Vec
}

// DefaultConfig returns degrees, counter-clockwise, per-gate yaw and no
// origin shift.
func DefaultConfig() Config {
	return Config{
		AngleUnit:  units.Degrees,
		Handedness: CounterClockwise,
		YawMode:    YawFromGate,
	}
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.AngleUnit == "" {
		c.AngleUnit = d.AngleUnit
	}
	if c.Handedness == "" {
		c.Handedness = d.Handedness
	}
	if c.YawMode == "" {
		c.YawMode = d.YawMode
	}
	return c
}

// Validate checks that every field holds a known value. Empty fields are
// accepted and take their defaults.
func (c Config) Validate() error {
	c = c.withDefaults()
	if !units.IsValidAngleUnit(c.AngleUnit) {
		return fmt.Errorf("%w: angle unit %q, must be one of: %s", ErrInvalidConfig, c.AngleUnit, units.GetValidAngleUnitsString())
	}
	switch c.Handedness {
	case CounterClockwise, Clockwise:
	default:
		return fmt.Errorf("%w: handedness %q, must be one of: ccw, cw", ErrInvalidConfig, c.Handedness)
	}
	switch c.YawMode {
	case YawFromGate, YawFromTangent:
	default:
		return fmt.Errorf("%w: yaw mode %q, must be one of: gate, tangent", ErrInvalidConfig, c.YawMode)
	}
	if !finiteVec(c.OriginShift) {
		return fmt.Errorf("%w: origin shift must be finite", ErrInvalidConfig)
	}
	return nil
}

// Heading converts a rotation or yaw in the configured unit and
// handedness into a counter-clockwise angle in radians measured from +X.
func (c Config) Heading(rotation float64) float64 {
	rad := units.ToRadians(rotation, c.AngleUnit)
	if c.Handedness == Clockwise {
		return -rad
	}
	return rad
}

// FromHeading is the inverse of Heading.
func (c Config) FromHeading(heading float64) float64 {
	if c.Handedness == Clockwise {
		heading = -heading
	}
	return units.FromRadians(heading, c.AngleUnit)
}
