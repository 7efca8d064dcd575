// Package units provides shared constants and conversion for angle units
package units

import "math"

// Angle unit constants
const (
	Degrees = "deg"
	Radians = "rad"
)

// ValidAngleUnits contains all valid angle unit values
var ValidAngleUnits = []string{Degrees, Radians}

// IsValidAngleUnit checks if the given unit is in the list of valid angle units
func IsValidAngleUnit(unit string) bool {
	for _, valid := range ValidAngleUnits {
		if unit == valid {
			return true
		}
	}
	return false
}

// GetValidAngleUnitsString returns a comma-separated string of valid units for error messages
func GetValidAngleUnitsString() string {
	return "deg, rad"
}

// ToRadians converts an angle expressed in unit to radians.
// Unknown units are treated as degrees.
func ToRadians(angle float64, unit string) float64 {
	if unit == Radians {
		return angle
	}
	return angle * math.Pi / 180.0
}

// FromRadians converts an angle in radians to unit.
// Unknown units are treated as degrees.
func FromRadians(rad float64, unit string) float64 {
	if unit == Radians {
		return rad
	}
	return rad * 180.0 / math.Pi
}

// FullTurn returns one full revolution in unit.
func FullTurn(unit string) float64 {
	if unit == Radians {
		return 2 * math.Pi
	}
	return 360.0
}
