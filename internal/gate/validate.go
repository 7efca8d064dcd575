package gate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrDuplicateGate is wrapped when two gates share a number.
	ErrDuplicateGate = errors.New("duplicate gate number")
	// ErrNegativeStandoff is wrapped when a standoff distance is below zero.
	ErrNegativeStandoff = errors.New("negative standoff distance")
	// ErrNonFinite is wrapped when a gate field is NaN or infinite.
	ErrNonFinite = errors.New("non-finite value")
	// ErrInvalidConfig is wrapped when a Config field is unknown.
	ErrInvalidConfig = errors.New("invalid synthesis config")
)

// ValidationError identifies the gate that failed validation.
type ValidationError struct {
	Gate   int
	Row    int // 0 when unknown
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	where := fmt.Sprintf("gate %d", e.Gate)
	if e.Row > 0 {
		where = fmt.Sprintf("gate %d (row %d)", e.Gate, e.Row)
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", where, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", where, e.Err, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks a gate set before synthesis. It reports the first
// problem found in input order.
func Validate(gates []GateSpec) error {
	seen := make(map[int]GateSpec, len(gates))
	for _, g := range gates {
		if prev, ok := seen[g.Number]; ok {
			detail := "defined more than once"
			if prev.Row > 0 {
				detail = fmt.Sprintf("first defined at row %d", prev.Row)
			}
			return &ValidationError{Gate: g.Number, Row: g.Row, Detail: detail, Err: ErrDuplicateGate}
		}
		seen[g.Number] = g

		if err := validateGate(g); err != nil {
			return err
		}
	}
	return nil
}

func validateGate(g GateSpec) error {
	switch {
	case !finiteVec(g.Center):
		return &ValidationError{Gate: g.Number, Row: g.Row, Detail: "center", Err: ErrNonFinite}
	case !finite(g.Rotation):
		return &ValidationError{Gate: g.Number, Row: g.Row, Detail: "rotation", Err: ErrNonFinite}
	case !finiteVec(g.Offset):
		return &ValidationError{Gate: g.Number, Row: g.Row, Detail: "offset", Err: ErrNonFinite}
	case !finite(g.WaypointBefore) || !finite(g.WaypointAfter):
		return &ValidationError{Gate: g.Number, Row: g.Row, Detail: "standoff", Err: ErrNonFinite}
	case g.WaypointBefore < 0:
		return &ValidationError{Gate: g.Number, Row: g.Row, Detail: fmt.Sprintf("waypoint_before=%g", g.WaypointBefore), Err: ErrNegativeStandoff}
	case g.WaypointAfter < 0:
		return &ValidationError{Gate: g.Number, Row: g.Row, Detail: fmt.Sprintf("waypoint_after=%g", g.WaypointAfter), Err: ErrNegativeStandoff}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteVec(v r3.Vec) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}
