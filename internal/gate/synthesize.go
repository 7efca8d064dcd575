package gate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Synthesize builds the waypoint path for gates. Gates are validated as
// a whole before any waypoint is produced, then processed in ascending
// Number order regardless of their order in the slice. The input slice
// is not modified. An empty input yields an empty path.
func Synthesize(gates []GateSpec, cfg Config) (Path, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(gates); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	ordered := make([]GateSpec, len(gates))
	copy(ordered, gates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	n := 0
	for _, g := range ordered {
		n += g.WaypointCount()
	}

	path := make(Path, 0, n)
	for _, g := range ordered {
		path = append(path, gateWaypoints(g, cfg)...)
	}

	if cfg.YawMode == YawFromTangent {
		applyTangentYaw(path, cfg)
	}
	return path, nil
}

// EntryPoint returns the world position of the gate's entry point: the
// center, shifted by the configured origin, plus the offset rotated by
// the gate heading about the vertical axis.
func EntryPoint(g GateSpec, cfg Config) r3.Vec {
	cfg = cfg.withDefaults()
	return entryPoint(g, cfg, cfg.Heading(g.Rotation))
}

func entryPoint(g GateSpec, cfg Config, theta float64) r3.Vec {
	sin, cos := math.Sincos(theta)
	rotated := r3.Vec{
		X: g.Offset.X*cos - g.Offset.Y*sin,
		Y: g.Offset.X*sin + g.Offset.Y*cos,
		Z: g.Offset.Z,
	}
	return r3.Add(r3.Add(g.Center, cfg.OriginShift), rotated)
}

// gateWaypoints returns [before?, entry, after?] for one gate.
func gateWaypoints(g GateSpec, cfg Config) []Waypoint {
	theta := cfg.Heading(g.Rotation)
	entry := entryPoint(g, cfg, theta)
	sin, cos := math.Sincos(theta)
	dir := r3.Vec{X: cos, Y: sin}

	out := make([]Waypoint, 0, 3)
	if g.WaypointBefore > 0 {
		out = append(out, Waypoint{
			Position: r3.Sub(entry, r3.Scale(g.WaypointBefore, dir)),
			Yaw:      g.Rotation,
			Role:     RoleBefore,
			Gate:     g.Number,
		})
	}
	out = append(out, Waypoint{Position: entry, Yaw: g.Rotation, Role: RoleEntry, Gate: g.Number})
	if g.WaypointAfter > 0 {
		out = append(out, Waypoint{
			Position: r3.Add(entry, r3.Scale(g.WaypointAfter, dir)),
			Yaw:      g.Rotation,
			Role:     RoleAfter,
			Gate:     g.Number,
		})
	}
	return out
}

// minStep is the horizontal distance below which two consecutive
// waypoints are treated as coincident when deriving tangent yaw.
const minStep = 1e-9

// applyTangentYaw rewrites yaw so each waypoint faces the next one. The
// last waypoint keeps the heading of the segment leading into it. A
// coincident step keeps the previous heading, or the gate yaw when there
// is none yet.
func applyTangentYaw(path Path, cfg Config) {
	if len(path) < 2 {
		return
	}
	haveHeading := false
	var last float64
	for i := 0; i < len(path)-1; i++ {
		d := r3.Sub(path[i+1].Position, path[i].Position)
		if scalar.EqualWithinAbs(math.Hypot(d.X, d.Y), 0, minStep) {
			if haveHeading {
				path[i].Yaw = last
			}
			continue
		}
		last = cfg.FromHeading(math.Atan2(d.Y, d.X))
		haveHeading = true
		path[i].Yaw = last
	}
	if haveHeading {
		path[len(path)-1].Yaw = last
	}
}
