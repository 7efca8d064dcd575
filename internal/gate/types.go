package gate

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Role tags a waypoint with its position relative to the gate entry point.
type Role string

const (
	// RoleBefore is the standoff waypoint on the approach side.
	RoleBefore Role = "before"
	// RoleEntry is the point the vehicle passes through the gate.
	RoleEntry Role = "entry"
	// RoleAfter is the standoff waypoint on the exit side.
	RoleAfter Role = "after"
)

// GateSpec describes one gate as read from the gates file.
type GateSpec struct {
	Number   int
	Center   r3.Vec  // meters
	Rotation float64 // heading of the entry direction, in Config.AngleUnit
	// Offset from Center to the entry point, in the gate's rotated frame.
	Offset r3.Vec

	// Standoff distances in meters. Zero disables the waypoint.
	WaypointBefore float64
	WaypointAfter  float64

	// Row is the 1-based data row the gate came from, 0 if built in memory.
	Row int
}

// Waypoint is a single oriented point of the synthesized path.
type Waypoint struct {
	Position r3.Vec
	Yaw      float64 // in Config.AngleUnit
	Role     Role
	Gate     int // number of the gate that produced this waypoint
}

// Path is the ordered waypoint sequence for all gates.
type Path []Waypoint

// WaypointCount returns how many waypoints the gate contributes to a path.
func (g GateSpec) WaypointCount() int {
	n := 1
	if g.WaypointBefore > 0 {
		n++
	}
	if g.WaypointAfter > 0 {
		n++
	}
	return n
}
