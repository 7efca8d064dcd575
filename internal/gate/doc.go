// Package gate turns racing-gate poses into an ordered waypoint path.
//
// Each gate contributes an entry waypoint (its center plus an offset
// expressed in the gate's rotated frame) and, optionally, standoff
// waypoints placed before and after the entry point along the gate
// heading. Gates are processed in ascending gate number order and the
// per-gate results are concatenated into one path.
//
// The package is pure: it performs no I/O and holds no global state.
// Angle units, handedness and yaw semantics are passed explicitly via
// Config.
package gate
