// Package gatecsv reads gate definitions and spline overlays from CSV and
// writes synthesized waypoint paths back out.
//
// Gate files carry the header
//
//	num, x, y, z, rotation, offset_x, offset_y, offset_z, waypoint_before, waypoint_after
//
// in any column order. Path files carry x, y, z, yaw and optionally role.
package gatecsv
