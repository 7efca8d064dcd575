// Package testutil provides shared test fixtures for gate files.
package testutil

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// GateHeader is the canonical gate file header.
const GateHeader = "num,x,y,z,rotation,offset_x,offset_y,offset_z,waypoint_before,waypoint_after"

// GateFile returns the contents of a gate file holding rows, each a
// comma-separated data line without trailing newline.
func GateFile(rows ...string) []byte {
	var b strings.Builder
	b.WriteString(GateHeader)
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// AssertVecNear fails the test if any component of got differs from want
// by more than tol.
func AssertVecNear(t testing.TB, want, got r3.Vec, tol float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(want.X, got.X, tol) ||
		!scalar.EqualWithinAbs(want.Y, got.Y, tol) ||
		!scalar.EqualWithinAbs(want.Z, got.Z, tol) {
		t.Errorf("vector = %+v, want %+v (tol %g)", got, want, tol)
	}
}
