// Package pathplot renders gates, synthesized waypoints and an optional
// spline overlay, as a PNG (gonum/plot) or an interactive HTML page
// (go-echarts).
package pathplot

import (
	"math"

	"github.com/banshee-data/gatepath/internal/gate"
	"github.com/banshee-data/gatepath/internal/gatecsv"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default gate geometry, meters.
const (
	DefaultGateWidth     = 1.3
	DefaultGateThickness = 0.2
)

// Options controls rendering.
type Options struct {
	Title         string
	GateWidth     float64 // meters, across the entry direction
	GateThickness float64 // meters, along the entry direction
	ArrowLength   float64 // yaw arrow length, meters
	SizeInches    float64 // PNG edge length
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Title:         "Gate path",
		GateWidth:     DefaultGateWidth,
		GateThickness: DefaultGateThickness,
		ArrowLength:   0.5,
		SizeInches:    8,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.GateWidth <= 0 {
		o.GateWidth = d.GateWidth
	}
	if o.GateThickness <= 0 {
		o.GateThickness = d.GateThickness
	}
	if o.ArrowLength <= 0 {
		o.ArrowLength = d.ArrowLength
	}
	if o.SizeInches <= 0 {
		o.SizeInches = d.SizeInches
	}
	return o
}

// Scene is everything drawn in one figure.
type Scene struct {
	Gates  []gate.GateSpec
	Path   gate.Path
	Spline []gatecsv.SplinePoint
	// Config must match the one used to synthesize Path so gate outlines
	// and yaw arrows line up with the waypoints.
	Config gate.Config
}

// outline returns the four horizontal corners of a gate bar centred on
// its entry point and turned to its heading.
func outline(g gate.GateSpec, cfg gate.Config, opts Options) [4]r3.Vec {
	c := gate.EntryPoint(g, cfg)
	th := cfg.Heading(g.Rotation)
	sin, cos := math.Sincos(th)
	along := r3.Vec{X: cos, Y: sin}
	across := r3.Vec{X: -sin, Y: cos}

	ht, hw := opts.GateThickness/2, opts.GateWidth/2
	corner := func(a, b float64) r3.Vec {
		return r3.Add(c, r3.Add(r3.Scale(a, along), r3.Scale(b, across)))
	}
	return [4]r3.Vec{
		corner(-ht, -hw),
		corner(ht, -hw),
		corner(ht, hw),
		corner(-ht, hw),
	}
}

// bounds returns a square region containing every drawn point with a
// one-meter margin.
func (s Scene) bounds(opts Options) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(v r3.Vec) {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	add(r3.Vec{})
	for _, g := range s.Gates {
		for _, c := range outline(g, s.Config, opts) {
			add(c)
		}
		add(r3.Add(g.Center, s.Config.OriginShift))
	}
	for _, wp := range s.Path {
		add(wp.Position)
	}
	for _, p := range s.Spline {
		add(p.Position)
	}

	const margin = 1.0
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	half := math.Max(maxX-minX, maxY-minY)/2 + margin
	return cx - half, cx + half, cy - half, cy + half
}
