package pathplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/banshee-data/gatepath/internal/fsutil"
	"github.com/banshee-data/gatepath/internal/monitoring"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	gateFill    = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xb0}
	gateCenter  = color.RGBA{R: 0xff, A: 0xff}
	pathColor   = color.RGBA{R: 0x30, G: 0x30, B: 0xc0, A: 0xff}
	yawColor    = color.RGBA{R: 0xff, G: 0x66, A: 0xff}
	splineColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	axisColor   = color.RGBA{G: 0xff, A: 0xff}
)

// arrowHeadAngle is the half-angle of arrow heads, radians.
const arrowHeadAngle = 25 * math.Pi / 180

// arrow returns a polyline drawing a shaft from tail to tip with a head
// of length head. It returns nil for a zero-length arrow.
func arrow(tail, tip r3.Vec, head float64) plotter.XYs {
	dx, dy := tip.X-tail.X, tip.Y-tail.Y
	if math.Hypot(dx, dy) == 0 {
		return nil
	}
	back := math.Atan2(dy, dx) + math.Pi
	wing := func(a float64) plotter.XY {
		s, c := math.Sincos(back + a)
		return plotter.XY{X: tip.X + head*c, Y: tip.Y + head*s}
	}
	t := plotter.XY{X: tip.X, Y: tip.Y}
	return plotter.XYs{
		{X: tail.X, Y: tail.Y},
		t,
		wing(arrowHeadAngle),
		t,
		wing(-arrowHeadAngle),
	}
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, width vg.Length, dashes []vg.Length) (*plotter.Line, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = c
	l.Width = width
	l.Dashes = dashes
	p.Add(l)
	return l, nil
}

// Plot builds the gonum plot for s.
func Plot(s Scene, opts Options) (*plot.Plot, error) {
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Add(plotter.NewGrid())

	if err := addGates(p, s, opts); err != nil {
		return nil, fmt.Errorf("gates: %w", err)
	}
	if err := addSpline(p, s); err != nil {
		return nil, fmt.Errorf("spline: %w", err)
	}
	if err := addPath(p, s, opts); err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	if _, err := addLine(p, arrow(r3.Vec{}, r3.Vec{X: 1}, 0.3), axisColor, vg.Points(2), nil); err != nil {
		return nil, fmt.Errorf("axis: %w", err)
	}

	minX, maxX, minY, maxY := s.bounds(opts)
	p.X.Min, p.X.Max = minX, maxX
	p.Y.Min, p.Y.Max = minY, maxY

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

func addGates(p *plot.Plot, s Scene, opts Options) error {
	if len(s.Gates) == 0 {
		return nil
	}

	centers := make(plotter.XYs, 0, len(s.Gates))
	labels := plotter.XYLabels{}
	var legendBar *plotter.Polygon
	for _, g := range s.Gates {
		corners := outline(g, s.Config, opts)
		ring := make(plotter.XYs, len(corners))
		for i, c := range corners {
			ring[i] = plotter.XY{X: c.X, Y: c.Y}
		}
		bar, err := plotter.NewPolygon(ring)
		if err != nil {
			return err
		}
		bar.Color = gateFill
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)
		legendBar = bar

		c := r3.Add(g.Center, s.Config.OriginShift)
		centers = append(centers, plotter.XY{X: c.X, Y: c.Y})
		labels.XYs = append(labels.XYs, plotter.XY{X: c.X, Y: c.Y - 0.8})
		labels.Labels = append(labels.Labels, strconv.Itoa(g.Number))
	}

	sc, err := plotter.NewScatter(centers)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = gateCenter
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)
	p.Add(sc)

	lb, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(lb)

	p.Legend.Add("gate", legendBar)
	p.Legend.Add("gate center", sc)
	return nil
}

func addSpline(p *plot.Plot, s Scene) error {
	if len(s.Spline) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(s.Spline))
	for i, sp := range s.Spline {
		pts[i] = plotter.XY{X: sp.Position.X, Y: sp.Position.Y}
	}
	l, err := addLine(p, pts, splineColor, vg.Points(1.5), []vg.Length{vg.Points(4), vg.Points(2)})
	if err != nil {
		return err
	}
	p.Legend.Add("spline", l)
	return nil
}

func addPath(p *plot.Plot, s Scene, opts Options) error {
	if len(s.Path) == 0 {
		return nil
	}
	head := opts.ArrowLength * 0.4

	var legendSeg, legendYaw *plotter.Line
	for i, wp := range s.Path {
		if i < len(s.Path)-1 {
			l, err := addLine(p, arrow(wp.Position, s.Path[i+1].Position, head), pathColor, vg.Points(1), nil)
			if err != nil {
				return err
			}
			if l != nil {
				legendSeg = l
			}
		}

		sin, cos := math.Sincos(s.Config.Heading(wp.Yaw))
		tip := r3.Add(wp.Position, r3.Vec{X: opts.ArrowLength * cos, Y: opts.ArrowLength * sin})
		l, err := addLine(p, arrow(wp.Position, tip, head), yawColor, vg.Points(1.5), nil)
		if err != nil {
			return err
		}
		if l != nil {
			legendYaw = l
		}
	}

	pts := make(plotter.XYs, len(s.Path))
	for i, wp := range s.Path {
		pts[i] = plotter.XY{X: wp.Position.X, Y: wp.Position.Y}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = pathColor
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)

	p.Legend.Add("waypoint", sc)
	if legendSeg != nil {
		p.Legend.Add("path", legendSeg)
	}
	if legendYaw != nil {
		p.Legend.Add("yaw", legendYaw)
	}
	return nil
}

// WritePNG renders s as a square PNG image to w.
func WritePNG(w io.Writer, s Scene, opts Options) error {
	opts = opts.withDefaults()
	p, err := Plot(s, opts)
	if err != nil {
		return err
	}
	size := vg.Length(opts.SizeInches) * vg.Inch
	wt, err := p.WriterTo(size, size, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG renders s to filename on fsys atomically.
func SavePNG(fsys fsutil.FileSystem, filename string, s Scene, opts Options) error {
	err := fsutil.WriteFileAtomic(fsys, filename, func(w io.Writer) error {
		return WritePNG(w, s, opts)
	})
	if err != nil {
		return fmt.Errorf("save plot %s: %w", filename, err)
	}
	monitoring.Logf("Wrote plot: %s", filename)
	return nil
}
