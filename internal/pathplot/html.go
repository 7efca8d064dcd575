package pathplot

import (
	"fmt"
	"io"

	"github.com/banshee-data/gatepath/internal/fsutil"
	"github.com/banshee-data/gatepath/internal/monitoring"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/spatial/r3"
)

// Chart builds the interactive go-echarts view of s: the path as a line
// through its waypoints, the spline overlay as a dashed line and gate
// centers as a scatter series.
func Chart(s Scene, o Options) *charts.Line {
	o = o.withDefaults()
	minX, maxX, minY, maxY := s.bounds(o)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: fmt.Sprintf("gates=%d waypoints=%d", len(s.Gates), len(s.Path))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: minX, Max: maxX, Name: "x (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: minY, Max: maxY, Name: "y (m)", NameLocation: "middle", NameGap: 30}),
	)

	path := make([]opts.LineData, 0, len(s.Path))
	for i, wp := range s.Path {
		path = append(path, opts.LineData{
			Name:  fmt.Sprintf("%02d gate %d %s", i, wp.Gate, wp.Role),
			Value: []interface{}{wp.Position.X, wp.Position.Y, wp.Position.Z, wp.Yaw},
		})
	}
	line.AddSeries("path", path,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#3030c0"}),
	)

	if len(s.Spline) > 0 {
		spline := make([]opts.LineData, 0, len(s.Spline))
		for _, p := range s.Spline {
			spline = append(spline, opts.LineData{Value: []interface{}{p.Position.X, p.Position.Y, p.Position.Z, p.Yaw}})
		}
		line.AddSeries("spline", spline,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#2ca02c"}),
		)
	}

	if len(s.Gates) > 0 {
		centers := make([]opts.ScatterData, 0, len(s.Gates))
		for _, g := range s.Gates {
			c := r3.Add(g.Center, s.Config.OriginShift)
			centers = append(centers, opts.ScatterData{
				Name:  fmt.Sprintf("gate %d", g.Number),
				Value: []interface{}{c.X, c.Y, c.Z, g.Rotation},
			})
		}
		scatter := charts.NewScatter()
		scatter.AddSeries("gates", centers,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff0000"}),
		)
		line.Overlap(scatter)
	}
	return line
}

// WriteHTML renders the interactive chart for s to w.
func WriteHTML(w io.Writer, s Scene, o Options) error {
	if err := Chart(s, o).Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// SaveHTML renders the interactive chart for s to filename on fsys
// atomically.
func SaveHTML(fsys fsutil.FileSystem, filename string, s Scene, o Options) error {
	err := fsutil.WriteFileAtomic(fsys, filename, func(w io.Writer) error {
		return WriteHTML(w, s, o)
	})
	if err != nil {
		return fmt.Errorf("save chart %s: %w", filename, err)
	}
	monitoring.Logf("Wrote chart: %s", filename)
	return nil
}
