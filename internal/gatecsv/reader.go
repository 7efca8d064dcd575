package gatecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/gatepath/internal/fsutil"
	"github.com/banshee-data/gatepath/internal/gate"
	"github.com/banshee-data/gatepath/internal/monitoring"
	"gonum.org/v1/gonum/spatial/r3"
)

// Gate file column names.
const (
	ColNum            = "num"
	ColX              = "x"
	ColY              = "y"
	ColZ              = "z"
	ColRotation       = "rotation"
	ColOffsetX        = "offset_x"
	ColOffsetY        = "offset_y"
	ColOffsetZ        = "offset_z"
	ColWaypointBefore = "waypoint_before"
	ColWaypointAfter  = "waypoint_after"
	ColYaw            = "yaw"
	ColRole           = "role"
)

// GateColumns is the required gate file header in canonical order.
var GateColumns = []string{
	ColNum, ColX, ColY, ColZ, ColRotation,
	ColOffsetX, ColOffsetY, ColOffsetZ,
	ColWaypointBefore, ColWaypointAfter,
}

// ErrMissingColumn is wrapped when a required header column is absent.
var ErrMissingColumn = errors.New("missing column")

// RowError reports a value that could not be parsed.
type RowError struct {
	Row    int // 1-based data row, header excluded
	Line   int // line in the file
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (line %d): column %s: invalid value %q: %v", e.Row, e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// table wraps a csv.Reader with header-based column lookup.
type table struct {
	r      *csv.Reader
	index  map[string]int
	row    int
	record []string
}

func newTable(src io.Reader, required []string) (*table, error) {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: %w: %s", ErrMissingColumn, strings.Join(required, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header: %w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return &table{r: r, index: index}, nil
}

// next advances to the next record.
func (t *table) next() (bool, error) {
	rec, err := t.r.Read()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("row %d: %w", t.row+1, err)
	}
	t.row++
	t.record = rec
	return true, nil
}

func (t *table) has(col string) bool {
	_, ok := t.index[col]
	return ok
}

func (t *table) raw(col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(t.record) {
		return ""
	}
	return strings.TrimSpace(t.record[i])
}

func (t *table) rowError(col, value string, err error) error {
	line, _ := t.r.FieldPos(0)
	return &RowError{Row: t.row, Line: line, Column: col, Value: value, Err: err}
}

func (t *table) float(col string) (float64, error) {
	s := t.raw(col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, t.rowError(col, s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, t.rowError(col, s, errors.New("not a finite number"))
	}
	return v, nil
}

// optionalFloat returns 0 when the column is absent or the cell empty.
func (t *table) optionalFloat(col string) (float64, error) {
	if !t.has(col) || t.raw(col) == "" {
		return 0, nil
	}
	return t.float(col)
}

// integer accepts plain integers and integral floats such as "3.0".
func (t *table) integer(col string) (int, error) {
	s := t.raw(col)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, t.rowError(col, s, errors.New("not an integer"))
	}
	return int(f), nil
}

// ReadGates parses a gate file. Rows are returned in file order with Row
// set; ordering and gate-level validation are left to gate.Validate.
func ReadGates(src io.Reader) ([]gate.GateSpec, error) {
	t, err := newTable(src, GateColumns)
	if err != nil {
		return nil, err
	}

	var gates []gate.GateSpec
	for {
		ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		g, err := parseGate(t)
		if err != nil {
			return nil, err
		}
		gates = append(gates, g)
	}
	return gates, nil
}

func parseGate(t *table) (gate.GateSpec, error) {
	g := gate.GateSpec{Row: t.row}
	var err error
	if g.Number, err = t.integer(ColNum); err != nil {
		return g, err
	}

	fields := []struct {
		col string
		dst *float64
	}{
		{ColX, &g.Center.X},
		{ColY, &g.Center.Y},
		{ColZ, &g.Center.Z},
		{ColRotation, &g.Rotation},
		{ColOffsetX, &g.Offset.X},
		{ColOffsetY, &g.Offset.Y},
		{ColOffsetZ, &g.Offset.Z},
		{ColWaypointBefore, &g.WaypointBefore},
		{ColWaypointAfter, &g.WaypointAfter},
	}
	for _, f := range fields {
		if *f.dst, err = t.float(f.col); err != nil {
			return g, err
		}
	}
	return g, nil
}

// LoadGates opens path on fsys, reads it with ReadGates and validates the
// result with gate.Validate.
func LoadGates(fsys fsutil.FileSystem, path string) ([]gate.GateSpec, error) {
	monitoring.Logf("Opening gates file: %s", path)
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gates file: %w", err)
	}
	defer f.Close()

	gates, err := ReadGates(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := gate.Validate(gates); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	monitoring.Debugf("loaded %d gates from %s", len(gates), path)
	return gates, nil
}

// SplinePoint is one sample of a pre-computed spline used for overlay.
type SplinePoint struct {
	Position r3.Vec
	Yaw      float64
}

// ReadSpline parses a spline overlay file. It needs x and y columns; z
// and yaw are optional and default to zero. Extra columns are ignored.
func ReadSpline(src io.Reader) ([]SplinePoint, error) {
	t, err := newTable(src, []string{ColX, ColY})
	if err != nil {
		return nil, err
	}

	var pts []SplinePoint
	for {
		ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var p SplinePoint
		if p.Position.X, err = t.float(ColX); err != nil {
			return nil, err
		}
		if p.Position.Y, err = t.float(ColY); err != nil {
			return nil, err
		}
		if p.Position.Z, err = t.optionalFloat(ColZ); err != nil {
			return nil, err
		}
		if p.Yaw, err = t.optionalFloat(ColYaw); err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// LoadSpline opens path on fsys and reads it with ReadSpline.
func LoadSpline(fsys fsutil.FileSystem, path string) ([]SplinePoint, error) {
	monitoring.Logf("Opening path file: %s", path)
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open path file: %w", err)
	}
	defer f.Close()

	pts, err := ReadSpline(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}
