package gatecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/banshee-data/gatepath/internal/fsutil"
	"github.com/banshee-data/gatepath/internal/gate"
	"github.com/banshee-data/gatepath/internal/monitoring"
)

// RoleHome tags the origin row appended by WriteOptions.AppendHome.
const RoleHome = "home"

// WriteOptions controls path file output.
type WriteOptions struct {
	// IncludeRole adds a role column after yaw.
	IncludeRole bool
	// AppendHome ends the file with a 0,0,0,0 row returning the vehicle
	// to the origin.
	AppendHome bool
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WritePath writes path as CSV with columns x, y, z, yaw (and role).
func WritePath(w io.Writer, path gate.Path, opts WriteOptions) error {
	cw := csv.NewWriter(w)

	header := []string{ColX, ColY, ColZ, ColYaw}
	if opts.IncludeRole {
		header = append(header, ColRole)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, wp := range path {
		row := []string{
			formatFloat(wp.Position.X),
			formatFloat(wp.Position.Y),
			formatFloat(wp.Position.Z),
			formatFloat(wp.Yaw),
		}
		if opts.IncludeRole {
			row = append(row, string(wp.Role))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write waypoint %d: %w", i, err)
		}
	}

	if opts.AppendHome {
		row := []string{"0", "0", "0", "0"}
		if opts.IncludeRole {
			row = append(row, RoleHome)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write home row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SavePath writes path to filename on fsys atomically: either the whole
// file is written or filename is left as it was.
func SavePath(fsys fsutil.FileSystem, filename string, path gate.Path, opts WriteOptions) error {
	err := fsutil.WriteFileAtomic(fsys, filename, func(w io.Writer) error {
		return WritePath(w, path, opts)
	})
	if err != nil {
		return fmt.Errorf("save path %s: %w", filename, err)
	}
	monitoring.Logf("Wrote path to csv: %s", filename)
	return nil
}

// PrintPath writes a human-readable table of path to w, one waypoint per
// line.
func PrintPath(w io.Writer, path gate.Path) error {
	for i, wp := range path {
		_, err := fmt.Fprintf(w, "%02d | x: %2.3f y: %2.3f z: %2.3f yaw: %2.3f\n",
			i, wp.Position.X, wp.Position.Y, wp.Position.Z, wp.Yaw)
		if err != nil {
			return err
		}
	}
	return nil
}
