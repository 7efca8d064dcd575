package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/gatepath/internal/gate"
	"github.com/banshee-data/gatepath/internal/gatecsv"
	"github.com/banshee-data/gatepath/internal/pathplot"
	"github.com/banshee-data/gatepath/internal/units"
	"gonum.org/v1/gonum/spatial/r3"
)

// PlannerConfig is the JSON configuration for a planning run. Every field
// is optional; Get* methods supply the default for fields left unset so
// partial configs are safe.
type PlannerConfig struct {
	// Synthesis conventions
	AngleUnit  *string `json:"angle_unit,omitempty"` // "deg" or "rad"
	Handedness *string `json:"handedness,omitempty"` // "ccw" or "cw"
	YawMode    *string `json:"yaw_mode,omitempty"`   // "gate" or "tangent"

	// Vehicle origin relative to the gate survey origin, meters
	OriginShiftX *float64 `json:"origin_shift_x,omitempty"`
	OriginShiftY *float64 `json:"origin_shift_y,omitempty"`
	OriginShiftZ *float64 `json:"origin_shift_z,omitempty"`

	// Plot geometry, meters
	GateWidth     *float64 `json:"gate_width,omitempty"`
	GateThickness *float64 `json:"gate_thickness,omitempty"`
	PlotTitle     *string  `json:"plot_title,omitempty"`

	// Path file output
	IncludeRole *bool `json:"include_role,omitempty"`
	AppendHome  *bool `json:"append_home,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }

// EmptyPlannerConfig returns a PlannerConfig with all fields set to nil.
func EmptyPlannerConfig() *PlannerConfig {
	return &PlannerConfig{}
}

// DefaultPlannerConfig returns a PlannerConfig with every field set to its
// default value.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		AngleUnit:     ptrString(units.Degrees),
		Handedness:    ptrString(string(gate.CounterClockwise)),
		YawMode:       ptrString(string(gate.YawFromGate)),
		OriginShiftX:  ptrFloat64(0),
		OriginShiftY:  ptrFloat64(0),
		OriginShiftZ:  ptrFloat64(0),
		GateWidth:     ptrFloat64(pathplot.DefaultGateWidth),
		GateThickness: ptrFloat64(pathplot.DefaultGateThickness),
		PlotTitle:     ptrString(pathplot.DefaultOptions().Title),
		IncludeRole:   ptrBool(false),
		AppendHome:    ptrBool(false),
	}
}

// LoadPlannerConfig loads a PlannerConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
func LoadPlannerConfig(path string) (*PlannerConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyPlannerConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *PlannerConfig) Validate() error {
	if err := c.GateConfig().Validate(); err != nil {
		return err
	}
	if c.GateWidth != nil && *c.GateWidth <= 0 {
		return fmt.Errorf("gate_width must be positive, got %f", *c.GateWidth)
	}
	if c.GateThickness != nil && *c.GateThickness <= 0 {
		return fmt.Errorf("gate_thickness must be positive, got %f", *c.GateThickness)
	}
	return nil
}

// GetAngleUnit returns the angle_unit value or the default.
func (c *PlannerConfig) GetAngleUnit() string {
	if c.AngleUnit == nil {
		return units.Degrees
	}
	return *c.AngleUnit
}

// GetHandedness returns the handedness value or the default.
func (c *PlannerConfig) GetHandedness() gate.Handedness {
	if c.Handedness == nil {
		return gate.CounterClockwise
	}
	return gate.Handedness(*c.Handedness)
}

// GetYawMode returns the yaw_mode value or the default.
func (c *PlannerConfig) GetYawMode() gate.YawMode {
	if c.YawMode == nil {
		return gate.YawFromGate
	}
	return gate.YawMode(*c.YawMode)
}

// GetOriginShift returns the origin shift, zero for unset components.
func (c *PlannerConfig) GetOriginShift() r3.Vec {
	var v r3.Vec
	if c.OriginShiftX != nil {
		v.X = *c.OriginShiftX
	}
	if c.OriginShiftY != nil {
		v.Y = *c.OriginShiftY
	}
	if c.OriginShiftZ != nil {
		v.Z = *c.OriginShiftZ
	}
	return v
}

// GetGateWidth returns the gate_width value or the default.
func (c *PlannerConfig) GetGateWidth() float64 {
	if c.GateWidth == nil {
		return pathplot.DefaultGateWidth
	}
	return *c.GateWidth
}

// GetGateThickness returns the gate_thickness value or the default.
func (c *PlannerConfig) GetGateThickness() float64 {
	if c.GateThickness == nil {
		return pathplot.DefaultGateThickness
	}
	return *c.GateThickness
}

// GetPlotTitle returns the plot_title value or the default.
func (c *PlannerConfig) GetPlotTitle() string {
	if c.PlotTitle == nil {
		return pathplot.DefaultOptions().Title
	}
	return *c.PlotTitle
}

// GetIncludeRole returns the include_role value or the default.
func (c *PlannerConfig) GetIncludeRole() bool {
	if c.IncludeRole == nil {
		return false
	}
	return *c.IncludeRole
}

// GetAppendHome returns the append_home value or the default.
func (c *PlannerConfig) GetAppendHome() bool {
	if c.AppendHome == nil {
		return false
	}
	return *c.AppendHome
}

// GateConfig converts the synthesis fields into a gate.Config.
func (c *PlannerConfig) GateConfig() gate.Config {
	return gate.Config{
		AngleUnit:   c.GetAngleUnit(),
		Handedness:  c.GetHandedness(),
		YawMode:     c.GetYawMode(),
		OriginShift: c.GetOriginShift(),
	}
}

// PlotOptions converts the plot fields into pathplot.Options.
func (c *PlannerConfig) PlotOptions() pathplot.Options {
	o := pathplot.DefaultOptions()
	o.Title = c.GetPlotTitle()
	o.GateWidth = c.GetGateWidth()
	o.GateThickness = c.GetGateThickness()
	return o
}

// WriteOptions converts the output fields into gatecsv.WriteOptions.
func (c *PlannerConfig) WriteOptions() gatecsv.WriteOptions {
	return gatecsv.WriteOptions{
		IncludeRole: c.GetIncludeRole(),
		AppendHome:  c.GetAppendHome(),
	}
}
