package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/gatepath/internal/gate"
	"github.com/banshee-data/gatepath/internal/gatecsv"
	"github.com/banshee-data/gatepath/internal/units"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestEmptyPlannerConfigDefaults(t *testing.T) {
	cfg := EmptyPlannerConfig()

	assert.Equal(t, gate.DefaultConfig(), cfg.GateConfig())
	assert.Equal(t, 1.3, cfg.GetGateWidth())
	assert.Equal(t, 0.2, cfg.GetGateThickness())
	assert.Equal(t, gatecsv.WriteOptions{}, cfg.WriteOptions())
	assert.NoError(t, cfg.Validate())
}

func TestDefaultPlannerConfigMatchesGetters(t *testing.T) {
	def := DefaultPlannerConfig()
	empty := EmptyPlannerConfig()

	assert.Equal(t, empty.GateConfig(), def.GateConfig())
	assert.Equal(t, empty.PlotOptions(), def.PlotOptions())
	assert.Equal(t, empty.WriteOptions(), def.WriteOptions())
}

func TestLoadPlannerConfig(t *testing.T) {
	path := writeConfig(t, "planner.json", `{
  "angle_unit": "rad",
  "handedness": "cw",
  "yaw_mode": "tangent",
  "origin_shift_x": 7.1,
  "gate_width": 1.5,
  "plot_title": "Qualifier",
  "include_role": true,
  "append_home": true
}`)

	cfg, err := LoadPlannerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, gate.Config{
		AngleUnit:   units.Radians,
		Handedness:  gate.Clockwise,
		YawMode:     gate.YawFromTangent,
		OriginShift: r3.Vec{X: 7.1},
	}, cfg.GateConfig())

	po := cfg.PlotOptions()
	assert.Equal(t, "Qualifier", po.Title)
	assert.Equal(t, 1.5, po.GateWidth)
	assert.Equal(t, 0.2, po.GateThickness)

	assert.Equal(t, gatecsv.WriteOptions{IncludeRole: true, AppendHome: true}, cfg.WriteOptions())
}

func TestLoadPlannerConfig_Partial(t *testing.T) {
	path := writeConfig(t, "partial.json", `{"origin_shift_y": -2}`)

	cfg, err := LoadPlannerConfig(path)
	require.NoError(t, err)

	gc := cfg.GateConfig()
	assert.Equal(t, r3.Vec{Y: -2}, gc.OriginShift)
	assert.Equal(t, units.Degrees, gc.AngleUnit)
	assert.Equal(t, gate.YawFromGate, gc.YawMode)
}

func TestLoadPlannerConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "planner.yaml", `{}`, ".json extension"},
		{"bad json", "bad.json", `{"angle_unit": `, "failed to parse config JSON"},
		{"bad unit", "unit.json", `{"angle_unit": "grad"}`, "angle unit"},
		{"bad handedness", "hand.json", `{"handedness": "left"}`, "handedness"},
		{"bad yaw mode", "yaw.json", `{"yaw_mode": "spline"}`, "yaw mode"},
		{"zero gate width", "width.json", `{"gate_width": 0}`, "gate_width must be positive"},
		{"negative thickness", "thick.json", `{"gate_thickness": -1}`, "gate_thickness must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.body)
			_, err := LoadPlannerConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadPlannerConfig_Missing(t *testing.T) {
	_, err := LoadPlannerConfig(filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat config file")
}

func TestLoadPlannerConfig_TooLarge(t *testing.T) {
	body := `{"plot_title": "` + strings.Repeat("a", 1024*1024) + `"}`
	path := writeConfig(t, "big.json", body)

	_, err := LoadPlannerConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file too large")
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := LoadPlannerConfig("../../config/planner.example.json")
	require.NoError(t, err)
	assert.Equal(t, gate.YawFromGate, cfg.GetYawMode())
}
