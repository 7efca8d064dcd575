package gate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		gates   []GateSpec
		wantErr error
		wantMsg string
	}{
		{
			name:  "empty",
			gates: nil,
		},
		{
			name:  "non contiguous numbers",
			gates: []GateSpec{{Number: 10}, {Number: 2}, {Number: 99}},
		},
		{
			name:    "duplicate without rows",
			gates:   []GateSpec{{Number: 5}, {Number: 5}},
			wantErr: ErrDuplicateGate,
			wantMsg: "gate 5: duplicate gate number: defined more than once",
		},
		{
			name:    "duplicate with rows",
			gates:   []GateSpec{{Number: 5, Row: 2}, {Number: 5, Row: 9}},
			wantErr: ErrDuplicateGate,
			wantMsg: "gate 5 (row 9): duplicate gate number: first defined at row 2",
		},
		{
			name:    "negative before",
			gates:   []GateSpec{{Number: 1, WaypointBefore: -1}},
			wantErr: ErrNegativeStandoff,
			wantMsg: "waypoint_before=-1",
		},
		{
			name:    "negative after",
			gates:   []GateSpec{{Number: 1, WaypointAfter: -0.25, Row: 4}},
			wantErr: ErrNegativeStandoff,
			wantMsg: "gate 1 (row 4)",
		},
		{
			name:    "nan rotation",
			gates:   []GateSpec{{Number: 1, Rotation: math.NaN()}},
			wantErr: ErrNonFinite,
			wantMsg: "rotation",
		},
		{
			name:    "infinite center",
			gates:   []GateSpec{{Number: 1, Center: r3.Vec{X: math.Inf(1)}}},
			wantErr: ErrNonFinite,
			wantMsg: "center",
		},
		{
			name:    "nan offset",
			gates:   []GateSpec{{Number: 1, Offset: r3.Vec{Z: math.NaN()}}},
			wantErr: ErrNonFinite,
			wantMsg: "offset",
		},
		{
			name:    "infinite standoff",
			gates:   []GateSpec{{Number: 1, WaypointBefore: math.Inf(1)}},
			wantErr: ErrNonFinite,
			wantMsg: "standoff",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.gates)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := []Config{
		{},
		DefaultConfig(),
		{AngleUnit: "rad", Handedness: Clockwise, YawMode: YawFromTangent},
	}
	for _, c := range valid {
		assert.NoError(t, c.Validate(), "%+v", c)
	}

	invalid := []Config{
		{AngleUnit: "grad"},
		{Handedness: "left"},
		{YawMode: "spline"},
		{OriginShift: r3.Vec{Y: math.NaN()}},
	}
	for _, c := range invalid {
		assert.ErrorIs(t, c.Validate(), ErrInvalidConfig, "%+v", c)
	}
}
