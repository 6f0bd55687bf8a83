package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/stewart/platform"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmptyIsReference(t *testing.T) {
	c := &Config{}
	pc, err := c.Platform()
	require.NoError(t, err)

	assert.Equal(t, platform.DefaultConfig(), pc)
	assert.Equal(t, "wobble", c.GetProgram())
	assert.Equal(t, 60, c.GetFPS())
	assert.False(t, c.GetStrict())
	assert.Equal(t, LayoutCircular, c.GetLayout())
}

func TestLoadJSON(t *testing.T) {
	path := write(t, "rig.json", `{
  "rod_length": 140,
  "servo_range": [-45, 45],
  "layout": "hexagonal",
  "platform_turn": false,
  "base_radius_outer": 120,
  "program": "eight",
  "fps": 30,
  "strict": true
}`)

	c, err := Load(path)
	require.NoError(t, err)

	pc, err := c.Platform()
	require.NoError(t, err)

	assert.Equal(t, 140.0, pc.RodLength)
	assert.Equal(t, 50.0, pc.HornLength)
	assert.InDelta(t, -math.Pi/4, pc.ServoRange[0], 1e-12)
	assert.InDelta(t, math.Pi/4, pc.ServoRange[1], 1e-12)

	exp := platform.DefaultHexagonal()
	exp.PlatformTurn = false
	exp.BaseRadiusOuter = 120
	assert.Equal(t, exp, pc.Layout)

	assert.Equal(t, "eight", c.GetProgram())
	assert.Equal(t, 30, c.GetFPS())
	assert.True(t, c.GetStrict())
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "rig.yaml", `
horn_length: 40
horn_direction: 1
absolute_height: true
base_radius: 90
`)

	c, err := Load(path)
	require.NoError(t, err)

	pc, err := c.Platform()
	require.NoError(t, err)

	assert.Equal(t, 40.0, pc.HornLength)
	assert.Equal(t, 1, pc.HornDirection)
	assert.True(t, pc.AbsoluteHeight)

	exp := platform.DefaultCircular()
	exp.BaseRadius = 90
	assert.Equal(t, exp, pc.Layout)

	// and it builds
	_, err = platform.Build(pc)
	assert.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	type eg struct {
		name string
		body string
		err  error
	}

	tests := []eg{
		{"rig.toml", "", ErrExtension},
		{"rig.json", `{"layout": "triangular"}`, ErrLayout},
		{"rig.yml", "layout: square\n", ErrLayout},
	}

	for _, tt := range tests {
		_, err := Load(write(t, tt.name, tt.body))
		assert.True(t, errors.Is(err, tt.err), "%s: got %v", tt.name, err)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	for _, body := range []string{
		`{"rod_length": "long"}`,
		`{"servo_range": [1, 2, 3]}`,
		`{"horn_direction": 2}`,
		`{"fps": 0}`,
	} {
		_, err := Load(write(t, "rig.json", body))
		assert.Error(t, err, body)
	}
}
