// Package config loads a rig description from a JSON or YAML file. Every field
// is optional; anything left out gets the same value as the reference rig.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/adammck/stewart/animation"
	"github.com/adammck/stewart/platform"
	"github.com/adammck/stewart/utils"
)

const (
	LayoutCircular  = "circular"
	LayoutHexagonal = "hexagonal"
)

var (
	ErrLayout    = errors.New("unknown layout")
	ErrExtension = errors.New("config file must be .json, .yaml or .yml")
	ErrTooLarge  = errors.New("config file too large")
)

// Config is the file schema. Angles are in degrees, lengths in whatever unit
// the rig is built in (usually mm).
type Config struct {
	RodLength         *float64  `json:"rod_length,omitempty" yaml:"rod_length,omitempty"`
	HornLength        *float64  `json:"horn_length,omitempty" yaml:"horn_length,omitempty"`
	HornDirection     *int      `json:"horn_direction,omitempty" yaml:"horn_direction,omitempty"`
	ServoRange        []float64 `json:"servo_range,omitempty" yaml:"servo_range,omitempty"`
	ServoRangeVisible *bool     `json:"servo_range_visible,omitempty" yaml:"servo_range_visible,omitempty"`
	AbsoluteHeight    *bool     `json:"absolute_height,omitempty" yaml:"absolute_height,omitempty"`

	Layout              *string  `json:"layout,omitempty" yaml:"layout,omitempty"`
	BaseRadius          *float64 `json:"base_radius,omitempty" yaml:"base_radius,omitempty"`
	BaseRadiusOuter     *float64 `json:"base_radius_outer,omitempty" yaml:"base_radius_outer,omitempty"`
	PlatformRadius      *float64 `json:"platform_radius,omitempty" yaml:"platform_radius,omitempty"`
	PlatformRadiusOuter *float64 `json:"platform_radius_outer,omitempty" yaml:"platform_radius_outer,omitempty"`
	ShaftDistance       *float64 `json:"shaft_distance,omitempty" yaml:"shaft_distance,omitempty"`
	AnchorDistance      *float64 `json:"anchor_distance,omitempty" yaml:"anchor_distance,omitempty"`
	PlatformTurn        *bool    `json:"platform_turn,omitempty" yaml:"platform_turn,omitempty"`

	// The motion program to start with, and the loop rate.
	Program *string `json:"program,omitempty" yaml:"program,omitempty"`
	FPS     *int    `json:"fps,omitempty" yaml:"fps,omitempty"`

	// Hold the last good pose rather than send partial angles.
	Strict *bool `json:"strict,omitempty" yaml:"strict,omitempty"`
}

const maxFileSize = 1 << 20

// Load reads and validates a config file. The extension picks the format.
func Load(path string) (*Config, error) {
	clean := filepath.Clean(path)

	var unmarshal func([]byte, interface{}) error
	switch filepath.Ext(clean) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrExtension)
	}

	fi, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fi.Size() > maxFileSize {
		return nil, fmt.Errorf("%s: %w (%d bytes)", path, ErrTooLarge, fi.Size())
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	c := &Config{}
	if err := unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return c, nil
}

// Validate checks the fields which can be checked without building the rig.
// Build catches the rest.
func (c *Config) Validate() error {
	if c.Layout != nil {
		switch *c.Layout {
		case LayoutCircular, LayoutHexagonal:
		default:
			return fmt.Errorf("%w: %q", ErrLayout, *c.Layout)
		}
	}

	if c.ServoRange != nil && len(c.ServoRange) != 2 {
		return fmt.Errorf("servo_range must be [min, max], got %v", c.ServoRange)
	}

	if c.HornDirection != nil && *c.HornDirection != 0 && *c.HornDirection != 1 {
		return fmt.Errorf("horn_direction must be 0 or 1, got %d", *c.HornDirection)
	}

	if c.FPS != nil && *c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *c.FPS)
	}

	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// GetLayout returns the layout name, defaulting to circular.
func (c *Config) GetLayout() string {
	if c.Layout == nil {
		return LayoutCircular
	}
	return *c.Layout
}

// Platform returns the config for platform.Build, with defaults filled in.
func (c *Config) Platform() (platform.Config, error) {
	if err := c.Validate(); err != nil {
		return platform.Config{}, err
	}

	pc := platform.DefaultConfig()
	setFloat(&pc.RodLength, c.RodLength)
	setFloat(&pc.HornLength, c.HornLength)
	setBool(&pc.ServoRangeVisible, c.ServoRangeVisible)
	setBool(&pc.AbsoluteHeight, c.AbsoluteHeight)

	if c.HornDirection != nil {
		pc.HornDirection = *c.HornDirection
	}

	if c.ServoRange != nil {
		pc.ServoRange = [2]float64{utils.Rad(c.ServoRange[0]), utils.Rad(c.ServoRange[1])}
	}

	switch c.GetLayout() {
	case LayoutCircular:
		l := platform.DefaultCircular()
		setFloat(&l.BaseRadius, c.BaseRadius)
		setFloat(&l.PlatformRadius, c.PlatformRadius)
		setFloat(&l.ShaftDistance, c.ShaftDistance)
		setFloat(&l.AnchorDistance, c.AnchorDistance)
		pc.Layout = l

	case LayoutHexagonal:
		l := platform.DefaultHexagonal()
		setFloat(&l.BaseRadius, c.BaseRadius)
		setFloat(&l.BaseRadiusOuter, c.BaseRadiusOuter)
		setFloat(&l.PlatformRadius, c.PlatformRadius)
		setFloat(&l.PlatformRadiusOuter, c.PlatformRadiusOuter)
		setFloat(&l.ShaftDistance, c.ShaftDistance)
		setFloat(&l.AnchorDistance, c.AnchorDistance)
		setBool(&l.PlatformTurn, c.PlatformTurn)
		pc.Layout = l
	}

	return pc, nil
}

// GetProgram returns the program to start with, defaulting to wobble.
func (c *Config) GetProgram() string {
	if c.Program == nil {
		return animation.DefaultProgram
	}
	return *c.Program
}

// GetFPS returns the loop rate, defaulting to 60.
func (c *Config) GetFPS() int {
	if c.FPS == nil {
		return 60
	}
	return *c.FPS
}

func (c *Config) GetStrict() bool {
	if c.Strict == nil {
		return false
	}
	return *c.Strict
}
