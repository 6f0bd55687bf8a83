package platform

import (
	"math"
)

// Config describes a rig. It is consumed once by Build; changing it afterwards
// has no effect on a Geometry which was already built.
type Config struct {

	// Length of the fixed rod between the horn end and the platform joint.
	RodLength float64

	// Length of the servo horn, from the motor shaft to the rod joint.
	HornLength float64

	// Parity of the horn mounting. Zero means even legs point their horns one
	// way and odd legs the other; one swaps them.
	HornDirection int

	// Servo angle limits in radians, [min, max].
	ServoRange [2]float64

	// Whether the renderer should draw the servo range pie. The core doesn't
	// care; this is just carried through to the Geometry.
	ServoRangeVisible bool

	// If set, the platform origin is the base origin rather than the neutral
	// height at which all horns are level.
	AbsoluteHeight bool

	Layout Layout
}

// Layout places the six legs on the base and platform plates.
type Layout interface {
	legs(hornDirection int) ([NumLegs]legDescriptor, outlines)
}

type legDescriptor struct {
	base     [2]float64
	platform [2]float64
	motor    float64
}

type outlines struct {
	base     [][2]float64
	platform [][2]float64
}

// Circular places the joints on two circles. Both distances are arc lengths
// measured on the base circle, so they're divided by BaseRadius even for the
// platform.
type Circular struct {
	BaseRadius     float64
	PlatformRadius float64
	ShaftDistance  float64
	AnchorDistance float64
}

// Hexagonal places the joints along the edges of two flattened hexagons. The
// inner radius is the distance to the midpoint of the short edges, the outer
// radius is the distance to the vertices.
type Hexagonal struct {
	BaseRadius          float64
	BaseRadiusOuter     float64
	PlatformRadius      float64
	PlatformRadiusOuter float64
	ShaftDistance       float64
	AnchorDistance      float64

	// Rotate the platform plate by 180° so that its long edges sit over the
	// short edges of the base. This is how most physical rigs are built.
	PlatformTurn bool
}

// DefaultConfig returns the reference rig: 130mm rods and 50mm horns on a
// circular layout.
func DefaultConfig() Config {
	return Config{
		RodLength:  130,
		HornLength: 50,
		ServoRange: [2]float64{-math.Pi / 2, math.Pi / 2},
		Layout:     DefaultCircular(),
	}
}

func DefaultCircular() Circular {
	return Circular{
		BaseRadius:     80,
		PlatformRadius: 50,
		ShaftDistance:  20,
		AnchorDistance: 20,
	}
}

func DefaultHexagonal() Hexagonal {
	return Hexagonal{
		BaseRadius:          80,
		BaseRadiusOuter:     110,
		PlatformRadius:      50,
		PlatformRadiusOuter: 80,
		ShaftDistance:       20,
		AnchorDistance:      20,
		PlatformTurn:        true,
	}
}
