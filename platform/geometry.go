package platform

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart/math3d"
)

const NumLegs = 6

// Err* are the configuration errors returned by Build.
var (
	ErrRodLength         = errors.New("rod length must be positive")
	ErrHornLength        = errors.New("horn length must be positive")
	ErrServoRange        = errors.New("servo range min is above max")
	ErrNoLayout          = errors.New("no layout")
	ErrUnreachableHeight = errors.New("rod and horn too short for joint spacing")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "platform",
})

// Geometry is the static description of a rig. It is built once by Build and
// never modified, so it can be shared by any number of solvers.
type Geometry struct {
	RodLength         float64
	HornLength        float64
	HornDirection     int
	ServoRange        [2]float64
	ServoRangeVisible bool

	// Base joints in the base frame, and platform joints in the platform frame.
	B [NumLegs]math3d.Vector3
	P [NumLegs]math3d.Vector3

	// Pan angle of each motor in the base plate, kept as sin/cos since that's
	// all the solver needs.
	SinBeta [NumLegs]float64
	CosBeta [NumLegs]float64

	// Offset of the platform origin at the neutral pose.
	T0 math3d.Vector3

	// Plate vertices, for renderers. Nil for circular layouts.
	BaseOutline     []math3d.Vector3
	PlatformOutline []math3d.Vector3
}

// Build validates the config and computes the joint positions. No Geometry is
// returned if anything is wrong with it.
func Build(c Config) (*Geometry, error) {
	if !(c.RodLength > 0) {
		return nil, fmt.Errorf("%w: %v", ErrRodLength, c.RodLength)
	}

	if !(c.HornLength > 0) {
		return nil, fmt.Errorf("%w: %v", ErrHornLength, c.HornLength)
	}

	if c.ServoRange[0] > c.ServoRange[1] {
		return nil, fmt.Errorf("%w: %v", ErrServoRange, c.ServoRange)
	}

	if c.Layout == nil {
		return nil, ErrNoLayout
	}

	g := &Geometry{
		RodLength:         c.RodLength,
		HornLength:        c.HornLength,
		HornDirection:     c.HornDirection,
		ServoRange:        c.ServoRange,
		ServoRangeVisible: c.ServoRangeVisible,
	}

	legs, ol := c.Layout.legs(c.HornDirection)
	for i, leg := range legs {
		g.B[i] = math3d.Vector3{X: leg.base[0], Y: leg.base[1]}
		g.P[i] = math3d.Vector3{X: leg.platform[0], Y: leg.platform[1]}
		g.SinBeta[i] = math.Sin(leg.motor)
		g.CosBeta[i] = math.Cos(leg.motor)
	}

	g.BaseOutline = flatten(ol.base)
	g.PlatformOutline = flatten(ol.platform)

	if !c.AbsoluteHeight {
		z, err := neutralHeight(c.RodLength, c.HornLength, g.B[0], g.P[0])
		if err != nil {
			return nil, err
		}
		g.T0 = math3d.Vector3{Z: z}
	}

	log.Debugf("built geometry: rod=%0.2f horn=%0.2f T0=%v", g.RodLength, g.HornLength, g.T0)
	return g, nil
}

// neutralHeight returns the platform height at which leg 0's horn is level.
func neutralHeight(rod, horn float64, b, p math3d.Vector3) (float64, error) {
	dx := p.X - b.X
	dy := p.Y - b.Y
	r := rod*rod + horn*horn - dx*dx - dy*dy

	if !(r >= 0) {
		return 0, fmt.Errorf("%w: radicand=%0.2f", ErrUnreachableHeight, r)
	}

	return math.Sqrt(r), nil
}

func flatten(pts [][2]float64) []math3d.Vector3 {
	if pts == nil {
		return nil
	}

	ret := make([]math3d.Vector3, len(pts))
	for i, p := range pts {
		ret[i] = math3d.Vector3{X: p[0], Y: p[1]}
	}

	return ret
}

// Beta returns the pan angle of leg i's motor.
func (g *Geometry) Beta(i int) float64 {
	return math.Atan2(g.SinBeta[i], g.CosBeta[i])
}
