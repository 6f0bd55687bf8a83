// Package stewart runs a six-legged Stewart platform: each tick, its
// components decide on a pose, solve the legs for it, and send the servo
// angles wherever they need to go.
package stewart

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart/math3d"
	"github.com/adammck/stewart/platform"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "stewart",
})

type Stewart struct {
	Geometry   *platform.Geometry
	Components []Component

	// The pose most recently passed to SetPose, and the legs solved for it.
	// Legs is reused every tick.
	Pose math3d.Pose
	Legs platform.Legs

	// Path of the running program, if it should be drawn. Set by whichever
	// component is driving the pose.
	Path []math3d.Vector3

	// Components can set this to true to indicate that the loop should stop.
	Shutdown bool
}

type Component interface {
	Boot() error
	Tick(time.Time) error
}

// Frame is everything a renderer needs to draw one tick. It shares nothing
// with the Stewart it came from.
type Frame struct {
	Geometry          *platform.Geometry
	Pose              math3d.Pose
	Legs              platform.Legs
	Path              []math3d.Vector3
	ServoRangeVisible bool
}

// Renderer draws frames. The core never draws anything itself.
type Renderer interface {
	Render(Frame) error
}

// New creates a Stewart at the neutral pose.
func New(g *platform.Geometry) *Stewart {
	s := &Stewart{
		Geometry:   g,
		Components: []Component{},
	}

	s.SetPose(math3d.IdentityPose)
	return s
}

// Add registers a component to receive ticks every frame. Components are
// ticked in the order they were added.
func (s *Stewart) Add(c Component) {
	s.Components = append(s.Components, c)
}

// Boot calls Boot on each component.
func (s *Stewart) Boot() error {
	for _, c := range s.Components {
		err := c.Boot()
		if err != nil {
			return fmt.Errorf("boot %T: %w", c, err)
		}
	}

	return nil
}

// Tick calls Tick on each component. A failing component doesn't stop the
// others; the first error is returned.
func (s *Stewart) Tick(now time.Time) error {
	var first error

	for _, c := range s.Components {
		err := c.Tick(now)
		if err != nil {
			log.WithError(err).Errorf("tick %T", c)
			if first == nil {
				first = fmt.Errorf("tick %T: %w", c, err)
			}
		}
	}

	return first
}

// SetPose moves the platform to pose, and solves the legs for it. It returns
// false if any leg can't be realized, but the pose is applied regardless.
func (s *Stewart) SetPose(pose math3d.Pose) bool {
	s.Pose = pose
	s.Geometry.Solve(pose, &s.Legs)
	return s.Legs.Valid()
}

// Frame returns a snapshot of the current state, for renderers.
func (s *Stewart) Frame() Frame {
	f := Frame{
		Geometry:          s.Geometry,
		Pose:              s.Pose,
		Legs:              s.Legs,
		ServoRangeVisible: s.Geometry.ServoRangeVisible,
	}

	if s.Path != nil {
		f.Path = append([]math3d.Vector3(nil), s.Path...)
	}

	return f
}

// World returns a matrix to transform a vector in the platform's coordinate
// space into the base's, including the neutral height.
func (s *Stewart) World() math3d.Matrix44 {
	return world(s.Geometry, s.Pose)
}

// World is the same as Stewart.World, for the pose the frame was taken at.
func (f Frame) World() math3d.Matrix44 {
	return world(f.Geometry, f.Pose)
}

func world(g *platform.Geometry, p math3d.Pose) math3d.Matrix44 {
	p.Translation = *p.Translation.Add(g.T0)
	return p.Matrix()
}
