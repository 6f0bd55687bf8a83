// Package animation decides where the platform should be at every tick, by
// running one motion program at a time and chaining each to its successor.
package animation

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart/clock"
	"github.com/adammck/stewart/math3d"
	"github.com/adammck/stewart/utils"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "animation",
})

// Controller owns the current pose and the program driving it. It is not safe
// for concurrent use; everything happens inside Tick and the calls which
// switch programs.
type Controller struct {
	clock    clock.Clock
	input    InputSource
	programs map[string]*Program

	cur   *Program
	next  string
	start time.Time
	pose  math3d.Pose

	// Global switch for path drawing, on top of each program's own.
	pathVisible bool
}

// NewController returns a controller with the built-in programs, running the
// default one. input may be nil, in which case live programs see no devices.
func NewController(clk clock.Clock, input InputSource) *Controller {
	c := &Controller{
		clock:       clk,
		input:       input,
		programs:    make(map[string]*Program, len(library)),
		pose:        math3d.IdentityPose,
		pathVisible: true,
	}

	for name, fn := range library {
		c.programs[name] = fn()
	}

	c.Start(DefaultProgram)
	return c
}

// Register adds a program which can then be started by name, replacing any
// with the same name.
func (c *Controller) Register(p *Program) {
	c.programs[p.Name] = p
}

// Lookup resolves a name or alias to a registered program.
func (c *Controller) Lookup(name string) (*Program, bool) {
	if n, ok := aliases[name]; ok {
		name = n
	}

	p, ok := c.programs[name]
	return p, ok
}

// Start switches to the named program, from the beginning. Unknown names are
// logged and ignored, and the current program keeps running.
func (c *Controller) Start(name string) bool {
	p, ok := c.Lookup(name)
	if !ok {
		log.WithField("program", name).Warn("unknown program")
		return false
	}

	c.Play(p)
	return true
}

// Play switches to p, which needn't be registered.
func (c *Controller) Play(p *Program) {
	if p.OnStart != nil {
		c.pose = p.OnStart(c.pose)
	}

	c.cur = p
	c.next = p.Next
	c.start = c.clock.Now()

	log.WithFields(logrus.Fields{
		"program": p.Name,
		"next":    p.Next,
	}).Info("started program")
}

// MoveTo glides from the current pose to the given one over d, and then starts
// next. If next is empty, the platform stays at the pose.
func (c *Controller) MoveTo(pose math3d.Pose, d time.Duration, next string) {
	c.cur = NewTransition(c.pose, pose, d, next)
	c.next = next
	c.start = c.clock.Now()

	log.WithFields(logrus.Fields{
		"to":       pose,
		"duration": d,
		"next":     next,
	}).Info("moving")
}

// Progress returns the fraction of the current program which has elapsed at
// now. Programs with no duration are always complete.
func (c *Controller) Progress(now time.Time) float64 {
	if c.cur.Duration <= 0 {
		return 1
	}

	return utils.Clamp(float64(now.Sub(c.start))/float64(c.cur.Duration), 0, 1)
}

// Tick advances to now, and returns the new pose. When the current program has
// finished, its successor is started, so the next tick begins it.
func (c *Controller) Tick(now time.Time) math3d.Pose {
	pct := c.Progress(now)

	var in Snapshot
	if c.cur.Kind == LiveInput && c.input != nil {
		in = c.input.Snapshot()
	}

	c.pose = c.cur.Pose(pct, in, c.pose)
	log.WithFields(logrus.Fields{
		"program": c.cur.Name,
		"pct":     pct,
	}).Debug(c.pose)

	if pct == 1 && c.cur.Duration > 0 && c.next != "" {
		next := c.next
		if !c.Start(next) {
			// Don't retry every tick.
			c.next = ""
		} else {
			c.start = now
		}
	}

	return c.pose
}

// Pose returns the pose computed by the last tick.
func (c *Controller) Pose() math3d.Pose {
	return c.pose
}

// Current returns the running program.
func (c *Controller) Current() *Program {
	return c.cur
}

// Next returns the name of the program which will follow the current one.
func (c *Controller) Next() string {
	return c.next
}

func (c *Controller) TogglePathVisible() {
	c.pathVisible = !c.pathVisible
}

// PathVisible returns whether the current program's path should be drawn.
func (c *Controller) PathVisible() bool {
	return c.pathVisible && c.cur.PathVisible
}

// Path returns the current program's path, sampled at steps+1 points, or nil
// if it shouldn't be drawn.
func (c *Controller) Path(steps int) []math3d.Vector3 {
	if !c.PathVisible() {
		return nil
	}

	poses := Trace(c.cur, steps)
	out := make([]math3d.Vector3, len(poses))
	for i := range poses {
		out[i] = poses[i].Translation
	}

	return out
}
