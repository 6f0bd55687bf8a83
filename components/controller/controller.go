package controller

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart"
	"github.com/adammck/stewart/animation"
)

// Buttons on a standard mapping pad.
const (
	buttonSelect = 8
	buttonStart  = 9
	buttonHome   = 16
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "controller",
})

// Controller handles the buttons on the gamepad which aren't part of driving
// the platform. The sticks are read by the gamepad program itself.
type Controller struct {
	st   *stewart.Stewart
	ctrl *animation.Controller
	in   animation.InputSource

	buttons Latch
}

func New(st *stewart.Stewart, ctrl *animation.Controller, in animation.InputSource) *Controller {
	return &Controller{
		st:   st,
		ctrl: ctrl,
		in:   in,
	}
}

func (c *Controller) Boot() error {
	return nil
}

func (c *Controller) Tick(now time.Time) error {
	g := c.in.Snapshot().Gamepad

	// Unplugging the pad releases everything.
	if g == nil {
		g = &animation.Gamepad{}
	}

	// Select shows or hides the path.
	if c.buttons.Pressed(g, buttonSelect) {
		c.ctrl.TogglePathVisible()
		log.WithField("visible", c.ctrl.PathVisible()).Info("toggled path")
	}

	// Home hands control to the sticks.
	if c.buttons.Pressed(g, buttonHome) {
		c.ctrl.Start("gamepad")
	}

	// At any time, pressing start shuts down.
	if c.buttons.Pressed(g, buttonStart) {
		log.Info("pressed START, shutting down")
		c.st.Shutdown = true
	}

	return nil
}
