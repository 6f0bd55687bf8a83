package motion

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart"
	"github.com/adammck/stewart/animation"
	"github.com/adammck/stewart/math3d"
	"github.com/adammck/stewart/platform"
)

// How many steps to sample the path of the running program at, for drawing.
const pathSteps = 100

var log = logrus.WithFields(logrus.Fields{
	"pkg": "motion",
})

// Motion moves the platform wherever the animation controller says.
type Motion struct {
	st   *stewart.Stewart
	Ctrl *animation.Controller

	// If set, poses which any leg can't reach are rejected, and the platform
	// stays at the last pose which every leg could.
	Strict bool

	last     math3d.Pose
	rejected int

	// The program the path was sampled for, so it's only sampled once.
	pathOf  *animation.Program
	pathVis bool
}

func New(st *stewart.Stewart, ctrl *animation.Controller) *Motion {
	return &Motion{
		st:   st,
		Ctrl: ctrl,
		last: st.Pose,
	}
}

func (m *Motion) Boot() error {
	log.WithFields(logrus.Fields{
		"program": m.Ctrl.Current().Name,
		"strict":  m.Strict,
	}).Info("booting")

	return nil
}

func (m *Motion) Tick(now time.Time) error {
	pose := m.Ctrl.Tick(now)

	if m.st.SetPose(pose) {
		m.last = pose
		m.rejected = 0

	} else {
		if m.rejected == 0 {
			log.WithFields(legFields(&m.st.Legs)).Warnf("invalid pose: %s", pose)
		}
		m.rejected++

		if m.Strict {
			m.st.SetPose(m.last)
		}
	}

	m.updatePath()
	return nil
}

// Rejected returns how many ticks in a row have produced an invalid pose.
func (m *Motion) Rejected() int {
	return m.rejected
}

func (m *Motion) updatePath() {
	cur := m.Ctrl.Current()
	vis := m.Ctrl.PathVisible()

	if cur == m.pathOf && vis == m.pathVis {
		return
	}

	m.pathOf = cur
	m.pathVis = vis
	m.st.Path = m.Ctrl.Path(pathSteps)
}

func legFields(legs *platform.Legs) logrus.Fields {
	f := logrus.Fields{}
	for i := range legs {
		if legs[i].Status != platform.OK {
			f[fmt.Sprintf("leg%d", i)] = legs[i].Status.String()
		}
	}
	return f
}
