// Package chart draws rigs and runs to PNG files, for looking at without a
// rig attached.
package chart

import (
	"fmt"
	"image/color"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/adammck/stewart"
	"github.com/adammck/stewart/math3d"
	"github.com/adammck/stewart/platform"
	"github.com/adammck/stewart/utils"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "chart",
})

var (
	red  = color.RGBA{R: 255, A: 255}
	grey = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func xys(vs []math3d.Vector3) plotter.XYs {
	pts := make(plotter.XYs, len(vs))
	for i, v := range vs {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return pts
}

// TopView draws the frame from above: the base plate and joints, the legs and
// platform joints at the current pose, and the path if there is one.
func TopView(f stewart.Frame, file string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top view: %s", f.Pose)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	g := f.Geometry

	if len(g.BaseOutline) > 0 {
		poly, err := plotter.NewPolygon(xys(g.BaseOutline))
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 230, G: 230, B: 230, A: 255}
		poly.LineStyle.Color = grey
		p.Add(poly)
	}

	base, err := plotter.NewScatter(xys(g.B[:]))
	if err != nil {
		return err
	}
	base.GlyphStyle.Color = grey
	base.GlyphStyle.Radius = vg.Points(3)
	p.Add(base)
	p.Legend.Add("base", base)

	var anchors []math3d.Vector3
	for i := range f.Legs {
		leg := f.Legs[i]
		anchors = append(anchors, leg.Q)

		if leg.Status == platform.Unreachable {
			continue
		}

		l, err := plotter.NewLine(xys([]math3d.Vector3{g.B[i], leg.H, leg.Q}))
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("leg %d (%s)", i, leg.Status), l)
	}

	// The platform plate, moved to where the pose puts it.
	if len(g.PlatformOutline) > 0 {
		m := f.World()
		outline := make([]math3d.Vector3, len(g.PlatformOutline))
		for i, v := range g.PlatformOutline {
			outline[i] = v.MultiplyByMatrix44(m)
		}

		poly, err := plotter.NewPolygon(xys(outline))
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 200, G: 220, B: 240, A: 160}
		poly.LineStyle.Color = grey
		p.Add(poly)
	}

	plat, err := plotter.NewScatter(xys(anchors))
	if err != nil {
		return err
	}
	plat.GlyphStyle.Radius = vg.Points(3)
	p.Add(plat)
	p.Legend.Add("platform", plat)

	if len(f.Path) > 1 {
		path, err := plotter.NewLine(xys(f.Path))
		if err != nil {
			return err
		}
		path.LineStyle.Color = red
		path.LineStyle.Width = vg.Points(1)
		p.Add(path)
		p.Legend.Add("path", path)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	// Same scale on both axes, or circles come out as ellipses.
	lim := 1.0
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		lim = floats.Max([]float64{lim, -ax.Min, ax.Max})
	}
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim

	if err := p.Save(6*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("%w (while saving %s)", err, file)
	}

	log.WithField("file", file).Info("saved top view")
	return nil
}

// Recorder is a renderer which remembers the servo angles of every frame, to
// plot them afterwards.
type Recorder struct {
	start  time.Time
	now    func() time.Time
	angles [platform.NumLegs]plotter.XYs
	rng    [2]float64
	frames int
}

// NewRecorder returns a recorder which timestamps frames with now.
func NewRecorder(now func() time.Time) *Recorder {
	return &Recorder{
		start: now(),
		now:   now,
	}
}

func (r *Recorder) Render(f stewart.Frame) error {
	t := r.now().Sub(r.start).Seconds()
	angles, ok := f.Legs.Angles()

	for i := range angles {
		if ok[i] {
			r.angles[i] = append(r.angles[i], plotter.XY{X: t, Y: utils.Deg(angles[i])})
		}
	}

	r.rng = f.Geometry.ServoRange
	r.frames++
	return nil
}

// Frames returns how many frames have been recorded.
func (r *Recorder) Frames() int {
	return r.frames
}

// Save plots the angle of each leg over time. Ticks where a leg was invalid
// are left out.
func (r *Recorder) Save(file string) error {
	p := plot.New()
	p.Title.Text = "Servo angles"
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = "degrees"

	for i, pts := range r.angles {
		if len(pts) == 0 {
			continue
		}

		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("leg %d", i), l)
	}

	// Show the limits, if the range is finite.
	if r.frames > 0 && p.X.Max > p.X.Min {
		for _, a := range r.rng {
			lim, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: utils.Deg(a)}, {X: p.X.Max, Y: utils.Deg(a)}})
			if err != nil {
				return err
			}
			lim.LineStyle.Color = grey
			lim.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
			p.Add(lim)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("%w (while saving %s)", err, file)
	}

	log.WithFields(logrus.Fields{
		"file":   file,
		"frames": r.frames,
	}).Info("saved angles")

	return nil
}
