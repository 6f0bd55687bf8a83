package animation

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart/svgpath"
)

const (
	// Paths are scaled to fit a square this many units across, centered on
	// the neutral position.
	ScreenSize = 80.0

	// Pen speed, in units per millisecond.
	PenSpeed = 0.05

	// Heights of the platform while drawing, and while moving between
	// subpaths.
	PenDown = 0.0
	PenUp   = -10.0
)

var ErrEmptyBox = errors.New("box has no area")

// Box is the region of the path's coordinate space which is mapped onto the
// platform, usually the view box of the SVG it came from.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// scale maps a point in the box into platform units.
func (b Box) scale(p svgpath.Point) (float64, float64) {
	x := (p.X-b.X)/b.Width*ScreenSize - ScreenSize/2
	y := (p.Y-b.Y)/b.Height*ScreenSize - ScreenSize/2
	return x, y
}

// pen accumulates waypoints as the path is drawn.
type pen struct {
	box Box
	cur svgpath.Point
	z   float64
	wps []Waypoint
}

func (p *pen) moveTo(to svgpath.Point, z float64) {
	x, y := p.box.scale(to)
	cx, cy := p.box.scale(p.cur)

	d := math.Sqrt((x-cx)*(x-cx) + (y-cy)*(y-cy) + (z-p.z)*(z-p.z))
	p.wps = append(p.wps, Waypoint{X: x, Y: y, Z: z, T: d / PenSpeed})

	p.cur = to
	p.z = z
}

// SVG parses path text and returns a program which draws it. The pen starts
// down at the middle of the box, and is lifted for every move so separate
// subpaths aren't joined up.
func SVG(name, text string, box Box) (*Program, error) {
	if !(box.Width > 0 && box.Height > 0) {
		return nil, fmt.Errorf("svg %q: %w", name, ErrEmptyBox)
	}

	segs, err := svgpath.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("svg %q: %w", name, err)
	}

	p := &pen{
		box: box,
		cur: svgpath.Point{X: box.X + box.Width/2, Y: box.Y + box.Height/2},
		z:   PenDown,
	}

	for _, s := range segs {
		if s.Kind == svgpath.Move {
			to := s.End()
			p.moveTo(p.cur, PenUp)
			p.moveTo(to, PenUp)
			p.moveTo(to, PenDown)
			continue
		}

		for _, pt := range s.Sample() {
			p.moveTo(pt, PenDown)
		}
	}

	log.WithFields(logrus.Fields{
		"name":      name,
		"segments":  len(segs),
		"waypoints": len(p.wps),
	}).Debug("built path program")

	return Interpolate(name, p.wps), nil
}
