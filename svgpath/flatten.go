package svgpath

import (
	"math"

	"github.com/adammck/stewart/utils"
)

// Curves are sampled at this many equal steps of their parameter, which gives
// steps+1 points including both ends.
const CurveSteps = 100

// Arcs are sampled at about two units per step, but never more than this many
// steps, so a huge radius can't exhaust memory.
const MaxArcSteps = 10000

// Sample returns the points the pen passes through while drawing the segment,
// ending at End. Curves and arcs start with their start point; moves and lines
// are just their destination.
func (s Segment) Sample() []Point {
	switch s.Kind {
	case Move:
		return []Point{s.Points[0]}

	case Line:
		return []Point{s.Points[1]}

	case Cubic:
		return lut(CurveSteps, func(t float64) Point {
			return cubicAt(s.Points[0], s.Points[1], s.Points[2], s.Points[3], t)
		})

	case Quadratic:
		return lut(CurveSteps, func(t float64) Point {
			return quadAt(s.Points[0], s.Points[1], s.Points[2], t)
		})

	case Arc:
		return s.sampleArc()
	}

	return nil
}

func lut(steps int, at func(float64) Point) []Point {
	pts := make([]Point, steps+1)
	for i := range pts {
		pts[i] = at(float64(i) / float64(steps))
	}
	return pts
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t

	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t

	return Point{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// angleBetween returns the signed angle from u to v.
func angleBetween(ux, uy, vx, vy float64) float64 {
	cos := (ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy))
	a := math.Acos(utils.Clamp(cos, -1, 1))

	if ux*vy < uy*vx {
		return -a
	}
	return a
}

// ArcCenter converts the arc to center parameterization: its center, the
// (possibly enlarged) radii, the start angle and the signed sweep. See the
// SVG implementation notes, F.6.5.
func (s Segment) ArcCenter() (center Point, rx, ry, theta1, dtheta float64) {
	from, to := s.Points[0], s.Points[1]
	rx = math.Abs(s.RX)
	ry = math.Abs(s.RY)

	phi := utils.Rad(s.AxisRotation)
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Step 1: the half-difference of the endpoints, in the ellipse's frame.
	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Radii which can't span the endpoints are scaled up until they just do.
	if l := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); l > 1 {
		rx *= math.Sqrt(l)
		ry *= math.Sqrt(l)
	}

	// Step 2: the center in the ellipse's frame. The sign picks which of the
	// two candidate centers gives the requested arc.
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	sq := math.Sqrt(math.Max(0, num/den))
	if s.LargeArc == s.Sweep {
		sq = -sq
	}

	cx1 := sq * rx * y1 / ry
	cy1 := sq * -ry * x1 / rx

	// Step 3: back to the path's frame.
	center = Point{
		X: (from.X+to.X)/2 + cosPhi*cx1 - sinPhi*cy1,
		Y: (from.Y+to.Y)/2 + sinPhi*cx1 + cosPhi*cy1,
	}

	// Step 4: the angles.
	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta1 = angleBetween(1, 0, ux, uy)
	dtheta = angleBetween(ux, uy, vx, vy)

	if !s.Sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if s.Sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	return center, rx, ry, theta1, dtheta
}

// sampleArc walks the arc at roughly two units per step, so bigger arcs get
// more points, up to MaxArcSteps.
func (s Segment) sampleArc() []Point {
	from, to := s.Points[0], s.Points[1]

	// Degenerate arcs are drawn as lines, or not at all.
	if s.RX == 0 || s.RY == 0 || from == to {
		return []Point{to}
	}

	c, rx, ry, theta1, dtheta := s.ArcCenter()

	// Radii so big that squaring them overflows.
	if math.IsNaN(dtheta) || math.IsNaN(c.X) || math.IsNaN(c.Y) {
		return []Point{to}
	}

	phi := utils.Rad(s.AxisRotation)
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	n := math.Ceil(math.Abs(dtheta*math.Max(rx, ry)) / 2)
	steps := int(utils.Clamp(n, 1, MaxArcSteps))

	pts := make([]Point, steps+1)
	for j := 0; j <= steps; j++ {
		a := theta1 + dtheta*float64(j)/float64(steps)
		x := rx * math.Cos(a)
		y := ry * math.Sin(a)

		pts[j] = Point{
			X: c.X + x*cosPhi - y*sinPhi,
			Y: c.Y + x*sinPhi + y*cosPhi,
		}
	}

	// The ends are exact, however far off the rounding drifted.
	pts[0], pts[steps] = from, to
	return pts
}
