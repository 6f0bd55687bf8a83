package svgpath

import (
	"fmt"
)

type Kind int

const (
	Move Kind = iota
	Line
	Cubic
	Quadratic
	Arc
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Line:
		return "line"
	case Cubic:
		return "cubic"
	case Quadratic:
		return "quadratic"
	case Arc:
		return "arc"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// reflect returns the reflection of q through p.
func (p Point) reflect(q Point) Point {
	return Point{p.X + p.X - q.X, p.Y + p.Y - q.Y}
}

// Segment is one drawing command with every point made absolute. Points holds
// the control polygon:
//
//	Move:      [to]
//	Line:      [from, to]
//	Cubic:     [from, c1, c2, to]
//	Quadratic: [from, c, to]
//	Arc:       [from, to]
type Segment struct {
	Kind   Kind
	Points []Point

	// Only used by arcs. AxisRotation is in degrees.
	RX           float64
	RY           float64
	AxisRotation float64
	LargeArc     bool
	Sweep        bool
}

func (s Segment) String() string {
	if s.Kind == Arc {
		return fmt.Sprintf("%s%v{rx=%g ry=%g rot=%g large=%t sweep=%t}", s.Kind, s.Points, s.RX, s.RY, s.AxisRotation, s.LargeArc, s.Sweep)
	}
	return fmt.Sprintf("%s%v", s.Kind, s.Points)
}

// End returns where the pen is after the segment.
func (s Segment) End() Point {
	return s.Points[len(s.Points)-1]
}

// Start returns where the pen was before the segment. For a move that's
// unknown, so the destination is returned.
func (s Segment) Start() Point {
	return s.Points[0]
}
