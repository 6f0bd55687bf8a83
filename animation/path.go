package animation

import (
	"fmt"
	"time"

	"github.com/adammck/stewart/math3d"
)

// Waypoint is a point on a path, and T is how many milliseconds it takes to
// get there from the waypoint before. The T of the first waypoint is ignored.
type Waypoint struct {
	X float64
	Y float64
	Z float64
	T float64
}

func (w Waypoint) String() string {
	return fmt.Sprintf("(%.2f,%.2f,%.2f)@%.0fms", w.X, w.Y, w.Z, w.T)
}

func (w Waypoint) vector() math3d.Vector3 {
	return math3d.Vector3{X: w.X, Y: w.Y, Z: w.Z}
}

// Interpolate returns a program which moves through the waypoints in order,
// in straight lines, at whatever speed their times imply. The orientation
// stays level. It has no successor.
func Interpolate(name string, wps []Waypoint) *Program {
	var ms float64
	for i := 1; i < len(wps); i++ {
		ms += wps[i].T
	}

	return &Program{
		Name:        name,
		Kind:        PathDriven,
		Duration:    time.Duration(ms * float64(time.Millisecond)),
		PathVisible: true,
		waypoints:   append([]Waypoint(nil), wps...),
	}
}

// walk returns the position at fraction pct of the way along the path, by time.
// Anything at or past the end is the last waypoint.
func walk(wps []Waypoint, pct float64) math3d.Vector3 {
	if len(wps) == 0 {
		return math3d.ZeroVector3
	}

	var total float64
	for i := 1; i < len(wps); i++ {
		total += wps[i].T
	}

	start := 0.0
	for i := 1; i < len(wps); i++ {
		end := start + wps[i].T/total

		if start <= pct && pct < end {
			scale := (pct - start) / (end - start)
			return wps[i-1].vector().Lerp(wps[i].vector(), scale)
		}

		start = end
	}

	return wps[len(wps)-1].vector()
}
