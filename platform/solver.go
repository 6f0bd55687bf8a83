package platform

import (
	"math"

	"github.com/adammck/stewart/math3d"
)

type Status int

const (
	OK Status = iota

	// The rod can't reach the anchor from anywhere on the horn circle.
	Unreachable

	// The angle exists, but the servo can't turn that far.
	OutOfRange
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Unreachable:
		return "unreachable"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// LegState is the solved state of one leg. Q, L and H are in the base frame.
type LegState struct {

	// Platform joint (anchor).
	Q math3d.Vector3

	// Vector from the base joint to the anchor.
	L math3d.Vector3

	// End of the servo horn, where the rod is mounted.
	H math3d.Vector3

	// Servo angle in radians. Only meaningful when Status is OK or OutOfRange;
	// it's NaN when the leg is unreachable.
	Angle float64

	Status Status
}

// Legs is the full solved state of the rig. Callers keep one around and pass
// it to Solve every tick, so steady state solving doesn't allocate.
type Legs [NumLegs]LegState

// Solve computes every leg for the given pose, overwriting all of out. A leg
// which can't be realized is flagged rather than failing the whole pose;
// whether to reject the pose is up to the caller.
func (g *Geometry) Solve(pose math3d.Pose, out *Legs) {
	rod := g.RodLength
	horn := g.HornLength
	z := g.T0.Z

	for i := range out {
		leg := &out[i]
		b := g.B[i]
		leg.Q = pose.Apply(g.P[i])
		leg.Q.Z += z

		leg.L = leg.Q.Subtract(b)
		l := leg.L

		gk := l.MagnitudeSquared() - rod*rod + horn*horn
		ek := 2 * horn * l.Z
		fk := 2 * horn * (g.CosBeta[i]*l.X + g.SinBeta[i]*l.Y)

		// Intersect the horn circle with the rod sphere. Flipping either sign
		// below picks the other elbow, which the linkage can't reach.
		sqSum := ek*ek + fk*fk
		sqrt1 := math.Sqrt(1 - gk*gk/sqSum)
		sqrt2 := math.Sqrt(sqSum)
		sinAlpha := (gk*ek)/sqSum - (fk*sqrt1)/sqrt2
		cosAlpha := (gk*fk)/sqSum + (ek*sqrt1)/sqrt2

		leg.H = math3d.Vector3{
			X: b.X + horn*cosAlpha*g.CosBeta[i],
			Y: b.Y + horn*cosAlpha*g.SinBeta[i],
			Z: b.Z + horn*sinAlpha,
		}

		leg.Angle, leg.Status = g.servoAngle(leg.H, b)
	}
}

// Solve is a convenience for callers which don't care about reusing storage.
func Solve(g *Geometry, pose math3d.Pose) Legs {
	var legs Legs
	g.Solve(pose, &legs)
	return legs
}

func (g *Geometry) servoAngle(h, b math3d.Vector3) (float64, Status) {
	a := math.Asin((h.Z - b.Z) / g.HornLength)

	if math.IsNaN(a) || math.IsInf(a, 0) {
		return math.NaN(), Unreachable
	}

	if !(g.ServoRange[0] <= a && a <= g.ServoRange[1]) {
		return a, OutOfRange
	}

	return a, OK
}

// Valid returns true if every leg can be realized.
func (l *Legs) Valid() bool {
	for i := range l {
		if l[i].Status != OK {
			return false
		}
	}

	return true
}

// Angles returns the servo angles, with ok[i] false for legs which are
// unreachable or out of range.
func (l *Legs) Angles() (angles [NumLegs]float64, ok [NumLegs]bool) {
	for i := range l {
		angles[i] = l[i].Angle
		ok[i] = l[i].Status == OK
	}

	return angles, ok
}
