package animation

import (
	"fmt"
	"time"

	"github.com/adammck/stewart/math3d"
)

type Kind int

const (
	// Parametric programs are a pure function of progress.
	Parametric Kind = iota

	// PathDriven programs walk a list of timed waypoints.
	PathDriven

	// LiveInput programs ignore progress, and follow an input device.
	LiveInput

	// Transient programs blend from one pose to another, and are built on
	// the fly by MoveTo.
	Transient
)

func (k Kind) String() string {
	switch k {
	case Parametric:
		return "parametric"
	case PathDriven:
		return "path"
	case LiveInput:
		return "live"
	case Transient:
		return "transient"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Program is one motion. Which of the unexported fields is set depends on
// Kind; use the constructors rather than building one by hand.
type Program struct {
	Name string
	Kind Kind

	// How long one run takes. Zero means the program never finishes, and is
	// evaluated afresh every tick.
	Duration time.Duration

	// Whether renderers should draw the program's path.
	PathVisible bool

	// The program to start when this one finishes. Empty means stop at the
	// final pose.
	Next string

	// Called with the current pose when the program is started. It returns
	// the pose to continue from.
	OnStart func(math3d.Pose) math3d.Pose

	fn        func(pct float64) math3d.Pose
	waypoints []Waypoint
	live      func(in Snapshot, cur math3d.Pose) math3d.Pose
	from, to  math3d.Pose
}

// NewParametric returns a program which calls fn with the progress fraction.
func NewParametric(name string, d time.Duration, next string, fn func(pct float64) math3d.Pose) *Program {
	return &Program{
		Name:     name,
		Kind:     Parametric,
		Duration: d,
		Next:     next,
		fn:       fn,
	}
}

// NewLive returns a program which follows the input. fn is given the pose from
// the previous tick, so it can leave it alone when the device it wants isn't
// there.
func NewLive(name string, fn func(in Snapshot, cur math3d.Pose) math3d.Pose) *Program {
	return &Program{
		Name: name,
		Kind: LiveInput,
		live: fn,
	}
}

// NewTransition returns a program which moves from one pose to another over d,
// with the translation moving linearly and the orientation slerped.
func NewTransition(from, to math3d.Pose, d time.Duration, next string) *Program {
	return &Program{
		Name:     "transition",
		Kind:     Transient,
		Duration: d,
		Next:     next,
		from:     from,
		to:       to,
	}
}

func (p *Program) String() string {
	return fmt.Sprintf("%s(%s, %v)", p.Name, p.Kind, p.Duration)
}

// Waypoints returns a copy of the waypoints of a path-driven program.
func (p *Program) Waypoints() []Waypoint {
	return append([]Waypoint(nil), p.waypoints...)
}

// Pose evaluates the program at progress pct. in and cur are only used by live
// programs.
func (p *Program) Pose(pct float64, in Snapshot, cur math3d.Pose) math3d.Pose {
	switch p.Kind {
	case Parametric:
		return p.fn(pct)

	case PathDriven:
		return math3d.Pose{
			Translation: walk(p.waypoints, pct),
			Orientation: math3d.IdentityQuaternion,
		}

	case LiveInput:
		return p.live(in, cur)

	case Transient:
		return p.from.Interpolate(p.to, pct)
	}

	return cur
}

// Trace samples the program at steps+1 evenly spaced points of progress, for
// drawing its path. Live programs are traced with no input, so they sit still.
func Trace(p *Program, steps int) []math3d.Pose {
	if steps < 1 {
		steps = 1
	}

	out := make([]math3d.Pose, steps+1)
	for i := range out {
		out[i] = p.Pose(float64(i)/float64(steps), Snapshot{}, math3d.IdentityPose)
	}

	return out
}
