package animation

import (
	"math"
	"time"

	"github.com/adammck/stewart/math3d"
)

// DefaultProgram is started by NewController.
const DefaultProgram = "wobble"

// Single-key shortcuts for the built-in programs. Some point at programs which
// don't exist, and starting those does nothing.
var aliases = map[string]string{
	"q": "square",
	"w": "wobble",
	"e": "eight",
	"r": "rotate",
	"t": "tilt",
	"y": "lissajous",
	"m": "mouse",
	"g": "gamepad",
	"b": "breathe",
	"h": "helical",
	"p": "perlin",
}

// library holds a constructor for each built-in program.
var library = map[string]func() *Program{
	"rotate":    rotate,
	"tilt":      tilt,
	"square":    square,
	"wobble":    wobble,
	"breathe":   breathe,
	"eight":     eight,
	"lissajous": lissajous,
	"helical":   helical,
	"mouse":     mouse,
	"gamepad":   gamepad,
}

// Names returns the names of the built-in programs.
func Names() []string {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	return names
}

func translation(x, y, z float64) math3d.Pose {
	return math3d.MakePose(x, y, z)
}

// swing is a smooth back-and-forth, which spends most of its time near zero.
func swing(pct float64) float64 {
	return math.Pow(math.Sin(pct*math.Pi*2-math.Pi*8), 5)
}

// wobbleOrientation tips the platform towards angle b. The quaternion isn't
// built from an axis and angle; its large real part keeps the tilt small.
func wobbleOrientation(b float64) math3d.Quaternion {
	return math3d.MakeQuaternion(-13, -math.Cos(b), math.Sin(b), 0).Normalize()
}

func rotate() *Program {
	return NewParametric("rotate", 4*time.Second, "rotate", func(pct float64) math3d.Pose {
		return math3d.Pose{
			Orientation: math3d.FromAxisAngle(math3d.Vector3{Z: 1}, swing(pct)/2),
		}
	})
}

// tilt swings around three horizontal axes 60° apart, then twists around the
// vertical, a quarter of the time each.
func tilt() *Program {
	return NewParametric("tilt", 7*time.Second, "tilt", func(pct float64) math3d.Pose {
		var a, z float64

		switch {
		case pct < 1.0/4:
			pct = pct * 4
			a = 0
		case pct < 1.0/2:
			pct = (pct - 1.0/4) * 4
			a = math.Pi / 3
		case pct < 3.0/4:
			pct = (pct - 1.0/2) * 4
			a = 2 * math.Pi / 3
		default:
			pct = (pct - 3.0/4) * 4
			z = 1
		}

		axis := math3d.Vector3{Z: z}
		if z == 0 {
			axis.X = math.Sin(a)
			axis.Y = -math.Cos(a)
		}

		return math3d.Pose{
			Orientation: math3d.FromAxisAngle(axis, swing(pct)/3),
		}
	})
}

func square() *Program {
	p := Interpolate("square", []Waypoint{
		{X: -30, Y: -30, Z: 10, T: 0},
		{X: -30, Y: 30, Z: 0, T: 1000},
		{X: 30, Y: 30, Z: 10, T: 1000},
		{X: 30, Y: -30, Z: 0, T: 1000},
		{X: -30, Y: -30, Z: 10, T: 1000},
	})
	p.Next = "square"
	return p
}

func wobble() *Program {
	return NewParametric("wobble", 3*time.Second, "wobble", func(pct float64) math3d.Pose {
		b := pct * 2 * math.Pi
		return math3d.Pose{
			Translation: math3d.Vector3{X: math.Cos(-b) * 13, Y: math.Sin(-b) * 13},
			Orientation: wobbleOrientation(b),
		}
	})
}

// breathe rises and falls, quickly at the top and slowly at the bottom.
func breathe() *Program {
	return NewParametric("breathe", 5*time.Second, "breathe", func(pct float64) math3d.Pose {
		y := math.Exp(math.Sin(2*math.Pi*pct)-1) / (math.E*math.E - 1)
		return translation(0, 0, y*50)
	})
}

func eight() *Program {
	p := NewParametric("eight", 3500*time.Millisecond, "eight", func(pct float64) math3d.Pose {
		t := (-0.5 + 2*pct) * math.Pi
		return translation(math.Cos(t)*30, math.Sin(t)*math.Cos(t)*30, 0)
	})
	p.PathVisible = true
	return p
}

func lissajous() *Program {
	p := NewParametric("lissajous", 10*time.Second, "lissajous", func(pct float64) math3d.Pose {
		return translation(math.Sin(3*pct*2*math.Pi)*30, math.Sin(pct*2*2*math.Pi)*30, 0)
	})
	p.PathVisible = true
	return p
}

// helical spirals down four times and stops at the neutral pose.
func helical() *Program {
	p := NewParametric("helical", 5*time.Second, "", func(pct float64) math3d.Pose {
		pct = 1 - pct
		return translation(math.Cos(pct*math.Pi*8)*20, math.Sin(pct*math.Pi*8)*20, pct*20)
	})
	p.PathVisible = true
	return p
}

// mouse follows the pointer, assuming a screen of about 1024x764.
func mouse() *Program {
	return NewLive("mouse", func(in Snapshot, cur math3d.Pose) math3d.Pose {
		if in.Pointer == nil {
			return cur
		}
		return translation((in.Pointer.X-512)/10, (in.Pointer.Y-382)/10, 0)
	})
}

// Button 6 of the standard layout is the left trigger.
const buttonYaw = 6

// gamepad moves with the left stick and tilts with the right. Holding the
// left trigger switches the right stick to yaw.
func gamepad() *Program {
	p := NewLive("gamepad", func(in Snapshot, cur math3d.Pose) math3d.Pose {
		g := in.Gamepad
		if g == nil {
			return cur
		}

		if g.Button(buttonYaw) {
			return math3d.Pose{
				Orientation: math3d.FromAxisAngle(math3d.Vector3{Z: 1}, -g.Axis(3)*math.Pi/6),
			}
		}

		b := math.Atan2(-g.Axis(3), -g.Axis(2))
		return math3d.Pose{
			Translation: math3d.Vector3{X: g.Axis(1) * 30, Y: g.Axis(0) * 30},
			Orientation: wobbleOrientation(b),
		}
	})

	p.OnStart = func(math3d.Pose) math3d.Pose {
		log.Info("use the joysticks and the left trigger to move the platform")
		return math3d.IdentityPose
	}

	return p
}
