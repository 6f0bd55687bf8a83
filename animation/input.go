package animation

// Pointer is a position in screen pixels.
type Pointer struct {
	X float64
	Y float64
}

// Gamepad is the state of a game controller, numbered like the W3C standard
// gamepad layout: axes 0 and 1 are the left stick and 2 and 3 the right, in
// [-1, 1]; buttons 0-3 are the face buttons, 4 and 5 the shoulders, 6 and 7
// the triggers, 8 select, 9 start and 16 home. Sources which read raw devices
// have to map their numbering onto this.
type Gamepad struct {
	Axes    []float64
	Buttons []bool
}

// Axis returns the value of axis i, or zero if the pad doesn't have one.
func (g *Gamepad) Axis(i int) float64 {
	if i < 0 || i >= len(g.Axes) {
		return 0
	}
	return g.Axes[i]
}

// Button returns whether button i is held.
func (g *Gamepad) Button(i int) bool {
	if i < 0 || i >= len(g.Buttons) {
		return false
	}
	return g.Buttons[i]
}

// Snapshot is the state of every input device at one instant. Devices which
// are absent or disconnected are nil.
type Snapshot struct {
	Pointer *Pointer
	Gamepad *Gamepad
}

// InputSource is polled once per tick, but only while a live-input program is
// running.
type InputSource interface {
	Snapshot() Snapshot
}
