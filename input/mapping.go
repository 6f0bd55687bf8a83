package input

// Mapping renumbers the axes and buttons of a Linux joystick into the standard
// layout which animation.Gamepad uses. Anything not listed is dropped.
type Mapping struct {
	Axes    map[uint8]int
	Buttons map[uint8]int

	// Analog triggers which the standard layout treats as buttons. They're
	// pressed past the halfway point.
	Triggers map[uint8]int
}

// Mappings are the known pads, by the name accepted on the command line. The
// numbering is what the kernel's xpad and hid-playstation drivers report.
var Mappings = map[string]*Mapping{
	"xpad": {
		Axes: map[uint8]int{0: 0, 1: 1, 3: 2, 4: 3},
		Buttons: map[uint8]int{
			0: 0, 1: 1, 2: 2, 3: 3, // A B X Y
			4: 4, 5: 5, // bumpers
			6: 8, 7: 9, 8: 16, // back, start, guide
			9: 10, 10: 11, // stick clicks
		},
		Triggers: map[uint8]int{2: 6, 5: 7},
	},
	"ds4": {
		Axes: map[uint8]int{0: 0, 1: 1, 3: 2, 4: 3},
		Buttons: map[uint8]int{
			0: 0, 1: 1, 2: 3, 3: 2, // cross, circle, triangle, square
			4: 4, 5: 5, 6: 6, 7: 7, // L1 R1 L2 R2
			8: 8, 9: 9, 10: 16, // share, options, PS
			11: 10, 12: 11, // stick clicks
		},
	},
}

// axis returns where raw axis n goes: an axis index, or a button index if it's
// a trigger. ok is false if it's dropped.
func (m *Mapping) axis(n uint8) (i int, trigger bool, ok bool) {
	if m == nil {
		return int(n), false, true
	}
	if i, ok := m.Triggers[n]; ok {
		return i, true, true
	}
	i, ok = m.Axes[n]
	return i, false, ok
}

func (m *Mapping) button(n uint8) (int, bool) {
	if m == nil {
		return int(n), true
	}
	i, ok := m.Buttons[n]
	return i, ok
}
