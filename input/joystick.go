package input

import (
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/adammck/stewart/animation"
)

// Event types of the Linux joystick API.
const (
	jsButton = 0x01
	jsAxis   = 0x02
	jsInit   = 0x80
)

// The largest axis value reported by the kernel.
const axisMax = 32767

// Upper bounds on what a pad can report, so a corrupt stream can't make us
// allocate forever.
const (
	maxAxes    = 64
	maxButtons = 128
)

// jsEvent is struct js_event from linux/joystick.h.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// Joystick reads a Linux joystick device (/dev/input/jsN). Run reads events in
// the background, and Snapshot returns the state as of the last one.
type Joystick struct {
	r io.Reader

	// Renumbers the device into the standard layout. If nil, the kernel's
	// numbering is passed through, which only matches for some pads.
	Mapping *Mapping

	mu        sync.Mutex
	axes      []float64
	buttons   []bool
	connected bool
}

func NewJoystick(r io.Reader) *Joystick {
	return &Joystick{r: r}
}

// Run reads events until the reader fails. The pad counts as connected from
// the first event until then. A clean EOF returns nil.
func (j *Joystick) Run() error {
	defer func() {
		j.mu.Lock()
		j.connected = false
		j.mu.Unlock()
		log.Info("joystick disconnected")
	}()

	var ev jsEvent
	for {
		err := binary.Read(j.r, binary.LittleEndian, &ev)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		j.apply(ev)
	}
}

func (j *Joystick) apply(ev jsEvent) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.connected {
		log.Info("joystick connected")
	}
	j.connected = true

	switch ev.Type &^ jsInit {
	case jsAxis:
		n, trigger, ok := j.Mapping.axis(ev.Number)
		if !ok {
			return
		}
		if trigger {
			j.setButton(n, ev.Value > 0)
			return
		}
		if n >= maxAxes {
			return
		}
		for len(j.axes) <= n {
			j.axes = append(j.axes, 0)
		}
		j.axes[n] = float64(ev.Value) / axisMax

	case jsButton:
		n, ok := j.Mapping.button(ev.Number)
		if !ok {
			return
		}
		j.setButton(n, ev.Value != 0)
	}
}

func (j *Joystick) setButton(n int, v bool) {
	if n >= maxButtons {
		return
	}
	for len(j.buttons) <= n {
		j.buttons = append(j.buttons, false)
	}
	j.buttons[n] = v
}

// Snapshot returns a copy of the current state, with no gamepad if nothing has
// been read yet or the device has gone away.
func (j *Joystick) Snapshot() animation.Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.connected {
		return animation.Snapshot{}
	}

	return animation.Snapshot{
		Gamepad: &animation.Gamepad{
			Axes:    append([]float64(nil), j.axes...),
			Buttons: append([]bool(nil), j.buttons...),
		},
	}
}
