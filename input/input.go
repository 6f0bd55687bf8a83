// Package input provides the devices which live motion programs follow.
package input

import (
	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart/animation"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "input",
})

// Static always returns the same snapshot.
type Static animation.Snapshot

func (s Static) Snapshot() animation.Snapshot {
	return animation.Snapshot(s)
}

// None is a source with no devices attached.
var None = Static{}

// Multi merges several sources. The first one with a pointer provides the
// pointer, and likewise for the gamepad.
type Multi []animation.InputSource

func (m Multi) Snapshot() animation.Snapshot {
	var out animation.Snapshot

	for _, src := range m {
		s := src.Snapshot()
		if out.Pointer == nil {
			out.Pointer = s.Pointer
		}
		if out.Gamepad == nil {
			out.Gamepad = s.Gamepad
		}
	}

	return out
}
