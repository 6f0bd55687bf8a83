package controller

import (
	"github.com/adammck/stewart/animation"
)

// Latch turns held gamepad buttons into single presses. The zero value is
// ready to use, with every button released.
type Latch struct {
	held map[int]bool
}

// Pressed returns true only on the tick where button i goes down. Each button
// is tracked separately, so any number can be watched with one Latch.
func (l *Latch) Pressed(g *animation.Gamepad, i int) bool {
	if l.held == nil {
		l.held = map[int]bool{}
	}

	v := g.Button(i)
	r := v && !l.held[i]
	l.held[i] = v
	return r
}
