// Package servos streams servo angles to a controller board, one line per
// tick, over a serial port or anything else that can be written to.
//
// Each line is "A" followed by the six angles in degrees, or "-" for a leg
// which can't be realized, e.g. "A 6.55 6.55 - 6.55 6.55 6.55". A line of
// just "X" asks the board to release every servo.
package servos

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tarm/serial"

	"github.com/adammck/stewart"
	"github.com/adammck/stewart/platform"
	"github.com/adammck/stewart/utils"
)

const DefaultBaud = 115200

var log = logrus.WithFields(logrus.Fields{
	"pkg": "servos",
})

// Every writer which has been sent angles, so they can all be released at
// shutdown.
var pool []io.Writer

// Open opens a serial port for writing angles to.
func Open(name string, baud int) (io.ReadWriteCloser, error) {
	p, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (while opening %s)", err, name)
	}

	return p, nil
}

// AppendLine appends the angle line for legs to buf.
func AppendLine(buf []byte, legs *platform.Legs) []byte {
	angles, ok := legs.Angles()

	buf = append(buf, 'A')
	for i := range angles {
		buf = append(buf, ' ')
		if !ok[i] {
			buf = append(buf, '-')
			continue
		}
		buf = strconv.AppendFloat(buf, utils.Deg(angles[i]), 'f', 2, 64)
	}

	return append(buf, '\n')
}

// Servos is a component which writes the legs of a Stewart every tick.
type Servos struct {
	st *stewart.Stewart
	w  *bufio.Writer

	// Skip ticks where any leg is invalid, rather than sending a partial line.
	SkipInvalid bool

	buf []byte
}

func New(st *stewart.Stewart, w io.Writer) *Servos {
	pool = append(pool, w)

	return &Servos{
		st:  st,
		w:   bufio.NewWriter(w),
		buf: make([]byte, 0, 64),
	}
}

func (s *Servos) Boot() error {
	return nil
}

func (s *Servos) Tick(now time.Time) error {
	if s.SkipInvalid && !s.st.Legs.Valid() {
		return nil
	}

	s.buf = AppendLine(s.buf[:0], &s.st.Legs)
	if _, err := s.w.Write(s.buf); err != nil {
		return fmt.Errorf("%w (while writing angles)", err)
	}

	// Every line is flushed, so the board sees it this tick.
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("%w (while flushing angles)", err)
	}

	return nil
}

// Release tells the board on w to stop driving its servos.
func Release(w io.Writer) error {
	if _, err := io.WriteString(w, "X\n"); err != nil {
		return fmt.Errorf("%w (while releasing servos)", err)
	}
	return nil
}

// Shutdown releases the servos on every writer which has been used. This
// should be called before terminating the program, so that servos don't stay
// powered up indefinitely.
func Shutdown() {
	for _, w := range pool {
		if err := Release(w); err != nil {
			log.WithError(err).Warn("shutting down")
		}
	}
}
