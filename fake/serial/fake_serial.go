// Package serial is a stand-in for a serial port, which records everything
// written to it.
package serial

import (
	"bytes"
	"errors"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/serial",
})

var ErrClosed = errors.New("port closed")

type FakeSerial struct {
	buf    bytes.Buffer
	closed bool
}

// Read never returns anything; nothing is ever sent back.
func (s *FakeSerial) Read(p []byte) (n int, err error) {
	if s.closed {
		return 0, ErrClosed
	}

	log.Debugf("read %d bytes", len(p))
	return 0, nil
}

func (s *FakeSerial) Write(p []byte) (n int, err error) {
	if s.closed {
		return 0, ErrClosed
	}

	log.Debugf("write: %q", p)
	return s.buf.Write(p)
}

func (s *FakeSerial) Close() error {
	log.Debug("close")
	s.closed = true
	return nil
}

// Written returns everything written so far.
func (s *FakeSerial) Written() string {
	return s.buf.String()
}
