package servos

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/stewart"
	"github.com/adammck/stewart/fake/serial"
	"github.com/adammck/stewart/math3d"
	"github.com/adammck/stewart/platform"
)

func newStewart(t *testing.T) *stewart.Stewart {
	g, err := platform.Build(platform.DefaultConfig())
	require.NoError(t, err)
	return stewart.New(g)
}

func TestAppendLine(t *testing.T) {
	type eg struct {
		angles []float64
		status []platform.Status
		exp    string
	}

	ok := platform.OK
	tests := []eg{
		{
			[]float64{0, 0, 0, 0, 0, 0},
			[]platform.Status{ok, ok, ok, ok, ok, ok},
			"A 0.00 0.00 0.00 0.00 0.00 0.00\n",
		},
		{
			[]float64{0.5, -0.5, 1, -1, 0.1, 0},
			[]platform.Status{ok, ok, ok, platform.OutOfRange, ok, platform.Unreachable},
			"A 28.65 -28.65 57.30 - 5.73 -\n",
		},
	}

	for _, tt := range tests {
		var legs platform.Legs
		for i := range legs {
			legs[i].Angle = tt.angles[i]
			legs[i].Status = tt.status[i]
		}

		assert.Equal(t, tt.exp, string(AppendLine(nil, &legs)))
	}
}

func TestServos(t *testing.T) {
	st := newStewart(t)
	port := &serial.FakeSerial{}
	s := New(st, port)

	require.NoError(t, s.Boot())
	require.NoError(t, s.Tick(time.Now()))
	assert.Equal(t, "A 6.55 6.55 6.55 6.55 6.55 6.55\n", port.Written())

	// out of reach is written as a partial line...
	st.SetPose(math3d.MakePose(0, 0, 200))
	require.NoError(t, s.Tick(time.Now()))
	assert.True(t, strings.HasSuffix(port.Written(), "A - - - - - -\n"))

	// ...unless they're skipped
	s.SkipInvalid = true
	before := port.Written()
	require.NoError(t, s.Tick(time.Now()))
	assert.Equal(t, before, port.Written())

	Shutdown()
	assert.True(t, strings.HasSuffix(port.Written(), "X\n"))
}

func TestServosWriteError(t *testing.T) {
	st := newStewart(t)
	port := &serial.FakeSerial{}
	s := New(st, port)

	port.Close()
	err := s.Tick(time.Now())
	assert.ErrorIs(t, err, serial.ErrClosed)
}

func TestRelease(t *testing.T) {
	port := &serial.FakeSerial{}
	require.NoError(t, Release(port))
	assert.Equal(t, "X\n", port.Written())

	port.Close()
	assert.ErrorIs(t, Release(port), serial.ErrClosed)
}
