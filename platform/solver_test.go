package platform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/stewart/math3d"
)

func defaultGeometry(t *testing.T) *Geometry {
	g, err := Build(DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestSolveNeutral(t *testing.T) {
	g := defaultGeometry(t)
	legs := Solve(g, math3d.IdentityPose)

	assert.InDelta(t, 0.11427131719692518, legs[0].Angle, 1e-9)
	assert.True(t, legs.Valid())

	for i, leg := range legs {
		assert.Equal(t, OK, leg.Status, "leg %d", i)
		assert.InDelta(t, legs[0].Angle, leg.Angle, 1e-9, "leg %d", i)
		assert.InDelta(t, g.T0.Z, leg.Q.Z, 1e-9, "leg %d", i)
	}
}

func TestSolveHexagonalNeutral(t *testing.T) {
	c := DefaultConfig()
	c.Layout = DefaultHexagonal()
	g, err := Build(c)
	require.NoError(t, err)

	legs := Solve(g, math3d.IdentityPose)
	for i, leg := range legs {
		assert.Equal(t, OK, leg.Status, "leg %d", i)
		assert.InDelta(t, 0.28275406323637237, leg.Angle, 1e-9, "leg %d", i)
	}
}

func TestSolveTilted(t *testing.T) {
	g := defaultGeometry(t)
	pose := math3d.Pose{
		Translation: math3d.Vector3{X: 5, Y: -3, Z: 10},
		Orientation: math3d.FromAxisAngle(math3d.Vector3{X: 1}, 0.2),
	}

	exp := []float64{
		0.4555612985475685,
		0.5542316869721953,
		0.389524289585105,
		0.30922396947823094,
		0.12134336948636652,
		0.11618041523222691,
	}

	legs := Solve(g, pose)
	for i, leg := range legs {
		assert.Equal(t, OK, leg.Status, "leg %d", i)
		assert.InDelta(t, exp[i], leg.Angle, 1e-9, "leg %d", i)
	}
}

// Whatever the pose, a solved leg must be a real linkage: the horn is
// HornLength long, the rod is RodLength long, and the angle is the horn's
// elevation.
func TestSolveInvariants(t *testing.T) {
	g := defaultGeometry(t)

	poses := []math3d.Pose{
		math3d.IdentityPose,
		math3d.MakePose(10, 0, 0),
		math3d.MakePose(0, -12, 8),
		{Translation: math3d.Vector3{X: 3, Y: 4}, Orientation: math3d.FromAxisAngle(math3d.Vector3{Z: 1}, 0.3)},
		{Orientation: math3d.FromAxisAngle(math3d.Vector3{X: 1, Y: 1}, -0.15)},
		{Orientation: math3d.MakeQuaternion(-13, -1, 0, 0).Normalize()},
	}

	for n, pose := range poses {
		var legs Legs
		g.Solve(pose, &legs)

		for i, leg := range legs {
			if leg.Status == Unreachable {
				continue
			}

			gk := leg.L.MagnitudeSquared() - g.RodLength*g.RodLength + g.HornLength*g.HornLength
			l := leg.Q.Subtract(g.B[i])
			assert.InDelta(t, gk, l.MagnitudeSquared()-g.RodLength*g.RodLength+g.HornLength*g.HornLength, 1e-9, "pose %d leg %d", n, i)

			assert.InDelta(t, g.HornLength, leg.H.Distance(g.B[i]), 1e-6, "pose %d leg %d", n, i)
			assert.InDelta(t, g.RodLength, leg.H.Distance(leg.Q), 1e-6, "pose %d leg %d", n, i)
			assert.InDelta(t, (leg.H.Z-g.B[i].Z)/g.HornLength, math.Sin(leg.Angle), 1e-9, "pose %d leg %d", n, i)
		}
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	g := defaultGeometry(t)
	pose := math3d.Pose{
		Translation: math3d.Vector3{X: 1, Y: 2, Z: 3},
		Orientation: math3d.FromAxisAngle(math3d.Vector3{Y: 1}, 0.1),
	}

	var a, b Legs
	g.Solve(pose, &a)
	g.Solve(pose, &b)
	assert.Equal(t, a, b)

	// reusing the buffer overwrites everything
	g.Solve(math3d.MakePose(0, 0, 500), &b)
	g.Solve(pose, &b)
	assert.Equal(t, a, b)
}

func TestSolveUnreachable(t *testing.T) {
	g := defaultGeometry(t)
	legs := Solve(g, math3d.MakePose(0, 0, 200))

	assert.False(t, legs.Valid())
	for i, leg := range legs {
		assert.Equal(t, Unreachable, leg.Status, "leg %d", i)
		assert.True(t, math.IsNaN(leg.Angle), "leg %d", i)
	}

	_, ok := legs.Angles()
	assert.Equal(t, [NumLegs]bool{}, ok)
}

func TestSolveOutOfRange(t *testing.T) {
	c := DefaultConfig()
	c.ServoRange = [2]float64{-0.1, 0.1}
	g, err := Build(c)
	require.NoError(t, err)

	legs := Solve(g, math3d.IdentityPose)
	angles, ok := legs.Angles()

	for i := range legs {
		assert.Equal(t, OutOfRange, legs[i].Status, "leg %d", i)
		assert.False(t, ok[i])
		assert.InDelta(t, 0.11427131719692518, angles[i], 1e-9)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", OK.String())
	assert.Equal(t, "unreachable", Unreachable.String())
	assert.Equal(t, "out of range", OutOfRange.String())
}
