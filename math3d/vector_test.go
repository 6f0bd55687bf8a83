package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitudeAndDistance(t *testing.T) {
	type eg struct {
		a, b Vector3
		mag  float64
		dist float64
	}

	examples := []eg{
		{Vector3{}, Vector3{}, 0, 0},
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 1, Y: 1, Z: 1}, math.Sqrt(3), 0},
		{Vector3{X: 1, Y: 2, Z: 3}, Vector3{X: 2, Y: 2, Z: 2}, math.Sqrt(14), math.Sqrt(2)},
		{Vector3{X: 3, Y: 4}, Vector3{Z: 12}, 5, 13},
	}

	for _, x := range examples {
		assert.InDelta(t, x.mag, x.a.Magnitude(), 1e-12, "%s", x.a)
		assert.InDelta(t, x.mag*x.mag, x.a.MagnitudeSquared(), 1e-12, "%s", x.a)
		assert.InDelta(t, x.dist, x.a.Distance(x.b), 1e-12, "%s to %s", x.a, x.b)
	}
}

func TestUnit(t *testing.T) {
	type eg struct {
		in  Vector3
		out Vector3
	}

	examples := []eg{
		{Vector3{X: 0, Y: 0, Z: 0}, ZeroVector3},
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 0.5773502691896258, Y: 0.5773502691896258, Z: 0.5773502691896258}},
		{Vector3{X: 2, Y: 2, Z: 2}, Vector3{X: 0.5773502691896258, Y: 0.5773502691896258, Z: 0.5773502691896258}},
	}

	for _, x := range examples {
		act := x.in.Unit()
		assert.InDelta(t, x.out.X, act.X, 1e-12)
		assert.InDelta(t, x.out.Y, act.Y, 1e-12)
		assert.InDelta(t, x.out.Z, act.Z, 1e-12)
	}
}

func TestArithmetic(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: -5, Z: 6}

	assert.Equal(t, Vector3{X: 5, Y: -3, Z: 9}, *a.Add(b))
	assert.Equal(t, Vector3{X: 3, Y: -7, Z: 3}, b.Subtract(a))
	assert.Equal(t, Vector3{X: 0.5, Y: 1, Z: 1.5}, a.MultiplyByScalar(0.5))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.True(t, ZeroVector3.Zero())
	assert.False(t, a.Zero())
}

func TestLerp(t *testing.T) {
	a := Vector3{X: 0, Y: 10, Z: -4}
	b := Vector3{X: 10, Y: 0, Z: 4}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vector3{X: 5, Y: 5, Z: 0}, a.Lerp(b, 0.5))
}
