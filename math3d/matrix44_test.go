package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeMatrix44(t *testing.T) {
	q := FromAxisAngle(Vector3{Z: 1}, math.Pi/2)
	v3 := Vector3{1, 2, 3}
	m := MakeMatrix44(v3, q)

	exp := [4][4]float64{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{1, 2, 3, 1},
	}

	for r, row := range m {
		for c, val := range row {
			assert.InDelta(t, exp[r][c], val, 1e-12, "m[%d][%d]", r, c)
		}
	}
}

// The matrix and the quaternion must agree, or the renderer would draw the
// platform somewhere other than where the legs are.
func TestMatrixMatchesRotateVector(t *testing.T) {
	q := MakeQuaternion(-13, -math.Cos(0.7), math.Sin(0.7), 0).Normalize()
	tr := Vector3{X: 4, Y: -2, Z: 9}
	m := MakeMatrix44(tr, q)

	for _, v := range []Vector3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {3, -7, 11}} {
		exp := *q.RotateVector(v).Add(tr)
		act := v.MultiplyByMatrix44(*m)
		assert.InDelta(t, exp.X, act.X, 1e-9)
		assert.InDelta(t, exp.Y, act.Y, 1e-9)
		assert.InDelta(t, exp.Z, act.Z, 1e-9)
	}
}
