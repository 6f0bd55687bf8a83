package math3d

import (
	"fmt"
	"strings"
)

// Matrix44 is an affine transform for row vectors: a point is transformed by
// v*M, so the translation lives in the bottom row. Indexed [row][col].
type Matrix44 [4][4]float64

// MakeMatrix44 returns the transform which rotates by q and then moves by v.
func MakeMatrix44(v Vector3, q Quaternion) *Matrix44 {
	m := &Matrix44{}
	m.SetRotation(q)
	m.SetTranslation(v)
	return m
}

func (m Matrix44) String() string {
	rows := make([]string, 4)
	for r := range m {
		rows[r] = fmt.Sprintf("%+.4f %+.4f %+.4f %+.4f", m[r][0], m[r][1], m[r][2], m[r][3])
	}
	return "&M44{" + strings.Join(rows, " | ") + "}"
}

// SetRotation overwrites the upper 3x3 with the rotation of the given unit
// quaternion, and resets the rest to identity.
func (m *Matrix44) SetRotation(q Quaternion) {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	// transposed, since we multiply row vectors
	*m = Matrix44{
		{1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0},
		{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0},
		{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}
}

// SetTranslation overwrites the bottom row. Other cells are left alone.
func (m *Matrix44) SetTranslation(v Vector3) {
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
}
