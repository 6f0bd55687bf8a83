package math3d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is an orientation. Real is the scalar part, and Imag, Jmag and
// Kmag hold x, y and z. Only unit quaternions describe rotations; anything
// built from raw components must be normalized before use.
type Quaternion quat.Number

var (
	IdentityQuaternion = Quaternion{Real: 1}
)

// below this, slerp falls back to a normalized lerp.
const slerpEpsilon = 1e-16

// MakeQuaternion returns a quaternion from its raw components, in w, x, y, z
// order. It is not normalized.
func MakeQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// FromAxisAngle returns the rotation by angle radians around axis. The axis
// needn't be a unit vector; a zero axis is no rotation at all.
func FromAxisAngle(axis Vector3, angle float64) Quaternion {
	if axis.Zero() {
		return IdentityQuaternion
	}

	half := angle * 0.5
	u := axis.Unit().MultiplyByScalar(math.Sin(half))
	return Quaternion{
		Real: math.Cos(half),
		Imag: u.X,
		Jmag: u.Y,
		Kmag: u.Z,
	}
}

func (q Quaternion) String() string {
	return fmt.Sprintf("&Quat{w=%+.4f x=%+.4f y=%+.4f z=%+.4f}", q.Real, q.Imag, q.Jmag, q.Kmag)
}

func (q Quaternion) num() quat.Number {
	return quat.Number(q)
}

// Magnitude returns the norm of the quaternion.
func (q Quaternion) Magnitude() float64 {
	return quat.Abs(q.num())
}

// Normalize returns the unit quaternion pointing the same way. The zero
// quaternion has no direction and is returned unchanged.
func (q Quaternion) Normalize() Quaternion {
	m := q.Magnitude()
	if m == 0 {
		return q
	}
	return Quaternion(quat.Scale(1/m, q.num()))
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion(quat.Conj(q.num()))
}

// Multiply returns q*qq, which applies qq first, then q.
func (q Quaternion) Multiply(qq Quaternion) Quaternion {
	return Quaternion(quat.Mul(q.num(), qq.num()))
}

// Dot returns the four dimensional dot product.
func (q Quaternion) Dot(qq Quaternion) float64 {
	return q.Real*qq.Real + q.Imag*qq.Imag + q.Jmag*qq.Jmag + q.Kmag*qq.Kmag
}

// RotateVector rotates v by q, which must be a unit quaternion.
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q.num(), p), quat.Conj(q.num()))
	return Vector3{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// Slerp returns the orientation a fraction t of the way from q to qq along
// the shorter great arc. The result is always renormalized.
func (q Quaternion) Slerp(qq Quaternion, t float64) Quaternion {
	a := q
	cos0 := a.Dot(qq)
	if cos0 < 0 {
		a = Quaternion(quat.Scale(-1, a.num()))
		cos0 = -cos0
	}

	if cos0 >= 1-slerpEpsilon {
		return Quaternion{
			Real: a.Real + t*(qq.Real-a.Real),
			Imag: a.Imag + t*(qq.Imag-a.Imag),
			Jmag: a.Jmag + t*(qq.Jmag-a.Jmag),
			Kmag: a.Kmag + t*(qq.Kmag-a.Kmag),
		}.Normalize()
	}

	theta0 := math.Acos(cos0)
	sin0 := math.Sin(theta0)
	theta := theta0 * t
	s0 := math.Cos(theta) - cos0*math.Sin(theta)/sin0
	s1 := math.Sin(theta) / sin0

	return Quaternion(quat.Add(quat.Scale(s0, a.num()), quat.Scale(s1, qq.num()))).Normalize()
}

// SameRotation returns true if q and qq describe the same rotation within tol,
// remembering that q and -q are the same orientation.
func (q Quaternion) SameRotation(qq Quaternion, tol float64) bool {
	return math.Abs(math.Abs(q.Normalize().Dot(qq.Normalize()))-1) <= tol
}
