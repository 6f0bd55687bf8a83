package math3d

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a point or direction in a right-handed frame with Z pointing up
// from the base plate. It shares its layout with r3.Vec, so converting between
// the two is free.
type Vector3 r3.Vec

var (
	ZeroVector3 = Vector3{}
)

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

func (v Vector3) vec() r3.Vec {
	return r3.Vec(v)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Add adds two vectors, and returns a pointer to the result.
func (v Vector3) Add(vv Vector3) *Vector3 {
	r := Vector3(r3.Add(v.vec(), vv.vec()))
	return &r
}

// Subtract returns a new vector which is this vector minus the other.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3(r3.Sub(v.vec(), vv.vec()))
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3(r3.Scale(s, v.vec()))
}

// Dot returns the dot product of the two vectors.
func (v Vector3) Dot(vv Vector3) float64 {
	return r3.Dot(v.vec(), vv.vec())
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return r3.Norm(v.vec())
}

// MagnitudeSquared avoids the sqrt when only comparisons are needed.
func (v Vector3) MagnitudeSquared() float64 {
	return r3.Norm2(v.vec())
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.Subtract(vv).Magnitude()
}

// Unit returns a vector of length one pointing the same way, or the zero
// vector if this one has no length.
func (v Vector3) Unit() Vector3 {
	if v.Zero() {
		return ZeroVector3
	}
	return Vector3(r3.Unit(v.vec()))
}

// Lerp returns the point a fraction t of the way from v to vv.
func (v Vector3) Lerp(vv Vector3, t float64) Vector3 {
	return *v.Add(vv.Subtract(v).MultiplyByScalar(t))
}

// MultiplyByMatrix44 transforms the vector as a point, treating it as the row
// (x, y, z, 1).
func (v Vector3) MultiplyByMatrix44(m Matrix44) Vector3 {
	var out [3]float64
	in := [4]float64{v.X, v.Y, v.Z, 1}

	for c := range out {
		for r, x := range in {
			out[c] += x * m[r][c]
		}
	}

	return Vector3{X: out[0], Y: out[1], Z: out[2]}
}
