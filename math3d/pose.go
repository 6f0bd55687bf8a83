package math3d

import (
	"fmt"
)

// Pose is where the platform should be, relative to its neutral position above
// the base. Orientation must always be a unit quaternion.
type Pose struct {
	Translation Vector3
	Orientation Quaternion
}

var (
	IdentityPose = Pose{Orientation: IdentityQuaternion}
)

// MakePose returns a pose at the given translation with no rotation.
func MakePose(x, y, z float64) Pose {
	return Pose{
		Translation: Vector3{X: x, Y: y, Z: z},
		Orientation: IdentityQuaternion,
	}
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, q=%s}", p.Translation.X, p.Translation.Y, p.Translation.Z, p.Orientation)
}

// Interpolate returns the pose a fraction t of the way from p to pp. The
// translation moves linearly and the orientation is slerped.
func (p Pose) Interpolate(pp Pose, t float64) Pose {
	return Pose{
		Translation: p.Translation.Lerp(pp.Translation, t),
		Orientation: p.Orientation.Slerp(pp.Orientation, t),
	}
}

// Apply transforms a point in the platform frame into the base frame.
func (p Pose) Apply(v Vector3) Vector3 {
	return *p.Orientation.RotateVector(v).Add(p.Translation)
}

// Matrix returns the pose as a row-vector transform, for renderers which want
// to push it onto a matrix stack.
func (p Pose) Matrix() Matrix44 {
	return *MakeMatrix44(p.Translation, p.Orientation)
}
