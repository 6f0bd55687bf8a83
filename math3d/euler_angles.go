package math3d

import (
	"fmt"

	"github.com/adammck/stewart/utils"
)

// EulerAngles are stored in radians. The platform frame has Z up, so heading
// turns around Z, pitch around Y and bank around X. They are applied in
// heading, pitch, bank order.
type EulerAngles struct {
	Heading float64 // z
	Pitch   float64 // y
	Bank    float64 // x
}

// MakeEulerAnglesDeg builds angles from degrees, which is what humans type on
// the command line.
func MakeEulerAnglesDeg(h float64, p float64, b float64) *EulerAngles {
	return &EulerAngles{utils.Rad(h), utils.Rad(p), utils.Rad(b)}
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{h=%+.2f° p=%+.2f° b=%+.2f°}", utils.Deg(ea.Heading), utils.Deg(ea.Pitch), utils.Deg(ea.Bank))
}

// Quaternion converts the angles to a unit quaternion.
func (ea EulerAngles) Quaternion() Quaternion {
	qh := FromAxisAngle(Vector3{Z: 1}, ea.Heading)
	qp := FromAxisAngle(Vector3{Y: 1}, ea.Pitch)
	qb := FromAxisAngle(Vector3{X: 1}, ea.Bank)
	return qh.Multiply(qp).Multiply(qb).Normalize()
}
