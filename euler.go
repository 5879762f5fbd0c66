package quaternions

import (
	"fmt"
	"math"
)

// DomainError is returned by Euler when the pitch arcsine argument falls
// outside [-1,1], which means the input quaternion is not unit norm or
// has drifted numerically beyond tolerance.
type DomainError struct {
	Arg float64 // the out-of-range arcsine argument
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("quaternions: arcsine argument %g is outside [-1,1], input quaternion is not unit norm", e.Arg)
}

// EulerToQuaternion returns the quaternion orientation corresponding to
// a set of ZYX Euler angles (psi,theta,phi) = (yaw,pitch,roll), each in
// radians.
//
// The angles are not range checked: values outside the canonical ranges
// still produce a mathematically consistent quaternion, since the
// half-angle sines and cosines are periodic. The result is unit norm up
// to floating point error.
func EulerToQuaternion(yaw, pitch, roll float64) Quaternion {
	// halve the yaw, pitch and roll values (for calculation purposes only)
	yaw *= 0.5
	pitch *= 0.5
	roll *= 0.5

	// precalculate the required sin and cos values

	var (
		cpsi = math.Cos(yaw)
		spsi = math.Sin(yaw)
		cth  = math.Cos(pitch)
		sth  = math.Sin(pitch)
		cphi = math.Cos(roll)
		sphi = math.Sin(roll)
	)

	// calculate the required quaternion components
	return Quaternion{
		cpsi*cth*cphi + spsi*sth*sphi,
		cpsi*cth*sphi - spsi*sth*cphi,
		cpsi*sth*cphi + spsi*cth*sphi,
		spsi*cth*cphi - cpsi*sth*sphi,
	}
}

// Euler returns the ZYX Euler angles of q, in (phi,theta,psi) =
// (roll,pitch,yaw) order — the reverse of the argument order of
// EulerToQuaternion.
//
// The calculation relies on q being a unit quaternion. The output
// ranges are then:
//
//	Roll:   phi  is in (-pi,pi]
//	Pitch: theta is in [-pi/2,pi/2]
//	Yaw:    psi  is in (-pi,pi]
//
// If the pitch arcsine argument falls outside [-1,1], q cannot be a
// near-unit quaternion and Euler fails with a *DomainError instead of
// producing a silently wrong angle. Callers that cannot guarantee unit
// norm must normalise upstream.
func (q Quaternion) Euler() (roll, pitch, yaw float64, err error) {
	// Calculate pitch
	stheta := -(2*q[1]*q[3] - 2*q[0]*q[2])

	// The check is phrased so that a NaN argument also fails
	if !(stheta >= -1 && stheta <= 1) {
		return 0, 0, 0, &DomainError{Arg: stheta}
	}
	pitch = math.Asin(stheta)

	// Calculate roll and yaw
	roll = math.Atan2(2*q[2]*q[3]+2*q[0]*q[1], 2*q[0]*q[0]+2*q[3]*q[3]-1)
	yaw = math.Atan2(2*q[1]*q[2]+2*q[0]*q[3], 2*q[0]*q[0]-1+2*q[1]*q[1])

	return roll, pitch, yaw, nil
}
