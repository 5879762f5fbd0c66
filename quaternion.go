// Package quaternions provides quaternion, ZYX Euler angle and direction
// cosine matrix representations of 3D orientation, for attitude and
// vector-rotation use in navigation and guidance applications.
package quaternions

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a rotation in 3D space.
// The format is (q0,q1,q2,q3) = (w,x,y,z), with the scalar part first.
// A physically meaningful rotation quaternion is unit norm; no function
// in this package normalises its inputs or outputs.
type Quaternion [4]float64

// Vector is a point or direction in R^3. The format is (x,y,z).
type Vector [3]float64

// Identity returns the identity orientation (1,0,0,0).
func Identity() Quaternion {
	return Quaternion{1, 0, 0, 0}
}

// Conjugate returns the quaternion with its vector part negated.
// For a unit quaternion the conjugate is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q[0], -q[1], -q[2], -q[3]}
}

// NormSquared returns the quaternion square norm.
func (q Quaternion) NormSquared() float64 {
	return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
}

// Norm returns the quaternion norm.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.NormSquared())
}

// Multiply returns the Hamilton product of q and p, calculated as the
// 4x4 right multiplication matrix of p applied to q:
//
//	[ p0 -p1 -p2 -p3 ]
//	[ p1  p0  p3 -p2 ]
//	[ p2 -p3  p0  p1 ]
//	[ p3  p2 -p1  p0 ]
//
// The operand order matters: quaternion multiplication is not
// commutative. The norm of the result is the product of the operand
// norms, so unit quaternions compose to a unit quaternion.
func Multiply(q, p Quaternion) Quaternion {
	return Quaternion{
		p[0]*q[0] - p[1]*q[1] - p[2]*q[2] - p[3]*q[3],
		p[1]*q[0] + p[0]*q[1] + p[3]*q[2] - p[2]*q[3],
		p[2]*q[0] - p[3]*q[1] + p[0]*q[2] + p[1]*q[3],
		p[3]*q[0] + p[2]*q[1] - p[1]*q[2] + p[0]*q[3],
	}
}

// Number returns q as a gonum quaternion number.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}
