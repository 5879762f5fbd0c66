package quaternions

import "gonum.org/v1/gonum/mat"

// DCM is a 3x3 direction cosine matrix in row major order: m[3*r+c] is
// the element in row r and column c. It expresses the same coordinate
// transformation as the quaternion it is built from, and is orthonormal
// exactly when that quaternion is unit norm (not enforced).
type DCM [9]float64

// DCM returns the direction cosine matrix of q.
func (q Quaternion) DCM() DCM {
	return DCM{
		2*q[0]*q[0] - 1 + 2*q[1]*q[1],
		2*q[1]*q[2] + 2*q[0]*q[3],
		2*q[1]*q[3] - 2*q[0]*q[2],

		2*q[1]*q[2] - 2*q[0]*q[3],
		2*q[0]*q[0] - 1 + 2*q[2]*q[2],
		2*q[2]*q[3] + 2*q[0]*q[1],

		2*q[1]*q[3] + 2*q[0]*q[2],
		2*q[2]*q[3] - 2*q[0]*q[1],
		2*q[0]*q[0] - 1 + 2*q[3]*q[3],
	}
}

// Apply transforms v by the matrix.
func (m DCM) Apply(v Vector) Vector {
	return Vector{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose returns the transposed matrix. For an orthonormal DCM the
// transpose is the inverse coordinate transformation.
func (m DCM) Transpose() DCM {
	return DCM{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Dense returns a copy of the matrix as a gonum dense matrix.
func (m DCM) Dense() *mat.Dense {
	return mat.NewDense(3, 3, m[:])
}
