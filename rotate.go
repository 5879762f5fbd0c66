package quaternions

// Rotate transforms v by the orientation q through the conjugate
// sandwich product q* v q. For a unit q this is the same change of
// frame as applying the direction cosine matrix of q to v. The
// magnitude of v is preserved; v does not need to be unit length.
func (q Quaternion) Rotate(v Vector) Vector {
	// embed v as a pure quaternion
	vPure := Quaternion{0, v[0], v[1], v[2]}

	// sandwich v between the conjugate and the quaternion itself
	p := Multiply(q.Conjugate(), vPure)
	r := Multiply(p, q)

	// the vector part holds the transformed vector
	return Vector{r[1], r[2], r[3]}
}

// RotateVector transforms v by the orientation given as ZYX Euler
// angles (yaw,pitch,roll) in radians. It is shorthand for building the
// quaternion with EulerToQuaternion and calling Rotate; callers
// rotating many vectors by one orientation should build the quaternion
// once instead.
func RotateVector(v Vector, yaw, pitch, roll float64) Vector {
	return EulerToQuaternion(yaw, pitch, roll).Rotate(v)
}
