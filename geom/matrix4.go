package geom

// column-major matrix
type Matrix4 [16]Element

func NewMatrix4() *Matrix4 {
	return &Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func NewMatrix4FromSlice(a []Element) *Matrix4 {
	mat := &Matrix4{}
	copy(mat[:], a[:])
	return mat
}

func NewScaleMatrix4(x, y, z Element) *Matrix4 {
	return &Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func NewTranslateMatrix4(x, y, z Element) *Matrix4 {
	return &Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func NewRotationMatrix4FromQuaternion(q *Quaternion) *Matrix4 {
	var (
		x = q.X
		y = q.Y
		z = q.Z
		w = q.W
	)
	return &Matrix4{
		1 - 2*y*y - 2*z*z, 2*x*y + 2*z*w, 2*x*z - 2*y*w, 0,
		2*x*y - 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z + 2*x*w, 0,
		2*x*z + 2*y*w, 2*y*z - 2*x*w, 1 - 2*x*x - 2*y*y, 0,
		0, 0, 0, 1,
	}
}

// NewTRSMatrix4 returns T * R * S.
func NewTRSMatrix4(t *Vector3, r *Quaternion, s *Vector3) *Matrix4 {
	return NewTranslateMatrix4(t.X, t.Y, t.Z).Mul(NewRotationMatrix4FromQuaternion(r)).Mul(NewScaleMatrix4(s.X, s.Y, s.Z))
}

// Mul returns b * a.
func (b *Matrix4) Mul(a *Matrix4) *Matrix4 {
	r := &Matrix4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum Element
			for k := 0; k < 4; k++ {
				sum += b[k*4+row] * a[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

func (mat *Matrix4) ApplyTo(v *Vector3) *Vector3 {
	return &Vector3{
		mat[0]*v.X + mat[4]*v.Y + mat[8]*v.Z + mat[12],
		mat[1]*v.X + mat[5]*v.Y + mat[9]*v.Z + mat[13],
		mat[2]*v.X + mat[6]*v.Y + mat[10]*v.Z + mat[14],
	}
}

// Det3 is the determinant of the upper-left 3x3 part.
func (m *Matrix4) Det3() Element {
	return m[0]*(m[5]*m[10]-m[9]*m[6]) +
		m[4]*(m[9]*m[2]-m[1]*m[10]) +
		m[8]*(m[1]*m[6]-m[5]*m[2])
}

// Inverse inverts an affine matrix. The last row is assumed to be (0, 0, 0, 1).
// A singular matrix yields the zero matrix.
func (m *Matrix4) Inverse() *Matrix4 {
	var (
		m00, m10, m20 = m[0], m[1], m[2]
		m01, m11, m21 = m[4], m[5], m[6]
		m02, m12, m22 = m[8], m[9], m[10]
	)
	det := m.Det3()
	r := &Matrix4{}
	if det == 0 {
		return r
	}

	i00 := (m11*m22 - m12*m21) / det
	i01 := (m02*m21 - m01*m22) / det
	i02 := (m01*m12 - m02*m11) / det
	i10 := (m12*m20 - m10*m22) / det
	i11 := (m00*m22 - m02*m20) / det
	i12 := (m02*m10 - m00*m12) / det
	i20 := (m10*m21 - m11*m20) / det
	i21 := (m01*m20 - m00*m21) / det
	i22 := (m00*m11 - m01*m10) / det

	tx, ty, tz := m[12], m[13], m[14]
	r[0], r[1], r[2] = i00, i10, i20
	r[4], r[5], r[6] = i01, i11, i21
	r[8], r[9], r[10] = i02, i12, i22
	r[12] = -(i00*tx + i01*ty + i02*tz)
	r[13] = -(i10*tx + i11*ty + i12*tz)
	r[14] = -(i20*tx + i21*ty + i22*tz)
	r[15] = 1
	return r
}

func (m *Matrix4) Transposed() *Matrix4 {
	return &Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

func (mat *Matrix4) ToArray(a []Element) {
	copy(a, mat[:])
}

func (m *Matrix4) Translation() *Vector3 {
	return &Vector3{X: m[12], Y: m[13], Z: m[14]}
}

// ScaleVector returns the length of each basis column.
func (m *Matrix4) ScaleVector() *Vector3 {
	return &Vector3{
		X: NewVector3(m[0], m[1], m[2]).Len(),
		Y: NewVector3(m[4], m[5], m[6]).Len(),
		Z: NewVector3(m[8], m[9], m[10]).Len(),
	}
}

// Rotation returns the rotation part with normalized basis columns and no translation.
func (m *Matrix4) Rotation() *Matrix4 {
	r := NewMatrix4()
	for col := 0; col < 3; col++ {
		c := NewVector3(m[col*4], m[col*4+1], m[col*4+2])
		if c.LenSqr() > 0 {
			c.Normalize()
		}
		r[col*4], r[col*4+1], r[col*4+2] = c.X, c.Y, c.Z
	}
	return r
}
