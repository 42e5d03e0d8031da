package geom

import "math"

type Vector4 struct {
	X Element
	Y Element
	Z Element
	W Element
}

type Quaternion = Vector4

func NewVector4(x, y, z, w float32) *Vector4 {
	return &Vector4{X: x, Y: y, Z: z, W: w}
}

func NewQuaternion(x, y, z, w float32) *Quaternion {
	return &Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewAxisAngleQuaternion returns a rotation of angle radians around axis.
func NewAxisAngleQuaternion(axis *Vector3, angle float64) *Quaternion {
	a := *axis
	a.Normalize()
	s := Element(math.Sin(angle / 2))
	return &Quaternion{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: Element(math.Cos(angle / 2))}
}

func (v *Vector4) Len() Element {
	return Element(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)))
}

func (v *Vector4) LenSqr() Element {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v *Vector4) Normalize() *Vector4 {
	l := v.Len()
	if l > 0 {
		v.X /= l
		v.Y /= l
		v.Z /= l
		v.W /= l
	} else {
		v.W = 1
	}
	return v
}

// Mul returns the Hamilton product q * q2 (q2 is applied first).
func (q *Quaternion) Mul(q2 *Quaternion) *Quaternion {
	return &Quaternion{
		X: q.W*q2.X + q.X*q2.W + q.Y*q2.Z - q.Z*q2.Y,
		Y: q.W*q2.Y - q.X*q2.Z + q.Y*q2.W + q.Z*q2.X,
		Z: q.W*q2.Z + q.X*q2.Y - q.Y*q2.X + q.Z*q2.W,
		W: q.W*q2.W - q.X*q2.X - q.Y*q2.Y - q.Z*q2.Z,
	}
}

func (q *Quaternion) Inverse() *Quaternion {
	return &Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q *Quaternion) ApplyTo(v *Vector3) *Vector3 {
	return NewRotationMatrix4FromQuaternion(q).ApplyTo(v)
}
