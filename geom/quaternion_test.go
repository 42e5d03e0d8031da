package geom

import (
	"math"
	"testing"
)

func TestQuaternionApply(t *testing.T) {
	const eps = 0.00001
	tests := []struct {
		axis  Vector3
		angle float64
		src   Vector3
		dst   Vector3
	}{
		{Vector3{0, 0, 1}, 0, Vector3{1, 2, 3}, Vector3{1, 2, 3}},
		{Vector3{0, 0, 1}, math.Pi / 2, Vector3{1, 0, 0}, Vector3{0, 1, 0}},
		{Vector3{0, 0, 2}, math.Pi / 2, Vector3{1, 0, 0}, Vector3{0, 1, 0}},
		{Vector3{1, 0, 0}, math.Pi / 2, Vector3{0, 1, 0}, Vector3{0, 0, 1}},
		{Vector3{0, 1, 0}, math.Pi, Vector3{1, 2, 3}, Vector3{-1, 2, -3}},
		{Vector3{1, 0, 0}, 2 * math.Pi, Vector3{1, 2, 3}, Vector3{1, 2, 3}},
	}
	for _, test := range tests {
		q := NewAxisAngleQuaternion(&test.axis, test.angle)
		if d := q.ApplyTo(&test.src).Sub(&test.dst).Len(); d > eps {
			t.Error("rotate", test.axis, test.angle, q.ApplyTo(&test.src))
		}
	}
}

func TestQuaternionMul(t *testing.T) {
	const eps = 0.00001
	q1 := NewAxisAngleQuaternion(NewVector3(0, 0, 1), 1.1).Mul(NewAxisAngleQuaternion(NewVector3(1, 0, 0), 0.3))
	q2 := NewAxisAngleQuaternion(NewVector3(1, 1, 0), 0.7)
	v := NewVector3(1, 2, 3)

	// q1 * q2 applies q2 first, like the matrix product.
	a := q1.Mul(q2).ApplyTo(v)
	b := NewRotationMatrix4FromQuaternion(q1).Mul(NewRotationMatrix4FromQuaternion(q2)).ApplyTo(v)
	if a.Sub(b).Len() > eps {
		t.Error("q1 * q2: ", a, b)
	}

	if d := q1.Mul(q1.Inverse()).ApplyTo(v).Sub(v).Len(); d > eps {
		t.Error("q * q^-1 should be identity")
	}

	n := NewQuaternion(0, 0, 2, 0).Normalize()
	if *n != (Quaternion{0, 0, 1, 0}) {
		t.Error("normalize: ", n)
	}
	if z := (&Quaternion{}).Normalize(); *z != (Quaternion{0, 0, 0, 1}) {
		t.Error("zero quaternion should normalize to identity: ", z)
	}
}
