package geom

import (
	"math"
	"testing"
)

func matrixDiff(a, b *Matrix4) Element {
	var d Element
	for i := range a {
		d += Abs(a[i] - b[i])
	}
	return d
}

func TestMatrixTRS(t *testing.T) {
	const eps = 0.0001

	pos := NewVector3(1, 2, 3)
	rot := NewAxisAngleQuaternion(NewVector3(1, 1, 0), 0.6)
	scale := NewVector3(1.5, 1.6, 1.7)

	mat := NewTRSMatrix4(pos, rot, scale)
	if pos.Sub(mat.Translation()).Len() > eps {
		t.Error("pos: ", pos, mat.Translation())
	}
	if matrixDiff(NewRotationMatrix4FromQuaternion(rot), mat.Rotation()) > eps {
		t.Error("rot: ", rot, mat.Rotation())
	}
	if scale.Sub(mat.ScaleVector()).Len() > eps {
		t.Error("scale: ", scale, mat.ScaleVector())
	}

	mat2 := NewRotationMatrix4FromQuaternion(rot)
	if mat2.Translation().Len() > eps {
		t.Error("pos: ", mat2.Translation())
	}
	if mat2.ScaleVector().Sub(NewVector3(1, 1, 1)).Len() > eps {
		t.Error("scale: ", mat2.ScaleVector())
	}
}

func TestMatrixInverse(t *testing.T) {
	const eps = 0.0001

	rot := NewAxisAngleQuaternion(NewVector3(1, 2, 3), 0.7)
	mat := NewTRSMatrix4(NewVector3(4, -5, 6), rot, NewVector3(2, 3, 0.5))

	if matrixDiff(mat.Mul(mat.Inverse()), NewMatrix4()) > eps {
		t.Error("m * m^-1 != I", mat.Mul(mat.Inverse()))
	}
	if matrixDiff(mat.Inverse().Mul(mat), NewMatrix4()) > eps {
		t.Error("m^-1 * m != I", mat.Inverse().Mul(mat))
	}

	v := NewVector3(1, 2, 3)
	v2 := mat.Inverse().ApplyTo(mat.ApplyTo(v))
	if v.Sub(v2).Len() > eps {
		t.Error("inverse apply: ", v, v2)
	}

	if *NewScaleMatrix4(0, 1, 1).Inverse() != (Matrix4{}) {
		t.Error("singular matrix should be zero")
	}
}

func TestMatrixMul(t *testing.T) {
	const eps = 0.0001

	tr := NewTranslateMatrix4(1, 2, 3)
	sc := NewScaleMatrix4(2, 2, 2)

	// translate after scale
	v := tr.Mul(sc).ApplyTo(NewVector3(1, 1, 1))
	if v.Sub(NewVector3(3, 4, 5)).Len() > eps {
		t.Error("T*S: ", v)
	}
	v = sc.Mul(tr).ApplyTo(NewVector3(1, 1, 1))
	if v.Sub(NewVector3(4, 6, 8)).Len() > eps {
		t.Error("S*T: ", v)
	}

	q := NewAxisAngleQuaternion(NewVector3(0, 0, 1), math.Pi/2)
	v = NewRotationMatrix4FromQuaternion(q).ApplyTo(NewVector3(1, 0, 0))
	if v.Sub(NewVector3(0, 1, 0)).Len() > eps {
		t.Error("rotate z 90: ", v)
	}

	if *tr.Transposed().Transposed() != *tr {
		t.Error("transpose")
	}
}
