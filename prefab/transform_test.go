package prefab

import (
	"math"
	"testing"

	"github.com/binzume/urhoconv/geom"
)

func TestNodeTransform(t *testing.T) {
	rotZ := geom.NewRotationMatrix4FromQuaternion(geom.NewAxisAngleQuaternion(geom.NewVector3(0, 0, 1), math.Pi/2))

	for i, c := range []struct {
		opt                  TransformOptions
		matrix               *geom.Matrix4
		position, rot, scale string
	}{
		{DefaultTransformOptions(), geom.NewTranslateMatrix4(1, 2, 3), "1 3 2", "0 0 0", "1 1 1"},
		{TransformOptions{Scale: 2, FrontView: FrontYPlus}, geom.NewTranslateMatrix4(1, 2, 3), "2 6 4", "0 0 0", "1 1 1"},
		{TransformOptions{Scale: 1, FrontView: FrontYMinus}, geom.NewTranslateMatrix4(1, 2, 3), "-1 3 -2", "0 0 0", "1 1 1"},
		{TransformOptions{Scale: 1, FrontView: FrontXPlus}, geom.NewTranslateMatrix4(1, 2, 3), "-2 3 1", "0 0 0", "1 1 1"},
		{DefaultTransformOptions(), rotZ, "0 0 0", "0 -90 0", "1 1 1"},
		{DefaultTransformOptions(), geom.NewScaleMatrix4(2, 3, 4), "0 0 0", "0 0 0", "2 4 3"},
	} {
		tr := c.opt.NodeTransform(c.matrix)
		if tr.Position != c.position || tr.Rotation != c.rot || tr.Scale != c.scale {
			t.Error(i, tr.Position, tr.Rotation, tr.Scale)
		}
	}
}

func TestFrontView(t *testing.T) {
	for _, f := range []FrontView{FrontXPlus, FrontXMinus, FrontYPlus, FrontYMinus, FrontZPlus, FrontZMinus} {
		if !f.Valid() {
			t.Error("Valid()", f)
		}
		m := geom.NewAxisConversionMatrix4(f.axes())
		if geom.Abs(m.Det3()-1) > 0.0001 {
			t.Error("axis conversion should be a rotation", f)
		}
		// the orientation undoes the axis conversion
		if o := f.orientation(); o != nil {
			if matrixDiff(o.Mul(m), geom.NewMatrix4()) > 0.0001 {
				t.Error("orientation", f)
			}
		} else if f != FrontYPlus {
			t.Error("orientation", f)
		}
	}
	if FrontView("W").Valid() {
		t.Error("invalid front view")
	}
}

func matrixDiff(a, b *geom.Matrix4) float32 {
	var d float32
	for i := range a {
		d += geom.Abs(a[i] - b[i])
	}
	return d
}
