package prefab

import (
	"math"
	"strconv"

	"github.com/binzume/urhoconv/geom"
	"github.com/binzume/urhoconv/urho"
)

// FrontView is the axis the model faces in the source scene.
type FrontView string

const (
	FrontXPlus  FrontView = "X_PLUS"
	FrontXMinus FrontView = "X_MINUS"
	FrontYPlus  FrontView = "Y_PLUS"
	FrontYMinus FrontView = "Y_MINUS"
	FrontZPlus  FrontView = "Z_PLUS"
	FrontZMinus FrontView = "Z_MINUS"
)

func (f FrontView) axes() (forward, up geom.Axis) {
	switch f {
	case FrontXPlus:
		return geom.AxisXPlus, geom.AxisZPlus
	case FrontXMinus:
		return geom.AxisXMinus, geom.AxisZPlus
	case FrontYMinus:
		return geom.AxisYMinus, geom.AxisZPlus
	case FrontZPlus:
		return geom.AxisZPlus, geom.AxisYPlus
	case FrontZMinus:
		return geom.AxisZMinus, geom.AxisYMinus
	}
	return geom.AxisYPlus, geom.AxisZPlus
}

// orientation returns nil when no re-orientation is needed.
func (f FrontView) orientation() *geom.Matrix4 {
	z := geom.NewVector3(0, 0, 1)
	x := geom.NewVector3(1, 0, 0)
	var q *geom.Quaternion
	switch f {
	case FrontXPlus:
		q = geom.NewAxisAngleQuaternion(z, math.Pi/2)
	case FrontXMinus:
		q = geom.NewAxisAngleQuaternion(z, -math.Pi/2)
	case FrontYMinus:
		q = geom.NewAxisAngleQuaternion(z, math.Pi)
	case FrontZPlus:
		q = geom.NewAxisAngleQuaternion(x, -math.Pi/2).Mul(geom.NewAxisAngleQuaternion(z, math.Pi))
	case FrontZMinus:
		q = geom.NewAxisAngleQuaternion(x, math.Pi/2).Mul(geom.NewAxisAngleQuaternion(z, math.Pi))
	default:
		return nil
	}
	return geom.NewRotationMatrix4FromQuaternion(q)
}

func (f FrontView) Valid() bool {
	switch f {
	case FrontXPlus, FrontXMinus, FrontYPlus, FrontYMinus, FrontZPlus, FrontZMinus:
		return true
	}
	return false
}

type TransformOptions struct {
	// GlobalOrigin omits node transforms from the collective document.
	GlobalOrigin bool      `yaml:"global_origin"`
	Scale        float32   `yaml:"scale"`
	FrontView    FrontView `yaml:"front_view"`
}

func DefaultTransformOptions() TransformOptions {
	return TransformOptions{Scale: 1, FrontView: FrontYPlus}
}

// NodeTransform is the formatted Position, Rotation and Scale of a node.
type NodeTransform struct {
	Position string
	Rotation string
	Scale    string
}

// NodeTransform converts a source space matrix to Urho3D node attributes.
func (o *TransformOptions) NodeTransform(m *geom.Matrix4) *NodeTransform {
	conv := geom.NewAxisConversionMatrix4(o.FrontView.axes())
	if o.Scale != 0 && o.Scale != 1 {
		conv = conv.Mul(geom.NewScaleMatrix4(o.Scale, o.Scale, o.Scale))
	}

	pos := conv.Transposed().ApplyTo(m.Translation())

	rotMat := m.Mul(conv)
	scaleMat := m
	if orient := o.FrontView.orientation(); orient != nil {
		rotMat = orient.Mul(rotMat)
		scaleMat = m.Mul(orient)
	}
	rot := geom.NewEulerFromMatrix4(rotMat.Rotation(), geom.RotationOrderZYX).Degrees()
	scale := scaleMat.ScaleVector()

	pos, rot, scale = tidy(pos), tidy(rot), tidy(scale)
	return &NodeTransform{
		Position: urho.FormatVector3(pos.SwapYZ()),
		Rotation: urho.FormatFloats(-rot.X, -rot.Z, -rot.Y),
		Scale:    urho.FormatVector3(scale.SwapYZ()),
	}
}

// tidy rounds to 6 significant digits and flushes values near zero.
func tidy(v *geom.Vector3) *geom.Vector3 {
	r := func(f float32) float32 {
		if geom.Abs(f) < 1e-6 {
			return 0
		}
		g, _ := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', 6, 32), 32)
		return float32(g)
	}
	return &geom.Vector3{X: r(v.X), Y: r(v.Y), Z: r(v.Z)}
}

func (t *NodeTransform) apply(node *urho.Element) {
	node.SetAttribute("Position", t.Position)
	node.SetAttribute("Rotation", t.Rotation)
	node.SetAttribute("Scale", t.Scale)
}
