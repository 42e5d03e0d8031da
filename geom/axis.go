package geom

// Axis is a signed basis direction.
type Axis int

const (
	AxisXPlus Axis = iota
	AxisXMinus
	AxisYPlus
	AxisYMinus
	AxisZPlus
	AxisZMinus
)

func (a Axis) Vector() *Vector3 {
	switch a {
	case AxisXPlus:
		return &Vector3{X: 1}
	case AxisXMinus:
		return &Vector3{X: -1}
	case AxisYPlus:
		return &Vector3{Y: 1}
	case AxisYMinus:
		return &Vector3{Y: -1}
	case AxisZPlus:
		return &Vector3{Z: 1}
	case AxisZMinus:
		return &Vector3{Z: -1}
	}
	return &Vector3{}
}

// NewAxisConversionMatrix4 maps the Z-up, Y-forward basis onto (forward, up).
// forward and up must not be parallel.
func NewAxisConversionMatrix4(forward, up Axis) *Matrix4 {
	f := forward.Vector()
	u := up.Vector()
	r := f.Cross(u)
	return &Matrix4{
		r.X, r.Y, r.Z, 0,
		f.X, f.Y, f.Z, 0,
		u.X, u.Y, u.Z, 0,
		0, 0, 0, 1,
	}
}
