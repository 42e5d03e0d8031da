package geom

import "math"

type Box3 struct {
	Min Vector3
	Max Vector3
}

func NewBox3(min, max *Vector3) *Box3 {
	return &Box3{Min: *min, Max: *max}
}

func NewEmptyBox3() *Box3 {
	inf := Element(math.Inf(1))
	return &Box3{Min: Vector3{inf, inf, inf}, Max: Vector3{-inf, -inf, -inf}}
}

func (b *Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b *Box3) ExpandByPoint(v *Vector3) {
	b.Min.X = Element(math.Min(float64(b.Min.X), float64(v.X)))
	b.Min.Y = Element(math.Min(float64(b.Min.Y), float64(v.Y)))
	b.Min.Z = Element(math.Min(float64(b.Min.Z), float64(v.Z)))
	b.Max.X = Element(math.Max(float64(b.Max.X), float64(v.X)))
	b.Max.Y = Element(math.Max(float64(b.Max.Y), float64(v.Y)))
	b.Max.Z = Element(math.Max(float64(b.Max.Z), float64(v.Z)))
}

// Size returns the extent of the box. Empty boxes have zero size.
func (b *Box3) Size() *Vector3 {
	if b.IsEmpty() {
		return &Vector3{}
	}
	return b.Max.Sub(&b.Min)
}

func (b *Box3) Center() *Vector3 {
	if b.IsEmpty() {
		return &Vector3{}
	}
	return b.Min.Add(&b.Max).Scale(0.5)
}
