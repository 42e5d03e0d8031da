package urho

import (
	"strconv"
	"strings"

	"github.com/binzume/urhoconv/geom"
)

const maxBitMaskBits = 8

// FormatFloat returns the shortest float32 representation. Negative zero is "0".
func FormatFloat(f float32) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func FormatFloats(v ...float32) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = FormatFloat(f)
	}
	return strings.Join(s, " ")
}

func FormatVector3(v *geom.Vector3) string {
	return FormatFloats(v.X, v.Y, v.Z)
}

func FormatVector4(v *geom.Vector4) string {
	return FormatFloats(v.X, v.Y, v.Z, v.W)
}

func FormatInt(i int) string {
	return strconv.Itoa(i)
}

func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// BitMask packs layer flags into a mask. All bits set is -1.
func BitMask(layers [maxBitMaskBits]bool) int {
	mask := 0
	for i, b := range layers {
		if b {
			mask |= 1 << i
		}
	}
	if mask == 1<<maxBitMaskBits-1 {
		return -1
	}
	return mask
}
