package mathutil

import "github.com/chewxy/math32"

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Quantize maps a [0,1] channel value to a byte: round(c*255) clamped
// to [0,255]. NaN maps to 0.
func Quantize(c float32) uint8 {
	v := math32.Round(c * 255)
	if math32.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
