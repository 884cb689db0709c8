package mathutil

import "github.com/chewxy/math32"

// Vec2 is a 2-component float32 vector (value type, stack-allocated).
type Vec2 [2]float32

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2) Cross(b Vec2) float32 {
	return a[0]*b[1] - b[0]*a[1]
}

// Min returns the componentwise minimum. A NaN component in either
// operand yields NaN for that component.
func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{math32.Min(a[0], b[0]), math32.Min(a[1], b[1])}
}

// Max returns the componentwise maximum. A NaN component in either
// operand yields NaN for that component.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{math32.Max(a[0], b[0]), math32.Max(a[1], b[1])}
}

// Floor rounds both components down.
func (v Vec2) Floor() Vec2 {
	return Vec2{math32.Floor(v[0]), math32.Floor(v[1])}
}

// Ceil rounds both components up.
func (v Vec2) Ceil() Vec2 {
	return Vec2{math32.Ceil(v[0]), math32.Ceil(v[1])}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1])
}
