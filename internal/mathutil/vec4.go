package mathutil

// Vec4 is a 4-component float32 vector used for homogeneous positions
// and RGBA colors.
type Vec4 [4]float32

// Add returns a + b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Scale multiplies every component by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// XY drops z and w.
func (v Vec4) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// Blend returns a*wa + b*wb + c*wc.
func Blend(a, b, c Vec4, wa, wb, wc float32) Vec4 {
	return a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc))
}

// Blend2 is Blend for 2-component attributes such as texture coordinates.
func Blend2(a, b, c Vec2, wa, wb, wc float32) Vec2 {
	return a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc))
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec4) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2]) && IsFinite(v[3])
}
