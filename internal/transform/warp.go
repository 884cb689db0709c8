package transform

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"logdepth-renderer/internal/mathutil"
)

var (
	// ErrInvalidClip is returned when the clip planes do not satisfy far > near > 0.
	ErrInvalidClip = errors.New("clip planes must satisfy far > near > 0")
	// ErrInvalidFOV is returned for a field of view outside (0, π).
	ErrInvalidFOV = errors.New("field of view must be in (0, pi)")
	// ErrInvalidViewport is returned for a zero or negative viewport size.
	ErrInvalidViewport = errors.New("viewport width and height must be positive")
)

// Warp holds the constants of the logarithmic row warp
//
//	y' = C0 * ln(C1*y + 1)
//
// with C0 = -1/ln(f/n) and C1 = (1 - f/n)/(f/n). The warp maps [0,1] onto
// [0,1] and is monotonically increasing.
type Warp struct {
	C0 float32
	C1 float32
}

// NewWarp precomputes the warp constants for the given clip planes.
func NewWarp(near, far float32) (Warp, error) {
	if !(near > 0 && far > near) {
		return Warp{}, fmt.Errorf("transform: warp near=%g far=%g: %w", near, far, ErrInvalidClip)
	}
	return warpConstants(near, far), nil
}

func warpConstants(near, far float32) Warp {
	ratio := far / near
	return Warp{
		C0: -1 / math32.Log1p(ratio-1),
		C1: (1 - ratio) / ratio,
	}
}

// InDomain reports whether the warp is defined at y (C1*y + 1 > 0).
func (w Warp) InDomain(y float32) bool {
	return w.C1*y+1 > 0
}

// Forward warps y. Outside the domain the result is NaN or +Inf.
// Log1p keeps full relative precision for y near 0.
func (w Warp) Forward(y float32) float32 {
	return w.C0 * math32.Log1p(w.C1*y)
}

// Inverse undoes Forward on a y normalized to [0,1].
func (w Warp) Inverse(y float32) float32 {
	return math32.Expm1(y/w.C0) / w.C1
}

// Apply warps the y component of a screen-unit position.
func (w Warp) Apply(v ScreenUnit) WarpedUnit {
	return WarpedUnit{v[0], w.Forward(v[1]), v[2], v[3]}
}

// Unwarp maps a warped device-space offset back to the linear frame.
// The offset is normalized by height, inverted and rescaled; x is
// unaffected by the warp.
func (w Warp) Unwarp(offset mathutil.Vec2, height float32) mathutil.Vec2 {
	return mathutil.Vec2{offset[0], w.Inverse(offset[1]/height) * height}
}

// LogDepthTransform warps the y component of v for the given clip planes.
// The caller is responsible for far > near > 0; use NewWarp to validate.
func LogDepthTransform(v ScreenUnit, near, far float32) WarpedUnit {
	return warpConstants(near, far).Apply(v)
}

// InverseLogDepthTransform recovers the linear offset for a warped
// device-space offset. It inverts LogDepthTransform composed with the
// height scaling.
func InverseLogDepthTransform(offset mathutil.Vec2, near, far, height float32) mathutil.Vec2 {
	return warpConstants(near, far).Unwarp(offset, height)
}
