// Package transform carries vertices from world space to the two
// device-space frames used by the log rasterizer.
//
// Every coordinate space has its own type so a value cannot be handed to
// the wrong stage:
//
//	World -> View -> Clip -> NDC -> ScreenUnit -> Device
//	                                 ScreenUnit -> WarpedUnit -> WarpedDevice
package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"logdepth-renderer/internal/mathutil"
)

// World is an object position after the (identity) world transform.
type World mgl32.Vec3

// View is a homogeneous position in camera space.
type View mathutil.Vec4

// Clip is a homogeneous position after the projection matrix.
type Clip mathutil.Vec4

// NDC holds x,y,z in [-1,1] and the reciprocal of the clip w in w.
type NDC mathutil.Vec4

// ScreenUnit holds x,y in [0,1]; z,w as in NDC.
type ScreenUnit mathutil.Vec4

// WarpedUnit is a ScreenUnit whose y went through the log-depth warp.
type WarpedUnit mathutil.Vec4

// Device is a linear position in pixels.
type Device mathutil.Vec4

// WarpedDevice is a log-warped position in pixels. Rows are enumerated in
// this space.
type WarpedDevice mathutil.Vec4

// XY returns the pixel position.
func (d Device) XY() mathutil.Vec2 { return mathutil.Vec4(d).XY() }

// XY returns the warped pixel position.
func (d WarpedDevice) XY() mathutil.Vec2 { return mathutil.Vec4(d).XY() }
