package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes a right-handed look-at camera with a perspective lens.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FOV    float32 // vertical field of view in radians
	Near   float32
	Far    float32
}

// Validate checks the clip planes and field of view.
func (c Camera) Validate() error {
	if !(c.Near > 0 && c.Far > c.Near) {
		return fmt.Errorf("transform: near=%g far=%g: %w", c.Near, c.Far, ErrInvalidClip)
	}
	if !(c.FOV > 0 && c.FOV < mgl32.DegToRad(180)) {
		return fmt.Errorf("transform: fov=%g: %w", c.FOV, ErrInvalidFOV)
	}
	return nil
}

// ViewMatrix returns the world-to-view matrix.
func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the view-to-clip matrix. NDC z lands in [-1,1].
func (c Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// WorldToView applies the view matrix to a world position (w=1).
func WorldToView(p World, view mgl32.Mat4) View {
	return View(view.Mul4x1(mgl32.Vec3(p).Vec4(1)))
}

// ViewToProjection applies the projection matrix.
func ViewToProjection(v View, proj mgl32.Mat4) Clip {
	return Clip(proj.Mul4x1(mgl32.Vec4(v)))
}
