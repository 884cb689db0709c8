package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Pipeline carries world positions through every stage for one viewport.
type Pipeline struct {
	ViewProj mgl32.Mat4
	Warp     Warp
	Width    float32
	Height   float32
}

// NewPipeline builds the combined view-projection matrix and the warp
// constants for a camera rendering into a width×height viewport.
func NewPipeline(cam Camera, width, height int) (*Pipeline, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("transform: viewport %dx%d: %w", width, height, ErrInvalidViewport)
	}
	if err := cam.Validate(); err != nil {
		return nil, err
	}
	w, h := float32(width), float32(height)
	warp, err := NewWarp(cam.Near, cam.Far)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		ViewProj: cam.ProjectionMatrix(w / h).Mul4(cam.ViewMatrix()),
		Warp:     warp,
		Width:    w,
		Height:   h,
	}, nil
}

// Project returns the linear and warped device positions of p.
func (pl *Pipeline) Project(p World) (Device, WarpedDevice) {
	return pl.ProjectClip(Clip(pl.ViewProj.Mul4x1(mgl32.Vec3(p).Vec4(1))))
}

// ProjectClip is Project for a vertex already in clip space.
func (pl *Pipeline) ProjectClip(clip Clip) (Device, WarpedDevice) {
	su := NDCToScreenUnit(PerspectiveDivide(clip))
	return ScreenUnitToDevice(su, pl.Width, pl.Height),
		WarpedUnitToDevice(pl.Warp.Apply(su), pl.Width, pl.Height)
}
