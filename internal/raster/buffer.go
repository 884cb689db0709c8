package raster

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrInvalidSize is returned for a zero or negative framebuffer size.
var ErrInvalidSize = errors.New("framebuffer width and height must be positive")

// ClearDepth is stored in every depth cell by Clear. It exceeds any
// projected depth the rasterizer can produce.
const ClearDepth float32 = math.MaxFloat32

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Color is R,G,B,A interleaved, row-major, row 0 first.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // len = W*H*4
	Depth  []float32 // len = W*H
}

// NewFrameBuffer allocates a cleared framebuffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: framebuffer %dx%d: %w", w, h, ErrInvalidSize)
	}
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  make([]float32, n),
	}
	fb.Clear()
	return fb, nil
}

// Clear sets every pixel to opaque white and every depth to ClearDepth.
func (fb *FrameBuffer) Clear() {
	for i := range fb.Color {
		fb.Color[i] = 255
	}
	for i := range fb.Depth {
		fb.Depth[i] = ClearDepth
	}
}

func (fb *FrameBuffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0, false
	}
	return y*fb.Width + x, true
}

// WritePixel stores rgba at (x, y). It reports false when (x, y) is
// outside the buffer.
func (fb *FrameBuffer) WritePixel(x, y int, rgba [4]uint8) bool {
	i, ok := fb.index(x, y)
	if !ok {
		return false
	}
	copy(fb.Color[i*4:i*4+4], rgba[:])
	return true
}

// Pixel returns the color at (x, y), or zero when outside the buffer.
func (fb *FrameBuffer) Pixel(x, y int) [4]uint8 {
	var c [4]uint8
	if i, ok := fb.index(x, y); ok {
		copy(c[:], fb.Color[i*4:i*4+4])
	}
	return c
}

// ReadDepth returns the stored depth at (x, y).
func (fb *FrameBuffer) ReadDepth(x, y int) (float32, bool) {
	i, ok := fb.index(x, y)
	if !ok {
		return 0, false
	}
	return fb.Depth[i], true
}

// WriteDepth stores v at (x, y). It reports false when (x, y) is outside
// the buffer.
func (fb *FrameBuffer) WriteDepth(x, y int, v float32) bool {
	i, ok := fb.index(x, y)
	if !ok {
		return false
	}
	fb.Depth[i] = v
	return true
}

// Image copies the color buffer into an NRGBA image. Row 0 of the buffer
// becomes row 0 of the image; use preview.Upright to flip for display.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
