package transform

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logdepth-renderer/internal/mathutil"
)

func TestNewWarpRejectsBadPlanes(t *testing.T) {
	for _, tc := range []struct{ near, far float32 }{
		{0, 10},
		{-1, 10},
		{10, 10},
		{10, 1},
	} {
		_, err := NewWarp(tc.near, tc.far)
		if !errors.Is(err, ErrInvalidClip) {
			t.Errorf("NewWarp(%g, %g) error = %v, want ErrInvalidClip", tc.near, tc.far, err)
		}
	}
}

func TestWarpEndpoints(t *testing.T) {
	w, err := NewWarp(1, 1000)
	require.NoError(t, err)

	assert.InDelta(t, 0, w.Forward(0), 1e-6)
	assert.InDelta(t, 1, w.Forward(1), 1e-3)

	prev := w.Forward(0)
	for i := 1; i <= 100; i++ {
		y := w.Forward(float32(i) / 100)
		assert.Greater(t, y, prev, "warp must increase at y=%v", float32(i)/100)
		prev = y
	}
}

func TestWarpDomain(t *testing.T) {
	w, err := NewWarp(1, 1000)
	require.NoError(t, err)

	assert.True(t, w.InDomain(0))
	assert.True(t, w.InDomain(1))
	assert.True(t, w.InDomain(-5))
	assert.False(t, w.InDomain(1.5))
	assert.False(t, mathutil.IsFinite(w.Forward(1.5)))
}

func TestLogDepthRoundTrip(t *testing.T) {
	planes := []struct{ near, far float32 }{
		{1, 1000},
		{0.1, 100},
		{1, 10},
	}
	heights := []float32{1, 540, 1080}
	ys := []float32{
		1e-6, 1e-5, 3e-5, 1e-4, 1e-3, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1,
		-1e-6, -1e-4, -0.01, -0.5, -1,
	}

	for _, pl := range planes {
		for _, h := range heights {
			for _, y := range ys {
				warped := LogDepthTransform(ScreenUnit{0.3, y, 0.5, 1}, pl.near, pl.far)
				assert.Equal(t, float32(0.3), warped[0])
				assert.Equal(t, float32(0.5), warped[2])
				assert.Equal(t, float32(1), warped[3])

				back := InverseLogDepthTransform(mathutil.Vec2{7, warped[1] * h}, pl.near, pl.far, h)
				assert.Equal(t, float32(7), back[0])
				assert.InEpsilon(t, y*h, back[1], 1e-4,
					"near=%g far=%g height=%g y=%g", pl.near, pl.far, h, y)
			}
		}
	}
}

func TestWarpSmallYKeepsPrecision(t *testing.T) {
	w, err := NewWarp(1, 1000)
	require.NoError(t, err)

	for _, y := range []float32{1e-7, 1e-6, 1e-5} {
		// Near 0 the warp is linear with slope C0*C1.
		assert.InEpsilon(t, w.C0*w.C1*y, w.Forward(y), 1e-3, "y=%g", y)
		assert.InEpsilon(t, y, w.Inverse(w.Forward(y)), 1e-5, "y=%g", y)
	}
}

func TestUnwarpZeroOffset(t *testing.T) {
	w, err := NewWarp(1, 1000)
	require.NoError(t, err)
	got := w.Unwarp(mathutil.Vec2{3, 0}, 540)
	assert.Equal(t, mathutil.Vec2{3, 0}, got)
}

func TestWarpMatchesFormula(t *testing.T) {
	w, err := NewWarp(1, 1000)
	require.NoError(t, err)
	assert.InDelta(t, -1/math32.Log(1000), w.C0, 1e-7)
	assert.InDelta(t, -0.999, w.C1, 1e-6)
}
