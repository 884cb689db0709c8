package raster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logdepth-renderer/internal/scene"
	"logdepth-renderer/internal/transform"
)

func TestRenderDefaultScene(t *testing.T) {
	fb, stats, err := Render(scene.Default(), Options{Width: 960, Height: 540})
	require.NoError(t, err)

	assert.Equal(t, 960, fb.Width)
	assert.Equal(t, 540, fb.Height)
	assert.Equal(t, 3, stats.Triangles)
	assert.Equal(t, 2, stats.Drawn)
	assert.Equal(t, 1, stats.SkippedDomain)
	assert.Greater(t, stats.Pixels, 0)
}

func TestRenderDefaultSceneClamped(t *testing.T) {
	skip, skipStats, err := Render(scene.Default(), Options{Width: 960, Height: 540})
	require.NoError(t, err)
	clamp, clampStats, err := Render(scene.Default(), Options{Width: 960, Height: 540, Domain: DomainClamp})
	require.NoError(t, err)

	assert.Equal(t, 3, clampStats.Drawn)
	assert.Zero(t, clampStats.SkippedDomain)
	assert.Greater(t, clampStats.Pixels, skipStats.Pixels)
	assert.NotEqual(t, skip.Color, clamp.Color)
}

func TestRenderDeterministic(t *testing.T) {
	opts := Options{Width: 320, Height: 180, Domain: DomainClamp}
	a, _, err := Render(scene.Default(), opts)
	require.NoError(t, err)
	b, _, err := Render(scene.Default(), opts)
	require.NoError(t, err)

	assert.Equal(t, a.Color, b.Color)
	assert.Equal(t, a.Depth, b.Depth)
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, _, err := Render(scene.Default(), Options{Width: 0, Height: 540})
	assert.True(t, errors.Is(err, transform.ErrInvalidViewport), "got %v", err)

	sc := scene.Default()
	sc.Camera.Near, sc.Camera.Far = 10, 1
	_, _, err = Render(sc, Options{Width: 960, Height: 540})
	assert.True(t, errors.Is(err, transform.ErrInvalidClip), "got %v", err)
}

func TestRenderEmptyScene(t *testing.T) {
	fb, stats, err := Render(scene.Scene{Camera: scene.DefaultCamera()}, Options{Width: 8, Height: 8})
	require.NoError(t, err)
	assert.Zero(t, stats.Triangles)
	for _, v := range fb.Color {
		require.Equal(t, uint8(255), v)
	}
}

func TestDrawTrianglesIsIdempotent(t *testing.T) {
	sc := scene.Default()
	pl, err := transform.NewPipeline(sc.Camera, 960, 540)
	require.NoError(t, err)
	fb := newBuffer(t, 960, 540)

	first := DrawTriangles(fb, pl, sc.Triangles, DomainSkip)
	color := append([]uint8(nil), fb.Color...)
	depth := append([]float32(nil), fb.Depth...)

	second := DrawTriangles(fb, pl, sc.Triangles, DomainSkip)
	assert.Equal(t, first.Drawn, second.Drawn)
	assert.Equal(t, color, fb.Color)
	assert.Equal(t, depth, fb.Depth)
}

func TestProjectCarriesAttributes(t *testing.T) {
	sc := scene.Default()
	pl, err := transform.NewPipeline(sc.Camera, 960, 540)
	require.NoError(t, err)

	dv := Project(pl, &sc.Triangles[0])
	for k := range dv {
		assert.Equal(t, sc.Triangles[0][k].Color, dv[k].Color)
		assert.Equal(t, sc.Triangles[0][k].TexCoord, dv[k].TexCoord)
		lin, warped := pl.Project(transform.World(sc.Triangles[0][k].Position))
		assert.Equal(t, lin, dv[k].Linear)
		assert.Equal(t, warped, dv[k].Warped)
	}
}
