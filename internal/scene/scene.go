// Package scene holds the flat triangle stream the rasterizer consumes.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"logdepth-renderer/internal/mathutil"
	"logdepth-renderer/internal/transform"
)

// Vertex holds per-vertex attributes. Color is RGBA in [0,1].
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mathutil.Vec2
	Color    mathutil.Vec4
}

// Triangle is an independent ordered vertex triple.
type Triangle [3]Vertex

// Scene is an ordered triangle list viewed through one camera.
type Scene struct {
	Camera    transform.Camera
	Triangles []Triangle
}

// DefaultCamera looks at the origin from (0, 0, 350) with a 45° lens and
// clip planes at 1 and 1000.
func DefaultCamera() transform.Camera {
	return transform.Camera{
		Eye:    mgl32.Vec3{0, 0, 350},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FOV:    mgl32.DegToRad(45),
		Near:   1,
		Far:    1000,
	}
}

// Default returns the three-triangle demo scene: triangles at z = 100,
// 50 and 0, nearest first.
func Default() Scene {
	red := mathutil.Vec4{1, 0, 0, 1}
	uv0, uv1, uv2 := mathutil.Vec2{0, 0}, mathutil.Vec2{1, 0}, mathutil.Vec2{0, 1}
	return Scene{
		Camera: DefaultCamera(),
		Triangles: []Triangle{
			{
				{Position: mgl32.Vec3{-100, -100, 100}, TexCoord: uv0, Color: mathutil.Vec4{1, 0, 0, 1}},
				{Position: mgl32.Vec3{100, -100, 100}, TexCoord: uv1, Color: mathutil.Vec4{0, 1, 0, 1}},
				{Position: mgl32.Vec3{0, 50, 100}, TexCoord: uv2, Color: mathutil.Vec4{0, 0, 1, 1}},
			},
			{
				{Position: mgl32.Vec3{-150, -80, 50}, TexCoord: uv0, Color: mathutil.Vec4{1, 1, 0, 1}},
				{Position: mgl32.Vec3{50, -80, 50}, TexCoord: uv1, Color: mathutil.Vec4{0, 1, 1, 1}},
				{Position: mgl32.Vec3{-50, 70, 50}, TexCoord: uv2, Color: mathutil.Vec4{1, 0, 1, 1}},
			},
			{
				{Position: mgl32.Vec3{-200, -50, 0}, TexCoord: uv0, Color: red},
				{Position: mgl32.Vec3{200, -50, 0}, TexCoord: uv1, Color: red},
				{Position: mgl32.Vec3{0, 240, 0}, TexCoord: uv2, Color: red},
			},
		},
	}
}
