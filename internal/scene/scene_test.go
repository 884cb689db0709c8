package scene

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logdepth-renderer/internal/mathutil"
	"logdepth-renderer/internal/obj"
)

func TestDefaultScene(t *testing.T) {
	sc := Default()
	require.Len(t, sc.Triangles, 3)
	require.NoError(t, sc.Camera.Validate())

	for i, z := range []float32{100, 50, 0} {
		for _, v := range sc.Triangles[i] {
			assert.Equal(t, z, v.Position[2], "triangle %d", i)
		}
	}
	assert.Equal(t, mathutil.Vec4{0, 0, 1, 1}, sc.Triangles[0][2].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 350}, sc.Camera.Eye)
}

func TestParseInlineTriangles(t *testing.T) {
	src := []byte(`
camera:
  near: 2
  far: 500
triangles:
  - - position: [0, 0, 0]
      color: [1, 0, 0, 1]
    - position: [1, 0, 0]
      texcoord: [1, 0]
    - position: [0, 1, 0]
      color: [0, 0, 1, 0.5]
`)
	sc, err := Parse(src, ".")
	require.NoError(t, err)

	assert.Equal(t, float32(2), sc.Camera.Near)
	assert.Equal(t, float32(500), sc.Camera.Far)
	assert.Equal(t, DefaultCamera().Eye, sc.Camera.Eye)

	require.Len(t, sc.Triangles, 1)
	tri := sc.Triangles[0]
	assert.Equal(t, mathutil.Vec4{1, 0, 0, 1}, tri[0].Color)
	assert.Equal(t, mathutil.Vec4{1, 1, 1, 1}, tri[1].Color)
	assert.Equal(t, mathutil.Vec2{1, 0}, tri[1].TexCoord)
	assert.Equal(t, mathutil.Vec4{0, 0, 1, 0.5}, tri[2].Color)
}

func TestParseRejectsShortTriangle(t *testing.T) {
	src := []byte(`
triangles:
  - - position: [0, 0, 0]
    - position: [1, 0, 0]
`)
	_, err := Parse(src, ".")
	assert.Error(t, err)
}

func TestLoadMeshScene(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "mesh.yaml"))
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{0, 0, 100}, sc.Camera.Eye)
	assert.InDelta(t, mgl32.DegToRad(60), sc.Camera.FOV, 1e-6)

	require.Len(t, sc.Triangles, 2)
	red := mathutil.Vec4{1, 0, 0, 1}
	green := mathutil.Vec4{0, 1, 0, 1}
	assert.Equal(t, red, sc.Triangles[0][0].Color)
	assert.Equal(t, green, sc.Triangles[0][1].Color)
	assert.Equal(t, red, sc.Triangles[0][2].Color)
	assert.Equal(t, green, sc.Triangles[1][0].Color)
	assert.Equal(t, mathutil.Vec2{0.5, 1}, sc.Triangles[0][2].TexCoord)
	assert.Equal(t, mgl32.Vec3{20, 10, 0}, sc.Triangles[1][1].Position)
}

func TestLoadMissingScene(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestFromMeshEmptyPalette(t *testing.T) {
	_, err := FromMesh(&obj.Mesh{}, nil)
	assert.ErrorIs(t, err, ErrEmptyPalette)
}
