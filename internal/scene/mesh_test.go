package scene

import (
	"bytes"
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logdepth-renderer/internal/mathutil"
	"logdepth-renderer/internal/obj"
)

func TestFromMeshMaterials(t *testing.T) {
	mesh, err := obj.Load(filepath.Join("testdata", "quad.obj"), obj.Options{Materials: true})
	require.NoError(t, err)

	plain, err := FromMesh(mesh, DefaultPalette)
	require.NoError(t, err)
	require.Len(t, plain, 2)
	assert.Equal(t, DefaultPalette[0], plain[0][0].Color)
	assert.Equal(t, DefaultPalette[1], plain[0][1].Color)

	tris, err := FromMeshMaterials(mesh, DefaultPalette)
	require.NoError(t, err)
	require.Len(t, tris, 2)
	for _, v := range tris[0] {
		assert.Equal(t, mathutil.Vec4{1, 0, 0, 0.75}, v.Color)
	}
	assert.Equal(t, float32(0), tris[1][0].Color[0])
	assert.Equal(t, float32(1), tris[1][0].Color[2])
}

func TestFromMeshMaterialsWithoutLibrary(t *testing.T) {
	mesh, err := obj.Load(filepath.Join("testdata", "quad.obj"), obj.Options{})
	require.NoError(t, err)

	tris, err := FromMeshMaterials(mesh, DefaultPalette)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette[0], tris[0][0].Color)
}

func TestFrame(t *testing.T) {
	tris := []Triangle{{
		{Position: mgl32.Vec3{-1, -1, 0}},
		{Position: mgl32.Vec3{3, -1, 0}},
		{Position: mgl32.Vec3{1, 1, 2}},
	}}
	fov := mgl32.DegToRad(45)
	cam, err := Frame(tris, fov)
	require.NoError(t, err)
	require.NoError(t, cam.Validate())

	assert.Equal(t, mgl32.Vec3{1, 0, 1}, cam.Target)
	dist := cam.Eye.Sub(cam.Target).Len()
	radius := float32(math.Sqrt(6))
	assert.InDelta(t, dist-radius, cam.Near, 1e-4)
	assert.InDelta(t, dist+radius, cam.Far, 1e-4)
	assert.Greater(t, cam.Eye[2], cam.Target[2])
}

func TestFrameErrors(t *testing.T) {
	_, err := Frame(nil, 1)
	assert.ErrorIs(t, err, ErrEmptyMesh)

	p := Vertex{Position: mgl32.Vec3{1, 1, 1}}
	_, err = Frame([]Triangle{{p, p, p}}, 1)
	assert.Error(t, err)
}

func TestFromOBJ(t *testing.T) {
	sc, err := FromOBJ(filepath.Join("testdata", "quad.obj"))
	require.NoError(t, err)
	require.Len(t, sc.Triangles, 2)
	require.NoError(t, sc.Camera.Validate())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, sc.Camera.Target)

	_, err = FromOBJ(filepath.Join("testdata", "missing.obj"))
	assert.Error(t, err)
}

func TestFromOBJMissingMaterialLibrary(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	sc, err := FromOBJ(filepath.Join("testdata", "absentmtl.obj"))
	require.NoError(t, err)
	require.Len(t, sc.Triangles, 1)
	require.NoError(t, sc.Camera.Validate())

	// quad.mtl still loads after the missing library.
	for _, v := range sc.Triangles[0] {
		assert.Equal(t, mathutil.Vec4{1, 0, 0, 0.75}, v.Color)
	}
	assert.Contains(t, buf.String(), "material library not loaded")
	assert.Contains(t, buf.String(), "absent.mtl")
}

func TestParseMeshWithMissingMaterialLibrary(t *testing.T) {
	sc, err := Parse([]byte("mesh:\n  path: absentmtl.obj\n  materials: true\n"), "testdata")
	require.NoError(t, err)
	require.Len(t, sc.Triangles, 1)
}
