package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"logdepth-renderer/internal/mathutil"
	"logdepth-renderer/internal/obj"
	"logdepth-renderer/internal/transform"
)

// ErrEmptyPalette is returned by FromMesh when no colors are given.
var ErrEmptyPalette = errors.New("scene: palette must not be empty")

// ErrEmptyMesh is returned when a mesh has no triangles to frame.
var ErrEmptyMesh = errors.New("scene: mesh has no triangles")

// DefaultPalette colors mesh vertices when a file provides none.
var DefaultPalette = []mathutil.Vec4{
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
}

// FromMesh converts a loaded mesh into triangles. Materials are not read;
// vertex k of the triangle stream takes palette[k % len(palette)].
func FromMesh(m *obj.Mesh, palette []mathutil.Vec4) ([]Triangle, error) {
	return fromMesh(m, palette, false)
}

// FromMeshMaterials is FromMesh, except that corners inside a subset whose
// material was loaded take the material's diffuse color and alpha.
func FromMeshMaterials(m *obj.Mesh, palette []mathutil.Vec4) ([]Triangle, error) {
	return fromMesh(m, palette, true)
}

func fromMesh(m *obj.Mesh, palette []mathutil.Vec4, materials bool) ([]Triangle, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	tris := make([]Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var tri Triangle
		for k := 0; k < 3; k++ {
			idx := m.Indices[i+k]
			tri[k] = Vertex{
				Position: m.Positions[idx],
				TexCoord: m.TexCoords[idx],
				Color:    palette[(i+k)%len(palette)],
			}
		}
		if materials {
			if c, ok := materialColor(m, i); ok {
				tri[0].Color, tri[1].Color, tri[2].Color = c, c, c
			}
		}
		tris = append(tris, tri)
	}
	return tris, nil
}

func materialColor(m *obj.Mesh, index int) (mathutil.Vec4, bool) {
	sub, ok := m.SubsetAt(index)
	if !ok {
		return mathutil.Vec4{}, false
	}
	mat, ok := m.FindMaterial(sub.Name)
	if !ok {
		return mathutil.Vec4{}, false
	}
	return mathutil.Vec4{mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2], mat.Alpha}, true
}

// Frame returns a camera on the +z side of the triangles' bounding sphere,
// far enough back for a lens of the given field of view to see all of it.
// The clip planes enclose the sphere.
func Frame(tris []Triangle, fov float32) (transform.Camera, error) {
	if len(tris) == 0 {
		return transform.Camera{}, ErrEmptyMesh
	}
	lo := tris[0][0].Position
	hi := lo
	for _, tri := range tris {
		for _, v := range tri {
			for k := 0; k < 3; k++ {
				lo[k] = math32.Min(lo[k], v.Position[k])
				hi[k] = math32.Max(hi[k], v.Position[k])
			}
		}
	}
	centre := lo.Add(hi).Mul(0.5)
	radius := hi.Sub(lo).Len() * 0.5
	if radius == 0 || !mathutil.IsFinite(radius) {
		return transform.Camera{}, fmt.Errorf("scene: cannot frame mesh with radius %g", radius)
	}

	dist := radius / math32.Sin(fov*0.5)
	near := math32.Max(dist-radius, dist*0.01)
	return transform.Camera{
		Eye:    centre.Add(mgl32.Vec3{0, 0, dist}),
		Target: centre,
		Up:     mgl32.Vec3{0, 1, 0},
		FOV:    fov,
		Near:   near,
		Far:    dist + radius,
	}, nil
}

// loadMesh reads an OBJ file. Material libraries are optional: one that
// fails to load is logged and its subsets fall back to the palette.
func loadMesh(path string, materials bool) (*obj.Mesh, error) {
	mesh, err := obj.Load(path, obj.Options{Materials: materials})
	if errors.Is(err, obj.ErrMaterialLibrary) {
		slogger().Warn("material library not loaded", "obj", path, "err", err)
		return mesh, nil
	}
	return mesh, err
}

// FromOBJ loads an OBJ file with its materials and frames it with the
// default lens. A missing material library is not an error.
func FromOBJ(path string) (Scene, error) {
	mesh, err := loadMesh(path, true)
	if err != nil {
		return Scene{}, err
	}
	tris, err := FromMeshMaterials(mesh, DefaultPalette)
	if err != nil {
		return Scene{}, err
	}
	cam, err := Frame(tris, DefaultCamera().FOV)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %s: %w", path, err)
	}
	return Scene{Camera: cam, Triangles: tris}, nil
}
