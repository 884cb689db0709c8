package obj

import (
	"github.com/go-gl/mathgl/mgl32"

	"logdepth-renderer/internal/mathutil"
)

// Mesh holds de-indexed geometry: corner i of the triangle list is
// Positions[Indices[i]]. TexCoords and Normals are always the same length
// as Positions; corners without the attribute hold the zero value.
type Mesh struct {
	Positions    []mgl32.Vec3
	TexCoords    []mathutil.Vec2
	Normals      []mgl32.Vec3
	Indices      []uint32
	Subsets      []Subset
	Materials    []Material
	HasTexCoords bool
	HasNormals   bool
}

// TriangleCount returns the number of index triples.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Subset is a run of indices drawn with one material.
type Subset struct {
	Name   string // material name from usemtl
	Offset int    // first index
	Count  int    // number of indices
}

// Material holds the MTL properties the loader understands.
type Material struct {
	Name        string
	Ambient     mgl32.Vec3 // Ka
	Diffuse     mgl32.Vec3 // Kd
	Specular    mgl32.Vec3 // Ks
	Alpha       float32    // d or Tr
	AmbientMap  string     // map_Ka
	DiffuseMap  string     // map_Kd
	SpecularMap string     // map_Ks
	BumpMap     string     // map_Bump
}

// FindMaterial returns the material with the given name.
func (m *Mesh) FindMaterial(name string) (Material, bool) {
	for _, mat := range m.Materials {
		if mat.Name == name {
			return mat, true
		}
	}
	return Material{}, false
}

// SubsetAt returns the subset containing index position i.
func (m *Mesh) SubsetAt(i int) (Subset, bool) {
	for _, s := range m.Subsets {
		if i >= s.Offset && i < s.Offset+s.Count {
			return s, true
		}
	}
	return Subset{}, false
}
