package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"logdepth-renderer/internal/mathutil"
	"logdepth-renderer/internal/transform"
)

// fileScene matches the YAML schema of a scene file.
type fileScene struct {
	Camera    *fileCamera    `yaml:"camera"`
	Triangles [][3]fileVertex `yaml:"triangles"`
	Mesh      *fileMesh      `yaml:"mesh"`
}

type fileCamera struct {
	Eye        *[3]float32 `yaml:"eye"`
	Target     *[3]float32 `yaml:"target"`
	Up         *[3]float32 `yaml:"up"`
	FOVDegrees *float32    `yaml:"fov_degrees"`
	Near       *float32    `yaml:"near"`
	Far        *float32    `yaml:"far"`
}

type fileVertex struct {
	Position [3]float32 `yaml:"position"`
	TexCoord [2]float32 `yaml:"texcoord"`
	Color    *[4]float32 `yaml:"color"`
}

type fileMesh struct {
	Path      string       `yaml:"path"`
	Palette   [][4]float32 `yaml:"palette"`
	Materials bool         `yaml:"materials"`
}

var opaqueWhite = mathutil.Vec4{1, 1, 1, 1}

// Load reads a YAML scene file. Camera fields that are absent keep the
// values of DefaultCamera; vertices without a color are opaque white. A
// mesh path is resolved relative to the scene file and its triangles are
// appended after the inline ones.
func Load(path string) (Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	sc, err := Parse(raw, filepath.Dir(path))
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scene. Relative mesh paths are resolved against dir.
func Parse(raw []byte, dir string) (Scene, error) {
	var f fileScene
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Scene{}, fmt.Errorf("parse: %w", err)
	}

	sc := Scene{Camera: f.Camera.resolve()}
	for _, tv := range f.Triangles {
		var tri Triangle
		for k, v := range tv {
			tri[k] = v.vertex()
		}
		sc.Triangles = append(sc.Triangles, tri)
	}

	if f.Mesh != nil {
		tris, err := f.Mesh.load(dir)
		if err != nil {
			return Scene{}, err
		}
		sc.Triangles = append(sc.Triangles, tris...)
	}
	return sc, nil
}

func (c *fileCamera) resolve() transform.Camera {
	cam := DefaultCamera()
	if c == nil {
		return cam
	}
	if c.Eye != nil {
		cam.Eye = mgl32.Vec3(*c.Eye)
	}
	if c.Target != nil {
		cam.Target = mgl32.Vec3(*c.Target)
	}
	if c.Up != nil {
		cam.Up = mgl32.Vec3(*c.Up)
	}
	if c.FOVDegrees != nil {
		cam.FOV = mgl32.DegToRad(*c.FOVDegrees)
	}
	if c.Near != nil {
		cam.Near = *c.Near
	}
	if c.Far != nil {
		cam.Far = *c.Far
	}
	return cam
}

func (v fileVertex) vertex() Vertex {
	col := opaqueWhite
	if v.Color != nil {
		col = mathutil.Vec4(*v.Color)
	}
	return Vertex{
		Position: mgl32.Vec3(v.Position),
		TexCoord: mathutil.Vec2(v.TexCoord),
		Color:    col,
	}
}

func (m *fileMesh) load(dir string) ([]Triangle, error) {
	path := m.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	mesh, err := loadMesh(path, m.Materials)
	if err != nil {
		return nil, err
	}
	palette := []mathutil.Vec4{opaqueWhite}
	if len(m.Palette) > 0 {
		palette = palette[:0]
		for _, c := range m.Palette {
			palette = append(palette, mathutil.Vec4(c))
		}
	}
	if m.Materials {
		return FromMeshMaterials(mesh, palette)
	}
	return FromMesh(mesh, palette)
}
