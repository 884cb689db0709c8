// Package obj loads Wavefront OBJ meshes and MTL material libraries.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"logdepth-renderer/internal/mathutil"
)

// Options controls Load.
type Options struct {
	// Materials loads the libraries named by mtllib, resolved relative to
	// the OBJ file. Off by default.
	Materials bool
}

// ErrMaterialLibrary marks a failure to load an mtllib file. Load still
// returns the mesh in that case, with the materials that did load.
var ErrMaterialLibrary = errors.New("material library")

// Load reads an OBJ file.
func Load(path string, opts Options) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	defer f.Close()

	mesh, libs, err := parse(f, path)
	if err != nil {
		return nil, err
	}

	if opts.Materials {
		var libErrs []error
		dir := filepath.Dir(path)
		for _, lib := range libs {
			if !filepath.IsAbs(lib) {
				lib = filepath.Join(dir, lib)
			}
			mats, err := LoadMTL(lib)
			if err != nil {
				libErrs = append(libErrs, err)
				continue
			}
			mesh.Materials = append(mesh.Materials, mats...)
		}
		if len(libErrs) > 0 {
			return mesh, fmt.Errorf("%w: %w", ErrMaterialLibrary, errors.Join(libErrs...))
		}
	}
	return mesh, nil
}

// Parse reads OBJ text from r. name is used in error messages. Material
// libraries are not loaded.
func Parse(r io.Reader, name string) (*Mesh, error) {
	mesh, _, err := parse(r, name)
	return mesh, err
}

// corner is one face vertex; -1 marks a missing attribute.
type corner struct {
	p, t, n int
}

type parser struct {
	name      string
	line      int
	positions []mgl32.Vec3
	texcoords []mathutil.Vec2
	normals   []mgl32.Vec3
	mesh      *Mesh
	libs      []string
}

func parse(r io.Reader, name string) (*Mesh, []string, error) {
	p := &parser{name: name, mesh: &Mesh{}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := p.statement(fields[0], fields[1:]); err != nil {
			return nil, nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("obj: read %s: %w", name, err)
	}

	p.closeSubsets()
	return p.mesh, p.libs, nil
}

func (p *parser) errorf(err error, format string, args ...any) error {
	return &ParseError{Path: p.name, Line: p.line, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (p *parser) statement(keyword string, args []string) error {
	switch keyword {
	case "v":
		v, err := p.floats(keyword, args, 3)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := p.floats(keyword, args, 2)
		if err != nil {
			return err
		}
		p.texcoords = append(p.texcoords, mathutil.Vec2{v[0], v[1]})
	case "vn":
		v, err := p.floats(keyword, args, 3)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "f":
		return p.face(args)
	case "mtllib":
		p.libs = append(p.libs, args...)
	case "usemtl":
		if len(args) == 0 {
			return p.errorf(nil, "usemtl without a name")
		}
		p.mesh.Subsets = append(p.mesh.Subsets, Subset{
			Name:   args[0],
			Offset: len(p.mesh.Indices),
		})
	}
	// Other statements (o, g, s, ...) do not affect the triangle stream.
	return nil
}

func (p *parser) floats(keyword string, args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, p.errorf(nil, "%s needs %d values, got %d", keyword, n, len(args))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, p.errorf(err, "%s value %q", keyword, args[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}

// face triangulates a polygon as (0,1,2) followed by (i-1,i,0) for every
// further corner, so a quad becomes (0,1,2),(2,3,0).
func (p *parser) face(args []string) error {
	if len(args) < 3 {
		return p.errorf(nil, "face needs at least 3 corners, got %d", len(args))
	}
	corners := make([]corner, len(args))
	for i, a := range args {
		c, err := p.corner(a)
		if err != nil {
			return err
		}
		corners[i] = c
	}

	p.emit(corners[0], corners[1], corners[2])
	for i := 3; i < len(corners); i++ {
		p.emit(corners[i-1], corners[i], corners[0])
	}
	return nil
}

func (p *parser) corner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return corner{}, p.errorf(nil, "face corner %q", s)
	}
	c := corner{p: -1, t: -1, n: -1}

	var err error
	if c.p, err = p.resolve(parts[0], len(p.positions), "position"); err != nil {
		return corner{}, err
	}
	if c.p < 0 {
		return corner{}, p.errorf(nil, "face corner %q has no position", s)
	}
	if len(parts) > 1 {
		if c.t, err = p.resolve(parts[1], len(p.texcoords), "texcoord"); err != nil {
			return corner{}, err
		}
	}
	if len(parts) > 2 {
		if c.n, err = p.resolve(parts[2], len(p.normals), "normal"); err != nil {
			return corner{}, err
		}
	}
	return c, nil
}

// resolve turns a 1-based (or negative, relative) index into a 0-based one
// and checks it against n. An empty field yields -1.
func (p *parser) resolve(field string, n int, what string) (int, error) {
	if field == "" {
		return -1, nil
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, p.errorf(err, "%s index %q", what, field)
	}
	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += n
	default:
		return 0, p.errorf(nil, "%s index 0 is invalid", what)
	}
	if idx < 0 || idx >= n {
		return 0, p.errorf(nil, "%s index %s out of range (have %d)", what, field, n)
	}
	return idx, nil
}

func (p *parser) emit(cs ...corner) {
	m := p.mesh
	for _, c := range cs {
		m.Indices = append(m.Indices, uint32(len(m.Positions)))
		m.Positions = append(m.Positions, p.positions[c.p])

		var uv mathutil.Vec2
		if c.t >= 0 {
			uv = p.texcoords[c.t]
			m.HasTexCoords = true
		}
		m.TexCoords = append(m.TexCoords, uv)

		var n mgl32.Vec3
		if c.n >= 0 {
			n = p.normals[c.n]
			m.HasNormals = true
		}
		m.Normals = append(m.Normals, n)
	}
}

// closeSubsets fills in Count: each subset runs up to the next one, the
// last to the end of the index list.
func (p *parser) closeSubsets() {
	subs := p.mesh.Subsets
	for i := range subs {
		end := len(p.mesh.Indices)
		if i+1 < len(subs) {
			end = subs[i+1].Offset
		}
		subs[i].Count = end - subs[i].Offset
	}
}
