package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadMTL reads a material library file.
func LoadMTL(path string) ([]Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	defer f.Close()
	return ParseMTL(f, path)
}

// ParseMTL reads material definitions from r. Statements before the first
// newmtl are ignored.
func ParseMTL(r io.Reader, name string) ([]Material, error) {
	var (
		mats []Material
		cur  *Material
		line int
	)
	fail := func(err error, format string, args ...any) error {
		return &ParseError{Path: name, Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
	}
	vec3 := func(key string, args []string) (mgl32.Vec3, error) {
		var v mgl32.Vec3
		if len(args) < 3 {
			return v, fail(nil, "%s needs 3 values, got %d", key, len(args))
		}
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(args[i], 32)
			if err != nil {
				return v, fail(err, "%s value %q", key, args[i])
			}
			v[i] = float32(f)
		}
		return v, nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		key, args := fields[0], fields[1:]

		if key == "newmtl" {
			if len(args) == 0 {
				return nil, fail(nil, "newmtl without a name")
			}
			mats = append(mats, Material{Name: args[0], Alpha: 1})
			cur = &mats[len(mats)-1]
			continue
		}
		if cur == nil {
			continue
		}

		var err error
		switch key {
		case "Ka":
			cur.Ambient, err = vec3(key, args)
		case "Kd":
			cur.Diffuse, err = vec3(key, args)
		case "Ks":
			cur.Specular, err = vec3(key, args)
		case "d", "Tr":
			if len(args) == 0 {
				return nil, fail(nil, "%s without a value", key)
			}
			var f float64
			f, err = strconv.ParseFloat(args[0], 32)
			if err != nil {
				return nil, fail(err, "%s value %q", key, args[0])
			}
			cur.Alpha = float32(f)
		case "map_Ka":
			cur.AmbientMap = lastArg(args)
		case "map_Kd":
			cur.DiffuseMap = lastArg(args)
		case "map_Ks":
			cur.SpecularMap = lastArg(args)
		case "map_Bump", "bump":
			cur.BumpMap = lastArg(args)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", name, err)
	}
	return mats, nil
}

// lastArg returns the file name of a map statement; options such as
// "-bm 0.5" precede it.
func lastArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[len(args)-1]
}
