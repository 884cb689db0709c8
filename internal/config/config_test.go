package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, DomainSkip, cfg.Domain)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Len(t, cfg.Jobs, 1)
	assert.Equal(t, Job{
		Name:   "color",
		Output: "color.bmp",
		Width:  960,
		Height: 540,
		Domain: DomainSkip,
	}, cfg.Jobs[0])
	assert.NoError(t, cfg.Validate())
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Width: 100, Height: 50, Domain: DomainSkip, Workers: 2}
	cfg.Resolve(Flags{
		OBJ:     "mesh.obj",
		Output:  "out/mesh.bmp",
		Preview: "out/mesh.webp",
		Width:   320,
		Domain:  DomainClamp,
		Workers: 4,
	})

	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
	assert.Equal(t, 4, cfg.Workers)
	require.Len(t, cfg.Jobs, 1)
	j := cfg.Jobs[0]
	assert.Equal(t, "mesh", j.Name)
	assert.Equal(t, "mesh.obj", j.OBJ)
	assert.Equal(t, "out/mesh.webp", j.Preview)
	assert.Equal(t, DomainClamp, j.Domain)
	assert.Equal(t, 320, j.Width)
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"output_dir": "renders",
		"width": 64,
		"jobs": [
			{"name": "demo"},
			{"scene": "scenes/a.yaml", "height": 32, "domain": "clamp", "preview": "a.png"}
		]
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.BaseDir)

	cfg.Resolve(Flags{})
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Jobs, 2)

	assert.Equal(t, "demo", cfg.Jobs[0].Name)
	assert.Equal(t, filepath.Join(dir, "renders"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(dir, "renders", "job0.bmp"), cfg.Jobs[0].Output)
	assert.Equal(t, 64, cfg.Jobs[0].Width)
	assert.Equal(t, DefaultHeight, cfg.Jobs[0].Height)

	b := cfg.Jobs[1]
	assert.Equal(t, "job1", b.Name)
	assert.Equal(t, filepath.Join(dir, "scenes", "a.yaml"), b.Scene)
	assert.Equal(t, filepath.Join(dir, "renders", "a.png"), b.Preview)
	assert.Equal(t, 32, b.Height)
	assert.Equal(t, DomainClamp, b.Domain)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Jobs: []Job{{Domain: "wrap"}}}
	cfg.Resolve(Flags{})
	assert.Error(t, cfg.Validate())

	cfg = Config{Jobs: []Job{{Scene: "a.yaml", OBJ: "a.obj"}}}
	cfg.Resolve(Flags{})
	assert.Error(t, cfg.Validate())
}

func TestResolveKeepsAbsoluteOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "abs")
	cfg := Config{BaseDir: "base", OutputDir: out}
	cfg.Resolve(Flags{})
	assert.Equal(t, out, cfg.OutputDir)
	assert.Equal(t, filepath.Join(out, DefaultOutput), cfg.Jobs[0].Output)
}
