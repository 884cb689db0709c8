package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"logdepth-renderer/internal/raster"
)

// Config holds the render jobs and shared render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Domain       string `json:"domain"`
	PreviewWidth int    `json:"preview_width"`
	Workers      int    `json:"workers"`

	Jobs []Job `json:"jobs"`
}

// Job is one image to render. Empty Scene and OBJ render the built-in
// demo scene; Width, Height and Domain fall back to the Config values.
type Job struct {
	Name    string `json:"name"`
	Scene   string `json:"scene"`
	OBJ     string `json:"obj"`
	Output  string `json:"output"`
	Preview string `json:"preview"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Domain  string `json:"domain"`
}

// Domain policy names accepted in config files and flags.
const (
	DomainSkip  = "skip"
	DomainClamp = "clamp"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 540
	DefaultOutput = "color.bmp"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene   string
	OBJ     string
	Output  string
	Preview string
	Width   int
	Height  int
	Domain  string
	Workers int
}

// Resolve applies flag overrides and fills every unset field with its
// default. A config without jobs gets a single job built from the flags.
// A relative OutputDir and relative job inputs are resolved against
// BaseDir; job outputs and previews are resolved against OutputDir.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Domain != "" {
		c.Domain = flags.Domain
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Domain == "" {
		c.Domain = DomainSkip
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	// Resolve relative output dir against base dir
	c.OutputDir = c.path(c.OutputDir, c.BaseDir)

	if len(c.Jobs) == 0 {
		c.Jobs = []Job{{
			Scene:   flags.Scene,
			OBJ:     flags.OBJ,
			Output:  flags.Output,
			Preview: flags.Preview,
		}}
	} else if flags.Output != "" && len(c.Jobs) == 1 {
		c.Jobs[0].Output = flags.Output
	}

	for i := range c.Jobs {
		c.resolveJob(i)
	}
}

func (c *Config) resolveJob(i int) {
	j := &c.Jobs[i]
	if j.Width <= 0 {
		j.Width = c.Width
	}
	if j.Height <= 0 {
		j.Height = c.Height
	}
	if j.Domain == "" {
		j.Domain = c.Domain
	}
	if j.Output == "" {
		if len(c.Jobs) == 1 {
			j.Output = DefaultOutput
		} else {
			j.Output = fmt.Sprintf("job%d.bmp", i)
		}
	}
	if j.Name == "" {
		j.Name = strings.TrimSuffix(filepath.Base(j.Output), filepath.Ext(j.Output))
	}

	j.Scene = c.path(j.Scene, c.BaseDir)
	j.OBJ = c.path(j.OBJ, c.BaseDir)
	j.Output = c.path(j.Output, c.OutputDir)
	j.Preview = c.path(j.Preview, c.OutputDir)
}

func (c *Config) path(p, base string) string {
	if p == "" || filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	for _, j := range c.Jobs {
		if _, err := raster.ParseDomainPolicy(j.Domain); err != nil {
			return fmt.Errorf("config: job %s: %w", j.Name, err)
		}
		if j.Scene != "" && j.OBJ != "" {
			return fmt.Errorf("config: job %s: scene and obj are mutually exclusive", j.Name)
		}
	}
	return nil
}
