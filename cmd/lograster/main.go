package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"logdepth-renderer/internal/batch"
	"logdepth-renderer/internal/config"
	"logdepth-renderer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Render a YAML scene file")
	objFile := flag.String("obj", "", "Render a Wavefront OBJ mesh")
	output := flag.String("output", "", "Output bitmap (default: color.bmp)")
	previewFile := flag.String("preview", "", "Also write an upright .webp, .tga or .png preview")
	width := flag.Int("width", 0, "Image width (default: 960)")
	height := flag.Int("height", 0, "Image height (default: 540)")
	domain := flag.String("domain", "", "Triangles outside the warp domain: skip or clamp (default: skip)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Log per-triangle skips")

	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:   *sceneFile,
		OBJ:     *objFile,
		Output:  *output,
		Preview: *previewFile,
		Width:   *width,
		Height:  *height,
		Domain:  *domain,
		Workers: *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Log-depth rasterizer → BMP\n")
	fmt.Printf("Jobs: %d, Workers: %d\n", len(cfg.Jobs), cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		PreviewWidth: cfg.PreviewWidth,
		Workers:      cfg.Workers,
		Progress:     len(cfg.Jobs) > 1,
	}, cfg.Jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Printf("  %s: FAILED: %s\n", r.Name, r.Error)
			continue
		}
		fmt.Printf("  %s: %s %dx%d, %d/%d triangles drawn, %d pixels\n",
			r.Name, r.Output, r.Width, r.Height, r.Stats.Drawn, r.Stats.Triangles, r.Stats.Pixels)
		if r.Preview != "" {
			fmt.Printf("    preview: %s\n", r.Preview)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	// Manifest only for configured batches
	if *configFile != "" {
		dir := cfg.OutputDir
		if dir == "" {
			dir = "."
		}
		manifestPath := filepath.Join(dir, "manifest.json")
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
