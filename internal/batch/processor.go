package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"logdepth-renderer/internal/bmp"
	"logdepth-renderer/internal/config"
	"logdepth-renderer/internal/preview"
	"logdepth-renderer/internal/raster"
	"logdepth-renderer/internal/scene"
)

// Config holds the settings shared by every job of a batch run.
type Config struct {
	PreviewWidth int
	Workers      int
	// Progress prints a rate line every two seconds while jobs run.
	Progress bool
}

// Result holds the outcome of rendering one job.
type Result struct {
	Name    string
	Output  string
	Preview string
	Width   int
	Height  int
	Stats   raster.Stats
	Elapsed time.Duration
	Success bool
	Error   string
}

// Run renders all jobs using a worker pool. Results are in job order; a
// failing job does not stop the others.
func Run(cfg Config, jobs []config.Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f jobs/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// LoadScene returns the scene a job describes: a YAML scene file, an OBJ
// mesh framed by its bounds, or the built-in demo scene.
func LoadScene(job config.Job) (scene.Scene, error) {
	switch {
	case job.Scene != "":
		return scene.Load(job.Scene)
	case job.OBJ != "":
		return scene.FromOBJ(job.OBJ)
	}
	return scene.Default(), nil
}

func processJob(cfg Config, job config.Job) (res Result) {
	res = Result{
		Name:    job.Name,
		Output:  job.Output,
		Preview: job.Preview,
		Width:   job.Width,
		Height:  job.Height,
	}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	policy, err := raster.ParseDomainPolicy(job.Domain)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	sc, err := LoadScene(job)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	fb, stats, err := raster.Render(sc, raster.Options{
		Width:  job.Width,
		Height: job.Height,
		Domain: policy,
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Stats = stats

	if err := os.MkdirAll(filepath.Dir(job.Output), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := bmp.WriteFile(job.Output, fb.Width, fb.Height, fb.Color); err != nil {
		res.Error = err.Error()
		return res
	}

	if job.Preview != "" {
		if err := os.MkdirAll(filepath.Dir(job.Preview), 0755); err != nil {
			res.Error = err.Error()
			return res
		}
		if err := preview.WriteFile(job.Preview, fb.Image(), cfg.PreviewWidth); err != nil {
			res.Error = fmt.Sprintf("preview: %v", err)
			return res
		}
	}

	res.Success = true
	return res
}
