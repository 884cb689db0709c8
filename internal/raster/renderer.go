package raster

import (
	"logdepth-renderer/internal/scene"
	"logdepth-renderer/internal/transform"
)

// Options controls one render.
type Options struct {
	Width  int
	Height int
	Domain DomainPolicy
}

// Stats counts triangle outcomes and written pixels for one render.
type Stats struct {
	Triangles     int
	Drawn         int
	SkippedBox    int
	SkippedArea   int
	SkippedDomain int
	Pixels        int
}

func (s *Stats) add(r TriangleResult, written int) {
	s.Triangles++
	s.Pixels += written
	switch r {
	case Drawn:
		s.Drawn++
	case SkippedBox:
		s.SkippedBox++
	case SkippedArea:
		s.SkippedArea++
	case SkippedDomain:
		s.SkippedDomain++
	}
}

// Render allocates a framebuffer, clears it and rasterizes every triangle of
// sc in order. The returned framebuffer is owned by the caller.
func Render(sc scene.Scene, opts Options) (*FrameBuffer, Stats, error) {
	pl, err := transform.NewPipeline(sc.Camera, opts.Width, opts.Height)
	if err != nil {
		return nil, Stats{}, err
	}
	fb, err := NewFrameBuffer(opts.Width, opts.Height)
	if err != nil {
		return nil, Stats{}, err
	}

	stats := DrawTriangles(fb, pl, sc.Triangles, opts.Domain)

	Logger().Info("render complete",
		"width", opts.Width,
		"height", opts.Height,
		"triangles", stats.Triangles,
		"drawn", stats.Drawn,
		"pixels", stats.Pixels)
	return fb, stats, nil
}

// DrawTriangles projects and rasterizes tris into fb, strictly in order.
// fb is not cleared.
func DrawTriangles(fb *FrameBuffer, pl *transform.Pipeline, tris []scene.Triangle, policy DomainPolicy) Stats {
	var stats Stats
	for i := range tris {
		r, n := RasterizeTriangle(fb, Project(pl, &tris[i]), pl.Warp, policy)
		stats.add(r, n)
		if r != Drawn {
			Logger().Debug("triangle skipped", "index", i, "reason", r.String())
		}
	}
	return stats
}

// Project carries the three vertices of tri through the pipeline.
func Project(pl *transform.Pipeline, tri *scene.Triangle) [3]DeviceVertex {
	var dv [3]DeviceVertex
	for k := range tri {
		v := &tri[k]
		lin, warped := pl.Project(transform.World(v.Position))
		dv[k] = DeviceVertex{
			Linear:   lin,
			Warped:   warped,
			Color:    v.Color,
			TexCoord: v.TexCoord,
		}
	}
	return dv
}
