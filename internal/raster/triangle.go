package raster

import (
	"fmt"

	"github.com/chewxy/math32"

	"logdepth-renderer/internal/mathutil"
	"logdepth-renderer/internal/transform"
)

// DeviceVertex is a vertex after the transform pipeline. Linear is used for
// edge vectors and the inside test; Warped bounds the triangle and is the
// frame pixels are enumerated in.
type DeviceVertex struct {
	Linear   transform.Device
	Warped   transform.WarpedDevice
	Color    mathutil.Vec4
	TexCoord mathutil.Vec2
}

// DomainPolicy selects what happens to a triangle with a vertex outside
// the log warp's domain (its warped y is not finite).
type DomainPolicy int

const (
	// DomainSkip drops the triangle.
	DomainSkip DomainPolicy = iota
	// DomainClamp widens the bounding box to the whole viewport on the
	// affected axis and lets the linear inside test decide coverage.
	DomainClamp
)

// String returns the config name of the policy.
func (p DomainPolicy) String() string {
	switch p {
	case DomainSkip:
		return "skip"
	case DomainClamp:
		return "clamp"
	}
	return "unknown"
}

// ParseDomainPolicy maps "skip" and "clamp" to their policies.
func ParseDomainPolicy(s string) (DomainPolicy, error) {
	switch s {
	case "skip", "":
		return DomainSkip, nil
	case "clamp":
		return DomainClamp, nil
	}
	return DomainSkip, fmt.Errorf("raster: unknown domain policy %q", s)
}

// TriangleResult is the outcome of rasterizing one triangle.
type TriangleResult int

const (
	// Drawn means the triangle was rasterized; it may still cover no pixel.
	Drawn TriangleResult = iota
	// SkippedBox means the warped bounding box missed the viewport.
	SkippedBox
	// SkippedArea means the linear triangle has (near) zero area.
	SkippedArea
	// SkippedDomain means a vertex lies outside the warp's domain.
	SkippedDomain
)

// String returns the name used in logs.
func (r TriangleResult) String() string {
	switch r {
	case Drawn:
		return "drawn"
	case SkippedBox:
		return "skipped-box"
	case SkippedArea:
		return "skipped-area"
	case SkippedDomain:
		return "skipped-domain"
	}
	return "unknown"
}

// areaEpsilon is relative to the squared edge lengths, so the test does not
// depend on the viewport size.
const areaEpsilon = 1e-6

type fragment struct {
	color    mathutil.Vec4
	texCoord mathutil.Vec2
	depth    float32
}

// RasterizeTriangle rasterizes one triangle into fb and returns the outcome
// and the number of pixels written.
//
// Pixels are enumerated over the warped bounding box. Each pixel centre is
// taken relative to vertex 0 in warped space, unwarped into the linear
// frame, and tested against the linear edge vectors. Attributes are
// blended as v0*s + v1*t + v2*(1-s-t).
func RasterizeTriangle(fb *FrameBuffer, tri [3]DeviceVertex, warp transform.Warp, policy DomainPolicy) (TriangleResult, int) {
	w, h := float32(fb.Width), float32(fb.Height)

	for i := range tri {
		if !tri[i].Linear.XY().IsFinite() {
			return SkippedDomain, 0
		}
	}

	origin := tri[0].Warped.XY()
	if !origin.IsFinite() {
		return SkippedDomain, 0
	}
	pts := [3]mathutil.Vec2{origin, tri[1].Warped.XY(), tri[2].Warped.XY()}
	if policy == DomainSkip && !(pts[1].IsFinite() && pts[2].IsFinite()) {
		return SkippedDomain, 0
	}

	lo, hi := warpedBounds(pts, w, h)
	if lo[0] > hi[0] && lo[1] > hi[1] {
		return SkippedBox, 0
	}

	// Sample pixel centres.
	half := mathutil.Vec2{0.5, 0.5}
	triMin := lo.Floor().Add(half)
	triMax := hi.Ceil().Add(half)

	ps0 := tri[0].Linear.XY()
	e1 := tri[1].Linear.XY().Sub(ps0)
	e2 := tri[2].Linear.XY().Sub(ps0)
	div := e1.Cross(e2)
	if degenerate(e1, e2, div) {
		return SkippedArea, 0
	}

	written := 0
	var pos mathutil.Vec2
	for pos[1] = triMin[1]; pos[1] < triMax[1]; pos[1]++ {
		for pos[0] = triMin[0]; pos[0] < triMax[0]; pos[0]++ {
			p := warp.Unwarp(pos.Sub(origin), h)

			s := p.Cross(e2) / div
			t := e1.Cross(p) / div
			if !(s >= 0 && t >= 0 && s+t <= 1) {
				continue
			}

			frag := interpolate(&tri, s, t, 1-s-t)
			if !mathutil.IsFinite(frag.depth) || !frag.color.IsFinite() {
				continue
			}

			x, y := int(pos[0]), int(pos[1])
			stored, ok := fb.ReadDepth(x, y)
			if !ok || frag.depth > stored {
				continue
			}
			fb.WriteDepth(x, y, frag.depth)
			fb.WritePixel(x, y, [4]uint8{
				mathutil.Quantize(frag.color[0]),
				mathutil.Quantize(frag.color[1]),
				mathutil.Quantize(frag.color[2]),
				mathutil.Quantize(frag.color[3]),
			})
			written++
		}
	}
	return Drawn, written
}

// warpedBounds returns the componentwise extent of pts clipped to
// [0,w]×[0,h]. An axis with a non-finite component spans the viewport.
func warpedBounds(pts [3]mathutil.Vec2, w, h float32) (lo, hi mathutil.Vec2) {
	lo = mathutil.Vec2{math32.Inf(1), math32.Inf(1)}
	hi = mathutil.Vec2{math32.Inf(-1), math32.Inf(-1)}
	var full [2]bool
	for _, p := range pts {
		for k := 0; k < 2; k++ {
			if !mathutil.IsFinite(p[k]) {
				full[k] = true
				continue
			}
			lo[k] = math32.Min(lo[k], p[k])
			hi[k] = math32.Max(hi[k], p[k])
		}
	}
	extent := mathutil.Vec2{w, h}
	for k := 0; k < 2; k++ {
		if full[k] {
			lo[k], hi[k] = 0, extent[k]
		}
	}
	return lo.Max(mathutil.Vec2{}), hi.Min(extent)
}

func degenerate(e1, e2 mathutil.Vec2, div float32) bool {
	if !mathutil.IsFinite(div) {
		return true
	}
	scale := e1[0]*e1[0] + e1[1]*e1[1] + e2[0]*e2[0] + e2[1]*e2[1]
	return math32.Abs(div) <= areaEpsilon*scale
}

func interpolate(tri *[3]DeviceVertex, s, t, u float32) fragment {
	v0, v1, v2 := &tri[0], &tri[1], &tri[2]
	z := v0.Warped[2]*s + v1.Warped[2]*t + v2.Warped[2]*u
	w := v0.Warped[3]*s + v1.Warped[3]*t + v2.Warped[3]*u
	return fragment{
		color:    mathutil.Blend(v0.Color, v1.Color, v2.Color, s, t, u),
		texCoord: mathutil.Blend2(v0.TexCoord, v1.TexCoord, v2.TexCoord, s, t, u),
		depth:    z / w,
	}
}
