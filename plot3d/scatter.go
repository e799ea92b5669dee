package plot3d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hammockhippie/viz"
)

// Scatter3D is a collection of point markers with per-point sizes and
// line widths. On projection the markers are depth-sorted and the size
// and width arrays are permuted alongside the offsets, because the
// marker draw primitive binds them positionally.
type Scatter3D struct {
	offsets []r3.Vec
	sizes   []float64
	widths  []float64
	style   viz.Style

	depthShade bool

	pts2d     []viz.Point
	sizes2d   []float64
	widths2d  []float64
	colors2   []viz.RGBA
	projected bool
}

// NewScatter3D creates a marker collection from parallel coordinate
// slices. Depth shading is on by default, as scatter plots usually
// want the depth cue.
func NewScatter3D(xs, ys, zs []float64, style viz.Style) (*Scatter3D, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("plot3d: coordinate lengths differ: %d, %d, %d",
			len(xs), len(ys), len(zs))
	}
	offsets := make([]r3.Vec, len(xs))
	for i := range xs {
		offsets[i] = r3.Vec{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return &Scatter3D{offsets: offsets, style: style, depthShade: true}, nil
}

// Scatter3DFromOffsets builds the collection from 2D marker offsets
// embedded at per-point positions along the d axis. zs is broadcast
// when it holds a single value.
func Scatter3DFromOffsets(pts []viz.Point, zs []float64, d ZDir, style viz.Style) *Scatter3D {
	offsets := make([]r3.Vec, len(pts))
	for i, p := range pts {
		z := 0.0
		switch {
		case len(zs) == 1:
			z = zs[0]
		case i < len(zs):
			z = zs[i]
		}
		offsets[i] = JuggleAxes(p.X, p.Y, z, d)
	}
	return &Scatter3D{offsets: offsets, style: style, depthShade: true}
}

// SetSizes sets per-marker sizes, bound positionally to the offsets.
// Pass nil for uniform markers; any other length must match the offset
// count.
func (s *Scatter3D) SetSizes(sizes []float64) error {
	if sizes != nil && len(sizes) != len(s.offsets) {
		return fmt.Errorf("plot3d: %d sizes for %d markers", len(sizes), len(s.offsets))
	}
	s.sizes = sizes
	s.projected = false
	return nil
}

// SetLineWidths sets per-marker stroke widths, bound positionally to
// the offsets. Pass nil for uniform markers; any other length must
// match the offset count.
func (s *Scatter3D) SetLineWidths(widths []float64) error {
	if widths != nil && len(widths) != len(s.offsets) {
		return fmt.Errorf("plot3d: %d line widths for %d markers", len(widths), len(s.offsets))
	}
	s.widths = widths
	s.projected = false
	return nil
}

// SetDepthShade toggles fading markers with distance.
func (s *Scatter3D) SetDepthShade(on bool) {
	s.depthShade = on
	s.projected = false
}

// Project clip-projects the offsets, orders them farthest first, and
// permutes sizes and widths with the same permutation. With depth
// shading on, marker alpha fades from the base value at the nearest
// point to 30% of it at the farthest. Returns the minimum depth, or
// emptyDepth when empty.
func (s *Scatter3D) Project(m Mat4) float64 {
	proj := ProjectClip(s.offsets, m)

	depths := make([]float64, len(proj))
	for i, p := range proj {
		depths[i] = p.Depth
	}
	order := SortOrderByKey(depths)

	s.pts2d = make([]viz.Point, len(order))
	s.sizes2d = permuteOrNil(s.sizes, order)
	s.widths2d = permuteOrNil(s.widths, order)
	s.colors2 = make([]viz.RGBA, len(order))

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range depths {
		if math.IsInf(d, 0) {
			continue // clipped points carry no useful depth
		}
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	span := hi - lo

	for i, idx := range order {
		s.pts2d[i] = viz.Point{X: proj[idx].X, Y: proj[idx].Y}
		c := s.style.Fill
		if s.depthShade && span > 0 && !math.IsInf(depths[idx], 0) {
			// Nearest keeps full alpha, farthest keeps 30%.
			t := (depths[idx] - lo) / span
			c.A *= 1 - 0.7*t
		}
		s.colors2[i] = c
	}
	s.projected = true
	return minDepth(proj)
}

// Offsets2D returns the projected marker positions in draw order, the
// permuted sizes and widths, and whether the cache is current.
func (s *Scatter3D) Offsets2D() ([]viz.Point, []float64, []float64, bool) {
	return s.pts2d, s.sizes2d, s.widths2d, s.projected
}

// Colors2D returns the per-marker colors in draw order (alpha-faded
// when depth shading is on) and whether the cache is current.
func (s *Scatter3D) Colors2D() ([]viz.RGBA, bool) {
	return s.colors2, s.projected
}

// Draw projects through m and emits the markers farthest first, with
// the depth-shaded per-marker colors.
func (s *Scatter3D) Draw(sink viz.PathSink, m Mat4) {
	s.Project(m)
	sink.DrawMarkers(s.pts2d, s.sizes2d, s.widths2d, s.colors2, s.style)
}

// permuteOrNil applies a permutation to vals, passing nil through.
// The setters guarantee non-nil vals match the offset count.
func permuteOrNil(vals []float64, order []int) []float64 {
	if vals == nil {
		return nil
	}
	out := make([]float64, len(order))
	for i, idx := range order {
		out[i] = vals[idx]
	}
	return out
}
