package plot3d

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hammockhippie/viz"
)

// Line3D is a single 3D polyline.
type Line3D struct {
	verts []r3.Vec
	style viz.Style

	pts2d     []viz.Point
	projected bool
}

// NewLine3D creates a polyline from parallel coordinate slices.
func NewLine3D(xs, ys, zs []float64, style viz.Style) (*Line3D, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("plot3d: coordinate lengths differ: %d, %d, %d",
			len(xs), len(ys), len(zs))
	}
	verts := make([]r3.Vec, len(xs))
	for i := range xs {
		verts[i] = r3.Vec{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return &Line3D{verts: verts, style: style}, nil
}

// Line3DFromPoints builds a 3D polyline from a 2D one, embedded at
// position z along the d axis. This is the adapter for host 2D line
// artists; the 2D artist itself is left untouched.
func Line3DFromPoints(pts []viz.Point, z float64, d ZDir, style viz.Style) *Line3D {
	return &Line3D{verts: EmbedPoints(pts, z, d), style: style}
}

// SetStyle replaces the line style and invalidates nothing: style does
// not affect projection.
func (l *Line3D) SetStyle(s viz.Style) { l.style = s }

// Style returns the current line style.
func (l *Line3D) Style() viz.Style { return l.style }

// SetVerts replaces the 3D geometry and invalidates the 2D cache.
func (l *Line3D) SetVerts(verts []r3.Vec) {
	l.verts = verts
	l.projected = false
}

// Project recomputes the 2D polyline and returns the minimum projected
// depth, or emptyDepth for an empty line.
func (l *Line3D) Project(m Mat4) float64 {
	proj := Project(l.verts, m)
	l.pts2d = make([]viz.Point, len(proj))
	for i, p := range proj {
		l.pts2d[i] = viz.Point{X: p.X, Y: p.Y}
	}
	l.projected = true
	return minDepth(proj)
}

// Points2D returns the projected polyline. The second result reports
// whether a projection has run since the geometry last changed.
func (l *Line3D) Points2D() ([]viz.Point, bool) { return l.pts2d, l.projected }

// Draw projects through m and strokes the polyline.
func (l *Line3D) Draw(sink viz.PathSink, m Mat4) {
	l.Project(m)
	sink.StrokePath(l.pts2d, l.style)
}

// Line3DCollection is a set of 3D polylines sharing one style.
type Line3DCollection struct {
	segs  [][]r3.Vec
	style viz.Style

	sortZPos    float64
	hasSortZPos bool

	segs2d    [][]viz.Point
	projected bool
}

// NewLine3DCollection creates a collection from 3D segments.
func NewLine3DCollection(segs [][]r3.Vec, style viz.Style) *Line3DCollection {
	return &Line3DCollection{segs: segs, style: style}
}

// Line3DCollectionFromSegments builds the collection from 2D polylines
// embedded at z along the d axis.
func Line3DCollectionFromSegments(segs [][]viz.Point, z float64, d ZDir, style viz.Style) *Line3DCollection {
	segs3d := make([][]r3.Vec, len(segs))
	for i, s := range segs {
		segs3d[i] = EmbedPoints(s, z, d)
	}
	return &Line3DCollection{segs: segs3d, style: style}
}

// SetSegments replaces the 3D geometry and invalidates the 2D cache.
func (c *Line3DCollection) SetSegments(segs [][]r3.Vec) {
	c.segs = segs
	c.projected = false
}

// SetSortZPos overrides the depth marker with an explicit z position.
// The position is projected through the current matrix on each draw.
func (c *Line3DCollection) SetSortZPos(z float64) {
	c.sortZPos = z
	c.hasSortZPos = true
	c.projected = false
}

// ClearSortZPos restores the default minimum-depth marker.
func (c *Line3DCollection) ClearSortZPos() {
	c.hasSortZPos = false
	c.projected = false
}

// Project recomputes all 2D segments and returns the depth marker: the
// projected sort z-position if set, otherwise the minimum depth over
// every vertex, or emptyDepth when the collection is empty.
func (c *Line3DCollection) Project(m Mat4) float64 {
	flat, sizes := flattenGroups(c.segs)
	proj := Project(flat, m)
	c.segs2d, _ = splitProjected(proj, sizes)
	c.projected = true

	if c.hasSortZPos {
		return projectOne(r3.Vec{Z: c.sortZPos}, m).Depth
	}
	return minDepth(proj)
}

// Segments2D returns the projected polylines and whether the cache is
// current.
func (c *Line3DCollection) Segments2D() ([][]viz.Point, bool) {
	return c.segs2d, c.projected
}

// Draw projects through m and strokes every segment.
func (c *Line3DCollection) Draw(sink viz.PathSink, m Mat4) {
	c.Project(m)
	for _, seg := range c.segs2d {
		sink.StrokePath(seg, c.style)
	}
}
