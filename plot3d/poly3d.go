package plot3d

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hammockhippie/viz"
)

// Poly3DCollection is a set of filled 3D polygons drawn back-to-front.
//
// The collection keeps two views of its colors: the 3D source values
// set by the caller, and the 2D values reordered by the last depth
// sort. Setters touch only the source values and mark the 2D cache
// dirty; Project rebuilds the 2D view in draw order.
type Poly3DCollection struct {
	verts [][]r3.Vec

	zsort       ZSortKind
	sortZPos    float64
	hasSortZPos bool

	faceColors3 []viz.RGBA
	edgeColors3 []viz.RGBA
	lineWidth   float64

	verts2d     [][]viz.Point
	faceColors2 []viz.RGBA
	edgeColors2 []viz.RGBA
	projected   bool
}

// NewPoly3DCollection creates a collection of filled polygons. Each
// polygon is a closed vertex cycle of three or more points.
func NewPoly3DCollection(verts [][]r3.Vec) *Poly3DCollection {
	return &Poly3DCollection{verts: verts, zsort: ZSortAverage, lineWidth: 1}
}

// Poly3DCollectionFromPolygons builds the collection from 2D polygons
// embedded at per-polygon positions along the d axis. zs is broadcast
// when it holds a single value.
func Poly3DCollectionFromPolygons(polys [][]viz.Point, zs []float64, d ZDir) *Poly3DCollection {
	verts := make([][]r3.Vec, len(polys))
	for i, p := range polys {
		z := 0.0
		switch {
		case len(zs) == 1:
			z = zs[0]
		case i < len(zs):
			z = zs[i]
		}
		verts[i] = EmbedPoints(p, z, d)
	}
	return NewPoly3DCollection(verts)
}

// SetZSort selects the depth aggregation used to order faces.
func (c *Poly3DCollection) SetZSort(kind ZSortKind) {
	c.zsort = kind
	c.projected = false
}

// SetSortZPos overrides the collection's depth marker with an explicit
// z position, projected through the camera matrix on each draw. Face
// ordering within the collection still follows the z-sort kind.
func (c *Poly3DCollection) SetSortZPos(z float64) {
	c.sortZPos = z
	c.hasSortZPos = true
	c.projected = false
}

// ClearSortZPos restores the default minimum-depth marker.
func (c *Poly3DCollection) ClearSortZPos() {
	c.hasSortZPos = false
	c.projected = false
}

// SetFaceColors sets the 3D fill colors, one per polygon or a single
// color for all.
func (c *Poly3DCollection) SetFaceColors(colors []viz.RGBA) {
	c.faceColors3 = colors
	c.projected = false
}

// SetEdgeColors sets the 3D edge colors. An empty list falls back to
// the face colors at draw time.
func (c *Poly3DCollection) SetEdgeColors(colors []viz.RGBA) {
	c.edgeColors3 = colors
	c.projected = false
}

// SetLineWidth sets the edge stroke width.
func (c *Poly3DCollection) SetLineWidth(w float64) { c.lineWidth = w }

// ShadeFaces replaces the face colors with light-shaded ones computed
// from each polygon's normal. Call after SetFaceColors; shading is a
// one-shot transformation of the source colors, not a draw-time effect.
func (c *Poly3DCollection) ShadeFaces(light LightSource) {
	base := c.faceColors3
	if len(base) == 0 {
		base = []viz.RGBA{{A: 1}}
	}
	c.faceColors3 = Shade(base, PolygonNormals(c.verts), light)
	c.projected = false
}

// Project recomputes the projected polygons in back-to-front draw
// order, reorders face and edge colors with the same permutation, and
// returns the depth marker (projected sort z-position when set,
// otherwise the minimum vertex depth, or emptyDepth when empty).
func (c *Poly3DCollection) Project(m Mat4) float64 {
	flat, sizes := flattenGroups(c.verts)
	proj := Project(flat, m)
	pts2d, depths := splitProjected(proj, sizes)

	order := SortOrder(depths, c.zsort)

	c.verts2d = make([][]viz.Point, len(order))
	for i, idx := range order {
		c.verts2d[i] = pts2d[idx]
	}

	cface := broadcastColors(c.faceColors3, len(order))
	cedge := c.edgeColors3
	if len(cedge) == 0 {
		cedge = c.faceColors3
	}
	c.faceColors2 = permuteColors(cface, order)
	c.edgeColors2 = permuteColors(broadcastColors(cedge, len(order)), order)
	c.projected = true

	if c.hasSortZPos {
		return projectOne(r3.Vec{Z: c.sortZPos}, m).Depth
	}
	return minDepth(proj)
}

// Polygons2D returns the projected polygons in draw order and whether
// the cache is current.
func (c *Poly3DCollection) Polygons2D() ([][]viz.Point, bool) {
	return c.verts2d, c.projected
}

// FaceColors2D returns the face colors in draw order and whether the
// cache is current.
func (c *Poly3DCollection) FaceColors2D() ([]viz.RGBA, bool) {
	return c.faceColors2, c.projected
}

// EdgeColors2D returns the edge colors in draw order and whether the
// cache is current.
func (c *Poly3DCollection) EdgeColors2D() ([]viz.RGBA, bool) {
	return c.edgeColors2, c.projected
}

// Draw projects through m and fills then strokes each polygon in
// back-to-front order.
func (c *Poly3DCollection) Draw(sink viz.PathSink, m Mat4) {
	c.Project(m)
	for i, poly := range c.verts2d {
		s := viz.Style{
			LineWidth: c.lineWidth,
			Fill:      c.faceColors2[i],
			Stroke:    c.edgeColors2[i],
		}
		sink.FillPath(poly, s)
		sink.StrokePath(poly, s)
	}
}
