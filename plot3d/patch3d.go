package plot3d

import (
	"github.com/hammockhippie/viz"

	"gonum.org/v1/gonum/spatial/r3"
)

// Patch3D is a single filled polygon embedded in 3D. Unlike the
// polygon collection it is clip-projected, so vertices behind the
// camera are flagged rather than producing mirrored geometry.
type Patch3D struct {
	verts []r3.Vec
	style viz.Style

	path2d    []viz.Point
	visible   []bool
	projected bool
}

// NewPatch3D builds a 3D patch from a 2D polygon outline embedded at
// position z along the d axis. This replaces host-side 2D patch
// artists; their vertex outline is copied, never aliased.
func NewPatch3D(pts []viz.Point, z float64, d ZDir, style viz.Style) *Patch3D {
	return &Patch3D{verts: EmbedPoints(pts, z, d), style: style}
}

// SetStyle replaces the patch style.
func (p *Patch3D) SetStyle(s viz.Style) { p.style = s }

// Style returns the current patch style.
func (p *Patch3D) Style() viz.Style { return p.style }

// Project recomputes the 2D outline with clipping and returns the
// minimum projected depth, or emptyDepth for an empty patch.
func (p *Patch3D) Project(m Mat4) float64 {
	proj := ProjectClip(p.verts, m)
	p.path2d = make([]viz.Point, len(proj))
	p.visible = make([]bool, len(proj))
	for i, pt := range proj {
		p.path2d[i] = viz.Point{X: pt.X, Y: pt.Y}
		p.visible[i] = pt.Visible
	}
	p.projected = true
	return minDepth(proj)
}

// Path2D returns the projected outline, the per-vertex visibility
// flags, and whether the cache is current.
func (p *Patch3D) Path2D() ([]viz.Point, []bool, bool) {
	return p.path2d, p.visible, p.projected
}

// Draw projects through m and fills then strokes the outline.
func (p *Patch3D) Draw(sink viz.PathSink, m Mat4) {
	p.Project(m)
	sink.FillPath(p.path2d, p.style)
	sink.StrokePath(p.path2d, p.style)
}
