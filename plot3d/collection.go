package plot3d

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hammockhippie/viz"
)

// emptyDepth is the depth marker reported by collections with no
// geometry: far enough that they never obscure real content.
const emptyDepth = 1e9

// Collection is a stateful 3D artist container. It holds the original
// 3D geometry plus the most recently projected 2D geometry, and
// re-projects on every draw.
//
// The projection matrix is read-only shared state owned by the host
// axes; implementations must not mutate it and must not retain it past
// the call, because the camera may move before the next draw.
type Collection interface {
	// Project recomputes the 2D cache through m and returns the
	// collection's depth marker for inter-collection ordering.
	Project(m Mat4) float64

	// Draw projects unconditionally and emits the projected geometry
	// to the sink in draw order.
	Draw(sink viz.PathSink, m Mat4)
}

// flattenGroups packs grouped vertices into one batch for projection
// and records the group sizes for splitting the result.
func flattenGroups(groups [][]r3.Vec) ([]r3.Vec, []int) {
	var n int
	sizes := make([]int, len(groups))
	for i, g := range groups {
		sizes[i] = len(g)
		n += len(g)
	}
	flat := make([]r3.Vec, 0, n)
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat, sizes
}

// splitProjected undoes flattenGroups on a projected batch, returning
// per-group 2D points and per-group depth lists.
func splitProjected(pts []ProjPoint, sizes []int) ([][]viz.Point, [][]float64) {
	pts2d := make([][]viz.Point, len(sizes))
	depths := make([][]float64, len(sizes))
	off := 0
	for i, n := range sizes {
		group := pts[off : off+n]
		p2 := make([]viz.Point, n)
		dz := make([]float64, n)
		for j, p := range group {
			p2[j] = viz.Point{X: p.X, Y: p.Y}
			dz[j] = p.Depth
		}
		pts2d[i] = p2
		depths[i] = dz
		off += n
	}
	return pts2d, depths
}

// minDepth returns the smallest depth in a projected batch, or
// emptyDepth for an empty batch.
func minDepth(pts []ProjPoint) float64 {
	if len(pts) == 0 {
		return emptyDepth
	}
	v := pts[0].Depth
	for _, p := range pts[1:] {
		if p.Depth < v {
			v = p.Depth
		}
	}
	return v
}

// broadcastColors stretches a color list to n entries. An empty list
// yields n transparent entries; a short list repeats cyclically.
func broadcastColors(colors []viz.RGBA, n int) []viz.RGBA {
	out := make([]viz.RGBA, n)
	if len(colors) == 0 {
		return out
	}
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}

// permuteColors applies a draw-order permutation to a broadcast color
// list.
func permuteColors(colors []viz.RGBA, order []int) []viz.RGBA {
	out := make([]viz.RGBA, len(order))
	for i, idx := range order {
		out[i] = colors[idx]
	}
	return out
}
