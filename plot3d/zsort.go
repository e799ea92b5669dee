package plot3d

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// ZSortKind selects how a primitive's per-vertex depths collapse into
// the single key used for depth sorting.
type ZSortKind int

// Depth aggregation kinds.
const (
	// ZSortAverage keys on the mean vertex depth. The default.
	ZSortAverage ZSortKind = iota
	// ZSortMin keys on the nearest vertex.
	ZSortMin
	// ZSortMax keys on the farthest vertex.
	ZSortMax
)

// String returns a human-readable name for the kind.
func (k ZSortKind) String() string {
	switch k {
	case ZSortAverage:
		return "average"
	case ZSortMin:
		return "min"
	case ZSortMax:
		return "max"
	}
	return "Unknown"
}

// Key collapses per-vertex depths into one sort key. An empty slice
// keys as NaN, which sorts nearest (drawn last).
func (k ZSortKind) Key(depths []float64) float64 {
	if len(depths) == 0 {
		return math.NaN()
	}
	switch k {
	case ZSortMin:
		v := depths[0]
		for _, d := range depths[1:] {
			v = math.Min(v, d)
		}
		return v
	case ZSortMax:
		v := depths[0]
		for _, d := range depths[1:] {
			v = math.Max(v, d)
		}
		return v
	default:
		var s float64
		for _, d := range depths {
			s += d
		}
		return s / float64(len(depths))
	}
}

// SortOrder computes the draw order for primitives given their
// per-vertex depths: a permutation of indices from farthest (largest
// key) to nearest. Ties preserve input order.
//
// This is the painter's-algorithm heuristic: perspective projection
// admits no provably correct global order for intersecting geometry,
// so mutually overlapping polygons may still draw incorrectly.
func SortOrder(depths [][]float64, kind ZSortKind) []int {
	keys := make([]float64, len(depths))
	for i, d := range depths {
		keys[i] = kind.Key(d)
	}
	return SortOrderByKey(keys)
}

// SortOrderByKey computes the draw order from caller-supplied depth
// keys (the "sort z-position" override), farthest first, stable for
// equal keys. +Inf keys sort first (maximally far); NaN keys sort last
// (nearest).
func SortOrderByKey(keys []float64) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ka, kb := keys[a], keys[b]
		na, nb := math.IsNaN(ka), math.IsNaN(kb)
		switch {
		case na && nb:
			return 0
		case na:
			return 1
		case nb:
			return -1
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		}
		return 0
	})
	return order
}

// prismFaceNormals are the outward normals of an axis-aligned
// rectangular prism, indexed +x, -x, +y, -y, +z, -z.
var prismFaceNormals = [6]r3.Vec{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// PrismFaceOrder computes the draw order for the six faces of an
// axis-aligned rectangular prism (bar-chart style primitives) from the
// camera's spherical angles, in degrees. All faces of a box share
// nearly identical centroid depth, so generic depth sorting makes them
// pop as the camera orbits; ordering by angle from the view direction
// is stable instead.
//
// Faces are indexed +x, -x, +y, -y, +z, -z. Faces turned more than 90
// degrees away from the camera are occluded by the near faces; when
// opaque is true they are dropped from the order entirely, otherwise
// they come first (back-to-front).
func PrismFaceOrder(azim, elev float64, opaque bool) []int {
	az := azim * math.Pi / 180
	el := elev * math.Pi / 180
	view := r3.Vec{
		X: math.Cos(el) * math.Cos(az),
		Y: math.Cos(el) * math.Sin(az),
		Z: math.Sin(el),
	}

	dots := make([]float64, len(prismFaceNormals))
	for i, n := range prismFaceNormals {
		dots[i] = r3.Dot(view, n)
	}

	order := make([]int, 0, len(dots))
	for i := range dots {
		if opaque && dots[i] < 0 {
			continue
		}
		order = append(order, i)
	}
	// Most away-facing first: back-to-front for the faces that remain.
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case dots[a] < dots[b]:
			return -1
		case dots[a] > dots[b]:
			return 1
		}
		return 0
	})
	return order
}
