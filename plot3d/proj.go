package plot3d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ProjPoint is one projected vertex: device coordinates, a depth value
// used only for sorting, and a flag marking whether the point survived
// clipping. Project always reports Visible; ProjectClip clears it for
// points behind the camera.
type ProjPoint struct {
	X, Y    float64
	Depth   float64
	Visible bool
}

// Project transforms a batch of 3D points through m and performs the
// perspective division. The output slice is freshly allocated on every
// call: projected geometry is ephemeral and must be recomputed whenever
// the camera matrix changes.
//
// A transformed w near zero does not panic; IEEE division yields
// infinite device coordinates and depth, and the depth sorter treats
// +Inf as maximally far.
func Project(pts []r3.Vec, m Mat4) []ProjPoint {
	out := make([]ProjPoint, len(pts))
	for i, p := range pts {
		v, w := m.MulVec(p)
		inv := 1 / w
		out[i] = ProjPoint{
			X:       v.X * inv,
			Y:       v.Y * inv,
			Depth:   v.Z * inv,
			Visible: true,
		}
	}
	return out
}

// ProjectClip is Project with a visibility test: points whose
// transformed w is not positive lie behind the camera and are marked
// invisible. Perspective division through a negative w mirrors the
// depth ordering, so the raw depth of an invisible point is
// meaningless; it is replaced with +Inf so clipped points always sort
// to the back.
func ProjectClip(pts []r3.Vec, m Mat4) []ProjPoint {
	out := make([]ProjPoint, len(pts))
	for i, p := range pts {
		v, w := m.MulVec(p)
		inv := 1 / w
		pp := ProjPoint{
			X:       v.X * inv,
			Y:       v.Y * inv,
			Depth:   v.Z * inv,
			Visible: w > 0,
		}
		if !pp.Visible {
			pp.Depth = math.Inf(1)
		}
		out[i] = pp
	}
	return out
}

// projectOne projects a single point. Used for caller-supplied sort
// z-position overrides.
func projectOne(p r3.Vec, m Mat4) ProjPoint {
	v, w := m.MulVec(p)
	inv := 1 / w
	return ProjPoint{X: v.X * inv, Y: v.Y * inv, Depth: v.Z * inv, Visible: true}
}
