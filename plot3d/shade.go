package plot3d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hammockhippie/viz"
)

// LightSource is a directional light described by spherical angles in
// degrees: azimuth measured clockwise from north, elevation up from the
// horizontal plane.
type LightSource struct {
	Azimuth   float64
	Elevation float64
}

// DefaultLight returns the conventional plot light: up and to the left
// of the viewer, low enough to give faces visible contrast.
func DefaultLight() LightSource {
	return LightSource{Azimuth: 225, Elevation: 19.4712}
}

// Direction returns the unit vector pointing toward the light.
func (l LightSource) Direction() r3.Vec {
	az := (90 - l.Azimuth) * math.Pi / 180
	alt := l.Elevation * math.Pi / 180
	return r3.Vec{
		X: math.Cos(az) * math.Cos(alt),
		Y: math.Sin(az) * math.Cos(alt),
		Z: math.Sin(alt),
	}
}

// PolygonNormal computes the unit normal of a planar polygon from two
// edge vectors sampled a third and two thirds of the way around the
// vertex cycle. Non-planar polygons yield an approximate normal with no
// error signaled; degenerate polygons (collinear or fewer than three
// vertices) yield NaN components, which Shade renders darkest.
func PolygonNormal(poly []r3.Vec) r3.Vec {
	if len(poly) < 3 {
		return r3.Vec{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	n := len(poly)
	i1, i2, i3 := 0, n/3, 2*n/3
	v1 := r3.Sub(poly[i1], poly[i2])
	v2 := r3.Sub(poly[i2], poly[i3])
	// Unit returns NaN components for the zero cross product.
	return r3.Unit(r3.Cross(v1, v2))
}

// PolygonNormals computes one unit normal per polygon.
func PolygonNormals(polys [][]r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(polys))
	for i, p := range polys {
		out[i] = PolygonNormal(p)
	}
	return out
}

// Shade scales the RGB channels of each fill color by how directly its
// polygon faces the light, leaving alpha untouched. The dot product of
// unit normal and light direction maps from [-1, 1] to a brightness
// fraction in [0.3, 1.0], so faces pointing directly away from the
// light keep 30% of their color rather than going fully black. NaN
// normals shade at fraction 0 (darkest).
//
// colors is broadcast cyclically: pass a single color to shade every
// face from the same base, or one color per normal.
func Shade(colors []viz.RGBA, normals []r3.Vec, light LightSource) []viz.RGBA {
	if len(colors) == 0 || len(normals) == 0 {
		return nil
	}
	dir := light.Direction()
	out := make([]viz.RGBA, len(normals))
	for i, n := range normals {
		s := r3.Dot(n, dir)
		var frac float64
		switch {
		case math.IsNaN(s):
			frac = 0
		case s <= -1:
			frac = 0.3
		case s >= 1:
			frac = 1
		default:
			frac = 0.3 + 0.7*(s+1)/2
		}
		out[i] = colors[i%len(colors)].Scale(frac)
	}
	return out
}
