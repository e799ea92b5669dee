package plot3d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mat4 is a 4x4 homogeneous transformation matrix in row-major order.
// It operates on (x, y, z, 1) column vectors and supports perspective
// division through the fourth row.
//
// The depth convention throughout plot3d: after perspective division,
// larger z means farther from the camera.
type Mat4 [4][4]float64

// Identity returns the identity transformation matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[i][k] * other[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// MulVec applies the transform to the homogeneous point (v, 1) and
// returns the transformed coordinates before perspective division,
// together with the resulting w component.
func (m Mat4) MulVec(v r3.Vec) (r3.Vec, float64) {
	return r3.Vec{
			X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
			Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
			Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
		},
		m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]
}

// WorldTransform maps the axis-aligned data box to the unit cube.
// Host axes compose it with a view and projection matrix so that plot
// geometry in arbitrary data ranges projects consistently.
func WorldTransform(xmin, xmax, ymin, ymax, zmin, zmax float64) Mat4 {
	dx := xmax - xmin
	dy := ymax - ymin
	dz := zmax - zmin
	return Mat4{
		{1 / dx, 0, 0, -xmin / dx},
		{0, 1 / dy, 0, -ymin / dy},
		{0, 0, 1 / dz, -zmin / dz},
		{0, 0, 0, 1},
	}
}

// LookAt returns the view matrix for a camera at eye looking toward
// center with the given up vector. In camera space the view direction
// is -z, x points right and y points up.
func LookAt(eye, center, up r3.Vec) Mat4 {
	f := r3.Unit(r3.Sub(center, eye))
	s := r3.Unit(r3.Cross(f, up))
	u := r3.Cross(s, f)
	return Mat4{
		{s.X, s.Y, s.Z, -r3.Dot(s, eye)},
		{u.X, u.Y, u.Z, -r3.Dot(u, eye)},
		{-f.X, -f.Y, -f.Z, r3.Dot(f, eye)},
		{0, 0, 0, 1},
	}
}

// Perspective returns a perspective projection matrix. fovy is the
// vertical field of view in radians; near and far are positive
// distances to the clip planes. Projected depth runs from -1 at the
// near plane to +1 at the far plane.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		{0, 0, -1, 0},
	}
}

// Ortho returns an orthographic projection matrix with the same depth
// convention as Perspective.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	return Mat4{
		{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		{0, 0, 0, 1},
	}
}
