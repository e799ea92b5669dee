package plot3d

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func vecNear(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestIdentityMulVec(t *testing.T) {
	v := r3.Vec{X: 1, Y: -2, Z: 3}
	got, w := Identity().MulVec(v)
	if !vecNear(got, v, eps) || math.Abs(w-1) > eps {
		t.Errorf("Identity().MulVec(%+v) = %+v, w=%v", v, got, w)
	}
}

func TestMulComposition(t *testing.T) {
	// (A*B)v == A(Bv) for w-preserving transforms.
	a := WorldTransform(0, 2, 0, 4, 0, 8)
	b := Identity()
	b[0][3], b[1][3], b[2][3] = 1, 2, 3 // translation

	v := r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	bv, _ := b.MulVec(v)
	want, _ := a.MulVec(bv)
	got, _ := a.Mul(b).MulVec(v)
	if !vecNear(got, want, eps) {
		t.Errorf("composed transform = %+v, want %+v", got, want)
	}
}

func TestWorldTransformUnitCube(t *testing.T) {
	m := WorldTransform(-1, 3, 10, 20, 0, 5)
	tests := []struct {
		in, want r3.Vec
	}{
		{r3.Vec{X: -1, Y: 10, Z: 0}, r3.Vec{}},
		{r3.Vec{X: 3, Y: 20, Z: 5}, r3.Vec{X: 1, Y: 1, Z: 1}},
		{r3.Vec{X: 1, Y: 15, Z: 2.5}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}},
	}
	for _, tt := range tests {
		got, w := m.MulVec(tt.in)
		if !vecNear(got, tt.want, eps) || math.Abs(w-1) > eps {
			t.Errorf("WorldTransform(%+v) = %+v (w=%v), want %+v", tt.in, got, w, tt.want)
		}
	}
}

func TestLookAtCameraSpace(t *testing.T) {
	// Camera at (0,0,5) looking at the origin: the origin sits 5 units
	// ahead along the view axis, which is -z in camera space.
	m := LookAt(r3.Vec{Z: 5}, r3.Vec{}, r3.Vec{Y: 1})

	got, w := m.MulVec(r3.Vec{})
	if !vecNear(got, r3.Vec{Z: -5}, eps) || math.Abs(w-1) > eps {
		t.Errorf("origin in camera space = %+v (w=%v), want (0,0,-5)", got, w)
	}

	// A point to the camera's right stays to the right, and up stays up.
	right, _ := m.MulVec(r3.Vec{X: 1})
	if right.X <= 0 {
		t.Errorf("+x point maps to camera x = %v, want positive", right.X)
	}
	up, _ := m.MulVec(r3.Vec{Y: 1})
	if up.Y <= 0 {
		t.Errorf("+y point maps to camera y = %v, want positive", up.Y)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 1.0, 10.0
	m := Perspective(math.Pi/2, 1, near, far)

	// Points on the near and far planes, centered: depth -1 and +1.
	v, w := m.MulVec(r3.Vec{Z: -near})
	if math.Abs(v.Z/w+1) > 1e-9 {
		t.Errorf("near-plane depth = %v, want -1", v.Z/w)
	}
	v, w = m.MulVec(r3.Vec{Z: -far})
	if math.Abs(v.Z/w-1) > 1e-9 {
		t.Errorf("far-plane depth = %v, want +1", v.Z/w)
	}

	// Depth grows monotonically with distance.
	v1, w1 := m.MulVec(r3.Vec{Z: -2})
	v2, w2 := m.MulVec(r3.Vec{Z: -8})
	if v1.Z/w1 >= v2.Z/w2 {
		t.Errorf("depth at 2 (%v) must be smaller than at 8 (%v)", v1.Z/w1, v2.Z/w2)
	}
}

func TestOrthoDepthRange(t *testing.T) {
	m := Ortho(-1, 1, -1, 1, 1, 10)
	v, w := m.MulVec(r3.Vec{Z: -1})
	if math.Abs(v.Z/w+1) > 1e-9 {
		t.Errorf("near-plane depth = %v, want -1", v.Z/w)
	}
	v, w = m.MulVec(r3.Vec{Z: -10})
	if math.Abs(v.Z/w-1) > 1e-9 {
		t.Errorf("far-plane depth = %v, want +1", v.Z/w)
	}
	if w != 1 {
		t.Errorf("orthographic w = %v, want 1", w)
	}
}
