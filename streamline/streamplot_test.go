package streamline

import (
	"math"
	"testing"

	"github.com/hammockhippie/viz"
)

// swirlField is the classic demo field with sources and saddles:
// u = -1 - x^2 + y, v = 1 + x - y^2 on [-3,3]^2.
func swirlField() (x, y []float64, u, v [][]float64) {
	x = linspace(-3, 3, 100)
	y = linspace(-3, 3, 100)
	u = make([][]float64, len(y))
	v = make([][]float64, len(y))
	for j := range y {
		u[j] = make([]float64, len(x))
		v[j] = make([]float64, len(x))
		for i := range x {
			u[j][i] = -1 - x[i]*x[i] + y[j]
			v[j][i] = 1 + x[i] - y[j]*y[j]
		}
	}
	return x, y, u, v
}

func TestStreamplotSwirlField(t *testing.T) {
	x, y, u, v := swirlField()
	for _, kind := range []IntegratorKind{IntegratorRK4, IntegratorRK45, IntegratorRK12} {
		t.Run(kind.String(), func(t *testing.T) {
			trajs, err := Streamplot(x, y, u, v, WithIntegrator(kind))
			if err != nil {
				t.Fatal(err)
			}
			if len(trajs) < 5 {
				t.Fatalf("traced %d trajectories, want a filled field", len(trajs))
			}
			nxMask := 30
			if len(trajs) > nxMask*nxMask {
				t.Errorf("traced %d trajectories, more than mask cells", len(trajs))
			}
			for i, tr := range trajs {
				if tr.Length <= 0.1 {
					t.Errorf("trajectory %d: length %v not above the minimum", i, tr.Length)
				}
				if len(tr.Points) != len(tr.ArcLength) {
					t.Fatalf("trajectory %d: %d points, %d arc lengths",
						i, len(tr.Points), len(tr.ArcLength))
				}
				if tr.ArcLength[0] != 0 {
					t.Errorf("trajectory %d: ArcLength[0] = %v, want 0", i, tr.ArcLength[0])
				}
				for j := 1; j < len(tr.ArcLength); j++ {
					if tr.ArcLength[j] < tr.ArcLength[j-1] {
						t.Errorf("trajectory %d: arc length decreases at %d", i, j)
						break
					}
				}
				for _, p := range tr.Points {
					if p.X < -3-1e-6 || p.X > 3+1e-6 || p.Y < -3-1e-6 || p.Y > 3+1e-6 {
						t.Errorf("trajectory %d: point %+v outside the domain", i, p)
						break
					}
				}
			}
		})
	}
}

func TestStreamplotDensityOptions(t *testing.T) {
	x, y, u, v := swirlField()

	sparse, err := Streamplot(x, y, u, v, WithDensity(0.5))
	if err != nil {
		t.Fatal(err)
	}
	dense, err := Streamplot(x, y, u, v, WithDensity(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(dense) <= len(sparse) {
		t.Errorf("density 2 traced %d trajectories, density 0.5 traced %d: want more at higher density",
			len(dense), len(sparse))
	}

	if _, err := Streamplot(x, y, u, v, WithDensity(-1)); err == nil {
		t.Error("negative density must error")
	}
	// Densities below the 2-cell mask minimum fail instead of silently
	// tracing nothing.
	if _, err := Streamplot(x, y, u, v, WithDensity(0.04)); err == nil {
		t.Error("single-cell mask density must error")
	}
	if _, err := Streamplot(x, y, u, v, WithDensityXY(1, 0)); err == nil {
		t.Error("non-positive per-axis density must error")
	}
	if _, err := Streamplot(x, y, u, v, WithDensityXY(1, 2)); err != nil {
		t.Errorf("per-axis density: %v", err)
	}
	if _, err := Streamplot(x, y, u, v, WithMinLength(-1)); err == nil {
		t.Error("negative minimum length must error")
	}
	if _, err := Streamplot(x, y, u, v, WithMaxLength(0)); err == nil {
		t.Error("non-positive maximum length must error")
	}
}

func TestStreamplotShapeValidation(t *testing.T) {
	x, y, u, v := swirlField()

	if _, err := Streamplot(x[:50], y, u, v); err == nil {
		t.Error("u wider than the grid must error")
	}
	if _, err := Streamplot(x, y, u[:10], v); err == nil {
		t.Error("u with missing rows must error")
	}
	ragged := make([][]float64, len(u))
	copy(ragged, u)
	ragged[3] = u[3][:20]
	if _, err := Streamplot(x, y, u, ragged); err == nil {
		t.Error("ragged v must error")
	}
}

func TestGenStartingPointsSpiral(t *testing.T) {
	var got [][2]int
	for x, y := range genStartingPoints(3, 3) {
		got = append(got, [2]int{x, y})
	}
	want := [][2]int{
		{0, 0}, {1, 0}, {2, 0}, // right along the bottom
		{2, 1}, {2, 2}, // up the right side
		{1, 2}, {0, 2}, // left along the top
		{0, 1},         // down the left side
		{1, 1},         // center last
	}
	if len(got) != len(want) {
		t.Fatalf("yielded %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %v, want %v (full sequence %v)", i, got[i], want[i], got)
		}
	}
}

func TestGenStartingPointsCoversMask(t *testing.T) {
	const nx, ny = 7, 5
	seen := map[[2]int]bool{}
	for x, y := range genStartingPoints(nx, ny) {
		if x < 0 || x >= nx || y < 0 || y >= ny {
			t.Fatalf("cell (%d, %d) outside the mask", x, y)
		}
		if seen[[2]int{x, y}] {
			t.Fatalf("cell (%d, %d) yielded twice", x, y)
		}
		seen[[2]int{x, y}] = true
	}
	if len(seen) != nx*ny {
		t.Errorf("covered %d cells, want %d", len(seen), nx*ny)
	}
}

func TestInterpValues(t *testing.T) {
	x, y, u, v := swirlField()
	trajs, err := Streamplot(x, y, u, v)
	if err != nil {
		t.Fatal(err)
	}
	if len(trajs) == 0 {
		t.Fatal("no trajectories")
	}

	values := make([][]float64, len(y))
	for j := range values {
		values[j] = make([]float64, len(x))
		for i := range values[j] {
			values[j][i] = 7.5
		}
	}
	got, err := InterpValues(values, mustGrid(t, x, y), trajs[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(trajs[0].Points) {
		t.Fatalf("sampled %d values for %d points", len(got), len(trajs[0].Points))
	}
	for i, vv := range got {
		if math.Abs(vv-7.5) > 1e-9 {
			t.Errorf("value %d = %v, want 7.5 from a constant array", i, vv)
		}
	}

	if _, err := InterpValues(values[:3], mustGrid(t, x, y), trajs[0]); err == nil {
		t.Error("mis-shaped value array must error")
	}
}

func mustGrid(t *testing.T, x, y []float64) *Grid {
	t.Helper()
	g, err := NewGrid(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestArrowAnchor(t *testing.T) {
	tr := Trajectory{
		Points:    []viz.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
		ArcLength: []float64{0, 1, 2, 3},
	}
	tail, head := tr.ArrowAnchor()
	if tail != viz.Pt(1, 0) {
		t.Errorf("tail = %+v, want the sample before the arc midpoint", tail)
	}
	if head != viz.Pt(1.5, 0) {
		t.Errorf("head = %+v, want halfway to the next sample", head)
	}

	// Degenerate trajectories stay well defined.
	empty := Trajectory{}
	if tail, head := empty.ArrowAnchor(); tail != (viz.Point{}) || head != (viz.Point{}) {
		t.Errorf("empty trajectory anchor = %+v, %+v", tail, head)
	}
	single := Trajectory{Points: []viz.Point{{X: 2, Y: 2}}, ArcLength: []float64{0}}
	if tail, head := single.ArrowAnchor(); tail != head {
		t.Errorf("single-point anchor: tail %+v != head %+v", tail, head)
	}
}
