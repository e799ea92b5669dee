package streamline

import (
	"math"
	"testing"
)

// uniformField builds a 100x100 constant field u=uc, v=vc on [-3,3]^2.
func uniformField(uc, vc float64) (x, y []float64, u, v [][]float64) {
	x = linspace(-3, 3, 100)
	y = linspace(-3, 3, 100)
	u = make([][]float64, len(y))
	v = make([][]float64, len(y))
	for j := range y {
		u[j] = make([]float64, len(x))
		v[j] = make([]float64, len(x))
		for i := range x {
			u[j][i] = uc
			v[j][i] = vc
		}
	}
	return x, y, u, v
}

func TestStreamplotZeroField(t *testing.T) {
	// Every seed sits on a stagnation point: both integration halves
	// terminate immediately, every candidate has length 0 and is
	// discarded.
	x, y, u, v := uniformField(0, 0)
	for _, kind := range []IntegratorKind{IntegratorRK4, IntegratorRK45, IntegratorRK12} {
		t.Run(kind.String(), func(t *testing.T) {
			trajs, err := Streamplot(x, y, u, v, WithIntegrator(kind))
			if err != nil {
				t.Fatal(err)
			}
			if len(trajs) != 0 {
				t.Errorf("zero field traced %d trajectories, want 0", len(trajs))
			}
		})
	}
}

func TestStreamplotUniformFieldHorizontal(t *testing.T) {
	// A constant rightward field: every streamline is a horizontal line.
	x, y, u, v := uniformField(1, 0)
	trajs, err := Streamplot(x, y, u, v)
	if err != nil {
		t.Fatal(err)
	}
	if len(trajs) == 0 {
		t.Fatal("uniform field traced no trajectories")
	}
	for i, tr := range trajs {
		if tr.Length <= 0.1 {
			t.Errorf("trajectory %d: length %v not above the minimum", i, tr.Length)
		}
		y0 := tr.Points[0].Y
		for _, p := range tr.Points {
			if math.Abs(p.Y-y0) > 1e-9 {
				t.Errorf("trajectory %d: y drifted from %v to %v", i, y0, p.Y)
				break
			}
		}
	}
}

func TestAdaptiveEdgeStep(t *testing.T) {
	// Adaptive integrators finish with an Euler step that lands exactly
	// on the domain boundary. The first trajectory integrates over an
	// empty mask, so nothing stops it before the edges.
	x, y, u, v := uniformField(1, 0)
	for _, kind := range []IntegratorKind{IntegratorRK45, IntegratorRK12} {
		t.Run(kind.String(), func(t *testing.T) {
			trajs, err := Streamplot(x, y, u, v, WithIntegrator(kind))
			if err != nil {
				t.Fatal(err)
			}
			if len(trajs) == 0 {
				t.Fatal("no trajectories")
			}
			tr := trajs[0]
			minX, maxX := math.Inf(1), math.Inf(-1)
			for _, p := range tr.Points {
				minX = math.Min(minX, p.X)
				maxX = math.Max(maxX, p.X)
			}
			if math.Abs(minX+3) > 1e-6 || math.Abs(maxX-3) > 1e-6 {
				t.Errorf("trajectory spans [%v, %v], want [-3, 3]", minX, maxX)
			}
		})
	}
}

func TestNextStep(t *testing.T) {
	const maxds, maxerror = 0.03, 0.001
	if got := nextStep(0.01, maxds, maxerror, 0); got != maxds {
		t.Errorf("zero error: next step = %v, want maxds %v", got, maxds)
	}
	// An error above tolerance shrinks the step.
	if got := nextStep(0.01, maxds, maxerror, 0.01); got >= 0.01 {
		t.Errorf("large error: next step = %v, want below current 0.01", got)
	}
	// A tiny error grows it, capped at maxds.
	if got := nextStep(0.02, maxds, maxerror, 1e-9); got != maxds {
		t.Errorf("tiny error: next step = %v, want maxds %v", got, maxds)
	}
}

func TestTraceRejectsShortTrajectory(t *testing.T) {
	// With a minimum length above the runaway cap, nothing can qualify;
	// the rejected trajectories must release their mask cells.
	x, y, u, v := uniformField(1, 0)
	trajs, err := Streamplot(x, y, u, v, WithMinLength(10), WithMaxLength(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(trajs) != 0 {
		t.Errorf("traced %d trajectories, want 0 below the minimum length", len(trajs))
	}
}

func TestMaxLengthCapsGrowth(t *testing.T) {
	x, y, u, v := uniformField(1, 0)
	trajs, err := Streamplot(x, y, u, v, WithMaxLength(0.3))
	if err != nil {
		t.Fatal(err)
	}
	for i, tr := range trajs {
		// Forward and backward halves are capped independently.
		if tr.Length > 0.6+1e-9 {
			t.Errorf("trajectory %d: length %v exceeds twice the cap", i, tr.Length)
		}
	}
}

func TestInterpGrid(t *testing.T) {
	a := [][]float64{
		{0, 1},
		{2, 3},
	}
	tests := []struct {
		xi, yi  float64
		want    float64
		wantErr bool
	}{
		{0, 0, 0, false},
		{0.5, 0, 0.5, false},
		{0, 0.5, 1, false},
		{0.5, 0.5, 1.5, false},
		{1, 0, 0, true}, // right column has no neighbor
		{-0.1, 0, 0, true}, // floors to -1, never extrapolates from column 0
		{0, -0.5, 0, true},
		{0, 1.5, 0, true},
	}
	for _, tt := range tests {
		got, err := interpGrid(a, tt.xi, tt.yi)
		if (err != nil) != tt.wantErr {
			t.Errorf("interpGrid(%v, %v) error = %v, wantErr %v", tt.xi, tt.yi, err, tt.wantErr)
			continue
		}
		if err == nil && math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("interpGrid(%v, %v) = %v, want %v", tt.xi, tt.yi, got, tt.want)
		}
	}

	// The clamped variant samples boundaries without error.
	if got := interpGridClamped(a, 1, 1); math.Abs(got-3) > 1e-6 {
		t.Errorf("interpGridClamped at far corner = %v, want 3", got)
	}
}

func TestVelocityFieldStagnation(t *testing.T) {
	g, err := NewGrid(linspace(0, 9, 10), linspace(0, 9, 10))
	if err != nil {
		t.Fatal(err)
	}
	u := make([][]float64, 10)
	v := make([][]float64, 10)
	for j := range u {
		u[j] = make([]float64, 10)
		v[j] = make([]float64, 10)
	}
	f := newVelocityField(g, u, v)
	dx, dy, err := f.forward(4.5, 4.5)
	if err != nil || dx != 0 || dy != 0 {
		t.Errorf("stagnation sample = (%v, %v, %v), want (0, 0, nil)", dx, dy, err)
	}
}

func TestVelocityFieldUnitSpeed(t *testing.T) {
	// The integration term has unit axes-normalized speed, so parameter
	// steps measure arc length regardless of field magnitude.
	g, err := NewGrid(linspace(-3, 3, 100), linspace(-3, 3, 100))
	if err != nil {
		t.Fatal(err)
	}
	u := make([][]float64, 100)
	v := make([][]float64, 100)
	for j := range u {
		u[j] = make([]float64, 100)
		v[j] = make([]float64, 100)
		for i := range u[j] {
			u[j][i] = 7 // arbitrary magnitude
			v[j][i] = 7
		}
	}
	f := newVelocityField(g, u, v)
	dx, dy, err := f.forward(50, 50)
	if err != nil {
		t.Fatal(err)
	}
	nx, ny := g.Shape()
	speed := math.Hypot(dx/float64(nx), dy/float64(ny))
	if math.Abs(speed-1) > 1e-9 {
		t.Errorf("axes-normalized speed = %v, want 1", speed)
	}
}
