package streamline

import "math"

// interpGrid bilinearly interpolates a [ny][nx] array at a fractional
// grid coordinate. Sampling where the four surrounding grid points do
// not all exist returns ErrOutsideGrid; the integrators recover from it
// locally by ending growth in that direction.
func interpGrid(a [][]float64, xi, yi float64) (float64, error) {
	// Floor, not truncation: coordinates in (-1, 0) must floor to -1 and
	// fail the bounds check rather than extrapolate from column 0.
	x := int(math.Floor(xi))
	y := int(math.Floor(yi))
	ny := len(a)
	if ny == 0 {
		return 0, ErrOutsideGrid
	}
	nx := len(a[0])
	if x < 0 || x+1 >= nx || y < 0 || y+1 >= ny {
		return 0, ErrOutsideGrid
	}

	a00 := a[y][x]
	a01 := a[y][x+1]
	a10 := a[y+1][x]
	a11 := a[y+1][x+1]
	xt := xi - float64(x)
	yt := yi - float64(y)
	a0 := a00*(1-xt) + a01*xt
	a1 := a10*(1-xt) + a11*xt
	return a0*(1-yt) + a1*yt, nil
}

// interpGridClamped samples with the coordinate clamped into the
// interpolatable domain, for metadata lookups along trajectories whose
// points may sit exactly on the grid boundary.
func interpGridClamped(a [][]float64, xi, yi float64) float64 {
	ny := len(a)
	if ny == 0 {
		return 0
	}
	nx := len(a[0])
	xi = math.Min(math.Max(xi, 0), float64(nx-1)-1e-9)
	yi = math.Min(math.Max(yi, 0), float64(ny-1)-1e-9)
	v, err := interpGrid(a, xi, yi)
	if err != nil {
		return 0
	}
	return v
}

// fieldFunc samples the integration term at a fractional grid
// coordinate: the local velocity rescaled so that parameter steps
// measure axes-normalized arc length. A zero-velocity sample returns
// (0, 0) with no error; the integrators treat it as a stagnation point
// and stop growing in that direction.
type fieldFunc func(xi, yi float64) (dx, dy float64, err error)

// velocityField holds the grid-scaled velocity components and the
// axes-normalized speed used for arc-length parameterization.
type velocityField struct {
	u, v  [][]float64 // velocities in grid units
	speed [][]float64 // axes-normalized speed
}

// newVelocityField rescales data-space velocities onto grid
// coordinates and precomputes the speed array.
func newVelocityField(g *Grid, u, v [][]float64) *velocityField {
	sx := float64(g.nx) / g.width
	sy := float64(g.ny) / g.height
	f := &velocityField{
		u:     make([][]float64, g.ny),
		v:     make([][]float64, g.ny),
		speed: make([][]float64, g.ny),
	}
	for j := 0; j < g.ny; j++ {
		f.u[j] = make([]float64, g.nx)
		f.v[j] = make([]float64, g.nx)
		f.speed[j] = make([]float64, g.nx)
		for i := 0; i < g.nx; i++ {
			ug := u[j][i] * sx
			vg := v[j][i] * sy
			f.u[j][i] = ug
			f.v[j][i] = vg
			f.speed[j][i] = math.Hypot(ug/float64(g.nx), vg/float64(g.ny))
		}
	}
	return f
}

// forward samples the unit-speed integration term at (xi, yi).
func (f *velocityField) forward(xi, yi float64) (float64, float64, error) {
	s, err := interpGrid(f.speed, xi, yi)
	if err != nil {
		return 0, 0, err
	}
	if s == 0 {
		return 0, 0, nil
	}
	ui, err := interpGrid(f.u, xi, yi)
	if err != nil {
		return 0, 0, err
	}
	vi, err := interpGrid(f.v, xi, yi)
	if err != nil {
		return 0, 0, err
	}
	return ui / s, vi / s, nil
}

// backward negates the field, tracing the streamline upstream.
func (f *velocityField) backward(xi, yi float64) (float64, float64, error) {
	dx, dy, err := f.forward(xi, yi)
	return -dx, -dy, err
}
