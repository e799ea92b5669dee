package streamline

import (
	"math"

	"github.com/hammockhippie/viz"
)

// IntegratorKind selects the streamline stepping algorithm.
type IntegratorKind int

// Available integrators.
const (
	// IntegratorRK4 is 4th-order Runge-Kutta with a fixed step.
	IntegratorRK4 IntegratorKind = iota
	// IntegratorRK45 is the adaptive Runge-Kutta-Fehlberg embedded
	// 4(5) pair.
	IntegratorRK45
	// IntegratorRK12 is adaptive Heun, an embedded 1(2) pair. Cheapest
	// per step; the mask resolution caps the step size anyway, so the
	// lower order rarely shows.
	IntegratorRK12
)

// String returns a human-readable name for the kind.
func (k IntegratorKind) String() string {
	switch k {
	case IntegratorRK4:
		return "RK4"
	case IntegratorRK45:
		return "RK45"
	case IntegratorRK12:
		return "RK12"
	}
	return "Unknown"
}

// integrator traces trajectories over one domain map. All step sizes
// and lengths are in axes-normalized units.
type integrator struct {
	dmap      *DomainMap
	kind      IntegratorKind
	minLength float64
	maxLength float64
}

// trace integrates forward and backward in time from a seed point in
// grid coordinates and assembles both halves into one trajectory:
// reversed backward samples followed by the forward samples minus the
// duplicated seed. Trajectories not exceeding minLength are rolled
// back and rejected.
func (it *integrator) trace(x0, y0 float64, f *velocityField) ([]viz.Point, float64, bool) {
	if err := it.dmap.StartTrajectory(x0, y0); err != nil {
		return nil, 0, false
	}
	sf, fwd := it.step(x0, y0, f.forward)
	it.dmap.ResetStartPoint(x0, y0)
	sb, bwd := it.step(x0, y0, f.backward)
	stotal := sf + sb

	pts := make([]viz.Point, 0, len(bwd)+len(fwd))
	for i := len(bwd) - 1; i >= 0; i-- {
		pts = append(pts, bwd[i])
	}
	if len(fwd) > 1 {
		pts = append(pts, fwd[1:]...)
	}

	if stotal > it.minLength {
		return pts, stotal, true
	}
	it.dmap.UndoTrajectory()
	return nil, 0, false
}

// step grows one direction of a trajectory until it leaves the grid,
// collides with an occupied mask cell, stalls at a stagnation point, or
// exceeds the runaway length cap.
func (it *integrator) step(x0, y0 float64, f fieldFunc) (float64, []viz.Point) {
	switch it.kind {
	case IntegratorRK45:
		return it.rk45(x0, y0, f)
	case IntegratorRK12:
		return it.rk12(x0, y0, f)
	default:
		return it.rk4(x0, y0, f)
	}
}

// rk4 is the fixed-step integrator. The step is capped by the mask
// resolution so trajectories cannot skip over mask cells.
func (it *integrator) rk4(x0, y0 float64, f fieldFunc) (float64, []viz.Point) {
	g := it.dmap.grid
	mnx, mny := it.dmap.mask.Shape()
	ds := math.Min(1/float64(mnx), math.Min(1/float64(mny), 0.01))

	var traj []viz.Point
	stotal := 0.0
	xi, yi := x0, y0

	for g.ValidIndex(xi, yi) {
		traj = append(traj, viz.Point{X: xi, Y: yi})

		k1x, k1y, err := f(xi, yi)
		if err != nil {
			break
		}
		if k1x == 0 && k1y == 0 {
			break // stagnation point
		}
		k2x, k2y, err := f(xi+0.5*ds*k1x, yi+0.5*ds*k1y)
		if err != nil {
			break
		}
		k3x, k3y, err := f(xi+0.5*ds*k2x, yi+0.5*ds*k2y)
		if err != nil {
			break
		}
		k4x, k4y, err := f(xi+ds*k3x, yi+ds*k3y)
		if err != nil {
			break
		}
		xi += ds * (k1x + 2*k2x + 2*k3x + k4x) / 6
		yi += ds * (k1y + 2*k2y + 2*k3y + k4y) / 6

		if err := it.dmap.UpdateTrajectory(xi, yi); err != nil {
			break
		}
		if stotal+ds > it.maxLength {
			break
		}
		stotal += ds
	}
	return stotal, traj
}

// rk45 is the adaptive Runge-Kutta-Fehlberg integrator: a 4th- and
// 5th-order update share the same stage evaluations, their difference
// estimates the local error, and the next step scales by the classic
// 0.85*(tol/err)^0.2 rule.
func (it *integrator) rk45(x0, y0 float64, f fieldFunc) (float64, []viz.Point) {
	const maxerror = 0.001
	mnx, mny := it.dmap.mask.Shape()
	maxds := math.Min(1/float64(mnx), math.Min(1/float64(mny), 0.03))

	// Runge-Kutta-Fehlberg stage and solution weights.
	const a2 = 0.25
	a3 := [...]float64{3. / 32, 9. / 32}
	a4 := [...]float64{1932. / 2197, -7200. / 2197, 7296. / 2197}
	a5 := [...]float64{439. / 216, -8, 3680. / 513, -845. / 4104}
	a6 := [...]float64{-8. / 27, 2, -3544. / 2565, 1859. / 4104, -11. / 40}
	b4 := [...]float64{25. / 216, 1408. / 2565, 2197. / 4104, -1. / 5}
	b5 := [...]float64{16. / 135, 6656. / 12825, 28561. / 56430, -9. / 50, 2. / 55}

	g := it.dmap.grid
	ds := maxds
	stotal := 0.0
	xi, yi := x0, y0
	var traj []viz.Point

	for g.ValidIndex(xi, yi) {
		traj = append(traj, viz.Point{X: xi, Y: yi})

		k1x, k1y, err := f(xi, yi)
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}
		if k1x == 0 && k1y == 0 {
			break // stagnation point
		}
		k2x, k2y, err := f(xi+ds*a2*k1x, yi+ds*a2*k1y)
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}
		k3x, k3y, err := f(xi+ds*dot(a3[:], k1x, k2x),
			yi+ds*dot(a3[:], k1y, k2y))
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}
		k4x, k4y, err := f(xi+ds*dot(a4[:], k1x, k2x, k3x),
			yi+ds*dot(a4[:], k1y, k2y, k3y))
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}
		k5x, k5y, err := f(xi+ds*dot(a5[:], k1x, k2x, k3x, k4x),
			yi+ds*dot(a5[:], k1y, k2y, k3y, k4y))
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}
		k6x, k6y, err := f(xi+ds*dot(a6[:], k1x, k2x, k3x, k4x, k5x),
			yi+ds*dot(a6[:], k1y, k2y, k3y, k4y, k5y))
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}

		dx4 := ds * dot(b4[:], k1x, k3x, k4x, k5x)
		dy4 := ds * dot(b4[:], k1y, k3y, k4y, k5y)
		dx5 := ds * dot(b5[:], k1x, k3x, k4x, k5x, k6x)
		dy5 := ds * dot(b5[:], k1y, k3y, k4y, k5y, k6y)

		// Error is normalized to axes coordinates.
		errEst := math.Hypot((dx5-dx4)/float64(g.nx), (dy5-dy4)/float64(g.ny))

		if errEst < maxerror {
			xi += dx5
			yi += dy5
			if err := it.dmap.UpdateTrajectory(xi, yi); err != nil {
				break
			}
			if stotal+ds > it.maxLength {
				break
			}
			stotal += ds
		}
		ds = nextStep(ds, maxds, maxerror, errEst)
	}
	return stotal, traj
}

// rk12 is adaptive Heun: an Euler predictor and trapezoidal corrector
// form the embedded 1(2) pair. The larger error tolerance is tuned for
// visual smoothness rather than accuracy.
func (it *integrator) rk12(x0, y0 float64, f fieldFunc) (float64, []viz.Point) {
	const maxerror = 0.003
	mnx, mny := it.dmap.mask.Shape()
	maxds := math.Min(1/float64(mnx), math.Min(1/float64(mny), 0.1))

	g := it.dmap.grid
	ds := maxds
	stotal := 0.0
	xi, yi := x0, y0
	var traj []viz.Point

	for g.ValidIndex(xi, yi) {
		traj = append(traj, viz.Point{X: xi, Y: yi})

		k1x, k1y, err := f(xi, yi)
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}
		if k1x == 0 && k1y == 0 {
			break // stagnation point
		}
		k2x, k2y, err := f(xi+ds*k1x, yi+ds*k1y)
		if err != nil {
			stotal += it.edgeStep(&traj, f)
			break
		}

		dx1 := ds * k1x
		dy1 := ds * k1y
		dx2 := ds * 0.5 * (k1x + k2x)
		dy2 := ds * 0.5 * (k1y + k2y)

		errEst := math.Hypot((dx2-dx1)/float64(g.nx), (dy2-dy1)/float64(g.ny))

		if errEst < maxerror {
			xi += dx2
			yi += dy2
			if err := it.dmap.UpdateTrajectory(xi, yi); err != nil {
				break
			}
			if stotal+ds > it.maxLength {
				break
			}
			stotal += ds
		}
		ds = nextStep(ds, maxds, maxerror, errEst)
	}
	return stotal, traj
}

// edgeStep takes a single Euler step from the trajectory's last point
// that lands exactly on the grid boundary, so trajectories leaving the
// domain mid-step end with a clean edge instead of a discarded partial
// step. Returns the normalized length of the step, or 0 when no step
// was possible.
func (it *integrator) edgeStep(traj *[]viz.Point, f fieldFunc) float64 {
	t := *traj
	if len(t) == 0 {
		return 0
	}
	g := it.dmap.grid
	xi, yi := t[len(t)-1].X, t[len(t)-1].Y
	cx, cy, err := f(xi, yi)
	if err != nil || (cx == 0 && cy == 0) {
		return 0
	}

	dsx := math.Inf(1)
	dsy := math.Inf(1)
	if cx > 0 {
		dsx = (float64(g.nx-1) - xi) / cx
	} else if cx < 0 {
		dsx = xi / -cx
	}
	if cy > 0 {
		dsy = (float64(g.ny-1) - yi) / cy
	} else if cy < 0 {
		dsy = yi / -cy
	}
	ds := math.Min(dsx, dsy)
	if math.IsInf(ds, 1) {
		return 0
	}
	*traj = append(t, viz.Point{X: xi + cx*ds, Y: yi + cy*ds})
	return ds
}

// nextStep applies the embedded-pair step-size update. A zero error
// estimate allows the maximum step immediately.
func nextStep(ds, maxds, maxerror, errEst float64) float64 {
	if errEst == 0 {
		return maxds
	}
	return math.Min(maxds, 0.85*ds*math.Pow(maxerror/errEst, 0.2))
}

// dot is the weighted sum of the stage values; short and branch-free,
// it beats building slices for every stage.
func dot(w []float64, k ...float64) float64 {
	var s float64
	for i := range w {
		s += w[i] * k[i]
	}
	return s
}
