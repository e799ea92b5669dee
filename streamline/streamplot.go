package streamline

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/floats"

	"github.com/hammockhippie/viz"
)

// Option configures a Streamplot call.
// Use functional options to customize integration behavior.
//
// Example:
//
//	trajs, err := streamline.Streamplot(x, y, u, v,
//	    streamline.WithDensity(2),
//	    streamline.WithIntegrator(streamline.IntegratorRK45))
type Option func(*options)

// options holds the optional Streamplot configuration.
type options struct {
	density   float64
	densityX  float64
	densityY  float64
	xyDensity bool
	minLength float64
	maxLength float64
	kind      IntegratorKind
}

// defaultOptions returns the default streamplot options.
func defaultOptions() options {
	return options{
		density:   1,
		minLength: 0.1,
		maxLength: 2,
		kind:      IntegratorRK4,
	}
}

// WithDensity scales the mask resolution, and with it how closely
// streamlines pack. Density 1 divides the domain into a 30x30 mask.
func WithDensity(d float64) Option {
	return func(o *options) {
		o.density = d
		o.xyDensity = false
	}
}

// WithDensityXY controls streamline closeness independently per axis,
// on a 25*density mask per axis.
func WithDensityXY(dx, dy float64) Option {
	return func(o *options) {
		o.densityX = dx
		o.densityY = dy
		o.xyDensity = true
	}
}

// WithMinLength sets the minimum trajectory length in axes-normalized
// units; shorter trajectories are rejected and release their mask
// cells.
func WithMinLength(l float64) Option {
	return func(o *options) { o.minLength = l }
}

// WithMaxLength sets the runaway cap on trajectory growth per
// direction, in axes-normalized units.
func WithMaxLength(l float64) Option {
	return func(o *options) { o.maxLength = l }
}

// WithIntegrator selects the stepping algorithm.
func WithIntegrator(k IntegratorKind) Option {
	return func(o *options) { o.kind = k }
}

// Trajectory is one traced streamline.
//
// A trajectory is restartable but not resumable: it was built by
// integrating forward and backward from a seed and concatenating the
// two halves, and cannot be extended afterwards.
type Trajectory struct {
	// Points are the trajectory samples in data coordinates.
	Points []viz.Point

	// Length is the total path length in axes-normalized units; always
	// greater than the configured minimum length.
	Length float64

	// ArcLength is the cumulative data-space path length at each
	// point, ArcLength[0] == 0. Hosts interpolate line width or color
	// along the trajectory against it.
	ArcLength []float64
}

// ArrowAnchor returns the segment at half the total arc length: tail at
// the sample just before the midpoint and head nudged toward the next
// sample. Hosts place direction arrows there.
func (t *Trajectory) ArrowAnchor() (tail, head viz.Point) {
	n := len(t.Points)
	if n == 0 {
		return viz.Point{}, viz.Point{}
	}
	if n == 1 {
		return t.Points[0], t.Points[0]
	}
	half := t.ArcLength[n-1] / 2
	i := 0
	for i < n-2 && t.ArcLength[i+1] < half {
		i++
	}
	tail = t.Points[i]
	head = tail.Lerp(t.Points[i+1], 0.5)
	return tail, head
}

// Streamplot traces the streamlines of the vector field (u, v) sampled
// on the evenly spaced grid (x, y). u and v are indexed [y][x]: one row
// per y sample, one column per x sample.
//
// Seeds are tried boundary-first, spiraling inward over the mask;
// each free mask cell gets at most one traversing streamline. The
// returned trajectories are in data coordinates.
//
// Malformed input (uneven grid, mismatched field shapes, non-positive
// density) fails immediately; numerical edge conditions during
// integration never propagate out.
func Streamplot(x, y []float64, u, v [][]float64, opts ...Option) ([]Trajectory, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.minLength < 0 {
		return nil, fmt.Errorf("streamline: minimum length must not be negative, got %g", o.minLength)
	}
	if o.maxLength <= 0 {
		return nil, fmt.Errorf("streamline: maximum length must be positive, got %g", o.maxLength)
	}

	grid, err := NewGrid(x, y)
	if err != nil {
		return nil, err
	}
	if err := checkFieldShape("u", u, grid); err != nil {
		return nil, err
	}
	if err := checkFieldShape("v", v, grid); err != nil {
		return nil, err
	}

	var mask *Mask
	if o.xyDensity {
		mask, err = NewMaskXY(o.densityX, o.densityY)
	} else {
		mask, err = NewMask(o.density)
	}
	if err != nil {
		return nil, err
	}

	dmap := NewDomainMap(grid, mask)
	field := newVelocityField(grid, u, v)
	it := &integrator{
		dmap:      dmap,
		kind:      o.kind,
		minLength: o.minLength,
		maxLength: o.maxLength,
	}

	var trajs []Trajectory
	seeds := 0
	for xm, ym := range genStartingPoints(mask.nx, mask.ny) {
		if mask.Occupied(xm, ym) {
			continue
		}
		seeds++
		xg, yg := dmap.MaskToGrid(xm, ym)
		pts, length, ok := it.trace(xg, yg, field)
		if !ok {
			continue
		}
		trajs = append(trajs, assemble(grid, pts, length))
	}

	viz.Logger().Debug("streamline: traced field",
		"integrator", o.kind.String(),
		"seeds", seeds,
		"trajectories", len(trajs))
	if len(trajs) == 0 && seeds > 0 {
		viz.Logger().Warn("streamline: no trajectory exceeded the minimum length",
			"seeds", seeds,
			"minLength", o.minLength)
	}
	return trajs, nil
}

// checkFieldShape validates a velocity component against the grid.
func checkFieldShape(name string, a [][]float64, g *Grid) error {
	if len(a) != g.ny {
		return fmt.Errorf("streamline: %s has %d rows, grid has %d y samples",
			name, len(a), g.ny)
	}
	for j, row := range a {
		if len(row) != g.nx {
			return fmt.Errorf("streamline: %s row %d has %d columns, grid has %d x samples",
				name, j, len(row), g.nx)
		}
	}
	return nil
}

// assemble converts a grid-coordinate trajectory to data coordinates
// and computes its cumulative arc length.
func assemble(g *Grid, pts []viz.Point, length float64) Trajectory {
	data := make([]viz.Point, len(pts))
	for i, p := range pts {
		xd, yd := g.GridToData(p.X, p.Y)
		data[i] = viz.Point{X: xd, Y: yd}
	}

	segs := make([]float64, len(data))
	for i := 1; i < len(data); i++ {
		segs[i] = data[i].Distance(data[i-1])
	}
	arc := make([]float64, len(segs))
	floats.CumSum(arc, segs)

	return Trajectory{Points: data, Length: length, ArcLength: arc}
}

// InterpValues samples a per-grid-point metadata array (line widths,
// color values) along a trajectory, one value per trajectory point.
// Samples are clamped into the grid, since trajectory ends may sit
// exactly on the boundary.
func InterpValues(values [][]float64, g *Grid, t Trajectory) ([]float64, error) {
	if err := checkFieldShape("values", values, g); err != nil {
		return nil, err
	}
	out := make([]float64, len(t.Points))
	for i, p := range t.Points {
		xi, yi := g.DataToGrid(p.X, p.Y)
		out[i] = interpGridClamped(values, xi, yi)
	}
	return out, nil
}

// spiral walk directions.
type spiralDir int

const (
	spiralRight spiralDir = iota
	spiralUp
	spiralLeft
	spiralDown
)

// genStartingPoints yields candidate seed cells spiraling inward from
// the mask's outer boundary: right along the bottom, up the right side,
// left along the top, down the left side, shrinking the rectangle each
// lap. Boundary-first seeding is deliberate: streamlines entering at
// domain edges are more likely to produce visually representative
// lines than interior-seeded ones.
func genStartingPoints(nx, ny int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		xfirst, yfirst := 0, 1
		xlast, ylast := nx-1, ny-1
		x, y := 0, 0
		dir := spiralRight
		for i := 0; i < nx*ny; i++ {
			if !yield(x, y) {
				return
			}
			switch dir {
			case spiralRight:
				x++
				if x >= xlast {
					xlast--
					dir = spiralUp
				}
			case spiralUp:
				y++
				if y >= ylast {
					ylast--
					dir = spiralLeft
				}
			case spiralLeft:
				x--
				if x <= xfirst {
					xfirst++
					dir = spiralDown
				}
			case spiralDown:
				y--
				if y <= yfirst {
					yfirst++
					dir = spiralRight
				}
			}
		}
	}
}
