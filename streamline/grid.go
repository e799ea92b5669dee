package streamline

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Recoverable integration signals. Both are consumed inside the
// integrator loop, where they terminate one direction of trajectory
// growth; they never escape Streamplot.
var (
	// ErrOutsideGrid reports a sample point outside the valid grid
	// domain.
	ErrOutsideGrid = errors.New("streamline: sample point outside grid")

	// ErrCellOccupied reports a trajectory entering a mask cell already
	// claimed by another trajectory.
	ErrCellOccupied = errors.New("streamline: mask cell already occupied")
)

// Grid describes the evenly spaced rectilinear grid the velocity field
// is sampled on. Spacing and origin are cached at construction; grid
// coordinates are fractional indices in [0, nx-1] x [0, ny-1].
type Grid struct {
	nx, ny int
	dx, dy float64
	x0, y0 float64
	width  float64
	height float64
}

// spacingTol is the relative tolerance for the even-spacing check.
const spacingTol = 1e-8

// NewGrid validates that x and y are evenly spaced and caches the grid
// geometry. Malformed coordinates are caller mistakes and fail before
// any numerical work.
func NewGrid(x, y []float64) (*Grid, error) {
	if len(x) < 2 || len(y) < 2 {
		return nil, fmt.Errorf("streamline: grid needs at least 2 samples per axis, got %dx%d",
			len(x), len(y))
	}
	dx, err := evenSpacing(x, "x")
	if err != nil {
		return nil, err
	}
	dy, err := evenSpacing(y, "y")
	if err != nil {
		return nil, err
	}
	return &Grid{
		nx: len(x), ny: len(y),
		dx: dx, dy: dy,
		x0: x[0], y0: y[0],
		width:  x[len(x)-1] - x[0],
		height: y[len(y)-1] - y[0],
	}, nil
}

// NewGridMesh accepts 2D meshgrid-style coordinates where every row of
// x (and every column of y) repeats the same 1D axis, and collapses
// them to that axis.
func NewGridMesh(x, y [][]float64) (*Grid, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("streamline: empty meshgrid")
	}
	xRow := x[0]
	for i, row := range x {
		if len(row) != len(xRow) {
			return nil, fmt.Errorf("streamline: ragged x meshgrid at row %d", i)
		}
		for j := range row {
			if !scalar.EqualWithinAbsOrRel(row[j], xRow[j], spacingTol, spacingTol) {
				return nil, fmt.Errorf("streamline: x meshgrid rows differ at (%d,%d)", i, j)
			}
		}
	}
	yCol := make([]float64, len(y))
	for i, row := range y {
		if len(row) == 0 {
			return nil, fmt.Errorf("streamline: empty y meshgrid row %d", i)
		}
		yCol[i] = row[0]
		for j := range row {
			if !scalar.EqualWithinAbsOrRel(row[j], yCol[i], spacingTol, spacingTol) {
				return nil, fmt.Errorf("streamline: y meshgrid columns differ at (%d,%d)", i, j)
			}
		}
	}
	return NewGrid(xRow, yCol)
}

// evenSpacing returns the common spacing of a coordinate axis.
func evenSpacing(v []float64, name string) (float64, error) {
	d := v[1] - v[0]
	if d == 0 {
		return 0, fmt.Errorf("streamline: %s axis has zero spacing", name)
	}
	for i := 2; i < len(v); i++ {
		if !scalar.EqualWithinAbsOrRel(v[i]-v[i-1], d, spacingTol*math.Abs(d), spacingTol) {
			return 0, fmt.Errorf("streamline: %s axis is not evenly spaced at index %d", name, i)
		}
	}
	return d, nil
}

// Shape returns the grid dimensions (nx, ny).
func (g *Grid) Shape() (nx, ny int) { return g.nx, g.ny }

// ValidIndex reports whether the continuous grid coordinate lies inside
// the valid domain [0, nx-1] x [0, ny-1].
func (g *Grid) ValidIndex(xi, yi float64) bool {
	return xi >= 0 && xi <= float64(g.nx-1) && yi >= 0 && yi <= float64(g.ny-1)
}

// DataToGrid converts data coordinates to fractional grid indices.
func (g *Grid) DataToGrid(xd, yd float64) (xi, yi float64) {
	return (xd - g.x0) / g.dx, (yd - g.y0) / g.dy
}

// GridToData converts fractional grid indices back to data coordinates.
func (g *Grid) GridToData(xi, yi float64) (xd, yd float64) {
	return g.x0 + xi*g.dx, g.y0 + yi*g.dy
}
