package streamline

import "fmt"

// Mask is the coarse occupancy grid that keeps streamlines apart. Its
// resolution sets the approximate spacing between trajectories:
// trajectories may only pass through free cells, and claim each cell
// they enter. A Mask belongs to a single Streamplot call and is
// mutated only by the sequential seed-processing loop.
type Mask struct {
	nx, ny int
	cells  []uint8

	traj   [][2]int // cells claimed by the in-progress trajectory
	cur    [2]int
	hasCur bool
}

// NewMask sizes the mask at 30*density cells per axis. The grid/mask
// scale factors divide by nx-1, so a mask needs at least 2 cells per
// axis.
func NewMask(density float64) (*Mask, error) {
	if density <= 0 {
		return nil, fmt.Errorf("streamline: density must be positive, got %g", density)
	}
	n := int(30 * density)
	if n < 2 {
		return nil, fmt.Errorf("streamline: density %g yields a mask smaller than 2 cells per axis",
			density)
	}
	return &Mask{nx: n, ny: n, cells: make([]uint8, n*n)}, nil
}

// NewMaskXY sizes the mask independently per axis at 25*density cells,
// with the same 2-cell minimum as NewMask.
func NewMaskXY(densityX, densityY float64) (*Mask, error) {
	if densityX <= 0 || densityY <= 0 {
		return nil, fmt.Errorf("streamline: densities must be positive, got (%g, %g)",
			densityX, densityY)
	}
	nx, ny := int(25*densityX), int(25*densityY)
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("streamline: densities (%g, %g) yield a mask smaller than 2 cells per axis",
			densityX, densityY)
	}
	return &Mask{nx: nx, ny: ny, cells: make([]uint8, nx*ny)}, nil
}

// Shape returns the mask dimensions (nx, ny).
func (m *Mask) Shape() (nx, ny int) { return m.nx, m.ny }

// Occupied reports whether the cell has been claimed by a trajectory.
func (m *Mask) Occupied(xm, ym int) bool {
	return m.cells[ym*m.nx+xm] != 0
}

// startTrajectory begins recording a new trajectory at the given cell,
// clearing the per-trajectory visited list.
func (m *Mask) startTrajectory(xm, ym int) error {
	m.traj = m.traj[:0]
	m.hasCur = false
	return m.updateTrajectory(xm, ym)
}

// updateTrajectory claims the cell for the current trajectory.
// Re-marking the cell the trajectory currently occupies is a no-op;
// entering any other occupied cell is a collision.
func (m *Mask) updateTrajectory(xm, ym int) error {
	if m.hasCur && m.cur == [2]int{xm, ym} {
		return nil
	}
	if m.cells[ym*m.nx+xm] != 0 {
		return ErrCellOccupied
	}
	m.cells[ym*m.nx+xm] = 1
	m.traj = append(m.traj, [2]int{xm, ym})
	m.cur = [2]int{xm, ym}
	m.hasCur = true
	return nil
}

// undoTrajectory frees every cell the aborted trajectory claimed.
func (m *Mask) undoTrajectory() {
	for _, c := range m.traj {
		m.cells[c[1]*m.nx+c[0]] = 0
	}
	m.traj = m.traj[:0]
	m.hasCur = false
}

// DomainMap converts between the grid-index and mask-index coordinate
// systems using scale factors precomputed from the two resolutions, and
// routes trajectory bookkeeping to the mask. Start a trajectory before
// integrating; if it turns out too short, UndoTrajectory rolls back its
// mask occupancy.
type DomainMap struct {
	grid *Grid
	mask *Mask

	xGrid2Mask, yGrid2Mask float64
	xMask2Grid, yMask2Grid float64
}

// NewDomainMap precomputes the grid/mask scale factors.
func NewDomainMap(grid *Grid, mask *Mask) *DomainMap {
	x2m := float64(mask.nx-1) / float64(grid.nx)
	y2m := float64(mask.ny-1) / float64(grid.ny)
	return &DomainMap{
		grid:       grid,
		mask:       mask,
		xGrid2Mask: x2m,
		yGrid2Mask: y2m,
		xMask2Grid: 1 / x2m,
		yMask2Grid: 1 / y2m,
	}
}

// GridToMask returns the nearest mask cell for a grid coordinate.
func (d *DomainMap) GridToMask(xi, yi float64) (xm, ym int) {
	return int(xi*d.xGrid2Mask + 0.5), int(yi*d.yGrid2Mask + 0.5)
}

// MaskToGrid returns the grid coordinate of a mask cell.
func (d *DomainMap) MaskToGrid(xm, ym int) (xi, yi float64) {
	return float64(xm) * d.xMask2Grid, float64(ym) * d.yMask2Grid
}

// StartTrajectory begins mask bookkeeping for a trajectory seeded at
// the given grid coordinate.
func (d *DomainMap) StartTrajectory(xi, yi float64) error {
	xm, ym := d.GridToMask(xi, yi)
	return d.mask.startTrajectory(xm, ym)
}

// ResetStartPoint repositions the trajectory cursor at the seed without
// claiming cells, so backward integration does not collide with the
// forward half's first step.
func (d *DomainMap) ResetStartPoint(xi, yi float64) {
	xm, ym := d.GridToMask(xi, yi)
	d.mask.cur = [2]int{xm, ym}
	d.mask.hasCur = true
}

// UpdateTrajectory claims the mask cell under the grid coordinate.
// Positions outside the grid return ErrOutsideGrid before the mask is
// touched; occupied foreign cells return ErrCellOccupied.
func (d *DomainMap) UpdateTrajectory(xi, yi float64) error {
	if !d.grid.ValidIndex(xi, yi) {
		return ErrOutsideGrid
	}
	xm, ym := d.GridToMask(xi, yi)
	return d.mask.updateTrajectory(xm, ym)
}

// UndoTrajectory rolls back every cell the current trajectory claimed.
func (d *DomainMap) UndoTrajectory() {
	d.mask.undoTrajectory()
}
