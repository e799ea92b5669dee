package plot3d

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hammockhippie/viz"
)

// ZDir names the axis a 2D shape is considered orthogonal to when
// embedded in 3D. The negated forms compensate for axis rotation; see
// RotateAxes. All primitives in one collection share a single ZDir.
type ZDir string

// Embedding axes.
const (
	ZDirX    ZDir = "x"
	ZDirY    ZDir = "y"
	ZDirZ    ZDir = "z"
	ZDirNegX ZDir = "-x"
	ZDirNegY ZDir = "-y"
	ZDirNegZ ZDir = "-z"
)

// DirVector returns the direction vector for a ZDir. The empty ZDir
// maps to the zero vector. Negated forms and anything else are caller
// mistakes.
func DirVector(d ZDir) (r3.Vec, error) {
	switch d {
	case ZDirX:
		return r3.Vec{X: 1}, nil
	case ZDirY:
		return r3.Vec{Y: 1}, nil
	case ZDirZ:
		return r3.Vec{Z: 1}, nil
	case "":
		return r3.Vec{}, nil
	}
	return r3.Vec{}, fmt.Errorf("plot3d: %q is not a direction axis", d)
}

// JuggleAxes reorders coordinates so a 2D (x, y) shape lies in the
// plane orthogonal to d, with z giving its position along that axis.
func JuggleAxes(x, y, z float64, d ZDir) r3.Vec {
	switch d {
	case ZDirX:
		return r3.Vec{X: z, Y: x, Z: y}
	case ZDirY:
		return r3.Vec{X: x, Y: z, Z: y}
	case ZDirNegX, ZDirNegY, ZDirNegZ:
		return RotateAxes(x, y, z, d)
	default:
		return r3.Vec{X: x, Y: y, Z: z}
	}
}

// RotateAxes reorders coordinates so the axes rotate with d along the
// original z axis; the negated forms apply the inverse rotation.
func RotateAxes(x, y, z float64, d ZDir) r3.Vec {
	switch d {
	case ZDirX:
		return r3.Vec{X: y, Y: z, Z: x}
	case ZDirNegX:
		return r3.Vec{X: z, Y: x, Z: y}
	case ZDirY:
		return r3.Vec{X: z, Y: x, Z: y}
	case ZDirNegY:
		return r3.Vec{X: y, Y: z, Z: x}
	default:
		return r3.Vec{X: x, Y: y, Z: z}
	}
}

// EmbedPoints lifts 2D points into 3D at position z along the d axis.
// This is the builder used to convert 2D artist geometry in place of
// any in-place type mutation.
func EmbedPoints(pts []viz.Point, z float64, d ZDir) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	for i, p := range pts {
		out[i] = JuggleAxes(p.X, p.Y, z, d)
	}
	return out
}
