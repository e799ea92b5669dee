// Package viz provides the numerical core of a 2D/3D plotting library.
//
// # Overview
//
// viz contains the coordinate and color primitives shared by its
// subpackages, plus the narrow interfaces through which a host plotting
// layer drives rendering. The heavy lifting lives in the subpackages:
//
//   - plot3d: 4x4 homogeneous projection of 3D geometry to 2D device
//     coordinates, depth sorting for painter's-algorithm occlusion,
//     directional-light shading, and the 3D collection types that
//     orchestrate re-projection on every draw.
//   - streamline: integral curves of a 2D vector field with adaptive
//     step-size control and an occupancy mask that keeps streamlines
//     evenly spaced.
//
// # Quick Start
//
//	import (
//	    "github.com/hammockhippie/viz"
//	    "github.com/hammockhippie/viz/streamline"
//	)
//
//	trajs, err := streamline.Streamplot(x, y, u, v,
//	    streamline.WithDensity(1.5),
//	    streamline.WithIntegrator(streamline.IntegratorRK45))
//
// # Architecture
//
// viz does not rasterize. Callers implement PathSink to receive 2D
// vertex lists with resolved styles; actual pixel or vector output is
// the host backend's job. Likewise the live camera matrix is supplied
// by the host axes on every draw: nothing in this module caches a
// projection result across camera moves.
//
// # Coordinate System
//
// Device coordinates follow the projection matrix supplied by the host.
// Depth values are only compared, never rendered; larger depth means
// farther from the camera.
package viz
