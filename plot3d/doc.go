// Package plot3d projects 3D plot geometry to 2D device coordinates and
// decides draw order and shading for painter's-algorithm rendering.
//
// The host 3D axes own the camera: every draw call supplies a fresh 4x4
// homogeneous transform (see Mat4) and the collection types re-project
// all of their geometry through it. Projected state is never reused
// across draws because the camera may have moved.
//
// Depth sorting is a heuristic, not a z-buffer: interpenetrating or
// non-planar filled polygons can draw in the wrong order. That is
// accepted behavior; callers needing exact occlusion must tessellate
// their geometry so polygons do not overlap in depth.
package plot3d
