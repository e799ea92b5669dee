// Package streamline traces integral curves of a 2D vector field for
// stream plots.
//
// Trajectories grow forward and backward from seed points by
// Runge-Kutta integration (fixed-step RK4, adaptive Runge-Kutta-
// Fehlberg, or adaptive Heun) and are kept apart by a coarse occupancy
// mask: once a trajectory claims a mask cell, no later trajectory may
// enter it. Seeds spiral inward from the domain boundary because
// edge-started streamlines read better than interior-seeded ones.
//
// Step sizes, error tolerances and length thresholds are expressed in
// axes-normalized units (0..1 per axis), so behavior does not depend on
// the physical coordinate range of the data.
package streamline
