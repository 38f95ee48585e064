// Package grid implements the lattice base and the loop
// strategies on top of package structure and package storage:
// Grid1d/Grid2d/Grid3d pair a structure.StructureNd with a
// storage.Float64Storage to give element access, fill, unary/binary
// elementwise maps, reduce, and equality — all routed through the active
// numeric.Context for tolerance-aware comparisons.
package grid
