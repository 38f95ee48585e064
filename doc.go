// Package colt is a dense numerical linear algebra library built around a
// strided, multidimensional view model: every grid, vector, and matrix is a
// (Structure, Storage) pair, where Structure describes shape and layout and
// Storage is a flat, shared buffer. View transforms — Range, Stride,
// Transpose, and axis-slicing — are O(1) and allocation-free; they never
// copy the underlying buffer, so two views can alias the same data on
// purpose.
//
// The module is organized under five subpackages:
//
//	structure/ — Extent, Layout and the composable view-transform algebra
//	storage/   — flat Float64Storage buffers, decoupled from shape
//	grid/      — the (Structure, Storage) window model, traversal
//	             strategies, and elementwise/aggregate operations
//	numeric/   — the process-wide tolerance context for float equality
//	matrix/    — dense matrix kernels (Gemm, Gemv, triangular solves) and
//	             the factorizations built on them: LU, QR, Cholesky,
//	             Eigen, SVD, and an Algebra façade that dispatches among
//	             them for Solve, Inverse, Det, Rank, Cond, and the norms
//
// A Matrix is a grid.Grid2d specialized with factorization-ready
// operations; Transpose and View return new Matrix values sharing the
// original's storage, while Copy and every factorization return matrices
// with independent storage.
//
//	go get github.com/Kost1s/colt
package colt
