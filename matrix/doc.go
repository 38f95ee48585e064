// SPDX-License-Identifier: MIT

// Package matrix implements the dense double matrix kernels and the
// factorizations built on top of them: LU, QR, Cholesky, Eigen, SVD, and
// the Algebra façade that dispatches among them.
//
// Matrix specializes a grid.Grid2d with factorization-ready operations; its
// factorizations return new Matrix values that own independent storage, as
// factorizations should. Kernels validate their inputs, through the helpers
// in validators.go or with inline shape checks, and report failures as one
// of the sentinel errors in errors.go.
package matrix
