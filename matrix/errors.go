// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels and factorizations MUST return these
// sentinels (wrapped with matrixErrorf for context), so callers can match
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf("Op", ErrX) at
// the outer boundary — callers will still use errors.Is to match.

var (
	// ErrShapeMismatch is returned when a kernel receives matrices whose
	// shapes forbid the requested operation, e.g. Mult's inner dimension.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrSingular is returned by LU.Solve or the algebra façade when a zero
	// pivot is encountered under the active tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotSPD is returned by Cholesky.Solve when the decomposition found a
	// non-positive pivot, i.e. the input was not symmetric positive-definite.
	ErrNotSPD = errors.New("matrix: not symmetric positive-definite")

	// ErrNoConvergence names an iteration that exceeded its cap without
	// satisfying the convergence test. DecomposeEigen and DecomposeSVD do
	// not return it; they report that condition through Converged() on
	// their result instead.
	ErrNoConvergence = errors.New("matrix: iteration did not converge")

	// ErrInvalidArgument is returned when a documented precondition is
	// violated, e.g. a non-square matrix passed to a square-only routine.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/errors.As still match the sentinel.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}
