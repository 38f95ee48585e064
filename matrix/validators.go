// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/factorizations minimal by delegating shape/nil/symmetry
//    checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "math"

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrInvalidArgument
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
func ValidateSameShape(a, b *Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateSquare ensures m is square.
func ValidateSquare(m *Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrInvalidArgument
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, the shape contract gemm
// and its callers require.
func ValidateMulCompatible(a, b *Matrix) error {
	if a.Cols() != b.Rows() {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateVecLen ensures x has exactly n elements.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateSymmetric checks that m is symmetric within tol:
// |m[i,j] - m[j,i]| <= tol for every i<j. m must already be square.
func ValidateSymmetric(m *Matrix, tol float64) error {
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return ErrInvalidArgument
			}
		}
	}

	return nil
}

// IsSymmetric reports whether m is square and symmetric within tol; it never
// returns an error, making it convenient for dispatch decisions.
func IsSymmetric(m *Matrix, tol float64) bool {
	if m.Rows() != m.Cols() {
		return false
	}

	return ValidateSymmetric(m, tol) == nil
}
