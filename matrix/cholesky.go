// SPDX-License-Identifier: MIT
package matrix

import "math"

// CholeskyDecomposition is the result of factoring a symmetric matrix A as
// L*Lᵀ, L lower triangular. IsSPD reports whether A actually is symmetric
// positive definite; when it is not, L holds whatever partial factor the
// column-wise computation produced up to the first non-positive pivot.
type CholeskyDecomposition struct {
	l   *Matrix
	spd bool
}

// DecomposeCholesky factors a's symmetric part column by column: for each
// column j, L[j,j] = sqrt(A[j,j] - sum_{k<j} L[j,k]^2), then every L[i,j]
// for i>j follows from (A[i,j] - sum_{k<j} L[i,k]*L[j,k]) / L[j,j]. Only
// the lower triangle of a is read; a is not required to be symmetric on
// input, but Cholesky is meaningless unless it is.
func DecomposeCholesky(a *Matrix) (*CholeskyDecomposition, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf("DecomposeCholesky", err)
	}
	n := a.Rows()
	l, err := NewMatrix(n, n)
	if err != nil {
		return nil, matrixErrorf("DecomposeCholesky", err)
	}

	spd := true
	for j := 0; j < n; j++ {
		diag, _ := a.At(j, j)
		for k := 0; k < j; k++ {
			ljk, _ := l.At(j, k)
			diag -= ljk * ljk
		}
		if diag <= 0 {
			spd = false
			diag = 0
		} else {
			diag = math.Sqrt(diag)
		}
		_ = l.Set(j, j, diag)

		if diag == 0 {
			break
		}
		for i := j + 1; i < n; i++ {
			sum, _ := a.At(i, j)
			for k := 0; k < j; k++ {
				lik, _ := l.At(i, k)
				ljk, _ := l.At(j, k)
				sum -= lik * ljk
			}
			_ = l.Set(i, j, sum/diag)
		}
	}

	return &CholeskyDecomposition{l: l, spd: spd}, nil
}

// L returns the lower-triangular factor.
func (d *CholeskyDecomposition) L() *Matrix { return d.l }

// IsSPD reports whether the input was symmetric positive definite.
func (d *CholeskyDecomposition) IsSPD() bool { return d.spd }

// Solve returns X solving A*X = B via forward-solve L*Y = B followed by
// back-solve Lᵀ*X = Y. Returns ErrNotSPD if the factorization detected a
// non-positive pivot.
func (d *CholeskyDecomposition) Solve(b *Matrix) (*Matrix, error) {
	if !d.spd {
		return nil, matrixErrorf("CholeskyDecomposition.Solve", ErrNotSPD)
	}
	if b.Rows() != d.l.Rows() {
		return nil, matrixErrorf("CholeskyDecomposition.Solve", ErrShapeMismatch)
	}

	x, err := b.Copy()
	if err != nil {
		return nil, matrixErrorf("CholeskyDecomposition.Solve", err)
	}
	if err := Trsm(d.l, true, x); err != nil {
		return nil, matrixErrorf("CholeskyDecomposition.Solve", err)
	}
	if err := Trsm(d.l.Transpose(), false, x); err != nil {
		return nil, matrixErrorf("CholeskyDecomposition.Solve", err)
	}

	return x, nil
}
