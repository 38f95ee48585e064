// SPDX-License-Identifier: MIT
//
// In-place LU factorization with partial pivoting, reworked from a plain
// Doolittle elimination that has no pivoting and so cannot report
// IsSingular or solve systems that need a row exchange to find a nonzero
// pivot.

package matrix

import (
	"math"

	"github.com/Kost1s/colt/numeric"
)

// LUDecomposition is the result of LU-factoring an m×n matrix A with
// partial pivoting: P*A = L*U, L unit lower triangular, U upper triangular,
// Pivot recording the row-exchange sequence applied during factorization.
type LUDecomposition struct {
	lu        *Matrix // packed L (below diagonal) and U (on/above diagonal)
	pivot     []int   // pivot[k] = row swapped into position k
	parity    float64 // +1 or -1, flips on every row swap
	singular  bool
	epsilon   float64
}

// DecomposeLU factors a (m×n, m>=n is not required but Solve needs square)
// in place on a copy of a, using partial pivoting by column. ctx supplies
// the pivot tolerance (|A[k,k]| <= ctx.Epsilon marks a singular step); nil
// falls back to numeric.Current().
func DecomposeLU(a *Matrix, ctx *numeric.Context) (*LUDecomposition, error) {
	c := numeric.Or(ctx)
	work, err := a.Copy()
	if err != nil {
		return nil, matrixErrorf("DecomposeLU", err)
	}

	rows, cols := work.Rows(), work.Cols()
	n := rows
	if cols < n {
		n = cols
	}

	pivot := make([]int, n)
	parity := 1.0
	singular := false

	for k := 0; k < n; k++ {
		// Stage 1: find the row in [k, rows) with the largest |A[*,k]|.
		p := k
		best, _ := work.At(k, k)
		best = math.Abs(best)
		for i := k + 1; i < rows; i++ {
			v, _ := work.At(i, k)
			if av := math.Abs(v); av > best {
				best, p = av, i
			}
		}
		pivot[k] = p
		if p != k {
			if err := swapRows(work, k, p); err != nil {
				return nil, matrixErrorf("DecomposeLU", err)
			}
			parity = -parity
		}

		// Stage 2: flag singularity but keep going — downstream consumers
		// still want IsSingular/L/U even when the matrix is singular.
		pivotVal, _ := work.At(k, k)
		if c.IsZero(pivotVal) {
			singular = true

			continue
		}

		// Stage 3: eliminate below the pivot.
		for i := k + 1; i < rows; i++ {
			aik, _ := work.At(i, k)
			factor := aik / pivotVal
			_ = work.Set(i, k, factor)
			for j := k + 1; j < cols; j++ {
				aij, _ := work.At(i, j)
				akj, _ := work.At(k, j)
				_ = work.Set(i, j, aij-factor*akj)
			}
		}
	}

	return &LUDecomposition{lu: work, pivot: pivot, parity: parity, singular: singular, epsilon: c.Epsilon}, nil
}

func swapRows(m *Matrix, i, j int) error {
	for col := 0; col < m.Cols(); col++ {
		vi, _ := m.At(i, col)
		vj, _ := m.At(j, col)
		if err := m.Set(i, col, vj); err != nil {
			return err
		}
		if err := m.Set(j, col, vi); err != nil {
			return err
		}
	}

	return nil
}

// Pivot returns the row-exchange sequence recorded during factorization.
func (d *LUDecomposition) Pivot() []int { return append([]int(nil), d.pivot...) }

// IsSingular reports whether any pivot step produced a sub-tolerance
// diagonal entry.
func (d *LUDecomposition) IsSingular() bool { return d.singular }

// L returns the unit lower-triangular factor.
func (d *LUDecomposition) L() (*Matrix, error) {
	n := len(d.pivot)
	l, err := NewMatrix(d.lu.Rows(), n)
	if err != nil {
		return nil, matrixErrorf("LUDecomposition.L", err)
	}
	for i := 0; i < d.lu.Rows(); i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				_ = l.Set(i, j, 1)
			case i > j:
				v, _ := d.lu.At(i, j)
				_ = l.Set(i, j, v)
			}
		}
	}

	return l, nil
}

// U returns the upper-triangular factor.
func (d *LUDecomposition) U() (*Matrix, error) {
	n := len(d.pivot)
	u, err := NewMatrix(n, d.lu.Cols())
	if err != nil {
		return nil, matrixErrorf("LUDecomposition.U", err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < d.lu.Cols(); j++ {
			v, _ := d.lu.At(i, j)
			_ = u.Set(i, j, v)
		}
	}

	return u, nil
}

// Det returns the determinant of the original square matrix:
// parity * product of the diagonal of U. Only meaningful for square input.
func (d *LUDecomposition) Det() float64 {
	det := d.parity
	n := len(d.pivot)
	for i := 0; i < n; i++ {
		v, _ := d.lu.At(i, i)
		det *= v
	}

	return det
}

// Solve returns X solving A*X = B: permute B by Pivot, forward-solve L*Y =
// P*B, back-solve U*X = Y. Returns ErrSingular if any diagonal of U is
// within tolerance of zero.
func (d *LUDecomposition) Solve(b *Matrix) (*Matrix, error) {
	n := len(d.pivot)
	if b.Rows() != n {
		return nil, matrixErrorf("LUDecomposition.Solve", ErrShapeMismatch)
	}
	for i := 0; i < n; i++ {
		v, _ := d.lu.At(i, i)
		if math.Abs(v) <= d.epsilon {
			return nil, matrixErrorf("LUDecomposition.Solve", ErrSingular)
		}
	}

	x, err := b.Copy()
	if err != nil {
		return nil, matrixErrorf("LUDecomposition.Solve", err)
	}
	if err := ApplyPivot(x, d.pivot); err != nil {
		return nil, matrixErrorf("LUDecomposition.Solve", err)
	}

	l, err := d.L()
	if err != nil {
		return nil, matrixErrorf("LUDecomposition.Solve", err)
	}
	if err := Trsm(l, true, x); err != nil {
		return nil, matrixErrorf("LUDecomposition.Solve", err)
	}
	u, err := d.U()
	if err != nil {
		return nil, matrixErrorf("LUDecomposition.Solve", err)
	}
	if err := Trsm(u, false, x); err != nil {
		return nil, matrixErrorf("LUDecomposition.Solve", err)
	}

	return x, nil
}
