// SPDX-License-Identifier: MIT
//
// Dense BLAS-2/3 kernels: gemm, gemv, triangular solve, and pivot
// application. transA/transB are applied as Matrix.Transpose
// view transforms — O(1), never a copy — before any shape check or loop.

package matrix

import "math"

// blockSize is the cache-tiling side used by Mult's triple loop. It is an
// implementation detail only observable through performance, never through
// result values.
const blockSize = 48

// Mult computes c <- alpha*opA(a)*opB(b) + beta*c, where opA/opB apply
// Transpose when transA/transB is set. If c is nil, a fresh matrix of the
// resulting shape is allocated with beta treated as if c were all zero.
//
// Errors:
//   - ErrShapeMismatch if opA(a).Cols() != opB(b).Rows(), or c's shape
//     disagrees with (opA(a).Rows(), opB(b).Cols()).
func (a *Matrix) Mult(b, c *Matrix, alpha, beta float64, transA, transB bool) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Mult", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Mult", err)
	}
	effA, effB := a, b
	if transA {
		effA = a.Transpose()
	}
	if transB {
		effB = b.Transpose()
	}
	if err := ValidateMulCompatible(effA, effB); err != nil {
		return nil, matrixErrorf("Mult", err)
	}
	rows, cols, inner := effA.Rows(), effB.Cols(), effA.Cols()

	if c == nil {
		fresh, err := NewMatrix(rows, cols)
		if err != nil {
			return nil, matrixErrorf("Mult", err)
		}
		c, beta = fresh, 0
	} else if c.Rows() != rows || c.Cols() != cols {
		return nil, matrixErrorf("Mult", ErrShapeMismatch)
	}

	// Scale the existing C contribution up front so the tiled accumulation
	// loop below only ever adds alpha*A*B.
	if beta == 0 {
		c.Fill(0)
	} else if beta != 1 {
		c.grid.AssignUnary(func(v float64) float64 { return beta * v })
	}

	for ii := 0; ii < rows; ii += blockSize {
		iMax := min(ii+blockSize, rows)
		for kk := 0; kk < inner; kk += blockSize {
			kMax := min(kk+blockSize, inner)
			for jj := 0; jj < cols; jj += blockSize {
				jMax := min(jj+blockSize, cols)
				multBlock(effA, effB, c, alpha, ii, iMax, jj, jMax, kk, kMax)
			}
		}
	}

	return c, nil
}

// multBlock accumulates c[i,j] += alpha * sum_k a[i,k]*b[k,j] over one
// (i,j,k) tile, using a fused multiply-add for the inner product term.
func multBlock(a, b, c *Matrix, alpha float64, iLo, iHi, jLo, jHi, kLo, kHi int) {
	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			sum, _ := c.At(i, j)
			for k := kLo; k < kHi; k++ {
				av, _ := a.At(i, k)
				bv, _ := b.At(k, j)
				sum = math.FMA(alpha*av, bv, sum)
			}
			_ = c.Set(i, j, sum)
		}
	}
}

// Gemv computes y <- alpha*opA(a)*x + beta*y, applying Transpose to a when
// transA is set. len(x) must equal opA(a).Cols(); len(y) must equal
// opA(a).Rows().
func Gemv(a *Matrix, transA bool, x []float64, alpha float64, y []float64, beta float64) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf("Gemv", err)
	}
	effA := a
	if transA {
		effA = a.Transpose()
	}
	if err := ValidateVecLen(x, effA.Cols()); err != nil {
		return matrixErrorf("Gemv", err)
	}
	if err := ValidateVecLen(y, effA.Rows()); err != nil {
		return matrixErrorf("Gemv", err)
	}
	for i := range y {
		sum := 0.0
		for k := range x {
			av, _ := effA.At(i, k)
			sum = math.FMA(av, x[k], sum)
		}
		y[i] = math.FMA(alpha, sum, beta*y[i])
	}

	return nil
}

// Trsv solves l*x = b (lower=true) or u*x = b (lower=false) in place,
// overwriting b with the solution x. The caller asserts triangularity;
// behavior is undefined if t has non-zero entries on the
// wrong side of the diagonal — the factorizations that produce their L/U
// operands guarantee this.
func Trsv(t *Matrix, lower bool, b []float64) error {
	n := t.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return matrixErrorf("Trsv", err)
	}
	if lower {
		for i := 0; i < n; i++ {
			sum := b[i]
			for k := 0; k < i; k++ {
				tik, _ := t.At(i, k)
				sum -= tik * b[k]
			}
			tii, _ := t.At(i, i)
			b[i] = sum / tii
		}

		return nil
	}
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for k := i + 1; k < n; k++ {
			tik, _ := t.At(i, k)
			sum -= tik * b[k]
		}
		tii, _ := t.At(i, i)
		b[i] = sum / tii
	}

	return nil
}

// Trsm solves t*X = B in place for the matrix right-hand side b, column by
// column, via Trsv.
func Trsm(t *Matrix, lower bool, b *Matrix) error {
	n := t.Rows()
	if b.Rows() != n {
		return matrixErrorf("Trsm", ErrShapeMismatch)
	}
	col := make([]float64, n)
	for j := 0; j < b.Cols(); j++ {
		for i := 0; i < n; i++ {
			col[i], _ = b.At(i, j)
		}
		if err := Trsv(t, lower, col); err != nil {
			return matrixErrorf("Trsm", err)
		}
		for i := 0; i < n; i++ {
			_ = b.Set(i, j, col[i])
		}
	}

	return nil
}

// ApplyPivot reorders the rows of m in place following pivot, a row-exchange
// sequence as produced by LU: for i in order, row i is swapped with row
// pivot[i]. Applying the same sequence in the same order is how LU.Solve
// turns B into P*B.
func ApplyPivot(m *Matrix, pivot []int) error {
	if len(pivot) != m.Rows() {
		return matrixErrorf("ApplyPivot", ErrShapeMismatch)
	}
	for i, p := range pivot {
		if p == i {
			continue
		}
		for j := 0; j < m.Cols(); j++ {
			vi, _ := m.At(i, j)
			vp, _ := m.At(p, j)
			_ = m.Set(i, j, vp)
			_ = m.Set(p, j, vi)
		}
	}

	return nil
}
