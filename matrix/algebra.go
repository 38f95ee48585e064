// SPDX-License-Identifier: MIT
//
// Algebra is the dispatch façade over the factorizations in this package,
// picking whichever one each named operation is cheapest to answer with.

package matrix

import (
	"math"

	"github.com/Kost1s/colt/numeric"
)

// Solve returns X minimizing/solving A*X = B: LU with partial pivoting when
// A is square, least-squares QR otherwise.
func Solve(a, b *Matrix, ctx *numeric.Context) (*Matrix, error) {
	if a.Rows() == a.Cols() {
		lu, err := DecomposeLU(a, ctx)
		if err != nil {
			return nil, matrixErrorf("Solve", err)
		}

		return lu.Solve(b)
	}
	qr, err := DecomposeQR(a, ctx)
	if err != nil {
		return nil, matrixErrorf("Solve", err)
	}

	return qr.Solve(b)
}

// Inverse returns A⁻¹ via Solve(A, I). A must be square.
func Inverse(a *Matrix, ctx *numeric.Context) (*Matrix, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf("Inverse", err)
	}
	id, err := Identity(a.Rows())
	if err != nil {
		return nil, matrixErrorf("Inverse", err)
	}

	inv, err := Solve(a, id, ctx)
	if err != nil {
		return nil, matrixErrorf("Inverse", err)
	}

	return inv, nil
}

// Det returns A's determinant via LU. A must be square.
func Det(a *Matrix, ctx *numeric.Context) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf("Det", err)
	}
	lu, err := DecomposeLU(a, ctx)
	if err != nil {
		return 0, matrixErrorf("Det", err)
	}

	return lu.Det(), nil
}

// Rank counts singular values exceeding max(m,n)*sigmaMax*epsilon, via SVD.
func Rank(a *Matrix, ctx *numeric.Context) (int, error) {
	c := numeric.Or(ctx)
	svd, err := DecomposeSVD(a, ctx)
	if err != nil {
		return 0, matrixErrorf("Rank", err)
	}

	return svd.Rank(c.Epsilon), nil
}

// Cond returns A's condition number, the ratio of largest to smallest
// singular value, via SVD.
func Cond(a *Matrix, ctx *numeric.Context) (float64, error) {
	svd, err := DecomposeSVD(a, ctx)
	if err != nil {
		return 0, matrixErrorf("Cond", err)
	}

	return svd.Cond(), nil
}

// Norm2 returns A's induced 2-norm (largest singular value), via SVD.
func Norm2(a *Matrix, ctx *numeric.Context) (float64, error) {
	svd, err := DecomposeSVD(a, ctx)
	if err != nil {
		return 0, matrixErrorf("Norm2", err)
	}

	return svd.Norm2(), nil
}

// Norm1 returns A's induced 1-norm, the maximum absolute column sum.
func Norm1(a *Matrix) float64 {
	best := 0.0
	for j := 0; j < a.Cols(); j++ {
		sum := 0.0
		for i := 0; i < a.Rows(); i++ {
			v, _ := a.At(i, j)
			sum += math.Abs(v)
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

// NormInf returns A's induced infinity-norm, the maximum absolute row sum.
func NormInf(a *Matrix) float64 {
	best := 0.0
	for i := 0; i < a.Rows(); i++ {
		sum := 0.0
		for j := 0; j < a.Cols(); j++ {
			v, _ := a.At(i, j)
			sum += math.Abs(v)
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

// NormF returns A's Frobenius norm, the square root of the sum of squared
// entries.
func NormF(a *Matrix) float64 {
	sum := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			v, _ := a.At(i, j)
			sum = math.FMA(v, v, sum)
		}
	}

	return math.Sqrt(sum)
}

// Trace returns the sum of A's diagonal entries.
func Trace(a *Matrix) float64 {
	n := a.Rows()
	if a.Cols() < n {
		n = a.Cols()
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		v, _ := a.At(i, i)
		sum += v
	}

	return sum
}
