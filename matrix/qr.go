// SPDX-License-Identifier: MIT
//
// Householder QR with column norms, generalized from square-only to m>=n,
// packing the reflectors in place below the diagonal instead of applying
// them eagerly to an explicit Q — Solve never needs to build Q.

package matrix

import (
	"math"

	"github.com/Kost1s/colt/numeric"
)

// QRDecomposition is the result of Householder-factoring an m×n matrix A
// (m >= n) into an orthogonal Q (m×m) and upper-triangular R (m×n):
// A = Q*R.
type QRDecomposition struct {
	packed  *Matrix   // A with reflectors stored below the diagonal, column k's reflector in rows [k,m)
	rdiag   []float64 // R's diagonal, signed separately from packed's diagonal entry
	epsilon float64
}

// DecomposeQR factors a (rows m >= cols n) via Householder reflectors. For
// column k, the reflector is computed over rows [k, m), normalized so its
// first component is 1, with the reflection's signed scale recorded in
// Rdiag[k]; the reflector vector itself is packed in place below the
// diagonal of the working copy.
func DecomposeQR(a *Matrix, ctx *numeric.Context) (*QRDecomposition, error) {
	c := numeric.Or(ctx)
	if a.Rows() < a.Cols() {
		return nil, matrixErrorf("DecomposeQR", ErrInvalidArgument)
	}
	work, err := a.Copy()
	if err != nil {
		return nil, matrixErrorf("DecomposeQR", err)
	}
	m, n := work.Rows(), work.Cols()
	rdiag := make([]float64, n)

	for k := 0; k < n; k++ {
		// Stage 1: column norm over rows [k, m).
		norm := 0.0
		for i := k; i < m; i++ {
			v, _ := work.At(i, k)
			norm = math.Hypot(norm, v)
		}
		if c.IsZero(norm) {
			rdiag[k] = 0

			continue
		}

		// Stage 2: choose the sign that avoids cancellation, then normalize
		// the reflector so its leading component is 1.
		pivot, _ := work.At(k, k)
		if pivot < 0 {
			norm = -norm
		}
		for i := k; i < m; i++ {
			v, _ := work.At(i, k)
			_ = work.Set(i, k, v/norm)
		}
		pivot, _ = work.At(k, k)
		_ = work.Set(k, k, pivot+1)

		// Stage 3: apply the reflector to the trailing columns
		// [k+1, n): col -= (v.col/v[k]) * v.
		for j := k + 1; j < n; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				vi, _ := work.At(i, k)
				aij, _ := work.At(i, j)
				sum += vi * aij
			}
			vk, _ := work.At(k, k)
			sum = -sum / vk
			for i := k; i < m; i++ {
				vi, _ := work.At(i, k)
				aij, _ := work.At(i, j)
				_ = work.Set(i, j, aij+sum*vi)
			}
		}
		rdiag[k] = -norm
	}

	return &QRDecomposition{packed: work, rdiag: rdiag, epsilon: c.Epsilon}, nil
}

// HasFullRank reports whether every entry of Rdiag exceeds tolerance.
func (d *QRDecomposition) HasFullRank() bool {
	for _, v := range d.rdiag {
		if math.Abs(v) <= d.epsilon {
			return false
		}
	}

	return true
}

// Rdiag returns R's diagonal.
func (d *QRDecomposition) Rdiag() []float64 { return append([]float64(nil), d.rdiag...) }

// H returns a copy of the packed reflector matrix: column k's Householder
// vector (normalized so its leading component is 1) occupies rows [k, m)
// at and below the diagonal; entries strictly above the diagonal hold R's
// off-diagonal values, exactly as the factorization leaves them.
func (d *QRDecomposition) H() (*Matrix, error) {
	h, err := d.packed.Copy()
	if err != nil {
		return nil, matrixErrorf("QRDecomposition.H", err)
	}

	return h, nil
}

// Packed returns the compact packed form (H, Rdiag) without building the
// explicit m×m Q: a caller that only needs to apply Qᵀ to a right-hand side
// can replay the same reflector loop Solve uses directly against H and
// Rdiag, exactly as Solve does internally.
func (d *QRDecomposition) Packed() (*Matrix, []float64, error) {
	h, err := d.H()
	if err != nil {
		return nil, nil, matrixErrorf("QRDecomposition.Packed", err)
	}

	return h, d.Rdiag(), nil
}

// R returns the explicit n×n upper-triangular factor.
func (d *QRDecomposition) R() (*Matrix, error) {
	n := len(d.rdiag)
	r, err := NewMatrix(n, n)
	if err != nil {
		return nil, matrixErrorf("QRDecomposition.R", err)
	}
	for i := 0; i < n; i++ {
		_ = r.Set(i, i, d.rdiag[i])
		for j := i + 1; j < n; j++ {
			v, _ := d.packed.At(i, j)
			_ = r.Set(i, j, v)
		}
	}

	return r, nil
}

// Q builds the explicit m×m orthogonal factor by applying the packed
// reflectors to the identity, right to left. Solve never
// calls this; it exists for callers that need Q itself.
func (d *QRDecomposition) Q() (*Matrix, error) {
	m := d.packed.Rows()
	n := len(d.rdiag)
	q, err := Identity(m)
	if err != nil {
		return nil, matrixErrorf("QRDecomposition.Q", err)
	}
	for k := n - 1; k >= 0; k-- {
		vk, _ := d.packed.At(k, k)
		if vk == 0 {
			continue
		}
		for j := 0; j < m; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				vi, _ := d.packed.At(i, k)
				qij, _ := q.At(i, j)
				sum += vi * qij
			}
			sum = -sum / vk
			for i := k; i < m; i++ {
				vi, _ := d.packed.At(i, k)
				qij, _ := q.At(i, j)
				_ = q.Set(i, j, qij+sum*vi)
			}
		}
	}

	return q, nil
}

// Solve returns X minimizing ||A*X - B|| (exactly solving when A is square
// and full rank): apply Qᵀ to B via the packed reflectors, then back-solve
// R*X = Qᵀ*B. Returns ErrSingular if HasFullRank is false.
func (d *QRDecomposition) Solve(b *Matrix) (*Matrix, error) {
	if !d.HasFullRank() {
		return nil, matrixErrorf("QRDecomposition.Solve", ErrSingular)
	}
	m := d.packed.Rows()
	n := len(d.rdiag)
	if b.Rows() != m {
		return nil, matrixErrorf("QRDecomposition.Solve", ErrShapeMismatch)
	}

	y, err := b.Copy()
	if err != nil {
		return nil, matrixErrorf("QRDecomposition.Solve", err)
	}
	// Apply Qᵀ column by column of the right-hand side, same reflector
	// order (k ascending) the forward factorization used.
	for j := 0; j < y.Cols(); j++ {
		for k := 0; k < n; k++ {
			vk, _ := d.packed.At(k, k)
			if vk == 0 {
				continue
			}
			sum := 0.0
			for i := k; i < m; i++ {
				vi, _ := d.packed.At(i, k)
				yij, _ := y.At(i, j)
				sum += vi * yij
			}
			sum = -sum / vk
			for i := k; i < m; i++ {
				vi, _ := d.packed.At(i, k)
				yij, _ := y.At(i, j)
				_ = y.Set(i, j, yij+sum*vi)
			}
		}
	}

	r, err := d.R()
	if err != nil {
		return nil, matrixErrorf("QRDecomposition.Solve", err)
	}
	top, err := y.View(0, 0, n, y.Cols())
	if err != nil {
		return nil, matrixErrorf("QRDecomposition.Solve", err)
	}
	x, err := top.Copy()
	if err != nil {
		return nil, matrixErrorf("QRDecomposition.Solve", err)
	}
	if err := Trsm(r, false, x); err != nil {
		return nil, matrixErrorf("QRDecomposition.Solve", err)
	}

	return x, nil
}
