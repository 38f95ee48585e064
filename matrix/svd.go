// SPDX-License-Identifier: MIT
//
// Singular value decomposition via Golub-Kahan bidiagonalization followed
// by an implicit-shift QR sweep on the bidiagonal form, with a final pass
// enforcing non-negative descending singular values.

package matrix

import (
	"math"

	"github.com/Kost1s/colt/numeric"
)

// SVDDecomposition is the result of factoring an m×n matrix A as
// U*Sigma*Vᵀ, U (m×m) and V (n×n) orthogonal, Sigma's diagonal holding the
// singular values in non-increasing order.
type SVDDecomposition struct {
	u, v      *Matrix
	s         []float64
	converged bool
}

// U returns the left singular vectors.
func (d *SVDDecomposition) U() *Matrix { return d.u }

// V returns the right singular vectors.
func (d *SVDDecomposition) V() *Matrix { return d.v }

// SingularValues returns Sigma's diagonal, non-increasing.
func (d *SVDDecomposition) SingularValues() []float64 { return append([]float64(nil), d.s...) }

// Rank counts singular values exceeding tolerance*max(m,n)*sigmaMax, the
// standard numerical-rank threshold.
func (d *SVDDecomposition) Rank(tolerance float64) int {
	if len(d.s) == 0 {
		return 0
	}
	threshold := tolerance * float64(max(d.u.Rows(), d.v.Rows())) * d.s[0]
	rank := 0
	for _, sv := range d.s {
		if sv > threshold {
			rank++
		}
	}

	return rank
}

// Cond returns the ratio of the largest to smallest singular value.
func (d *SVDDecomposition) Cond() float64 {
	if len(d.s) == 0 || d.s[len(d.s)-1] == 0 {
		return math.Inf(1)
	}

	return d.s[0] / d.s[len(d.s)-1]
}

// Norm2 returns the largest singular value, the induced 2-norm.
func (d *SVDDecomposition) Norm2() float64 {
	if len(d.s) == 0 {
		return 0
	}

	return d.s[0]
}

// Converged reports whether every singular value's QR sweep deflated within
// its iteration cap. When false, the trailing superdiagonal entry of a block
// that hit the cap was set to zero without having become negligible, so
// SingularValues (and any U/V columns tied to them) should be treated as
// approximate.
func (d *SVDDecomposition) Converged() bool { return d.converged }

// DecomposeSVD factors a (any shape) via bidiagonalization: alternating
// left Householder reflectors that zero each column below the diagonal and
// right Householder reflectors that zero each row past the superdiagonal,
// then implicit-shift Golub-Kahan QR steps (Givens rotations chased along
// the bidiagonal, Wilkinson shift from the trailing 2x2 of Bᵀ*B) that drive
// the superdiagonal toward zero while accumulating rotations into U and V.
func DecomposeSVD(a *Matrix, ctx *numeric.Context) (*SVDDecomposition, error) {
	c := numeric.Or(ctx)
	m, n := a.Rows(), a.Cols()
	transposed := false
	work := a
	if m < n {
		// The algorithm below assumes m >= n; factor Aᵀ instead and swap
		// U/V back afterward.
		work = a.Transpose()
		m, n = n, m
		transposed = true
	}

	b, err := work.Copy()
	if err != nil {
		return nil, matrixErrorf("DecomposeSVD", err)
	}
	u, err := Identity(m)
	if err != nil {
		return nil, matrixErrorf("DecomposeSVD", err)
	}
	v, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf("DecomposeSVD", err)
	}

	bidiagonalize(b, u, v)

	s, converged := diagonalizeBidiagonal(b, u, v, &c)

	if transposed {
		u, v = v, u
	}

	return &SVDDecomposition{u: u, v: v, s: s, converged: converged}, nil
}

// bidiagonalize reduces b (m×n, m>=n) in place to upper bidiagonal form via
// alternating left and right Householder reflectors, accumulating the left
// transform into u and the right transform into v.
func bidiagonalize(b, u, v *Matrix) {
	m, n := b.Rows(), b.Cols()
	for k := 0; k < n; k++ {
		// Left reflector zeroing column k below the diagonal.
		applyLeftHouseholder(b, u, k, k, m)

		if k < n-2 {
			// Right reflector zeroing row k past the superdiagonal.
			applyRightHouseholder(b, v, k, k+1, n)
		}
	}
}

// applyLeftHouseholder zeros b's column col in rows [row+1, m) using a
// Householder reflector built from rows [row, m), applying it to b's
// trailing columns and accumulating it into u's columns.
func applyLeftHouseholder(b, u *Matrix, row, col, m int) {
	n := b.Cols()
	norm := 0.0
	for i := row; i < m; i++ {
		v, _ := b.At(i, col)
		norm = math.Hypot(norm, v)
	}
	if norm == 0 {
		return
	}
	pivot, _ := b.At(row, col)
	if pivot < 0 {
		norm = -norm
	}
	w := make([]float64, m)
	for i := row; i < m; i++ {
		v, _ := b.At(i, col)
		w[i] = v / norm
	}
	w[row] += 1
	beta := w[row]
	if beta == 0 {
		return
	}

	for j := col; j < n; j++ {
		sum := 0.0
		for i := row; i < m; i++ {
			bij, _ := b.At(i, j)
			sum += w[i] * bij
		}
		sum = -sum / beta
		for i := row; i < m; i++ {
			bij, _ := b.At(i, j)
			_ = b.Set(i, j, bij+sum*w[i])
		}
	}
	for i := 0; i < u.Rows(); i++ {
		sum := 0.0
		for j := row; j < m; j++ {
			uij, _ := u.At(i, j)
			sum += w[j] * uij
		}
		sum = -sum / beta
		for j := row; j < m; j++ {
			uij, _ := u.At(i, j)
			_ = u.Set(i, j, uij+sum*w[j])
		}
	}
}

// applyRightHouseholder zeros b's row `row` in columns [col+1, n) using a
// Householder reflector built from columns [col, n), applying it to b's
// trailing rows and accumulating it into v's columns.
func applyRightHouseholder(b, v *Matrix, row, col, n int) {
	m := b.Rows()
	norm := 0.0
	for j := col; j < n; j++ {
		val, _ := b.At(row, j)
		norm = math.Hypot(norm, val)
	}
	if norm == 0 {
		return
	}
	pivot, _ := b.At(row, col)
	if pivot < 0 {
		norm = -norm
	}
	w := make([]float64, n)
	for j := col; j < n; j++ {
		val, _ := b.At(row, j)
		w[j] = val / norm
	}
	w[col] += 1
	beta := w[col]
	if beta == 0 {
		return
	}

	for i := row; i < m; i++ {
		sum := 0.0
		for j := col; j < n; j++ {
			bij, _ := b.At(i, j)
			sum += w[j] * bij
		}
		sum = -sum / beta
		for j := col; j < n; j++ {
			bij, _ := b.At(i, j)
			_ = b.Set(i, j, bij+sum*w[j])
		}
	}
	for i := 0; i < v.Rows(); i++ {
		sum := 0.0
		for j := col; j < n; j++ {
			vij, _ := v.At(i, j)
			sum += w[j] * vij
		}
		sum = -sum / beta
		for j := col; j < n; j++ {
			vij, _ := v.At(i, j)
			_ = v.Set(i, j, vij+sum*w[j])
		}
	}
}

// diagonalizeBidiagonal runs an implicit-shift QR sweep on the n×n upper
// bidiagonal block of b (diagonal d[k]=b[k,k], superdiagonal e[k]=b[k,k+1]),
// applying Givens rotations that accumulate into u and v's leading n
// columns, until the superdiagonal is negligible. Returns the resulting
// singular values, sorted non-increasing with u/v permuted to match, and
// whether every block deflated within its iteration cap.
func diagonalizeBidiagonal(b, u, v *Matrix, c *numeric.Context) ([]float64, bool) {
	n := b.Cols()
	d := make([]float64, n)
	e := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i], _ = b.At(i, i)
		if i < n-1 {
			e[i], _ = b.At(i, i+1)
		}
	}

	const maxIterPerValue = 75
	allConverged := true
	hi := n - 1
	for hi > 0 {
		iter := 0
		deflated := false
		for !deflated {
			lo := hi
			for lo > 0 {
				if math.Abs(e[lo-1]) <= c.Epsilon*(math.Abs(d[lo-1])+math.Abs(d[lo])) {
					e[lo-1] = 0

					break
				}
				lo--
			}
			if lo == hi {
				deflated = true

				break
			}

			iter++
			if iter > maxIterPerValue {
				// Give up on this value: drop the trailing superdiagonal
				// entry so the outer loop moves past hi.
				allConverged = false
				e[hi-1] = 0
				deflated = true

				break
			}

			// Wilkinson shift from the trailing 2x2 of Bᵀ*B.
			shift := wilkinsonShiftBidiagonal(d, e, hi)
			implicitQRStepBidiagonal(d, e, u, v, lo, hi, shift)
		}
		if math.Abs(e[hi-1]) <= c.Epsilon*(math.Abs(d[hi-1])+math.Abs(d[hi])) {
			hi--
		}
	}

	for i := range d {
		if d[i] < 0 {
			d[i] = -d[i]
			for r := 0; r < v.Rows(); r++ {
				vi, _ := v.At(r, i)
				_ = v.Set(r, i, -vi)
			}
		}
	}
	sortSingularValues(d, u, v)

	return d, allConverged
}

func wilkinsonShiftBidiagonal(d, e []float64, hi int) float64 {
	if hi == 0 {
		return d[0] * d[0]
	}
	dm1, dn := d[hi-1], d[hi]
	em1 := e[hi-1]
	var eBefore float64
	if hi >= 2 {
		eBefore = e[hi-2]
	}
	tmm := dm1*dm1 + eBefore*eBefore
	tmn := dm1 * em1
	tnn := dn*dn + em1*em1
	tr := tmm + tnn
	det := tmm*tnn - tmn*tmn
	disc := math.Sqrt(math.Max(tr*tr/4-det, 0))
	l1 := tr/2 + disc
	l2 := tr/2 - disc
	if math.Abs(l1-tnn) < math.Abs(l2-tnn) {
		return l1
	}

	return l2
}

// implicitQRStepBidiagonal applies one implicit-shift Golub-Kahan QR step
// to the active bidiagonal range [lo, hi], via a chase of Givens rotations
// alternately applied on the right (accumulated into v) and the left
// (accumulated into u).
func implicitQRStepBidiagonal(d, e []float64, u, v *Matrix, lo, hi int, shift float64) {
	f := d[lo]*d[lo] - shift
	g := d[lo] * e[lo]

	for k := lo; k < hi; k++ {
		cs, sn := givens(f, g)
		if k > lo {
			e[k-1] = cs*f - sn*g
		}
		f = cs*d[k] - sn*e[k]
		e[k] = sn*d[k] + cs*e[k]
		g = -sn * d[k+1]
		d[k+1] = cs * d[k+1]
		rotateColumns(v, k, k+1, cs, sn)

		cs, sn = givens(f, g)
		d[k] = cs*f - sn*g
		f = cs*e[k] - sn*d[k+1]
		d[k+1] = sn*e[k] + cs*d[k+1]
		e[k] = f
		if k < hi-1 {
			g = -sn * e[k+1]
			e[k+1] = cs * e[k+1]
		}
		rotateColumns(u, k, k+1, cs, sn)
	}
}

func givens(a, b float64) (cs, sn float64) {
	r := math.Hypot(a, b)
	if r == 0 {
		return 1, 0
	}

	return a / r, -b / r
}

func rotateColumns(m *Matrix, i, j int, cs, sn float64) {
	for r := 0; r < m.Rows(); r++ {
		mi, _ := m.At(r, i)
		mj, _ := m.At(r, j)
		_ = m.Set(r, i, cs*mi-sn*mj)
		_ = m.Set(r, j, sn*mi+cs*mj)
	}
}

func sortSingularValues(d []float64, u, v *Matrix) {
	n := len(d)
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if d[j] > d[best] {
				best = j
			}
		}
		if best == i {
			continue
		}
		d[i], d[best] = d[best], d[i]
		rotateColumns180(u, i, best)
		rotateColumns180(v, i, best)
	}
}

// rotateColumns180 swaps two columns in place; only reordering, not mixing,
// is needed here.
func rotateColumns180(m *Matrix, i, j int) {
	for r := 0; r < m.Rows(); r++ {
		mi, _ := m.At(r, i)
		mj, _ := m.At(r, j)
		_ = m.Set(r, i, mj)
		_ = m.Set(r, j, mi)
	}
}
