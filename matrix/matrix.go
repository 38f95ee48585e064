// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"
	"strings"

	"github.com/Kost1s/colt/grid"
	"github.com/Kost1s/colt/numeric"
	"github.com/Kost1s/colt/structure"
)

// Matrix is a dense double grid specialized with factorization-ready
// operations: (structure.Structure2d, storage.Float64Storage), the same
// (Structure, Storage) window model as grid.Grid2d, plus the kernels and
// decompositions in this package.
type Matrix struct {
	grid *grid.Grid2d
}

// NewMatrix allocates a fresh, zero-filled rows×cols Matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	extent, err := structure.NewExtent2d(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewMatrix", err)
	}
	g, err := grid.NewGrid2d(extent)
	if err != nil {
		return nil, matrixErrorf("NewMatrix", err)
	}

	return &Matrix{grid: g}, nil
}

// WrapMatrix builds a Matrix over an existing grid, sharing its storage.
// Used by view transforms (Transpose, View) so they stay O(1) and
// allocation-free.
func WrapMatrix(g *grid.Grid2d) *Matrix {
	return &Matrix{grid: g}
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1.0)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.grid.Rows() }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.grid.Cols() }

// Grid exposes the underlying grid.Grid2d, for callers that need the
// structure/storage pair directly (view transforms, kernels in this
// package).
func (m *Matrix) Grid() *grid.Grid2d { return m.grid }

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	v, err := m.grid.Get(row, col)
	if err != nil {
		return 0, matrixErrorf("At", err)
	}

	return v, nil
}

// Set assigns v to the element at (row, col).
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.grid.Set(row, col, v); err != nil {
		return matrixErrorf("Set", err)
	}

	return nil
}

// Transpose returns a view of m with rows and columns swapped, sharing m's
// storage — O(1), no copy.
func (m *Matrix) Transpose() *Matrix {
	return WrapMatrix(m.grid.Transposed())
}

// View returns a view of the sub-box starting at (startRow, startCol) with
// the given shape, sharing m's storage.
func (m *Matrix) View(startRow, startCol, rows, cols int) (*Matrix, error) {
	extent, err := structure.NewExtent2d(rows, cols)
	if err != nil {
		return nil, matrixErrorf("View", err)
	}
	g, err := m.grid.View(startRow, startCol, extent)
	if err != nil {
		return nil, matrixErrorf("View", err)
	}

	return WrapMatrix(g), nil
}

// Copy returns a Matrix with the same shape, owning independent storage,
// filled from m.
func (m *Matrix) Copy() (*Matrix, error) {
	g, err := m.grid.Copy()
	if err != nil {
		return nil, matrixErrorf("Copy", err)
	}

	return WrapMatrix(g), nil
}

// Assign copies every element of source into m, shapes must agree.
func (m *Matrix) Assign(source *Matrix) error {
	if err := ValidateSameShape(m, source); err != nil {
		return matrixErrorf("Assign", err)
	}
	if err := m.grid.Assign(source.grid); err != nil {
		return matrixErrorf("Assign", err)
	}

	return nil
}

// Fill assigns value to every element of m.
func (m *Matrix) Fill(value float64) { m.grid.Fill(value) }

// Equals reports whether m and other are shape-equal and every pair of
// corresponding elements compares equal under ctx (the process-wide default
// when ctx is nil).
func (m *Matrix) Equals(other *Matrix, ctx *numeric.Context) bool {
	if ValidateSameShape(m, other) != nil {
		return false
	}

	return m.grid.Equals(other.grid, ctx)
}

// Diag returns a fresh column vector (n×1 Matrix) holding m's diagonal,
// where n = min(Rows(), Cols()).
func (m *Matrix) Diag() (*Matrix, error) {
	n := m.Rows()
	if m.Cols() < n {
		n = m.Cols()
	}
	d, err := NewMatrix(n, 1)
	if err != nil {
		return nil, matrixErrorf("Diag", err)
	}
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		_ = d.Set(i, 0, v)
	}

	return d, nil
}

// String renders m as bracketed, row-major rows, for readable test
// failure output.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		b.WriteByte('[')
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
