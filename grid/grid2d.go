// SPDX-License-Identifier: MIT
package grid

import (
	"github.com/Kost1s/colt/numeric"
	"github.com/Kost1s/colt/storage"
	"github.com/Kost1s/colt/structure"
)

// Grid2d is a window onto a storage.Float64Storage through a
// structure.Structure2d: (Structure, Storage). Mutation through any Grid2d
// sharing the same storage is visible to every other grid over that storage.
type Grid2d struct {
	Structure structure.Structure2d
	Storage   storage.Float64Storage
}

// NewGrid2d allocates a fresh, densely-packed Grid2d over extent.
func NewGrid2d(extent structure.Extent2d) (*Grid2d, error) {
	s, err := storage.NewDenseFloat64(extent.Size())
	if err != nil {
		return nil, gridErrorf("NewGrid2d", err)
	}

	return &Grid2d{Structure: structure.NewStructure2d(extent), Storage: s}, nil
}

// WrapGrid2d builds a Grid2d from an existing structure and storage without
// copying either.
func WrapGrid2d(s structure.Structure2d, data storage.Float64Storage) *Grid2d {
	return &Grid2d{Structure: s, Storage: data}
}

// Rows returns the row count of g's extent.
func (g *Grid2d) Rows() int { return g.Structure.Extent.Rows() }

// Cols returns the column count of g's extent.
func (g *Grid2d) Cols() int { return g.Structure.Extent.Cols() }

// Get returns the element at (row, col).
func (g *Grid2d) Get(row, col int) (float64, error) {
	off, err := g.Structure.Offset(row, col)
	if err != nil {
		return 0, gridErrorf("Grid2d.Get", err)
	}

	return g.Storage.At(off), nil
}

// Set assigns v to the element at (row, col).
func (g *Grid2d) Set(row, col int, v float64) error {
	off, err := g.Structure.Offset(row, col)
	if err != nil {
		return gridErrorf("Grid2d.Set", err)
	}
	g.Storage.Set(off, v)

	return nil
}

// View returns a new Grid2d over the range starting at (startRow, startCol)
// with the given extent, sharing g's storage.
func (g *Grid2d) View(startRow, startCol int, extent structure.Extent2d) (*Grid2d, error) {
	s, err := g.Structure.Range(startRow, startCol, extent)
	if err != nil {
		return nil, gridErrorf("Grid2d.View", err)
	}

	return WrapGrid2d(s, g.Storage), nil
}

// Strided returns a new Grid2d keeping every rowStep-th row and colStep-th
// column, sharing g's storage.
func (g *Grid2d) Strided(rowStep, colStep int) (*Grid2d, error) {
	s, err := g.Structure.Stride(rowStep, colStep)
	if err != nil {
		return nil, gridErrorf("Grid2d.Strided", err)
	}

	return WrapGrid2d(s, g.Storage), nil
}

// Transposed returns a new Grid2d with rows and columns swapped, sharing g's
// storage — a pure view transform, never a copy.
func (g *Grid2d) Transposed() *Grid2d {
	return WrapGrid2d(g.Structure.Transpose(), g.Storage)
}

// extentEqual reports whether g and other agree axis-for-axis (and in
// channels).
func (g *Grid2d) extentEqual(other *Grid2d) bool {
	return g.Rows() == other.Rows() && g.Cols() == other.Cols() &&
		g.Structure.Extent.Channels() == other.Structure.Extent.Channels()
}

// Fill assigns value to every element of g.
func (g *Grid2d) Fill(value float64) {
	ForEach2d(g.Structure.Extent, RowMajor, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		g.Storage.Set(off, value)

		return true
	})
}

// AssignUnary replaces every element x with f(x).
func (g *Grid2d) AssignUnary(f func(float64) float64) {
	ForEach2d(g.Structure.Extent, RowMajor, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		g.Storage.Set(off, f(g.Storage.At(off)))

		return true
	})
}

// AssignBinary replaces every element x with f(x, other[i]). g and other
// must be extent-equal.
func (g *Grid2d) AssignBinary(other *Grid2d, f func(a, b float64) float64) error {
	if !g.extentEqual(other) {
		return gridErrorf("Grid2d.AssignBinary", ErrExtentMismatch)
	}
	ForEach2d(g.Structure.Extent, RowMajor, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		otherOff, _ := other.Structure.Offset(row, col)
		g.Storage.Set(off, f(g.Storage.At(off), other.Storage.At(otherOff)))

		return true
	})

	return nil
}

// Assign copies every element of source into g. When both g and source are
// row-major contiguous and back onto storage.DenseFloat64, Assign uses a
// single flat block copy; otherwise it falls back
// to the default row-major loop.
func (g *Grid2d) Assign(source *Grid2d) error {
	if !g.extentEqual(source) {
		return gridErrorf("Grid2d.Assign", ErrExtentMismatch)
	}
	if dst, ok := g.Storage.(*storage.DenseFloat64); ok {
		if src, ok := source.Storage.(*storage.DenseFloat64); ok {
			if g.Structure.IsRowMajorContiguous() && source.Structure.IsRowMajorContiguous() {
				n := g.Structure.Extent.Size()
				copy(dst.Raw()[g.Structure.Layout.Start:g.Structure.Layout.Start+n],
					src.Raw()[source.Structure.Layout.Start:source.Structure.Layout.Start+n])

				return nil
			}
		}
	}

	ForEach2d(g.Structure.Extent, RowMajor, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		srcOff, _ := source.Structure.Offset(row, col)
		g.Storage.Set(off, source.Storage.At(srcOff))

		return true
	})

	return nil
}

// Swap exchanges every element of g with the corresponding element of other.
// g and other must be extent-equal.
func (g *Grid2d) Swap(other *Grid2d) error {
	if !g.extentEqual(other) {
		return gridErrorf("Grid2d.Swap", ErrExtentMismatch)
	}
	ForEach2d(g.Structure.Extent, RowMajor, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		otherOff, _ := other.Structure.Offset(row, col)
		a, b := g.Storage.At(off), other.Storage.At(otherOff)
		g.Storage.Set(off, b)
		other.Storage.Set(otherOff, a)

		return true
	})

	return nil
}

// Reduce right-folds g's elements under unary then binary: a(last) =
// unary(x[last]); a(i) = binary(a(i+1), unary(x[i])), visited in Backward
// (descending) order so non-associative reducers are reproducible. ok is
// false if g has zero elements.
func (g *Grid2d) Reduce(binary func(acc, x float64) float64, unary func(x float64) float64) (result float64, ok bool) {
	first := true
	ForEach2d(g.Structure.Extent, Backward, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		v := unary(g.Storage.At(off))
		if first {
			result, ok, first = v, true, false
		} else {
			result = binary(result, v)
		}

		return true
	})

	return result, ok
}

// AnyMatch reports whether predicate holds for at least one element.
func (g *Grid2d) AnyMatch(predicate func(float64) bool) bool {
	found := false
	ForEach2d(g.Structure.Extent, RowMajor, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		if predicate(g.Storage.At(off)) {
			found = true

			return false
		}

		return true
	})

	return found
}

// AllMatch reports whether predicate holds for every element.
func (g *Grid2d) AllMatch(predicate func(float64) bool) bool {
	return !g.AnyMatch(func(v float64) bool { return !predicate(v) })
}

// NoneMatch reports whether predicate holds for no element.
func (g *Grid2d) NoneMatch(predicate func(float64) bool) bool {
	return !g.AnyMatch(predicate)
}

// Equals reports whether g and other are extent-equal and every pair of
// corresponding elements compares equal under ctx (the process-wide default
// context if ctx is nil).
func (g *Grid2d) Equals(other *Grid2d, ctx *numeric.Context) bool {
	if !g.extentEqual(other) {
		return false
	}
	c := numeric.Or(ctx)
	equal := true
	ForEach2d(g.Structure.Extent, RowMajor, func(row, col int) bool {
		off, _ := g.Structure.Offset(row, col)
		otherOff, _ := other.Structure.Offset(row, col)
		if !c.Equal(g.Storage.At(off), other.Storage.At(otherOff)) {
			equal = false

			return false
		}

		return true
	})

	return equal
}

// Copy returns a new Grid2d with the same extent, owning an independent,
// densely-packed storage, filled from g.
func (g *Grid2d) Copy() (*Grid2d, error) {
	out, err := NewGrid2d(g.Structure.Extent)
	if err != nil {
		return nil, gridErrorf("Grid2d.Copy", err)
	}
	if err := out.Assign(g); err != nil {
		return nil, gridErrorf("Grid2d.Copy", err)
	}

	return out, nil
}
