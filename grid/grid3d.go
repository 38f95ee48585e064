// SPDX-License-Identifier: MIT
package grid

import (
	"github.com/Kost1s/colt/numeric"
	"github.com/Kost1s/colt/storage"
	"github.com/Kost1s/colt/structure"
)

// Grid3d is a window onto a storage.Float64Storage through a
// structure.Structure3d.
type Grid3d struct {
	Structure structure.Structure3d
	Storage   storage.Float64Storage
}

// NewGrid3d allocates a fresh, densely-packed Grid3d over extent.
func NewGrid3d(extent structure.Extent3d) (*Grid3d, error) {
	s, err := storage.NewDenseFloat64(extent.Size())
	if err != nil {
		return nil, gridErrorf("NewGrid3d", err)
	}

	return &Grid3d{Structure: structure.NewStructure3d(extent), Storage: s}, nil
}

// WrapGrid3d builds a Grid3d from an existing structure and storage without
// copying either.
func WrapGrid3d(s structure.Structure3d, data storage.Float64Storage) *Grid3d {
	return &Grid3d{Structure: s, Storage: data}
}

// Get returns the element at (d, row, col).
func (g *Grid3d) Get(d, row, col int) (float64, error) {
	off, err := g.Structure.Offset(d, row, col)
	if err != nil {
		return 0, gridErrorf("Grid3d.Get", err)
	}

	return g.Storage.At(off), nil
}

// Set assigns v to the element at (d, row, col).
func (g *Grid3d) Set(d, row, col int, v float64) error {
	off, err := g.Structure.Offset(d, row, col)
	if err != nil {
		return gridErrorf("Grid3d.Set", err)
	}
	g.Storage.Set(off, v)

	return nil
}

// Slice projects out depth index d, yielding the 2-d grid of that plane,
// sharing g's storage.
func (g *Grid3d) Slice(d int) (*Grid2d, error) {
	s, err := g.Structure.Slice(d)
	if err != nil {
		return nil, gridErrorf("Grid3d.Slice", err)
	}

	return WrapGrid2d(s, g.Storage), nil
}

// View returns a new Grid3d over the box starting at (startD, startRow,
// startCol) with the given extent, sharing g's storage.
func (g *Grid3d) View(startD, startRow, startCol int, extent structure.Extent3d) (*Grid3d, error) {
	s, err := g.Structure.Range(startD, startRow, startCol, extent)
	if err != nil {
		return nil, gridErrorf("Grid3d.View", err)
	}

	return WrapGrid3d(s, g.Storage), nil
}

// Strided returns a new Grid3d keeping every stepD/stepRow/stepCol-th
// element along each axis, sharing g's storage.
func (g *Grid3d) Strided(stepD, stepRow, stepCol int) (*Grid3d, error) {
	s, err := g.Structure.Stride(stepD, stepRow, stepCol)
	if err != nil {
		return nil, gridErrorf("Grid3d.Strided", err)
	}

	return WrapGrid3d(s, g.Storage), nil
}

// Transposed returns a new Grid3d with the depth and row axes swapped,
// sharing g's storage — a pure view transform, never a copy.
func (g *Grid3d) Transposed() *Grid3d {
	return WrapGrid3d(g.Structure.Transpose(), g.Storage)
}

func (g *Grid3d) extentEqual(other *Grid3d) bool {
	return g.Structure.Extent.Depth() == other.Structure.Extent.Depth() &&
		g.Structure.Extent.Rows() == other.Structure.Extent.Rows() &&
		g.Structure.Extent.Cols() == other.Structure.Extent.Cols()
}

// Fill assigns value to every element of g.
func (g *Grid3d) Fill(value float64) {
	ForEach3d(g.Structure.Extent, RowMajor, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
		g.Storage.Set(off, value)

		return true
	})
}

// AssignUnary replaces every element x with f(x).
func (g *Grid3d) AssignUnary(f func(float64) float64) {
	ForEach3d(g.Structure.Extent, RowMajor, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
		g.Storage.Set(off, f(g.Storage.At(off)))

		return true
	})
}

// AssignBinary replaces every element x with f(x, other[i]). g and other
// must be extent-equal.
func (g *Grid3d) AssignBinary(other *Grid3d, f func(a, b float64) float64) error {
	if !g.extentEqual(other) {
		return gridErrorf("Grid3d.AssignBinary", ErrExtentMismatch)
	}
	ForEach3d(g.Structure.Extent, RowMajor, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
		otherOff, _ := other.Structure.Offset(d, row, col)
		g.Storage.Set(off, f(g.Storage.At(off), other.Storage.At(otherOff)))

		return true
	})

	return nil
}

// Assign copies every element of source into g.
func (g *Grid3d) Assign(source *Grid3d) error {
	if !g.extentEqual(source) {
		return gridErrorf("Grid3d.Assign", ErrExtentMismatch)
	}
	ForEach3d(g.Structure.Extent, RowMajor, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
		srcOff, _ := source.Structure.Offset(d, row, col)
		g.Storage.Set(off, source.Storage.At(srcOff))

		return true
	})

	return nil
}

// Swap exchanges every element of g with the corresponding element of other.
// g and other must be extent-equal.
func (g *Grid3d) Swap(other *Grid3d) error {
	if !g.extentEqual(other) {
		return gridErrorf("Grid3d.Swap", ErrExtentMismatch)
	}
	ForEach3d(g.Structure.Extent, RowMajor, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
		otherOff, _ := other.Structure.Offset(d, row, col)
		a, b := g.Storage.At(off), other.Storage.At(otherOff)
		g.Storage.Set(off, b)
		other.Storage.Set(otherOff, a)

		return true
	})

	return nil
}

// Reduce right-folds g's elements under unary then binary, visited in
// descending order; ok is false if g has zero elements.
func (g *Grid3d) Reduce(binary func(acc, x float64) float64, unary func(x float64) float64) (result float64, ok bool) {
	first := true
	ForEach3d(g.Structure.Extent, Backward, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
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
func (g *Grid3d) AnyMatch(predicate func(float64) bool) bool {
	found := false
	ForEach3d(g.Structure.Extent, RowMajor, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
		if predicate(g.Storage.At(off)) {
			found = true

			return false
		}

		return true
	})

	return found
}

// AllMatch reports whether predicate holds for every element.
func (g *Grid3d) AllMatch(predicate func(float64) bool) bool {
	return !g.AnyMatch(func(v float64) bool { return !predicate(v) })
}

// NoneMatch reports whether predicate holds for no element.
func (g *Grid3d) NoneMatch(predicate func(float64) bool) bool {
	return !g.AnyMatch(predicate)
}

// Equals reports whether g and other are extent-equal and every pair of
// corresponding elements compares equal under ctx.
func (g *Grid3d) Equals(other *Grid3d, ctx *numeric.Context) bool {
	if !g.extentEqual(other) {
		return false
	}
	c := numeric.Or(ctx)
	equal := true
	ForEach3d(g.Structure.Extent, RowMajor, func(d, row, col int) bool {
		off, _ := g.Structure.Offset(d, row, col)
		otherOff, _ := other.Structure.Offset(d, row, col)
		if !c.Equal(g.Storage.At(off), other.Storage.At(otherOff)) {
			equal = false

			return false
		}

		return true
	})

	return equal
}

// Copy returns a new Grid3d with the same extent, owning an independent,
// densely-packed storage, filled from g.
func (g *Grid3d) Copy() (*Grid3d, error) {
	out, err := NewGrid3d(g.Structure.Extent)
	if err != nil {
		return nil, gridErrorf("Grid3d.Copy", err)
	}
	if err := out.Assign(g); err != nil {
		return nil, gridErrorf("Grid3d.Copy", err)
	}

	return out, nil
}
