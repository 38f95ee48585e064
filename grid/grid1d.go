// SPDX-License-Identifier: MIT
package grid

import (
	"github.com/Kost1s/colt/numeric"
	"github.com/Kost1s/colt/storage"
	"github.com/Kost1s/colt/structure"
)

// Grid1d is a window onto a storage.Float64Storage through a
// structure.Structure1d.
type Grid1d struct {
	Structure structure.Structure1d
	Storage   storage.Float64Storage
}

// NewGrid1d allocates a fresh, densely-packed Grid1d over extent.
func NewGrid1d(extent structure.Extent1d) (*Grid1d, error) {
	s, err := storage.NewDenseFloat64(extent.Size())
	if err != nil {
		return nil, gridErrorf("NewGrid1d", err)
	}

	return &Grid1d{Structure: structure.NewStructure1d(extent), Storage: s}, nil
}

// WrapGrid1d builds a Grid1d from an existing structure and storage without
// copying either.
func WrapGrid1d(s structure.Structure1d, data storage.Float64Storage) *Grid1d {
	return &Grid1d{Structure: s, Storage: data}
}

// Size returns the number of elements in g's extent.
func (g *Grid1d) Size() int { return g.Structure.Extent.Size() }

// Get returns the element at index i.
func (g *Grid1d) Get(i int) (float64, error) {
	off, err := g.Structure.Offset(i)
	if err != nil {
		return 0, gridErrorf("Grid1d.Get", err)
	}

	return g.Storage.At(off), nil
}

// Set assigns v to the element at index i.
func (g *Grid1d) Set(i int, v float64) error {
	off, err := g.Structure.Offset(i)
	if err != nil {
		return gridErrorf("Grid1d.Set", err)
	}
	g.Storage.Set(off, v)

	return nil
}

// View returns a new Grid1d over [start, start+extent), sharing g's storage.
func (g *Grid1d) View(start int, extent structure.Extent1d) (*Grid1d, error) {
	s, err := g.Structure.Range(start, extent)
	if err != nil {
		return nil, gridErrorf("Grid1d.View", err)
	}

	return WrapGrid1d(s, g.Storage), nil
}

// Strided returns a new Grid1d keeping every step-th element.
func (g *Grid1d) Strided(step int) (*Grid1d, error) {
	s, err := g.Structure.Stride(step)
	if err != nil {
		return nil, gridErrorf("Grid1d.Strided", err)
	}

	return WrapGrid1d(s, g.Storage), nil
}

func (g *Grid1d) extentEqual(other *Grid1d) bool {
	return g.Size() == other.Size()
}

// Fill assigns value to every element of g.
func (g *Grid1d) Fill(value float64) {
	ForEach1d(g.Structure.Extent, RowMajor, func(i int) bool {
		off, _ := g.Structure.Offset(i)
		g.Storage.Set(off, value)

		return true
	})
}

// AssignUnary replaces every element x with f(x).
func (g *Grid1d) AssignUnary(f func(float64) float64) {
	ForEach1d(g.Structure.Extent, RowMajor, func(i int) bool {
		off, _ := g.Structure.Offset(i)
		g.Storage.Set(off, f(g.Storage.At(off)))

		return true
	})
}

// AssignBinary replaces every element x with f(x, other[i]). g and other
// must be extent-equal.
func (g *Grid1d) AssignBinary(other *Grid1d, f func(a, b float64) float64) error {
	if !g.extentEqual(other) {
		return gridErrorf("Grid1d.AssignBinary", ErrExtentMismatch)
	}
	ForEach1d(g.Structure.Extent, RowMajor, func(i int) bool {
		off, _ := g.Structure.Offset(i)
		otherOff, _ := other.Structure.Offset(i)
		g.Storage.Set(off, f(g.Storage.At(off), other.Storage.At(otherOff)))

		return true
	})

	return nil
}

// Assign copies every element of source into g.
func (g *Grid1d) Assign(source *Grid1d) error {
	if !g.extentEqual(source) {
		return gridErrorf("Grid1d.Assign", ErrExtentMismatch)
	}
	ForEach1d(g.Structure.Extent, RowMajor, func(i int) bool {
		off, _ := g.Structure.Offset(i)
		srcOff, _ := source.Structure.Offset(i)
		g.Storage.Set(off, source.Storage.At(srcOff))

		return true
	})

	return nil
}

// Swap exchanges every element of g with the corresponding element of other.
// g and other must be extent-equal.
func (g *Grid1d) Swap(other *Grid1d) error {
	if !g.extentEqual(other) {
		return gridErrorf("Grid1d.Swap", ErrExtentMismatch)
	}
	ForEach1d(g.Structure.Extent, RowMajor, func(i int) bool {
		off, _ := g.Structure.Offset(i)
		otherOff, _ := other.Structure.Offset(i)
		a, b := g.Storage.At(off), other.Storage.At(otherOff)
		g.Storage.Set(off, b)
		other.Storage.Set(otherOff, a)

		return true
	})

	return nil
}

// Reduce right-folds g's elements under unary then binary, visited in
// descending order; ok is false if g has zero elements.
func (g *Grid1d) Reduce(binary func(acc, x float64) float64, unary func(x float64) float64) (result float64, ok bool) {
	first := true
	ForEach1d(g.Structure.Extent, Backward, func(i int) bool {
		off, _ := g.Structure.Offset(i)
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
func (g *Grid1d) AnyMatch(predicate func(float64) bool) bool {
	found := false
	ForEach1d(g.Structure.Extent, RowMajor, func(i int) bool {
		off, _ := g.Structure.Offset(i)
		if predicate(g.Storage.At(off)) {
			found = true

			return false
		}

		return true
	})

	return found
}

// AllMatch reports whether predicate holds for every element.
func (g *Grid1d) AllMatch(predicate func(float64) bool) bool {
	return !g.AnyMatch(func(v float64) bool { return !predicate(v) })
}

// NoneMatch reports whether predicate holds for no element.
func (g *Grid1d) NoneMatch(predicate func(float64) bool) bool {
	return !g.AnyMatch(predicate)
}

// Equals reports whether g and other are extent-equal and every pair of
// corresponding elements compares equal under ctx.
func (g *Grid1d) Equals(other *Grid1d, ctx *numeric.Context) bool {
	if !g.extentEqual(other) {
		return false
	}
	c := numeric.Or(ctx)
	equal := true
	ForEach1d(g.Structure.Extent, RowMajor, func(i int) bool {
		off, _ := g.Structure.Offset(i)
		otherOff, _ := other.Structure.Offset(i)
		if !c.Equal(g.Storage.At(off), other.Storage.At(otherOff)) {
			equal = false

			return false
		}

		return true
	})

	return equal
}

// Copy returns a new Grid1d with the same extent, owning an independent,
// densely-packed storage, filled from g.
func (g *Grid1d) Copy() (*Grid1d, error) {
	out, err := NewGrid1d(g.Structure.Extent)
	if err != nil {
		return nil, gridErrorf("Grid1d.Copy", err)
	}
	if err := out.Assign(g); err != nil {
		return nil, gridErrorf("Grid1d.Copy", err)
	}

	return out, nil
}
