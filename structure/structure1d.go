// SPDX-License-Identifier: MIT
package structure

// Structure1d is a value object combining an Extent1d with a Layout1d. View
// transforms return new Structure1d values sharing the caller's storage;
// they never touch the underlying buffer.
type Structure1d struct {
	Extent Extent1d
	Layout Layout1d
}

// NewStructure1d builds a densely-packed structure (stride 1, start 0) over
// the given extent.
func NewStructure1d(extent Extent1d) Structure1d {
	return Structure1d{Extent: extent, Layout: Layout1d{Start: 0, Stride: 1}}
}

// Offset returns the flat storage offset of dimensional index i, or an error
// if i is outside s.Extent.
func (s Structure1d) Offset(i int) (int, error) {
	if !s.Extent.Contains(i) {
		return 0, structErrorf("Structure1d.Offset", ErrIndexOutOfBounds)
	}

	return s.Layout.Offset(i), nil
}

// Range restricts s to the sub-range [start, start+extent), keeping the
// existing stride. Composing two Range calls is equivalent to one Range with
// combined starts: s.Range(a,na).Range(b,nb) == s.Range(a+b, nb).
func (s Structure1d) Range(start int, extent Extent1d) (Structure1d, error) {
	if start < 0 || start+extent.Size() > s.Extent.Size() {
		return Structure1d{}, structErrorf("Structure1d.Range", ErrInvalidArgument)
	}

	return Structure1d{
		Extent: extent,
		Layout: Layout1d{Start: s.Layout.Start + s.Layout.Stride*start, Stride: s.Layout.Stride},
	}, nil
}

// Stride keeps every step-th element, shrinking the extent to
// ceil(oldExtent/step). Composing two Stride calls multiplies the steps.
func (s Structure1d) Stride(step int) (Structure1d, error) {
	if step <= 0 {
		return Structure1d{}, structErrorf("Structure1d.Stride", ErrInvalidArgument)
	}
	newExtent, err := NewExtent1d(stridedExtent(s.Extent.Size(), step))
	if err != nil {
		return Structure1d{}, structErrorf("Structure1d.Stride", err)
	}

	return Structure1d{
		Extent: newExtent,
		Layout: Layout1d{Start: s.Layout.Start, Stride: s.Layout.Stride * step},
	}, nil
}

// stridedExtent computes the new axis extent produced by keeping every
// step-th element of an axis of size n: ceil(n/step), computed without
// floating point.
func stridedExtent(n, step int) int {
	if n <= 0 {
		return 0
	}

	return (n-1)/step + 1
}
