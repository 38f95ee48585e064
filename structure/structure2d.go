// SPDX-License-Identifier: MIT
package structure

// Structure2d is a value object combining an Extent2d with a Layout2d.
//
// The original lattice library left View2d's range/stride/transpose
// transforms as stubs while View3d carried the complete set. This
// implementation mirrors the 3-d design into 2-d, since the dense-matrix
// kernels in package matrix assume all four transforms are available on a
// 2-d structure.
type Structure2d struct {
	Extent Extent2d
	Layout Layout2d
}

// NewStructure2d builds a densely-packed, row-major structure over extent.
func NewStructure2d(extent Extent2d) Structure2d {
	return Structure2d{
		Extent: extent,
		Layout: Layout2d{Start: 0, RowStride: extent.Cols() * extent.Channels(), ColStride: extent.Channels()},
	}
}

// Offset returns the flat storage offset of (row, col), or an error if the
// index falls outside s.Extent.
func (s Structure2d) Offset(row, col int) (int, error) {
	if !s.Extent.Contains(row, col) {
		return 0, structErrorf("Structure2d.Offset", ErrIndexOutOfBounds)
	}

	return s.Layout.Offset(row, col), nil
}

// Range restricts s to the sub-box starting at (startRow, startCol) with the
// given extent. New start offset is old.start + rowStride*startRow +
// colStride*startCol; stride is unchanged. range∘range == range with
// combined starts.
func (s Structure2d) Range(startRow, startCol int, extent Extent2d) (Structure2d, error) {
	if startRow < 0 || startCol < 0 ||
		startRow+extent.Rows() > s.Extent.Rows() ||
		startCol+extent.Cols() > s.Extent.Cols() {
		return Structure2d{}, structErrorf("Structure2d.Range", ErrInvalidArgument)
	}

	return Structure2d{
		Extent: extent,
		Layout: Layout2d{
			Start:     s.Layout.Offset(startRow, startCol),
			RowStride: s.Layout.RowStride,
			ColStride: s.Layout.ColStride,
		},
	}, nil
}

// Stride keeps every rowStep-th row and every colStep-th column. New extent
// per axis is ceil(oldExtent/step); new per-axis stride is the elementwise
// product. stride∘stride == stride with elementwise-multiplied strides.
func (s Structure2d) Stride(rowStep, colStep int) (Structure2d, error) {
	if rowStep <= 0 || colStep <= 0 {
		return Structure2d{}, structErrorf("Structure2d.Stride", ErrInvalidArgument)
	}
	extent, err := NewExtent2dChannels(
		stridedExtent(s.Extent.Rows(), rowStep),
		stridedExtent(s.Extent.Cols(), colStep),
		s.Extent.Channels(),
	)
	if err != nil {
		return Structure2d{}, structErrorf("Structure2d.Stride", err)
	}

	return Structure2d{
		Extent: extent,
		Layout: Layout2d{
			Start:     s.Layout.Start,
			RowStride: s.Layout.RowStride * rowStep,
			ColStride: s.Layout.ColStride * colStep,
		},
	}, nil
}

// Transpose swaps the row and column axes, reversing both extent axes and
// layout stride axes. No storage is touched. transpose∘transpose is the
// identity on structure.
func (s Structure2d) Transpose() Structure2d {
	return Structure2d{
		Extent: s.Extent.Transposed(),
		Layout: Layout2d{Start: s.Layout.Start, RowStride: s.Layout.ColStride, ColStride: s.Layout.RowStride},
	}
}

// SliceRow projects out row, yielding the 1-d structure of that row: the
// remaining axis is columns, with the column stride carried over and start
// advanced by rowStride*row.
func (s Structure2d) SliceRow(row int) (Structure1d, error) {
	if row < 0 || row >= s.Extent.Rows() {
		return Structure1d{}, structErrorf("Structure2d.SliceRow", ErrIndexOutOfBounds)
	}
	extent, err := NewExtent1d(s.Extent.Cols())
	if err != nil {
		return Structure1d{}, structErrorf("Structure2d.SliceRow", err)
	}

	return Structure1d{
		Extent: extent,
		Layout: Layout1d{Start: s.Layout.Start + s.Layout.RowStride*row, Stride: s.Layout.ColStride},
	}, nil
}

// SliceCol projects out col, yielding the 1-d structure of that column.
func (s Structure2d) SliceCol(col int) (Structure1d, error) {
	if col < 0 || col >= s.Extent.Cols() {
		return Structure1d{}, structErrorf("Structure2d.SliceCol", ErrIndexOutOfBounds)
	}
	extent, err := NewExtent1d(s.Extent.Rows())
	if err != nil {
		return Structure1d{}, structErrorf("Structure2d.SliceCol", err)
	}

	return Structure1d{
		Extent: extent,
		Layout: Layout1d{Start: s.Layout.Start + s.Layout.ColStride*col, Stride: s.Layout.RowStride},
	}, nil
}

// IsRowMajorContiguous reports whether s describes a dense, unit-channel,
// row-major block with no gaps — the fast path for block copies.
func (s Structure2d) IsRowMajorContiguous() bool {
	return s.Extent.Channels() == 1 &&
		s.Layout.ColStride == 1 &&
		s.Layout.RowStride == s.Extent.Cols()
}
