// SPDX-License-Identifier: MIT
package structure

// Structure3d is a value object combining an Extent3d with a Layout3d.
type Structure3d struct {
	Extent Extent3d
	Layout Layout3d
}

// NewStructure3d builds a densely-packed, row-major structure over extent.
func NewStructure3d(extent Extent3d) Structure3d {
	rowStride := extent.Cols()
	depthStride := extent.Rows() * extent.Cols()

	return Structure3d{
		Extent: extent,
		Layout: Layout3d{Start: 0, DepthStride: depthStride, RowStride: rowStride, ColStride: 1},
	}
}

// Offset returns the flat storage offset of (d, row, col), or an error if
// the index falls outside s.Extent.
func (s Structure3d) Offset(d, row, col int) (int, error) {
	if !s.Extent.Contains(d, row, col) {
		return 0, structErrorf("Structure3d.Offset", ErrIndexOutOfBounds)
	}

	return s.Layout.Offset(d, row, col), nil
}

// Range restricts s to the sub-box starting at (startD, startRow, startCol)
// with the given extent.
func (s Structure3d) Range(startD, startRow, startCol int, extent Extent3d) (Structure3d, error) {
	if startD < 0 || startRow < 0 || startCol < 0 ||
		startD+extent.Depth() > s.Extent.Depth() ||
		startRow+extent.Rows() > s.Extent.Rows() ||
		startCol+extent.Cols() > s.Extent.Cols() {
		return Structure3d{}, structErrorf("Structure3d.Range", ErrInvalidArgument)
	}

	return Structure3d{
		Extent: extent,
		Layout: Layout3d{
			Start:       s.Layout.Offset(startD, startRow, startCol),
			DepthStride: s.Layout.DepthStride,
			RowStride:   s.Layout.RowStride,
			ColStride:   s.Layout.ColStride,
		},
	}, nil
}

// Stride keeps every stepD/stepRow/stepCol-th element along each axis.
func (s Structure3d) Stride(stepD, stepRow, stepCol int) (Structure3d, error) {
	if stepD <= 0 || stepRow <= 0 || stepCol <= 0 {
		return Structure3d{}, structErrorf("Structure3d.Stride", ErrInvalidArgument)
	}
	extent, err := NewExtent3d(
		stridedExtent(s.Extent.Depth(), stepD),
		stridedExtent(s.Extent.Rows(), stepRow),
		stridedExtent(s.Extent.Cols(), stepCol),
	)
	if err != nil {
		return Structure3d{}, structErrorf("Structure3d.Stride", err)
	}

	return Structure3d{
		Extent: extent,
		Layout: Layout3d{
			Start:       s.Layout.Start,
			DepthStride: s.Layout.DepthStride * stepD,
			RowStride:   s.Layout.RowStride * stepRow,
			ColStride:   s.Layout.ColStride * stepCol,
		},
	}, nil
}

// Transpose permutes the depth and row axes, leaving columns in place. Axis
// permutation on a rank-3 structure is expressed as a sequence of pairwise
// dices; this is the depth<->row dice most kernels need.
func (s Structure3d) Transpose() Structure3d {
	return Structure3d{
		Extent: Extent3d{depth: s.Extent.rows, rows: s.Extent.depth, cols: s.Extent.cols},
		Layout: Layout3d{Start: s.Layout.Start, DepthStride: s.Layout.RowStride, RowStride: s.Layout.DepthStride, ColStride: s.Layout.ColStride},
	}
}

// Slice projects out depth index d, yielding the 2-d structure of that
// plane: start = old.start + depthStride*d, the other two axes carry over.
func (s Structure3d) Slice(d int) (Structure2d, error) {
	if d < 0 || d >= s.Extent.Depth() {
		return Structure2d{}, structErrorf("Structure3d.Slice", ErrIndexOutOfBounds)
	}
	extent, err := NewExtent2d(s.Extent.Rows(), s.Extent.Cols())
	if err != nil {
		return Structure2d{}, structErrorf("Structure3d.Slice", err)
	}

	return Structure2d{
		Extent: extent,
		Layout: Layout2d{Start: s.Layout.Start + s.Layout.DepthStride*d, RowStride: s.Layout.RowStride, ColStride: s.Layout.ColStride},
	}, nil
}
