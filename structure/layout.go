// SPDX-License-Identifier: MIT
package structure

// Layout1d maps a 1-d dimensional index to a flat storage offset:
// offset(i) = Start + Stride*i.
type Layout1d struct {
	Start  int
	Stride int
}

// Offset returns the flat offset of dimensional index i.
func (l Layout1d) Offset(i int) int { return l.Start + l.Stride*i }

// Layout2d maps a 2-d dimensional index to a flat storage offset:
// offset(row, col) = Start + RowStride*row + ColStride*col.
type Layout2d struct {
	Start              int
	RowStride, ColStride int
}

// Offset returns the flat offset of dimensional index (row, col).
func (l Layout2d) Offset(row, col int) int {
	return l.Start + l.RowStride*row + l.ColStride*col
}

// Layout3d maps a 3-d dimensional index to a flat storage offset:
// offset(d, row, col) = Start + DepthStride*d + RowStride*row + ColStride*col.
type Layout3d struct {
	Start                           int
	DepthStride, RowStride, ColStride int
}

// Offset returns the flat offset of dimensional index (d, row, col).
func (l Layout3d) Offset(d, row, col int) int {
	return l.Start + l.DepthStride*d + l.RowStride*row + l.ColStride*col
}
