// SPDX-License-Identifier: MIT
package grid

import "github.com/Kost1s/colt/structure"

// Strategy selects a traversal order over a 2-d extent. All three strategies
// visit every (row, col) pair exactly once; they differ only in order, never
// in allocation (none) or in the set of positions visited.
type Strategy int

const (
	// RowMajor visits the outer axis (rows) first, inner (cols) last —
	// ascending rows, ascending columns within each row. This is the
	// default strategy for Grid2d.
	RowMajor Strategy = iota

	// ColumnMajor visits the inner axis (cols) first — ascending columns,
	// ascending rows within each column.
	ColumnMajor

	// Backward visits every axis in descending order — the full reverse of
	// RowMajor's linear order, not just the outermost axis. Reduce uses this
	// strategy so that non-associative reducers fold in a reproducible,
	// documented order.
	Backward
)

// ForEach2d visits every position of extent in the order s describes,
// calling visit(row, col) for each. Iteration stops early if visit returns
// false. ForEach2d performs no allocation.
func ForEach2d(extent structure.Extent2d, s Strategy, visit func(row, col int) bool) {
	rows, cols := extent.Rows(), extent.Cols()
	switch s {
	case ColumnMajor:
		for col := 0; col < cols; col++ {
			for row := 0; row < rows; row++ {
				if !visit(row, col) {
					return
				}
			}
		}
	case Backward:
		for row := rows - 1; row >= 0; row-- {
			for col := cols - 1; col >= 0; col-- {
				if !visit(row, col) {
					return
				}
			}
		}
	default: // RowMajor
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if !visit(row, col) {
					return
				}
			}
		}
	}
}

// ForEach1d visits every index of extent in order s (RowMajor/ColumnMajor
// both mean ascending for a 1-d extent; Backward means descending).
func ForEach1d(extent structure.Extent1d, s Strategy, visit func(i int) bool) {
	n := extent.Size()
	if s == Backward {
		for i := n - 1; i >= 0; i-- {
			if !visit(i) {
				return
			}
		}

		return
	}
	for i := 0; i < n; i++ {
		if !visit(i) {
			return
		}
	}
}

// ForEach3d visits every position of extent in order s. RowMajor/ColumnMajor
// both iterate depth outermost, row, then col innermost (the distinction
// that matters for 2-d cache behavior doesn't apply the same way to a
// 3rd axis); Backward fully reverses that linear order, descending depth,
// row, and col together.
func ForEach3d(extent structure.Extent3d, s Strategy, visit func(d, row, col int) bool) {
	depth, rows, cols := extent.Depth(), extent.Rows(), extent.Cols()
	if s == Backward {
		for d := depth - 1; d >= 0; d-- {
			for row := rows - 1; row >= 0; row-- {
				for col := cols - 1; col >= 0; col-- {
					if !visit(d, row, col) {
						return
					}
				}
			}
		}

		return
	}
	for d := 0; d < depth; d++ {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if !visit(d, row, col) {
					return
				}
			}
		}
	}
}
