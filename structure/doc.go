// Package structure implements the strided, multidimensional view algebra
// the rest of the module is built on: Extent (shape), Layout (start offset +
// per-axis stride) and Structure (Extent+Layout), plus the four view
// transforms — Range, Stride, Transpose, Slice — that turn one Structure
// into another without ever touching the backing storage.
//
// Structures are value objects. Every transform returns a new Structure
// that, composed with a storage.Float64Storage, grid.GridNd can window over
// the exact same flat buffer a sibling view does — slicing, transposing,
// diced axis order and stride-reduction are all O(1) and allocation-free.
package structure
