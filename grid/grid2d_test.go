package grid_test

import (
	"testing"

	"github.com/Kost1s/colt/grid"
	"github.com/Kost1s/colt/numeric"
	"github.com/Kost1s/colt/structure"
	"github.com/stretchr/testify/require"
)

func mustExtent2d(t *testing.T, rows, cols int) structure.Extent2d {
	t.Helper()
	e, err := structure.NewExtent2d(rows, cols)
	require.NoError(t, err)

	return e
}

func fillSequential(t *testing.T, g *grid.Grid2d) {
	t.Helper()
	n := 0
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			require.NoError(t, g.Set(i, j, float64(n)))
			n++
		}
	}
}

func TestGrid2d_TransposeIsAView(t *testing.T) {
	g, err := grid.NewGrid2d(mustExtent2d(t, 2, 3))
	require.NoError(t, err)
	fillSequential(t, g)

	tr := g.Transposed()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())

	require.NoError(t, tr.Set(0, 1, 99))
	v, err := g.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, 99.0, v)
}

func TestGrid2d_CopyIsIndependent(t *testing.T) {
	g, err := grid.NewGrid2d(mustExtent2d(t, 2, 2))
	require.NoError(t, err)
	fillSequential(t, g)

	dup, err := g.Copy()
	require.NoError(t, err)
	require.NoError(t, dup.Set(0, 0, -1))

	orig, err := g.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, orig)
}

func TestGrid2d_AssignFastPathMatchesLoopPath(t *testing.T) {
	src, err := grid.NewGrid2d(mustExtent2d(t, 4, 4))
	require.NoError(t, err)
	fillSequential(t, src)

	dstContig, err := grid.NewGrid2d(mustExtent2d(t, 4, 4))
	require.NoError(t, err)
	require.NoError(t, dstContig.Assign(src))

	dstView, err := grid.NewGrid2d(mustExtent2d(t, 8, 8))
	require.NoError(t, err)
	sub, err := dstView.View(2, 2, mustExtent2d(t, 4, 4))
	require.NoError(t, err)
	require.NoError(t, sub.Assign(src))

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a, _ := dstContig.Get(i, j)
			b, _ := sub.Get(i, j)
			require.Equal(t, a, b)
		}
	}
}

func TestGrid2d_BackwardFullyReversesRowMajorOrder(t *testing.T) {
	g, err := grid.NewGrid2d(mustExtent2d(t, 2, 2))
	require.NoError(t, err)
	// row-major values 0,1,2,3; Backward strategy fully reverses row-major
	// order, so it visits every position in the order 3,2,1,0.
	fillSequential(t, g)

	var order []float64
	grid.ForEach2d(g.Structure.Extent, grid.Backward, func(row, col int) bool {
		v, _ := g.Get(row, col)
		order = append(order, v)

		return true
	})
	require.Equal(t, []float64{3, 2, 1, 0}, order)
}

func TestGrid2d_EqualsUsesContext(t *testing.T) {
	a, err := grid.NewGrid2d(mustExtent2d(t, 2, 2))
	require.NoError(t, err)
	b, err := grid.NewGrid2d(mustExtent2d(t, 2, 2))
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1.0))
	require.NoError(t, b.Set(0, 0, 1.0000001))

	require.False(t, a.Equals(b, nil))

	loose := &numeric.Context{Epsilon: 1e-4}
	require.True(t, a.Equals(b, loose))
}

func TestGrid2d_ZeroExtentIsEmptyAndSafe(t *testing.T) {
	g, err := grid.NewGrid2d(mustExtent2d(t, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 0, g.Rows())

	visited := false
	grid.ForEach2d(g.Structure.Extent, grid.RowMajor, func(row, col int) bool {
		visited = true

		return true
	})
	require.False(t, visited)

	_, ok := g.Reduce(func(acc, x float64) float64 { return acc + x }, func(x float64) float64 { return x })
	require.False(t, ok)
}
