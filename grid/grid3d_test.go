package grid_test

import (
	"testing"

	"github.com/Kost1s/colt/grid"
	"github.com/Kost1s/colt/structure"
	"github.com/stretchr/testify/require"
)

func TestGrid3d_SetGet(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	g, err := grid.NewGrid3d(extent)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 0, 1, 5.5))
	v, err := g.Get(1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.5, v)
}

func TestGrid3d_SliceSharesStorage(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	g, err := grid.NewGrid3d(extent)
	require.NoError(t, err)

	plane, err := g.Slice(0)
	require.NoError(t, err)
	require.NoError(t, plane.Set(1, 1, 42))

	v, err := g.Get(0, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)
}

func TestGrid3d_Fill(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	g, err := grid.NewGrid3d(extent)
	require.NoError(t, err)

	g.Fill(7)
	v, err := g.Get(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestGrid3d_AssignAndEquals(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	a, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	b, err := grid.NewGrid3d(extent)
	require.NoError(t, err)

	a.Fill(3)
	require.NoError(t, b.Assign(a))
	require.True(t, a.Equals(b, nil))

	require.NoError(t, b.Set(0, 0, 0, 99))
	require.False(t, a.Equals(b, nil))
}

func TestGrid3d_AssignUnaryAndBinary(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	a, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	b, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	a.Fill(2)
	b.Fill(3)

	a.AssignUnary(func(x float64) float64 { return x * x })
	v, err := a.Get(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	require.NoError(t, a.AssignBinary(b, func(x, y float64) float64 { return x + y }))
	v, err = a.Get(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestGrid3d_Swap(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	a, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	b, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	a.Fill(1)
	b.Fill(8)

	require.NoError(t, a.Swap(b))
	av, err := a.Get(0, 0, 0)
	require.NoError(t, err)
	bv, err := b.Get(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 8.0, av)
	require.Equal(t, 1.0, bv)
}

func TestGrid3d_Reduce(t *testing.T) {
	extent, err := structure.NewExtent3d(1, 1, 4)
	require.NoError(t, err)
	g, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.Set(0, 0, i, float64(i)))
	}

	result, ok := g.Reduce(func(acc, x float64) float64 { return x - acc }, func(x float64) float64 { return x })
	require.True(t, ok)
	require.Equal(t, -2.0, result)
}

func TestGrid3d_AnyAllNoneMatch(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	g, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	g.Fill(5)
	require.NoError(t, g.Set(0, 0, 0, 9))

	require.True(t, g.AnyMatch(func(v float64) bool { return v == 9 }))
	require.False(t, g.AllMatch(func(v float64) bool { return v == 5 }))
	require.True(t, g.NoneMatch(func(v float64) bool { return v == 100 }))
}

func TestGrid3d_ViewStridedTransposed(t *testing.T) {
	extent, err := structure.NewExtent3d(4, 4, 4)
	require.NoError(t, err)
	g, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	g.Fill(1)

	sub, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	view, err := g.View(1, 1, 1, sub)
	require.NoError(t, err)
	require.NoError(t, view.Set(0, 0, 0, 42))
	v, err := g.Get(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	strided, err := g.Strided(2, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, strided.Structure.Extent.Depth())

	tr := g.Transposed()
	require.NoError(t, tr.Set(1, 0, 0, 77))
	v, err = g.Get(0, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 77.0, v)
}

func TestGrid3d_Copy(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	g, err := grid.NewGrid3d(extent)
	require.NoError(t, err)
	g.Fill(6)

	dup, err := g.Copy()
	require.NoError(t, err)
	require.NoError(t, dup.Set(0, 0, 0, 99))

	v, err := g.Get(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

func TestGrid3d_AssignRejectsMismatch(t *testing.T) {
	e1, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	e2, err := structure.NewExtent3d(3, 2, 2)
	require.NoError(t, err)

	a, err := grid.NewGrid3d(e1)
	require.NoError(t, err)
	b, err := grid.NewGrid3d(e2)
	require.NoError(t, err)

	require.Error(t, a.Assign(b))
}
