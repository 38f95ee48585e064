package structure_test

import (
	"testing"

	"github.com/Kost1s/colt/structure"
	"github.com/stretchr/testify/require"
)

func TestStructure2d_OffsetRowMajor(t *testing.T) {
	extent, err := structure.NewExtent2d(3, 4)
	require.NoError(t, err)
	s := structure.NewStructure2d(extent)

	off, err := s.Offset(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2*4+3, off)

	_, err = s.Offset(3, 0)
	require.Error(t, err)
}

func TestStructure2d_RangeComposition(t *testing.T) {
	extent, err := structure.NewExtent2d(10, 10)
	require.NoError(t, err)
	s := structure.NewStructure2d(extent)

	inner, err := structure.NewExtent2d(4, 4)
	require.NoError(t, err)
	r1, err := s.Range(2, 3, inner)
	require.NoError(t, err)

	innerer, err := structure.NewExtent2d(2, 2)
	require.NoError(t, err)
	r2, err := r1.Range(1, 1, innerer)
	require.NoError(t, err)

	direct, err := s.Range(3, 4, innerer)
	require.NoError(t, err)

	off1, err := r2.Offset(0, 0)
	require.NoError(t, err)
	off2, err := direct.Offset(0, 0)
	require.NoError(t, err)
	require.Equal(t, off2, off1)
}

func TestStructure2d_StrideComposition(t *testing.T) {
	extent, err := structure.NewExtent2d(20, 20)
	require.NoError(t, err)
	s := structure.NewStructure2d(extent)

	st1, err := s.Stride(2, 3)
	require.NoError(t, err)
	st2, err := st1.Stride(2, 2)
	require.NoError(t, err)

	direct, err := s.Stride(4, 6)
	require.NoError(t, err)

	require.Equal(t, direct.Extent.Rows(), st2.Extent.Rows())
	require.Equal(t, direct.Extent.Cols(), st2.Extent.Cols())

	off1, err := st2.Offset(1, 1)
	require.NoError(t, err)
	off2, err := direct.Offset(1, 1)
	require.NoError(t, err)
	require.Equal(t, off2, off1)
}

func TestStructure2d_TransposeIsInvolution(t *testing.T) {
	extent, err := structure.NewExtent2d(5, 7)
	require.NoError(t, err)
	s := structure.NewStructure2d(extent)

	back := s.Transpose().Transpose()
	require.Equal(t, s.Extent.Rows(), back.Extent.Rows())
	require.Equal(t, s.Extent.Cols(), back.Extent.Cols())
	require.Equal(t, s.Layout, back.Layout)
}

func TestStructure2d_SliceRowAndCol(t *testing.T) {
	extent, err := structure.NewExtent2d(3, 4)
	require.NoError(t, err)
	s := structure.NewStructure2d(extent)

	row, err := s.SliceRow(1)
	require.NoError(t, err)
	require.Equal(t, 4, row.Extent.Size())

	off, err := row.Offset(2)
	require.NoError(t, err)
	want, err := s.Offset(1, 2)
	require.NoError(t, err)
	require.Equal(t, want, off)

	col, err := s.SliceCol(2)
	require.NoError(t, err)
	off, err = col.Offset(1)
	require.NoError(t, err)
	want, err = s.Offset(1, 2)
	require.NoError(t, err)
	require.Equal(t, want, off)
}

func TestStructure2d_IsRowMajorContiguous(t *testing.T) {
	extent, err := structure.NewExtent2d(3, 4)
	require.NoError(t, err)
	s := structure.NewStructure2d(extent)
	require.True(t, s.IsRowMajorContiguous())

	sub, err := s.Stride(1, 2)
	require.NoError(t, err)
	require.False(t, sub.IsRowMajorContiguous())
}
