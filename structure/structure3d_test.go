package structure_test

import (
	"testing"

	"github.com/Kost1s/colt/structure"
	"github.com/stretchr/testify/require"
)

func TestStructure3d_Offset(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 3, 4)
	require.NoError(t, err)
	s := structure.NewStructure3d(extent)

	off, err := s.Offset(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 1*12+2*4+3, off)

	_, err = s.Offset(2, 0, 0)
	require.Error(t, err)
}

func TestStructure3d_Range(t *testing.T) {
	extent, err := structure.NewExtent3d(4, 4, 4)
	require.NoError(t, err)
	s := structure.NewStructure3d(extent)

	subExtent, err := structure.NewExtent3d(2, 2, 2)
	require.NoError(t, err)
	sub, err := s.Range(1, 1, 1, subExtent)
	require.NoError(t, err)

	off, err := sub.Offset(0, 0, 0)
	require.NoError(t, err)
	parentOff, err := s.Offset(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, parentOff, off)
}

func TestStructure3d_Transpose(t *testing.T) {
	extent, err := structure.NewExtent3d(2, 3, 4)
	require.NoError(t, err)
	s := structure.NewStructure3d(extent)

	tr := s.Transpose()
	require.Equal(t, 3, tr.Extent.Depth())
	require.Equal(t, 2, tr.Extent.Rows())
	require.Equal(t, 4, tr.Extent.Cols())

	off, err := s.Offset(1, 2, 3)
	require.NoError(t, err)
	trOff, err := tr.Offset(2, 1, 3)
	require.NoError(t, err)
	require.Equal(t, off, trOff)
}

func TestStructure3d_Slice(t *testing.T) {
	extent, err := structure.NewExtent3d(3, 2, 2)
	require.NoError(t, err)
	s := structure.NewStructure3d(extent)

	plane, err := s.Slice(1)
	require.NoError(t, err)

	planeOff, err := plane.Offset(1, 1)
	require.NoError(t, err)
	parentOff, err := s.Offset(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, parentOff, planeOff)

	_, err = s.Slice(3)
	require.Error(t, err)
}

func TestStructure3d_Stride(t *testing.T) {
	extent, err := structure.NewExtent3d(4, 4, 4)
	require.NoError(t, err)
	s := structure.NewStructure3d(extent)

	strided, err := s.Stride(2, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, strided.Extent.Depth())
	require.Equal(t, 2, strided.Extent.Rows())
	require.Equal(t, 2, strided.Extent.Cols())
}
