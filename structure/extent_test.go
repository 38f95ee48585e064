package structure_test

import (
	"testing"

	"github.com/Kost1s/colt/structure"
	"github.com/stretchr/testify/require"
)

func TestExtent1d_ContainsAndSize(t *testing.T) {
	e, err := structure.NewExtent1d(5)
	require.NoError(t, err)
	require.Equal(t, 5, e.Size())
	require.True(t, e.Contains(0))
	require.True(t, e.Contains(4))
	require.False(t, e.Contains(5))
	require.False(t, e.Contains(-1))
}

func TestNewExtent1d_RejectsNegative(t *testing.T) {
	_, err := structure.NewExtent1d(-1)
	require.Error(t, err)
}

func TestExtent2d_SizeAndTranspose(t *testing.T) {
	e, err := structure.NewExtent2d(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, e.Rows())
	require.Equal(t, 4, e.Cols())
	require.Equal(t, 12, e.Size())

	tr := e.Transposed()
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, 3, tr.Cols())
}

func TestExtent2dChannels_Size(t *testing.T) {
	e, err := structure.NewExtent2dChannels(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 4, e.Channels())
	require.Equal(t, 24, e.Size())
}

func TestNewExtent2d_RejectsInvalid(t *testing.T) {
	_, err := structure.NewExtent2d(-1, 3)
	require.Error(t, err)

	_, err = structure.NewExtent2dChannels(2, 3, 0)
	require.Error(t, err)
}

func TestExtent3d_ContainsAndSize(t *testing.T) {
	e, err := structure.NewExtent3d(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 24, e.Size())
	require.True(t, e.Contains(1, 2, 3))
	require.False(t, e.Contains(2, 0, 0))
}

func TestNewExtent_RejectsOverflow(t *testing.T) {
	_, err := structure.NewExtent2d(1<<20, 1<<20)
	require.Error(t, err)
}
