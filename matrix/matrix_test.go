package matrix_test

import (
	"testing"

	"github.com/Kost1s/colt/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix_DefaultZero(t *testing.T) {
	m, err := matrix.NewMatrix(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := id.At(i, j)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Zero(t, v)
			}
		}
	}
}

func TestMatrix_TransposeIsAViewNotACopy(t *testing.T) {
	m, err := matrix.NewMatrix(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))

	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	v, err := tr.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	require.NoError(t, tr.Set(2, 0, 7))
	v, err = m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestMatrix_CopyIsIndependent(t *testing.T) {
	m, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	dup, err := m.Copy()
	require.NoError(t, err)
	require.NoError(t, dup.Set(0, 0, 99))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestMatrix_Diag(t *testing.T) {
	m, err := matrix.NewMatrix(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 2))

	d, err := m.Diag()
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	v0, _ := d.At(0, 0)
	v1, _ := d.At(1, 0)
	require.Equal(t, 1.0, v0)
	require.Equal(t, 2.0, v1)
}

func TestMatrix_Equals(t *testing.T) {
	a, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	b, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	require.True(t, a.Equals(b, nil))

	require.NoError(t, b.Set(0, 0, 1))
	require.False(t, a.Equals(b, nil))
}

func TestMatrix_EqualsRejectsShapeMismatch(t *testing.T) {
	a, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	b, err := matrix.NewMatrix(2, 3)
	require.NoError(t, err)

	require.False(t, a.Equals(b, nil))
}

func TestMatrix_AssignRejectsShapeMismatch(t *testing.T) {
	a, err := matrix.NewMatrix(2, 2)
	require.NoError(t, err)
	b, err := matrix.NewMatrix(3, 3)
	require.NoError(t, err)

	require.Error(t, a.Assign(b))
}
