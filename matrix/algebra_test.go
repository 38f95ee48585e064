package matrix_test

import (
	"testing"

	"github.com/Kost1s/colt/matrix"
	"github.com/stretchr/testify/require"
)

func TestSolve_DispatchesToLUForSquare(t *testing.T) {
	a := matrixFromRows(t, [][]float64{{2, 1}, {1, 3}})
	b := matrixFromRows(t, [][]float64{{5}, {10}})

	x, err := matrix.Solve(a, b, nil)
	require.NoError(t, err)
	v0, _ := x.At(0, 0)
	v1, _ := x.At(1, 0)
	require.InDelta(t, 1.0, v0, 1e-9)
	require.InDelta(t, 3.0, v1, 1e-9)
}

func TestInverse_TimesOriginalIsIdentity(t *testing.T) {
	a := matrixFromRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse(a, nil)
	require.NoError(t, err)

	product, err := a.Mult(inv, nil, 1, 0, false, false)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := product.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, 1e-9)
		}
	}
}

func TestDet_MatchesLU(t *testing.T) {
	a := matrixFromRows(t, [][]float64{{4, 3}, {6, 3}})
	det, err := matrix.Det(a, nil)
	require.NoError(t, err)
	require.InDelta(t, -6.0, det, 1e-9)
}

func TestNorm1AndNormInf(t *testing.T) {
	a := matrixFromRows(t, [][]float64{{1, -7}, {-2, 3}})
	require.Equal(t, 10.0, matrix.Norm1(a))
	require.Equal(t, 8.0, matrix.NormInf(a))
}

func TestNormF(t *testing.T) {
	a := matrixFromRows(t, [][]float64{{3, 0}, {0, 4}})
	require.InDelta(t, 5.0, matrix.NormF(a), 1e-9)
}

func TestTrace(t *testing.T) {
	a := matrixFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, 5.0, matrix.Trace(a))
}

func TestRankAndCondViaSVD(t *testing.T) {
	a := matrixFromRows(t, [][]float64{{2, 0}, {0, 0}})
	rank, err := matrix.Rank(a, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rank)

	id, err := matrix.Identity(2)
	require.NoError(t, err)
	cond, err := matrix.Cond(id, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, cond, 1e-9)
}
