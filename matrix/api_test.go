package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestEye(t *testing.T) {
	I := MustEye(t, 3)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	for _, n := range []int{0, -1} {
		_, err := matrix.Eye(n)
		require.ErrorIs(t, err, matrix.ErrInvalidShape)
		_, err = matrix.NewIdentity(n)
		require.ErrorIs(t, err, matrix.ErrInvalidShape)
	}
}

func TestLikeConstructors(t *testing.T) {
	A := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	Z, err := matrix.ZerosLike(A)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, Z)

	_, err = matrix.IdentityLike(A)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	I, err := matrix.IdentityLike(MustNew(t, 2, 2, 7))
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustEye(t, 2), I))

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	Z, err = matrix.NewZeros(1, 2)
	require.NoError(t, err)
	MustDims(t, Z, 1, 2)
}

func TestFacades(t *testing.T) {
	A := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	s, err := matrix.Sum(A, B)
	require.NoError(t, err)
	d, err := matrix.Diff(s, B)
	require.NoError(t, err)
	require.True(t, matrix.Equal(A, d))

	p, err := matrix.Product(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, p)

	require.Nil(t, matrix.CloneMatrix(nil))
	c := matrix.CloneMatrix(A)
	require.True(t, matrix.Equal(A, c))
	MustSet(t, c, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, A, 0, 0))
}
