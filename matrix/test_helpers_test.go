// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite unless a test is explicitly about IEEE propagation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matalg/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Wrapping an operand forces the generic At-based path in code under test,
// so fast path and fallback can be compared bit for bit.
type hide struct{ matrix.Matrix }

// failingAt is a Matrix whose At always fails, used to check error surfacing
// from foreign implementations.
type failingAt struct{ matrix.Matrix }

func (f failingAt) At(i, j int) (float64, error) {
	return 0, matrix.ErrOutOfRange
}

// MustNew ALLOCATES an r×c *Dense filled with v or fails the test.
func MustNew(t testing.TB, r, c int, v float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(r, c, v)
	require.NoError(t, err, "New(%d,%d,%v)", r, c, v)

	return m
}

// MustFromRows BUILDS a *Dense from a literal table or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows(%v)", rows)

	return m
}

// MustEye RETURNS I_n or fails the test.
func MustEye(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Eye(n)
	require.NoError(t, err, "Eye(%d)", n)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// RandDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustNew(t, r, c, 0)
	RandomFill(t, m, seed)

	return m
}

// CompareExact ASSERTS m equals the literal table want element by element.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			require.Equal(t, w, MustAt(t, m, i, j), "element [%d,%d]", i, j)
		}
	}
}

// MustDims ASSERTS the shape of m.
func MustDims(t testing.TB, m matrix.Matrix, r, c int) {
	t.Helper()
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
}
