// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()

	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultStrictVectors, o.StrictVectors())
}

// TestOptions_LastWriterWins checks that toggles applied later override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithValidateNaNInf(),
		matrix.WithNoValidateNaNInf(),
		matrix.WithStrictVectors(),
		matrix.WithEpsilon(0.5),
		matrix.WithEpsilon(0.25),
	)
	require.False(t, o.ValidateNaNInf())
	require.True(t, o.StrictVectors())
	require.Equal(t, 0.25, o.Epsilon())

	o = matrix.NewMatrixOptions(matrix.WithStrictVectors(), matrix.WithHeuristicVectors())
	require.False(t, o.StrictVectors())
}

// TestOptions_NilSetterIgnored ensures nil entries in the option list are skipped.
func TestOptions_NilSetterIgnored(t *testing.T) {
	o := matrix.NewMatrixOptions(nil, matrix.WithValidateNaNInf(), nil)
	require.True(t, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
}

// TestWithEpsilon_Panics covers the invalid tolerance values.
func TestWithEpsilon_Panics(t *testing.T) {
	for _, eps := range []float64{-1e-12, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

// TestValidateNaNInf_AppliesToSetOnly: the policy guards Set, while arithmetic
// keeps IEEE-754 results.
func TestValidateNaNInf_AppliesToSetOnly(t *testing.T) {
	m, err := matrix.New(1, 2, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 1, 3))

	m.DivScalar(0)
	require.True(t, math.IsInf(m.UncheckedAt(0, 0), 1))

	c := m.Copy()
	require.ErrorIs(t, c.Set(0, 0, math.NaN()), matrix.ErrNaNInf, "Copy keeps the policy")

	plain, err := matrix.New(1, 1, 0)
	require.NoError(t, err)
	require.NoError(t, plain.Set(0, 0, math.NaN()))
}

// TestValidateNaNInf_CarriedByResults: value-returning operators take the
// policy of a *Dense left operand; foreign or default operands leave it off.
func TestValidateNaNInf_CarriedByResults(t *testing.T) {
	strict, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	plain := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	results := map[string]func() (*matrix.Dense, error){
		"Add":       func() (*matrix.Dense, error) { return matrix.Add(strict, plain) },
		"Sub":       func() (*matrix.Dense, error) { return matrix.Sub(strict, plain) },
		"Mul":       func() (*matrix.Dense, error) { return matrix.Mul(strict, plain) },
		"Hadamard":  func() (*matrix.Dense, error) { return matrix.Hadamard(strict, plain) },
		"Transpose": func() (*matrix.Dense, error) { return matrix.Transpose(strict) },
		"Scale":     func() (*matrix.Dense, error) { return matrix.Scale(strict, 2) },
		"DivScalar": func() (*matrix.Dense, error) { return matrix.DivScalar(strict, 0) },
		"ZerosLike": func() (*matrix.Dense, error) { return matrix.ZerosLike(strict) },
	}
	for name, op := range results {
		t.Run(name, func(t *testing.T) {
			res, err := op()
			require.NoError(t, err)
			require.ErrorIs(t, res.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
		})
	}

	res, err := matrix.Add(plain, strict)
	require.NoError(t, err)
	require.NoError(t, res.Set(0, 0, math.NaN()), "policy follows the left operand")

	res, err = matrix.Add(hide{strict}, plain)
	require.NoError(t, err)
	require.NoError(t, res.Set(0, 0, math.Inf(1)), "foreign operands carry no policy")
}
