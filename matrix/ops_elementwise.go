// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Value-returning matrix⊕scalar operators (AddScalar, SubScalar, Scale, DivScalar).
//   - Equality: exact (Equal/NotEqual) and tolerance-based (EqualApprox).
//
// Design:
//   - Scalar kernels share one private helper (ewScalar) so the four public
//     operators differ only by the closure they pass.
//   - No failure mode besides a nil operand; x/0 follows IEEE-754.

package matrix

import "math"

const (
	opAddScalar   = "AddScalar"
	opSubScalar   = "SubScalar"
	opScale       = "Scale"
	opDivScalar   = "DivScalar"
	opEqualApprox = "EqualApprox"
)

// ewScalar computes out[k] = f(m[k]) into a fresh Dense.
// Time: O(r*c). Space: O(r*c).
func ewScalar(m Matrix, f func(v float64) float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out, err := newResult(m, m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx, v := range src {
		out.data[idx] = f(v)
	}

	return out, nil
}

// AddScalar returns a new matrix with v added to every element of m.
func AddScalar(m Matrix, v float64) (*Dense, error) {
	return ewScalar(m, func(x float64) float64 { return x + v }, opAddScalar)
}

// SubScalar returns a new matrix with v subtracted from every element of m.
func SubScalar(m Matrix, v float64) (*Dense, error) {
	return ewScalar(m, func(x float64) float64 { return x - v }, opSubScalar)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape (NaN/Inf
// elements still produce NaN).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return ewScalar(m, func(x float64) float64 { return x * alpha }, opScale)
}

// DivScalar returns a new matrix whose elements are m[i,j] / v.
// v == 0 is not an error: elements become ±Inf or NaN.
func DivScalar(m Matrix, v float64) (*Dense, error) {
	return ewScalar(m, func(x float64) float64 { return x / v }, opDivScalar)
}

// Equal reports whether a and b have the same shape and every pair of
// corresponding elements compares equal with ==.
// Consequences: NaN never equals NaN, +0 equals -0. A shape difference is
// simply "not equal". Two nil matrices are equal; nil vs non-nil is not.
// A foreign implementation whose At fails makes the matrices unequal.
// Complexity: O(r*c), early exit on the first difference.
func Equal(a, b Matrix) bool {
	aNil, bNil := isNilMatrix(a), isNilMatrix(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	ad, err := flatten(a)
	if err != nil {
		return false
	}
	bd, err := flatten(b)
	if err != nil {
		return false
	}
	for k := range ad {
		if ad[k] != bd[k] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func NotEqual(a, b Matrix) bool { return !Equal(a, b) }

// EqualApprox reports whether a and b have the same shape and
// |a[i,j] - b[i,j]| <= eps everywhere (eps from WithEpsilon, DefaultEpsilon otherwise).
// Infinities compare equal only to the same infinity; NaN never matches.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func EqualApprox(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	eps := gatherOptions(opts...).eps
	ad, err := flatten(a)
	if err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}

	var x, y float64
	for k := range ad {
		x, y = ad[k], bd[k]
		if x == y {
			continue // covers equal infinities
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > eps {
			return false, nil
		}
	}

	return true, nil
}
