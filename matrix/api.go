// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Each facade delegates to the canonical implementation.

package matrix

const opEye = "Eye"

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidShape when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opEye, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Eye is NewIdentity under its conventional name.
func Eye(n int) (*Dense, error) { return NewIdentity(n) }

// CloneMatrix returns a structural clone of m (nil for nil).
func CloneMatrix(m Matrix) Matrix {
	if isNilMatrix(m) {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero *Dense with the same shape (and, for a *Dense m,
// the same numeric policy) as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newResult(m, m.Rows(), m.Cols())
}

// IdentityLike returns I_n for a square m.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m is not square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if m.Rows() != m.Cols() {
		return nil, matrixErrorf("IdentityLike", ErrDimensionMismatch)
	}

	return NewIdentity(m.Rows())
}

// ---------- Algebra facades ----------

// Sum is Add under a descriptive name.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is Sub under a descriptive name.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is Mul under a descriptive name.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// HadamardProd is Hadamard under a descriptive name.
func HadamardProd(a, b Matrix) (*Dense, error) { return Hadamard(a, b) }

// T is Transpose under its mathematical shorthand.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is Scale under a descriptive name.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }
