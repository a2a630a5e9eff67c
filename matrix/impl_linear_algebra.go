// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose and
// the Hadamard product. All functions perform fail-fast validation and return
// fresh *Dense results; operands are never mutated. A result takes the numeric
// policy of its left (or only) operand when that operand is a *Dense.
//
// Notes:
//   - *Dense operands are read straight from their flat buffers; other
//     implementations are materialized once through At (see flatten).
//   - Accumulation is float64 throughout.

package matrix

// ZeroSum is the initial value of every product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and loops.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: flatten both operands, allocate the result, single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, errors surfaced by a foreign At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := newResult(a, a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if sign > 0 {
		for idx := range res.data {
			res.data[idx] = ad[idx] + bd[idx]
		}
		return res, nil
	}
	for idx := range res.data {
		res.data[idx] = ad[idx] - bd[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: flatten operands, run the i→k→j kernel into a fresh buffer.
//
// Behavior highlights:
//   - No zero-skipping: 0 × Inf must still yield NaN in the result.
//   - Each C[i,j] accumulates its terms in ascending k, so results match a
//     textbook i→j→k loop bit for bit.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newResult(a, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulKernel(res.data, ad, bd, aRows, aCols, bCols)

	return res, nil
}

// mulKernel writes out = a × b for row-major buffers.
// a is (rows × inner), b is (inner × cols), out is (rows × cols) and must be
// zeroed and must not alias a or b.
func mulKernel(out, a, b []float64, rows, inner, cols int) {
	var i, j, k int
	var av float64
	var rowA, rowB, rowOut int
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowOut = i * cols
		for k = 0; k < inner; k++ {
			av = a[rowA+k]
			rowB = k * cols
			for j = 0; j < cols; j++ {
				out[rowOut+j] += av * b[rowB+j]
			}
		}
	}
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// shape (c × r) and res[j][i] = m[i][j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newResult(m, cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[baseSrc+j]
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) as a fresh Dense.
// Hadamard is not matrix multiplication; use Mul for A×B, ElementMul for the
// scalar sum of this product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res, err := newResult(a, a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	for idx := range res.data {
		res.data[idx] = ad[idx] * bd[idx]
	}

	return res, nil
}
