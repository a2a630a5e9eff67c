// SPDX-License-Identifier: MIT

// Package matrix - reductions.
//
// Purpose:
//   - Scalar reductions over one or two matrices: ElementSum, ElementMul, DotProduct.
//   - Per-axis reductions: RowSums, ColSums.
//
// Determinism:
//   - Every reduction traverses in row-major order with a float64 accumulator
//     starting at ZeroSum, so results are reproducible run to run.

package matrix

import "fmt"

const (
	opElementSum = "ElementSum"
	opElementMul = "ElementMul"
	opDotProduct = "DotProduct"
	opRowSums    = "RowSums"
	opColSums    = "ColSums"
)

// ElementSum returns the sum of all elements of m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ElementSum(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opElementSum, err)
	}
	data, err := flatten(m)
	if err != nil {
		return 0, matrixErrorf(opElementSum, err)
	}

	sum := ZeroSum
	for _, v := range data {
		sum += v
	}

	return sum, nil
}

// ElementMul returns Σ a[i,j]*b[i,j] (the Frobenius inner product).
// Both matrices must have the same shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func ElementMul(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opElementMul, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return 0, matrixErrorf(opElementMul, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return 0, matrixErrorf(opElementMul, err)
	}

	sum := ZeroSum
	for k := range ad {
		sum += ad[k] * bd[k]
	}

	return sum, nil
}

// DotProduct returns the inner product of two vectors stored as matrices.
// MAIN DESCRIPTION:
//   - Default (heuristic) mode, rules applied in order:
//     1. l.Cols()==r.Cols() and l.Cols() > l.Rows(): row vectors, row 0 of both.
//     2. l.Rows()==r.Rows() and l.Rows() > l.Cols(): column vectors, column 0 of both.
//     3. otherwise ErrIncompatibleVectorShape.
//   - Strict mode (WithStrictVectors): both operands must be 1×n or both n×1
//     with the same n; 1×1 operands are accepted.
//
// Behavior highlights:
//   - The heuristic only looks at row 0 / column 0: in heuristic mode a 2×3
//     matrix is read as the row vector formed by its first row.
//   - The heuristic rejects 1×1 operands (neither dimension exceeds the other).
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleVectorShape.
//
// Complexity:
//   - Time O(n), Space O(1) for *Dense operands.
func DotProduct(l, r Matrix, opts ...Option) (float64, error) {
	if err := ValidateNotNil(l); err != nil {
		return 0, matrixErrorf(opDotProduct, err)
	}
	if err := ValidateNotNil(r); err != nil {
		return 0, matrixErrorf(opDotProduct, err)
	}

	var (
		n      int
		byRows bool
	)
	if gatherOptions(opts...).strictVectors {
		if err := ValidateVector(l); err != nil {
			return 0, matrixErrorf(opDotProduct, err)
		}
		if err := ValidateVector(r); err != nil {
			return 0, matrixErrorf(opDotProduct, err)
		}
		switch {
		case l.Rows() == 1 && r.Rows() == 1 && l.Cols() == r.Cols():
			n, byRows = l.Cols(), true
		case l.Cols() == 1 && r.Cols() == 1 && l.Rows() == r.Rows():
			n, byRows = l.Rows(), false
		default:
			return 0, matrixErrorf(opDotProduct, fmt.Errorf("%dx%d · %dx%d: %w",
				l.Rows(), l.Cols(), r.Rows(), r.Cols(), ErrIncompatibleVectorShape))
		}
	} else {
		switch {
		case l.Cols() == r.Cols() && l.Cols() > l.Rows():
			n, byRows = l.Cols(), true
		case l.Rows() == r.Rows() && l.Rows() > l.Cols():
			n, byRows = l.Rows(), false
		default:
			return 0, matrixErrorf(opDotProduct, fmt.Errorf("%dx%d · %dx%d: %w",
				l.Rows(), l.Cols(), r.Rows(), r.Cols(), ErrIncompatibleVectorShape))
		}
	}

	product := ZeroSum
	var lv, rv float64
	var err error
	for k := 0; k < n; k++ {
		if byRows {
			lv, err = elementAt(l, 0, k)
			if err == nil {
				rv, err = elementAt(r, 0, k)
			}
		} else {
			lv, err = elementAt(l, k, 0)
			if err == nil {
				rv, err = elementAt(r, k, 0)
			}
		}
		if err != nil {
			return 0, matrixErrorf(opDotProduct, err)
		}
		product += lv * rv
	}

	return product, nil
}

// elementAt reads (i,j) directly from *Dense storage, or through At otherwise.
// Callers have validated the indices against the shape.
func elementAt(m Matrix, i, j int) (float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j], nil
	}

	return m.At(i, j)
}

// RowSums returns a slice s of length Rows() with s[i] = Σ_j m[i,j].
// Errors: ErrNilMatrix.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := ZeroSum
		for _, v := range data[i*cols : (i+1)*cols] {
			sum += v
		}
		out[i] = sum
	}

	return out, nil
}

// ColSums returns a slice s of length Cols() with s[j] = Σ_i m[i,j].
// Errors: ErrNilMatrix.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols) // zeroed == ZeroSum
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			out[j] += data[base+j]
		}
	}

	return out, nil
}
