// SPDX-License-Identifier: MIT

// Package matrix - compound (in-place) operators on *Dense.
//
// Contract:
//   - Scalar forms never fail; each element follows IEEE-754 (x/0 = ±Inf, 0/0 = NaN).
//   - Matrix forms validate shapes first and leave the receiver untouched on error.
//   - MulAssign computes into a fresh buffer and then replaces the receiver's
//     shape and storage; the receiver is never read and written in the same pass.

package matrix

const (
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
	opMulAssign = "MulAssign"
)

// AddScalar adds v to every element in place.
func (m *Dense) AddScalar(v float64) {
	for k := range m.data {
		m.data[k] += v
	}
}

// SubScalar subtracts v from every element in place.
func (m *Dense) SubScalar(v float64) {
	for k := range m.data {
		m.data[k] -= v
	}
}

// MulScalar multiplies every element by v in place.
func (m *Dense) MulScalar(v float64) {
	for k := range m.data {
		m.data[k] *= v
	}
}

// DivScalar divides every element by v in place. v == 0 is not an error.
func (m *Dense) DivScalar(v float64) {
	for k := range m.data {
		m.data[k] /= v
	}
}

// AddAssign performs m += b elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ). m is unchanged on error.
// Complexity: O(r*c).
func (m *Dense) AddAssign(b Matrix) error {
	return m.addSubAssign(b, +1, opAddAssign)
}

// SubAssign performs m -= b elementwise. Same contract as AddAssign.
func (m *Dense) SubAssign(b Matrix) error {
	return m.addSubAssign(b, -1, opSubAssign)
}

// addSubAssign is the shared kernel for AddAssign/SubAssign.
// b is fully materialized before the first write, so m.AddAssign(m) doubles m.
func (m *Dense) addSubAssign(b Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return matrixErrorf(opTag, err)
	}
	if sign > 0 {
		for k := range m.data {
			m.data[k] += bd[k]
		}
		return nil
	}
	for k := range m.data {
		m.data[k] -= bd[k]
	}

	return nil
}

// MulAssign performs m = m × b (standard matrix product).
// MAIN DESCRIPTION:
//   - In-place form of Mul. The result shape is (m.Rows(), b.Cols()), which
//     may differ from m's current shape: the receiver is resized as an explicit
//     side effect.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, b) (m.Cols == b.Rows).
//   - Stage 2: compute the product into a freshly allocated buffer.
//   - Stage 3: assign the new shape and buffer over the receiver.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. m is unchanged on error.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the new buffer.
//
// Notes:
//   - m.MulAssign(m) is well-defined for square m (operands are read before the swap).
//   - The numeric policy flag of m is kept.
func (m *Dense) MulAssign(b Matrix) error {
	if err := ValidateMulCompatible(m, b); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return matrixErrorf(opMulAssign, err)
	}

	rows, cols := m.r, b.Cols()
	out := make([]float64, rows*cols)
	mulKernel(out, m.data, bd, rows, m.c, cols)

	m.r, m.c, m.data = rows, cols, out

	return nil
}
