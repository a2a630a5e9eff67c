// Package matalg is a small dense-matrix toolkit for float64 values.
//
// What is inside?
//
//	matrix/    Dense row-major matrices, the Matrix interface, elementwise and
//	           algebraic operators (Add, Sub, Mul, Transpose, Hadamard), reductions
//	           (ElementSum, ElementMul, DotProduct, RowSums, ColSums) and validators.
//	matrixio/  whitespace text format over io.Reader/io.Writer, byte slices and
//	           files (LoadFile parses a read-only memory mapping).
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//	_ = matrixio.SaveFile("p.txt", p)
//
// Errors are sentinels matched with errors.Is (matrix.ErrDimensionMismatch,
// matrix.ErrOutOfRange, matrixio.ErrFormat, ...). Nothing in the module logs.
package matalg
