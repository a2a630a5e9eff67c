// Package matrix provides a dense, row-major matrix of float64 values together
// with its arithmetic contract.
//
// The matrix package provides:
//
//   - Dense: an r×c grid with a fixed shape, bounds-checked At/Set and an
//     explicitly named unchecked fast path (UncheckedAt/UncheckedSet/UncheckedRow).
//   - In-place operators on *Dense: AddScalar, SubScalar, MulScalar, DivScalar,
//     AddAssign, SubAssign and MulAssign.
//   - Value-returning operators: Add, Sub, Mul, Equal, NotEqual and the scalar
//     forms AddScalar, SubScalar, Scale, DivScalar.
//   - Derived functions: Transpose, DotProduct, Eye, ElementSum, ElementMul.
//
// Every free function accepts the Matrix interface. *Dense operands take a
// flat-slice fast path; other implementations go through At and produce the
// same results.
//
// Errors are package-level sentinels (ErrInvalidShape, ErrRaggedShape,
// ErrOutOfRange, ErrDimensionMismatch, ErrIncompatibleVectorShape, ...) wrapped
// with the failing operation; match them with errors.Is. Operators validate
// shapes before writing, so a failed call never leaves a receiver half-updated.
//
// Element arithmetic follows IEEE-754: dividing by zero stores ±Inf or NaN
// instead of failing.
//
// A Dense is not safe for concurrent mutation. Concurrent readers are fine as
// long as no writer is active.
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
package matrix
