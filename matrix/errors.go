// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure returned by this package matches exactly one of the sentinels
// below via errors.Is. Callers assert on the kind, never on the message text.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON WRAPPING
// ----------------
// Sentinels are prefixed with "matrix: ". Kernels wrap them once with the
// operation tag ("Add: matrix: dimension mismatch") or, for element access,
// with the method and coordinates ("Dense.At(3,0): matrix: index out of range").
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> vector orientation.

var (
	// ErrInvalidShape is returned when a requested shape has rows<=0 or cols<=0.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrRaggedShape is returned when a table constructor receives rows of unequal length.
	ErrRaggedShape = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Checked accessors (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub on
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleVectorShape is returned by DotProduct when the operands
	// cannot be read as two vectors of the same orientation.
	ErrIncompatibleVectorShape = errors.New("matrix: incompatible vector shape")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the finite-only policy
	// (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// denseErrorf wraps err with the Dense method name and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
