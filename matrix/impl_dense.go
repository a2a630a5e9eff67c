// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer a separate, explicitly named trusted-index path (Unchecked*) for hot loops.
//
// Complexity quicksheet:
//   - New/NewFromRows/NewFromSlice: O(r*c); At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "[ "
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0 for every instance built by this package.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (see WithValidateNaNInf).
//
// The shape is fixed for the lifetime of the value; MulAssign is the only
// operation that replaces it. A Dense is not synchronized: any write needs
// exclusive access.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard for Set
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New creates a rows×cols matrix with every cell set to fill.
// MAIN DESCRIPTION:
//   - Fill constructor with eager shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and rows*cols without overflow; else ErrInvalidShape.
//   - Stage 2: allocate the flat buffer and fill it (skipped for fill == 0, make() zeroes).
//   - Stage 3: resolve the numeric policy from opts.
//
// Errors:
//   - ErrInvalidShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, fill float64, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}
	o := gatherOptions(opts...)

	buf := make([]float64, rows*cols)
	if fill != 0 || math.Signbit(fill) {
		for k := range buf {
			buf[k] = fill
		}
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewDense creates a rows×cols zero matrix. Shorthand for New(rows, cols, 0).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	return New(rows, cols, 0, opts...)
}

// NewFromRows builds a matrix from a table of rows.
// MAIN DESCRIPTION:
//   - Row count is len(rows); column count is len(rows[0]).
//
// Implementation:
//   - Stage 1: reject an empty table (ErrInvalidShape).
//   - Stage 2: verify every row has len(rows[0]) elements BEFORE committing a shape (ErrRaggedShape).
//   - Stage 3: reject zero-length rows (ErrInvalidShape), then copy row by row.
//
// Behavior highlights:
//   - The input table is copied; later changes to it do not affect the matrix.
//
// Errors:
//   - ErrInvalidShape, ErrRaggedShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidShape)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf("NewFromRows",
				fmt.Errorf("row %d has %d elements, row 0 has %d: %w", i, len(rows[i]), cols, ErrRaggedShape))
		}
	}

	m, err := New(len(rows), cols, 0, opts...)
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromSlice builds a rows×cols matrix from row-major data (copied).
// Errors: ErrInvalidShape, ErrDimensionMismatch when len(data) != rows*cols.
func NewFromSlice(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := New(rows, cols, 0, opts...)
	if err != nil {
		return nil, matrixErrorf("NewFromSlice", err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("NewFromSlice",
			fmt.Errorf("got %d values for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch))
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("row %d not in [0,%d): %w", row, m.r, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("column %d not in [0,%d): %w", col, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read; never panics on bad indices.
//
// Errors:
//   - ErrOutOfRange wrapped as "Dense.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with the optional finite-only policy.
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for rejected values. Nothing is written on error.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// UncheckedAt reads (row, col) without validating the indices.
// The caller guarantees 0<=row<Rows() and 0<=col<Cols(); out-of-range
// column indices silently read a neighbouring row, and anything beyond the
// buffer panics. Use At unless profiling says otherwise.
func (m *Dense) UncheckedAt(row, col int) float64 {
	return m.data[row*m.c+col]
}

// UncheckedSet writes (row, col) without bounds checks or numeric policy.
// Same caller contract as UncheckedAt.
func (m *Dense) UncheckedSet(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// UncheckedRow returns row i as a slice aliasing the matrix storage.
// Writes through the slice mutate the matrix and bypass the numeric policy.
// The slice is capped at the row length, so appends never clobber row i+1.
// Panics (runtime bounds check) when i is outside [0, Rows()).
func (m *Dense) UncheckedRow(i int) []float64 {
	base := i * m.c
	return m.data[base : base+m.c : base+m.c]
}

// Clone returns a deep copy as a Matrix (same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.Copy()
}

// Copy returns a deep copy with the concrete type preserved.
// Mutations of the copy never affect m.
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String renders each row as "[ v0 v1 ... vN ]" followed by a line break.
// Values use the shortest %g representation. Diagnostics only; the
// persistence format lives in package matrixio.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
// Results are stored as computed (IEEE-754 semantics); the numeric policy
// guards Set only.
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// newResult allocates a rows×cols zero matrix for an operator result.
// The numeric policy is inherited from like when it is a *Dense; foreign
// operands yield the default policy.
func newResult(like Matrix, rows, cols int) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if d, ok := like.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
	}

	return res, nil
}

// flatten returns the row-major contents of m.
// For *Dense the backing slice itself is returned (callers must treat it as
// read-only); other implementations are materialized through At.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}
