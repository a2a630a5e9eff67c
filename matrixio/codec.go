// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matalg/matrix"
)

// maxPrealloc caps the element buffer reserved from an untrusted header.
const maxPrealloc = 1 << 16

// Write encodes m as "<rows> <cols> " followed by every element in row-major
// order, each followed by a space.
//
// Errors:
//   - matrix.ErrNilMatrix, errors from a foreign At, errors from w.
func Write(w io.Writer, m matrix.Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opWrite, err)
	}
	o := gatherOptions(opts...)

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	var scratch []byte

	scratch = strconv.AppendInt(scratch[:0], int64(rows), 10)
	scratch = append(scratch, ' ')
	scratch = strconv.AppendInt(scratch, int64(cols), 10)
	scratch = append(scratch, ' ')
	if o.rowBreaks {
		scratch = append(scratch, '\n')
	}
	if _, err := bw.Write(scratch); err != nil {
		return ioErrorf(opWrite, err)
	}

	dense, isDense := m.(*matrix.Dense)
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if isDense {
				v = dense.UncheckedAt(i, j)
			} else if v, err = m.At(i, j); err != nil {
				return ioErrorf(opWrite, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			scratch = strconv.AppendFloat(scratch[:0], v, 'g', o.precision, 64)
			scratch = append(scratch, ' ')
			if _, err = bw.Write(scratch); err != nil {
				return ioErrorf(opWrite, err)
			}
		}
		if o.rowBreaks {
			if err = bw.WriteByte('\n'); err != nil {
				return ioErrorf(opWrite, err)
			}
		}
	}

	if err = bw.Flush(); err != nil {
		return ioErrorf(opWrite, err)
	}

	return nil
}

// Read decodes one matrix from r.
// MAIN DESCRIPTION:
//   - Reads rows and cols as base-10 integers, then exactly rows*cols floats.
//     Tokens after the last element are left unread/ignored.
//
// Implementation:
//   - Stage 1: tokenize on whitespace (bufio.ScanWords).
//   - Stage 2: parse and validate the header (both > 0, product fits in int).
//   - Stage 3: parse elements into a growing buffer, then build the Dense.
//
// Errors:
//   - ErrFormat for malformed/truncated input, including a token longer than
//     bufio.MaxScanTokenSize (also matches matrix.ErrNaNInf when the forwarded
//     numeric policy rejects an element).
//   - Errors from r are returned wrapped, not as ErrFormat.
func Read(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	finiteOnly := matrix.NewMatrixOptions(o.matrixOpts...).ValidateNaNInf()

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", formatErrorf("%s: token longer than %d bytes", what, bufio.MaxScanTokenSize)
			}
			return "", err
		}
		return "", formatErrorf("unexpected end of input reading %s", what)
	}

	rows, err := readDim(next, "rows")
	if err != nil {
		return nil, ioErrorf(opRead, err)
	}
	cols, err := readDim(next, "columns")
	if err != nil {
		return nil, ioErrorf(opRead, err)
	}
	if rows > math.MaxInt/cols {
		return nil, ioErrorf(opRead, formatErrorf("shape %dx%d overflows", rows, cols))
	}

	n := rows * cols
	data := make([]float64, 0, min(n, maxPrealloc))
	var tok string
	var v float64
	for k := 0; k < n; k++ {
		if tok, err = next(fmt.Sprintf("element %d of %d", k, n)); err != nil {
			return nil, ioErrorf(opRead, err)
		}
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, ioErrorf(opRead, formatErrorf("element %d: %q is not a number", k, tok))
		}
		if finiteOnly && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, ioErrorf(opRead, fmt.Errorf("element %d: %w: %w", k, ErrFormat, matrix.ErrNaNInf))
		}
		data = append(data, v)
	}

	m, err := matrix.NewFromSlice(rows, cols, data, o.matrixOpts...)
	if err != nil {
		return nil, ioErrorf(opRead, err)
	}

	return m, nil
}

// readDim parses one header field as a positive int.
func readDim(next func(string) (string, error), what string) (int, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	d, err := strconv.Atoi(tok)
	if err != nil {
		return 0, formatErrorf("%s: %q is not an integer", what, tok)
	}
	if d <= 0 {
		return 0, formatErrorf("%s must be > 0, got %d", what, d)
	}

	return d, nil
}

// Marshal returns the text encoding of m.
func Marshal(m matrix.Matrix, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, m, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a matrix from data.
func Unmarshal(data []byte, opts ...Option) (*matrix.Dense, error) {
	return Read(bytes.NewReader(data), opts...)
}
