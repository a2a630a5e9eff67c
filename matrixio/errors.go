// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

// ErrFormat is returned when persisted text is malformed or truncated:
// unparsable header, zero rows or columns, missing elements, or an element
// that is not a number.
var ErrFormat = errors.New("matrixio: format error")

const (
	opWrite    = "Write"
	opRead     = "Read"
	opSaveFile = "SaveFile"
	opLoadFile = "LoadFile"
)

// ioErrorf wraps err with an operation tag, preserving it via %w.
func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// formatErrorf builds an ErrFormat with positional context.
func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}
