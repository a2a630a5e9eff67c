// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/matalg/matrix"
)

// SaveFile writes m to path, creating or truncating the file.
// The file is closed before returning; a close error is reported.
func SaveFile(path string, m matrix.Matrix, opts ...Option) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opSaveFile, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(opSaveFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(opSaveFile, cerr)
		}
	}()

	if err = Write(f, m, opts...); err != nil {
		return ioErrorf(opSaveFile, err)
	}

	return nil
}

// LoadFile reads a matrix from path.
// The file is mapped read-only and parsed in place; the mapping is released
// before returning and the matrix owns fresh storage. An empty file is
// ErrFormat.
func LoadFile(path string, opts ...Option) (m *matrix.Dense, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opLoadFile, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErrorf(opLoadFile, err)
	}
	if info.Size() == 0 {
		return nil, ioErrorf(opLoadFile, formatErrorf("%s is empty", path))
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioErrorf(opLoadFile, err)
	}
	defer func() {
		if uerr := data.Unmap(); uerr != nil && err == nil {
			m, err = nil, ioErrorf(opLoadFile, uerr)
		}
	}()

	if m, err = Read(bytes.NewReader(data), opts...); err != nil {
		return nil, ioErrorf(opLoadFile, err)
	}

	return m, nil
}
