// SPDX-License-Identifier: MIT

package matrixio

import "github.com/katalvlaran/matalg/matrix"

const (
	// DefaultPrecision is passed to strconv.FormatFloat; -1 means the shortest
	// representation that round-trips exactly.
	DefaultPrecision = -1

	// DefaultRowBreaks controls whether Write ends each row with a line break.
	DefaultRowBreaks = false
)

const panicPrecisionInvalid = "matrixio: WithPrecision: precision must be >= -1"

// Option mutates codec options (last writer wins).
type Option func(*Options)

// Options is the resolved codec configuration.
type Options struct {
	precision  int
	rowBreaks  bool
	matrixOpts []matrix.Option
}

// WithPrecision sets the number of significant digits used by Write
// ('g' format). Lower precisions lose information on reload.
// Panics when p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithRowBreaks makes Write put a line break after the header and after every
// row, for human inspection. Readers are unaffected.
func WithRowBreaks() Option {
	return func(o *Options) { o.rowBreaks = true }
}

// WithMatrixOptions forwards matrix options to the matrices built by Read,
// e.g. matrix.WithValidateNaNInf() to reject non-finite elements.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{precision: DefaultPrecision, rowBreaks: DefaultRowBreaks}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
