// SPDX-License-Identifier: MIT
// Package matrix: functional options.
//
// Purpose:
//   - Single source of truth for the defaults of the numeric policy, the
//     approximate-equality tolerance and the DotProduct vector mode.
//   - Option constructors panic only on nonsensical values (programmer error);
//     kernels never panic on user data.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by EqualApprox.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf controls whether Set rejects NaN/±Inf.
	// Off by default: elementwise IEEE-754 results (x/0 = ±Inf) must be storable.
	DefaultValidateNaNInf = false

	// DefaultStrictVectors selects the DotProduct mode. When false the
	// row-count/column-count heuristic decides the vector orientation.
	DefaultStrictVectors = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	strictVectors  bool    // DefaultStrictVectors
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether constructed matrices reject NaN/±Inf in Set.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// StrictVectors reports whether DotProduct requires exact vector shapes.
func (o Options) StrictVectors() bool { return o.strictVectors }

// WithEpsilon sets the absolute tolerance used by EqualApprox.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes matrices built with this option reject NaN and ±Inf
// in Set. Compound operators are not affected: they keep IEEE-754 semantics.
// The policy travels with the data: Copy, MulAssign and every value-returning
// operator whose left (or only) operand is a *Dense keep it.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default policy (any float64 is storable).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithStrictVectors makes DotProduct require two vectors of the same
// orientation: both 1×n or both n×1.
func WithStrictVectors() Option {
	return func(o *Options) { o.strictVectors = true }
}

// WithHeuristicVectors restores the default DotProduct mode, where the
// orientation is inferred by comparing row and column counts.
func WithHeuristicVectors() Option {
	return func(o *Options) { o.strictVectors = false }
}

// NewMatrixOptions resolves opts on top of the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		strictVectors:  DefaultStrictVectors,
	}
}

// gatherOptions applies user setters in order on top of defaultOptions.
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
