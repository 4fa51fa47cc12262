// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for contact-matrix construction
// and numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts NewContactMatrix and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by the symmetry check.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on construction.
	DefaultValidateNaNInf = true

	// DefaultSymmetrize averages A and Aᵀ instead of rejecting asymmetric input.
	DefaultSymmetrize = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	symmetrize     bool    // DefaultSymmetrize
}

// WithEpsilon sets the tolerance eps used by the symmetry check.
// Panics with a stable message when eps is negative, NaN or Inf.
//
// AI-Hints:
//   - Raw integer counts are exactly symmetric; raise eps only for balanced
//     (floating point) matrices written with limited precision.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care: NaN counts
// poison every downstream normalisation).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSymmetrize replaces A by (A+Aᵀ)/2 during construction instead of
// returning ErrAsymmetry. Useful for sparse inputs that list only one triangle
// twice with slightly different balanced values.
func WithSymmetrize() Option {
	return func(o *Options) { o.symmetrize = true }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved symmetry tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		symmetrize:     DefaultSymmetrize,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
