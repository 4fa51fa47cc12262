// SPDX-License-Identifier: MIT

package ingest

import (
	"github.com/katalvlaran/lvtad/matrix"
)

const panicResolutionNegative = "ingest: WithResolution: resolution must be >= 0"

// Option configures Canonicalize, Read and ReadFile.
type Option func(*options)

type options struct {
	resolution int64 // 0 = infer
	matrixOpts []matrix.Option
}

// WithResolution fixes the bin width in bp; 0 restores inference.
// Full n×n tables carry no coordinates and need it.
// Panics when res is negative.
func WithResolution(res int64) Option {
	if res < 0 {
		panic(panicResolutionNegative)
	}

	return func(o *options) { o.resolution = res }
}

// WithSymmetrize averages a full or bed-augmented matrix with its transpose
// instead of rejecting it as asymmetric.
func WithSymmetrize() Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, matrix.WithSymmetrize()) }
}

// WithEpsilon sets the symmetry tolerance; see matrix.WithEpsilon.
func WithEpsilon(eps float64) Option {
	set := matrix.WithEpsilon(eps)

	return func(o *options) { o.matrixOpts = append(o.matrixOpts, set) }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, set := range opts {
		set(&o)
	}

	return o
}
