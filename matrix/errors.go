// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers check them via errors.Is. No routine panics on
// user-triggered error conditions; panics are reserved for programmer errors
// in unchecked private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// returned wrapped with an operation tag ("ContactMatrix.Slice: matrix: ..."),
// callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> NaN/Inf -> negative counts -> symmetry -> labels/resolution.

var (
	// ErrBadShape is returned when a table or matrix has an unusable shape
	// (neither square, nor 3-column sparse, nor n×(n+3) bed-augmented).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a contact matrix violated symmetry within eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite counts are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative contact count.
	ErrNegative = errors.New("matrix: negative contact count")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadLabels signals bin labels that are missing, of the wrong length, or
	// not strictly increasing by the resolution.
	ErrBadLabels = errors.New("matrix: bin labels must increase by resolution")

	// ErrBadResolution signals a non-positive resolution.
	ErrBadResolution = errors.New("matrix: resolution must be > 0")

	// ErrUnknownCoordinate signals a genomic coordinate that is not a bin start
	// of the matrix.
	ErrUnknownCoordinate = errors.New("matrix: coordinate is not a bin start")
)

