// SPDX-License-Identifier: MIT

package tad

import (
	"errors"
	"fmt"
)

var (
	// ErrResolutionTooCoarse indicates a bin width above MaxResolution.
	ErrResolutionTooCoarse = errors.New("tad: resolution exceeds 200000 bp")

	// ErrMatrixTooSmall indicates fewer bins than one window.
	ErrMatrixTooSmall = errors.New("tad: matrix has fewer bins than one window")

	// ErrMissingChromosome indicates an empty chromosome label.
	ErrMissingChromosome = errors.New("tad: chromosome label is required")

	// ErrBadParams indicates a parameter outside its documented range.
	ErrBadParams = errors.New("tad: invalid parameters")
)

// paramErrorf wraps ErrBadParams with the offending field.
func paramErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadParams)
}
