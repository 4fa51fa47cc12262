// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtad/matrix"
)

var (
	// ErrInvalidShape indicates a table that is neither sparse, full nor bed-augmented.
	ErrInvalidShape = matrix.ErrBadShape

	// ErrNonFiniteValue indicates a NaN or ±Inf count.
	ErrNonFiniteValue = matrix.ErrNaNInf

	// ErrNegativeValue indicates a negative count.
	ErrNegativeValue = matrix.ErrNegative

	// ErrEmptyInput indicates a table without data rows.
	ErrEmptyInput = errors.New("ingest: no data rows")

	// ErrBadNumber indicates a field that should be numeric but is not.
	ErrBadNumber = errors.New("ingest: malformed number")

	// ErrMixedChromosomes indicates bed-augmented rows naming different chromosomes.
	ErrMixedChromosomes = errors.New("ingest: rows name more than one chromosome")
)

// lineErrorf tags err with a 1-based input line number.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
