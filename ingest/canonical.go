// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvtad/matrix"
)

// Shape is the layout of an input table.
type Shape int

const (
	// Sparse rows are (start_i, start_j, count) triplets.
	Sparse Shape = iota
	// Full is an n×n count table.
	Full
	// BedFull is an n×(n+3) table: chrom, start, end, then n counts.
	BedFull
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Sparse:
		return "sparse"
	case Full:
		return "full"
	case BedFull:
		return "bed"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// DetectShape classifies t by width w and row count n: w == 3 is sparse
// (checked first, so a 3×3 table is read as triplets), w == n is full and
// w == n+3 is bed-augmented.
// Errors: ErrEmptyInput, ErrInvalidShape.
func DetectShape(t Table) (Shape, error) {
	n, w := len(t.Rows), t.Width()
	switch {
	case n == 0:
		return 0, ErrEmptyInput
	case w == 3:
		return Sparse, nil
	case w == n:
		return Full, nil
	case w == n+3:
		return BedFull, nil
	default:
		return 0, fmt.Errorf("ingest: %d rows of %d fields: %w", n, w, ErrInvalidShape)
	}
}

// Matrix is a canonical contact matrix with what the reader learned about it.
type Matrix struct {
	Contacts *matrix.ContactMatrix
	Chrom    string // chromosome column of bed-augmented input, "" otherwise
	Shape    Shape
}

// Canonicalize converts t into a canonical contact matrix.
// Implementation:
//   - Stage 1: DetectShape.
//   - Stage 2: parse numbers; counts must be finite and non-negative.
//   - Stage 3: fix bin labels and resolution (sparse and bed: from the
//     coordinates; full: 0, res, 2res… with res from WithResolution).
//   - Stage 4: matrix.NewContactMatrix validates symmetry and labels.
//
// Errors:
//   - ErrEmptyInput, ErrInvalidShape, ErrBadNumber, ErrNonFiniteValue,
//     ErrNegativeValue, ErrMixedChromosomes, matrix.ErrBadResolution,
//     matrix.ErrUnknownCoordinate, matrix.ErrAsymmetry, matrix.ErrBadLabels.
func Canonicalize(t Table, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	shape, err := DetectShape(t)
	if err != nil {
		return Matrix{}, err
	}

	var out Matrix
	switch shape {
	case Sparse:
		out, err = sparse(t, o)
	case Full:
		out, err = full(t, o)
	default:
		out, err = bed(t, o)
	}
	if err != nil {
		return Matrix{}, fmt.Errorf("ingest: %s: %w", shape, err)
	}
	out.Shape = shape

	return out, nil
}

// sparse reads (start_i, start_j, count) triplets.
func sparse(t Table, o options) (Matrix, error) {
	type triplet struct {
		i, j  int64
		count float64
	}
	recs := make([]triplet, len(t.Rows))
	coords := make([]int64, 0, 2*len(t.Rows))
	var err error
	for r, row := range t.Rows {
		rec := &recs[r]
		if rec.i, err = parseCoord(row[0]); err != nil {
			return Matrix{}, lineErrorf(t.Lines[r], err)
		}
		if rec.j, err = parseCoord(row[1]); err != nil {
			return Matrix{}, lineErrorf(t.Lines[r], err)
		}
		if rec.count, err = parseCount(row[2]); err != nil {
			return Matrix{}, lineErrorf(t.Lines[r], err)
		}
		coords = append(coords, rec.i, rec.j)
	}

	res, err := resolution(coords, o)
	if err != nil {
		return Matrix{}, err
	}
	lo, hi := coords[0], coords[0]
	for _, c := range coords {
		lo, hi = min(lo, c), max(hi, c)
	}
	if (hi-lo)%res != 0 {
		return Matrix{}, fmt.Errorf("span %d-%d, resolution %d: %w", lo, hi, res, matrix.ErrUnknownCoordinate)
	}

	n := int((hi-lo)/res) + 1
	counts, err := matrix.NewDense(n, n)
	if err != nil {
		return Matrix{}, err
	}
	labels := make([]int64, n)
	for k := range labels {
		labels[k] = lo + int64(k)*res
	}
	for r, rec := range recs {
		if (rec.i-lo)%res != 0 || (rec.j-lo)%res != 0 {
			return Matrix{}, lineErrorf(t.Lines[r], fmt.Errorf("(%d,%d) off the %d bp grid: %w", rec.i, rec.j, res, matrix.ErrUnknownCoordinate))
		}
		a, b := int((rec.i-lo)/res), int((rec.j-lo)/res)
		_ = counts.Set(a, b, rec.count)
		_ = counts.Set(b, a, rec.count)
	}

	m, err := matrix.NewContactMatrix(counts, labels, res, o.matrixOpts...)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{Contacts: m}, nil
}

// full reads an n×n count table.
func full(t Table, o options) (Matrix, error) {
	if o.resolution == 0 {
		return Matrix{}, fmt.Errorf("full matrix needs an explicit resolution: %w", matrix.ErrBadResolution)
	}
	counts, err := parseCounts(t, 0)
	if err != nil {
		return Matrix{}, err
	}
	m, err := matrix.NewContactMatrix(counts, nil, o.resolution, o.matrixOpts...)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{Contacts: m}, nil
}

// bed reads chrom, start, end followed by n counts per row.
func bed(t Table, o options) (Matrix, error) {
	chrom := t.Rows[0][0]
	starts := make([]int64, len(t.Rows))
	var err error
	for r, row := range t.Rows {
		if row[0] != chrom {
			return Matrix{}, lineErrorf(t.Lines[r], fmt.Errorf("%q after %q: %w", row[0], chrom, ErrMixedChromosomes))
		}
		if starts[r], err = parseCoord(row[1]); err != nil {
			return Matrix{}, lineErrorf(t.Lines[r], err)
		}
	}
	res, err := resolution(starts, o)
	if err != nil {
		return Matrix{}, err
	}
	counts, err := parseCounts(t, 3)
	if err != nil {
		return Matrix{}, err
	}
	m, err := matrix.NewContactMatrix(counts, starts, res, o.matrixOpts...)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{Contacts: m, Chrom: chrom}, nil
}

// parseCounts reads the square block of t starting at column skip.
func parseCounts(t Table, skip int) (*matrix.Dense, error) {
	n := len(t.Rows)
	data := make([]float64, 0, n*n)
	for r, row := range t.Rows {
		for _, f := range row[skip:] {
			v, err := parseCount(f)
			if err != nil {
				return nil, lineErrorf(t.Lines[r], err)
			}
			data = append(data, v)
		}
	}

	return matrix.NewDenseFrom(n, n, data)
}

// resolution returns the configured resolution or infers it from coords.
func resolution(coords []int64, o options) (int64, error) {
	if o.resolution > 0 {
		return o.resolution, nil
	}

	return InferResolution(coords)
}

// InferResolution returns the most frequent difference between consecutive
// distinct values of coords; ties go to the smaller difference.
// Errors: matrix.ErrBadResolution when fewer than two distinct values exist.
// Complexity: O(n log n).
func InferResolution(coords []int64) (int64, error) {
	sorted := append([]int64(nil), coords...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })

	freq := make(map[int64]int)
	for k := 1; k < len(sorted); k++ {
		if d := sorted[k] - sorted[k-1]; d > 0 {
			freq[d]++
		}
	}
	if len(freq) == 0 {
		return 0, fmt.Errorf("cannot infer resolution from a single bin: %w", matrix.ErrBadResolution)
	}

	var best int64
	for d, c := range freq {
		if c > freq[best] || (c == freq[best] && d < best) {
			best = d
		}
	}

	return best, nil
}

// parseCoord reads a bin start; integral floats such as "25000.0" are accepted.
func parseCoord(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("coordinate %q: %w", s, ErrBadNumber)
	}

	return int64(f), nil
}

// parseCount reads a finite, non-negative count.
func parseCount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case err != nil && !errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("count %q: %w", s, ErrBadNumber)
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, fmt.Errorf("count %q: %w", s, ErrNonFiniteValue)
	case v < 0:
		return 0, fmt.Errorf("count %q: %w", s, ErrNegativeValue)
	}

	return v, nil
}
