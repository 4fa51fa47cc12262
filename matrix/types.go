// SPDX-License-Identifier: MIT

// Package matrix: the canonical contact matrix consumed by the TAD caller.
// A ContactMatrix couples a square, symmetric, non-negative Dense of contact
// counts with the genomic start coordinate of every bin and the resolution
// (bin width in base pairs). Sub-matrices along the diagonal are index views,
// so recursive callers can carve a chromosome into domains without copying.
package matrix

import "fmt"

// ContactMatrix is an immutable, labelled, square contact-count matrix.
// Invariants (checked by NewContactMatrix, inherited by Slice):
//   - counts is square, finite, non-negative and symmetric within eps;
//   - len(labels) == Size();
//   - labels[i+1]-labels[i] == resolution for every i.
type ContactMatrix struct {
	counts     *Dense  // n×n contact counts (may be a view)
	labels     []int64 // bin start coordinates, bp
	resolution int64   // bp per bin
}

// NewContactMatrix validates counts and labels and returns the canonical matrix.
// Implementation:
//   - Stage 1: ValidateSquare, then (optionally) ValidateFinite, ValidateNonNegative.
//   - Stage 2: symmetrize in place (WithSymmetrize) or ValidateSymmetric(eps).
//   - Stage 3: synthesise labels 0, res, 2res… when labels is nil; ValidateLabels.
//
// Behavior highlights:
//   - Ownership of counts and labels moves to the returned matrix; callers must
//     not mutate them afterwards.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegative, ErrAsymmetry,
//     ErrBadResolution, ErrBadLabels (wrapped with "NewContactMatrix").
//
// Complexity:
//   - Time O(n²), Space O(n) (labels only).
func NewContactMatrix(counts *Dense, labels []int64, resolution int64, opts ...Option) (*ContactMatrix, error) {
	o := gatherOptions(opts...)

	if err := ValidateSquare(counts); err != nil {
		return nil, contactErrorf("NewContactMatrix", err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(counts); err != nil {
			return nil, contactErrorf("NewContactMatrix", err)
		}
	}
	if err := ValidateNonNegative(counts); err != nil {
		return nil, contactErrorf("NewContactMatrix", err)
	}
	if o.symmetrize {
		symmetrize(counts)
	} else if err := ValidateSymmetric(counts, o.eps); err != nil {
		return nil, contactErrorf("NewContactMatrix", err)
	}

	n := counts.Rows()
	if labels == nil && resolution > 0 {
		labels = make([]int64, n)
		for i := range labels {
			labels[i] = int64(i) * resolution
		}
	}
	if err := ValidateLabels(labels, n, resolution); err != nil {
		return nil, contactErrorf("NewContactMatrix", err)
	}

	return &ContactMatrix{counts: counts, labels: labels, resolution: resolution}, nil
}

// contactErrorf wraps err with the ContactMatrix operation tag.
func contactErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// symmetrize replaces m by (m+mᵀ)/2 in place.
func symmetrize(m *Dense) {
	n := m.r
	var i, j int
	var avg float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			avg = (m.at(i, j) + m.at(j, i)) / 2
			m.data[i*m.stride+j] = avg
			m.data[j*m.stride+i] = avg
		}
	}
}

// Size returns the number of bins n.
func (m *ContactMatrix) Size() int { return m.counts.Rows() }

// Resolution returns the bin width in base pairs.
func (m *ContactMatrix) Resolution() int64 { return m.resolution }

// Label returns the start coordinate of bin i. Panics if i is out of range.
func (m *ContactMatrix) Label(i int) int64 { return m.labels[i] }

// Labels returns a copy of the bin start coordinates.
func (m *ContactMatrix) Labels() []int64 {
	out := make([]int64, len(m.labels))
	copy(out, m.labels)

	return out
}

// Count returns the contact count between bins i and j (unchecked).
func (m *ContactMatrix) Count(i, j int) float64 { return m.counts.at(i, j) }

// Counts returns the underlying Dense. It aliases the matrix storage and must
// be treated as read-only.
func (m *ContactMatrix) Counts() *Dense { return m.counts }

// Slice returns the diagonal block covering bins [lo, hi) as a view sharing
// storage with m. Labels are sub-sliced, not copied.
// Errors: ErrOutOfRange when the range is empty or exceeds the matrix.
// Complexity: O(1).
func (m *ContactMatrix) Slice(lo, hi int) (*ContactMatrix, error) {
	if lo < 0 || hi > m.Size() || lo >= hi {
		return nil, contactErrorf(fmt.Sprintf("ContactMatrix.Slice(%d,%d)", lo, hi), ErrOutOfRange)
	}
	v, err := m.counts.View(lo, lo, hi-lo, hi-lo)
	if err != nil {
		return nil, contactErrorf("ContactMatrix.Slice", err)
	}

	return &ContactMatrix{counts: v, labels: m.labels[lo:hi:hi], resolution: m.resolution}, nil
}

// IndexOf maps a bin start coordinate to its row index.
// Errors: ErrUnknownCoordinate when coord is not one of the labels.
// Complexity: O(1).
func (m *ContactMatrix) IndexOf(coord int64) (int, error) {
	off := coord - m.labels[0]
	if off < 0 || off%m.resolution != 0 || off/m.resolution >= int64(m.Size()) {
		return 0, contactErrorf(fmt.Sprintf("ContactMatrix.IndexOf(%d)", coord), ErrUnknownCoordinate)
	}

	return int(off / m.resolution), nil
}

// Select copies the rows and columns listed in idx into a compact |idx|×|idx|
// Dense, preserving the order of idx. Indices must be valid.
// Complexity: O(|idx|²).
func (m *ContactMatrix) Select(idx []int) *Dense {
	k := len(idx)
	out := &Dense{r: k, c: k, stride: k, data: make([]float64, k*k)}
	var a, b int
	for a = 0; a < k; a++ {
		row := m.counts.Row(idx[a])
		for b = 0; b < k; b++ {
			out.data[a*k+b] = row[idx[b]]
		}
	}

	return out
}

// ZeroCounts returns, for each bin, the number of zero entries in its row.
// Complexity: O(n²).
func (m *ContactMatrix) ZeroCounts() []int {
	n := m.Size()
	zeros := make([]int, n)
	for i := 0; i < n; i++ {
		for _, v := range m.counts.Row(i) {
			if v == 0 {
				zeros[i]++
			}
		}
	}

	return zeros
}

// NonZeroRows returns the number of rows holding at least one non-zero count.
// Complexity: O(n²) worst case, early exit per row.
func (m *ContactMatrix) NonZeroRows() int {
	n := m.Size()
	count := 0
	for i := 0; i < n; i++ {
		for _, v := range m.counts.Row(i) {
			if v != 0 {
				count++
				break
			}
		}
	}

	return count
}
