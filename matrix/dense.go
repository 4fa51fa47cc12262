// SPDX-License-Identifier: MIT

// Package matrix provides core linear algebra primitives for contact-matrix computations.
// Dense is a concrete, row-major float64 matrix,
// storing elements in a flat slice for performance and cache friendliness.
// A Dense may be a view into a larger Dense: views share storage and use the
// parent's row stride, so sub-matrices along the diagonal cost O(1) to create.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, stride is the distance between row starts in data.
// For an owning Dense stride == c; for a view stride is the parent's stride.
type Dense struct {
	r, c   int       // number of rows and columns
	stride int       // row pitch in data
	data   []float64 // flat backing storage (possibly shared with a parent)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, stride: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom wraps data (row-major, len == rows*cols) without copying.
// The caller hands ownership of data to the returned Dense.
// Complexity: O(1).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len(data)=%d want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, stride: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.stride + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Writing through a view writes into the parent storage.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// at is the unchecked accessor used by hot loops inside this module.
// Indices must already be known valid; out-of-range access panics via the slice.
func (m *Dense) at(row, col int) float64 {
	return m.data[row*m.stride+col]
}

// Row returns row i as a slice aliasing the backing storage (length Cols()).
// Callers must not modify it unless they own the matrix.
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	base := i * m.stride

	return m.data[base : base+m.c : base+m.c]
}

// View returns the r×c block whose top-left corner is (i, j), sharing storage.
// Complexity: O(1).
func (m *Dense) View(i, j, r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("Dense.View(%d,%d,%d,%d): %w", i, j, r, c, ErrInvalidDimensions)
	}
	if i < 0 || j < 0 || i+r > m.r || j+c > m.c {
		return nil, fmt.Errorf("Dense.View(%d,%d,%d,%d): %w", i, j, r, c, ErrOutOfRange)
	}
	off := i*m.stride + j

	return &Dense{r: r, c: c, stride: m.stride, data: m.data[off : off+(r-1)*m.stride+c]}, nil
}

// Clone returns a compact deep copy (stride == cols) of the matrix or view.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	return m.compact()
}

// compact copies m into freshly allocated row-major storage.
func (m *Dense) compact() *Dense {
	out := &Dense{r: m.r, c: m.c, stride: m.c, data: make([]float64, m.r*m.c)}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*m.c:(i+1)*m.c], m.Row(i))
	}

	return out
}

// RawData returns a compact row-major copy of the elements.
// Complexity: O(r*c).
func (m *Dense) RawData() []float64 {
	if m.stride == m.c && len(m.data) == m.r*m.c {
		out := make([]float64, len(m.data))
		copy(out, m.data)

		return out
	}

	return m.compact().data
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.at(i, j))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
