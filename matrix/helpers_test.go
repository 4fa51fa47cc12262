// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds an r×c Dense from row-major values or fails the test.
func mustDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, append([]float64(nil), vals...))
	require.NoError(t, err)

	return d
}

// blockDiagonal returns an n×n matrix with square blocks of the given sizes:
// intra-block entries are hi, inter-block entries lo.
func blockDiagonal(t *testing.T, sizes []int, hi, lo float64) *matrix.Dense {
	t.Helper()
	n := 0
	for _, s := range sizes {
		n += s
	}
	owner := make([]int, 0, n)
	for b, s := range sizes {
		for k := 0; k < s; k++ {
			owner = append(owner, b)
		}
	}
	vals := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if owner[i] == owner[j] {
				vals[i*n+j] = hi
			} else {
				vals[i*n+j] = lo
			}
		}
	}

	return mustDense(t, n, n, vals)
}
