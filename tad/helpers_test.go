// SPDX-License-Identifier: MIT

package tad_test

import (
	"testing"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/katalvlaran/lvtad/tad"
	"github.com/stretchr/testify/require"
)

// fill builds an n×n contact matrix with value(i, j) at resolution res.
func fill(t *testing.T, n int, res int64, value func(i, j int) float64) *matrix.ContactMatrix {
	t.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = value(i, j)
		}
	}
	d, err := matrix.NewDenseFrom(n, n, data)
	require.NoError(t, err)
	m, err := matrix.NewContactMatrix(d, nil, res)
	require.NoError(t, err)

	return m
}

// blocks returns count diagonal blocks of size bins each: hi inside a block,
// lo between blocks.
func blocks(t *testing.T, count, size int, res int64, hi, lo float64) *matrix.ContactMatrix {
	t.Helper()

	return fill(t, count*size, res, func(i, j int) float64 {
		if i/size == j/size {
			return hi
		}

		return lo
	})
}

// spans flattens domains to [start, end) pairs.
func spans(ds []tad.Domain) [][2]int64 {
	out := make([][2]int64, len(ds))
	for i, d := range ds {
		out[i] = [2]int64{d.Start, d.End}
	}

	return out
}

// checkLevel asserts the per-level invariants: sorted, disjoint, wide enough.
func checkLevel(t *testing.T, ds []tad.Domain, res int64, minSize, level int) {
	t.Helper()
	for i, d := range ds {
		require.Equal(t, level, d.Level)
		require.Less(t, d.Start, d.End)
		require.GreaterOrEqual(t, d.Bins(res), minSize, "domain %s narrower than min size", d)
		if i > 0 {
			require.LessOrEqual(t, ds[i-1].End, d.Start, "domains %s and %s overlap or are unsorted", ds[i-1], d)
		}
	}
}
