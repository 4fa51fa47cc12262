// SPDX-License-Identifier: MIT

package tad_test

import (
	"testing"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/katalvlaran/lvtad/tad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// nested returns 60 bins: two 30-bin halves of three 10-bin sub-blocks each.
func nested(t *testing.T) *matrix.ContactMatrix {
	t.Helper()

	return fill(t, 60, res, func(i, j int) float64 {
		switch {
		case i/10 == j/10:
			return 100
		case i/30 == j/30:
			return 10
		default:
			return 1
		}
	})
}

func TestBuildHierarchy_BlockDiagonal(t *testing.T) {
	t.Parallel()

	m := blocks(t, 3, 10, res, 100, 1)
	h, err := tad.BuildHierarchy(m, blockParams(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, h.Depth())
	assert.Equal(t, "chr1", h.Chrom)
	assert.Equal(t, int64(res), h.Resolution)

	want := [][2]int64{{0, 250_000}, {250_000, 500_000}, {500_000, 750_000}}
	for k := 1; k <= 3; k++ {
		assert.Equal(t, want, spans(h.Level(k)), "level %d", k)
		checkLevel(t, h.Level(k), res, 5, k)
	}
	assert.Len(t, h.Domains(), 9)
	assert.Nil(t, h.Level(0))
	assert.Nil(t, h.Level(4))
}

func TestBuildHierarchy_Uniform(t *testing.T) {
	t.Parallel()

	m := fill(t, 20, 100_000, func(int, int) float64 { return 5 })
	h, err := tad.BuildHierarchy(m, tad.DefaultParams("chrX"), 2)
	require.NoError(t, err)
	require.Equal(t, 2, h.Depth())
	assert.Empty(t, h.Level(1))
	assert.Empty(t, h.Level(2))
}

// TestBuildHierarchy_Properties checks the structural guarantees of every level.
func TestBuildHierarchy_Properties(t *testing.T) {
	t.Parallel()

	m := nested(t)
	p := tad.DefaultParams("chr3")
	p.MinSize = 5
	p.WindowSize = 60

	h, err := tad.BuildHierarchy(m, p, 3)
	require.NoError(t, err)
	require.Equal(t, 3, h.Depth())
	assert.Equal(t, [][2]int64{{0, 750_000}, {750_000, 1_500_000}}, spans(h.Level(1)))

	for k := 1; k <= h.Depth(); k++ {
		checkLevel(t, h.Level(k), res, p.MinSize, k)
		if k == 1 {
			continue
		}
		for _, child := range h.Level(k) {
			inside := false
			for _, parent := range h.Level(k - 1) {
				if parent.Contains(child) {
					inside = true

					break
				}
			}
			assert.True(t, inside, "level %d domain %s outside level %d", k, child, k-1)
		}
	}

	again, err := tad.BuildHierarchy(m, p, 3)
	require.NoError(t, err)
	assert.Equal(t, h, again, "identical inputs give identical output")
}

// TestBuildHierarchy_QualityFilter checks the filter only ever removes domains.
func TestBuildHierarchy_QualityFilter(t *testing.T) {
	t.Parallel()

	m := nested(t)
	p := tad.DefaultParams("chr3")
	p.WindowSize = 60
	p.Policy = tad.Silhouette

	plain, err := tad.BuildHierarchy(m, p, 2)
	require.NoError(t, err)
	p.QualityFilter = true
	filtered, err := tad.BuildHierarchy(m, p, 2)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(filtered.Level(1)), len(plain.Level(1)))
	for _, d := range filtered.Level(1) {
		require.NotNil(t, d.Score)
		assert.Greater(t, *d.Score, tad.MinScore)
	}
}

func TestBuildHierarchy_Errors(t *testing.T) {
	t.Parallel()

	ok := blocks(t, 3, 10, res, 100, 1)
	tests := []struct {
		name   string
		m      *matrix.ContactMatrix
		levels int
		edit   func(*tad.Params)
		want   error
	}{
		{"coarse resolution", blocks(t, 3, 10, 250_000, 100, 1), 1, func(*tad.Params) {}, tad.ErrResolutionTooCoarse},
		{"too small for default window", ok, 1, func(p *tad.Params) { p.WindowSize = 0 }, tad.ErrMatrixTooSmall},
		{"too small for window", ok, 1, func(p *tad.Params) { p.WindowSize = 31 }, tad.ErrMatrixTooSmall},
		{"no levels", ok, 0, func(*tad.Params) {}, tad.ErrBadParams},
		{"no chromosome", ok, 1, func(p *tad.Params) { p.Chrom = "" }, tad.ErrMissingChromosome},
		{"nil matrix", nil, 1, func(*tad.Params) {}, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := blockParams()
			tc.edit(&p)
			_, err := tad.BuildHierarchy(tc.m, p, tc.levels)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildHierarchy_Logging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := tad.BuildHierarchy(blocks(t, 3, 10, res, 100, 1), blockParams(), 2, tad.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.NotZero(t, logs.FilterMessage("window").Len())
	levels := logs.FilterMessage("level done").AllUntimed()
	require.Len(t, levels, 2)
	assert.Equal(t, int64(3), levels[0].ContextMap()["domains"])
}

func TestDomain(t *testing.T) {
	t.Parallel()

	d := tad.Domain{Chrom: "chr1", Start: 100, End: 500}
	assert.Equal(t, "chr1:100-500", d.String())
	assert.Equal(t, 4, d.Bins(100))
	assert.True(t, d.Contains(tad.Domain{Chrom: "chr1", Start: 100, End: 300}))
	assert.False(t, d.Contains(tad.Domain{Chrom: "chr2", Start: 100, End: 300}))
	assert.False(t, d.Contains(tad.Domain{Chrom: "chr1", Start: 0, End: 300}))
}
