// SPDX-License-Identifier: MIT

package fanout_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvtad/fanout"
	"github.com/katalvlaran/lvtad/matrix"
	"github.com/katalvlaran/lvtad/tad"
)

// blockMatrix returns count 10-bin blocks at 25 kb.
func blockMatrix(t *testing.T, count int) *matrix.ContactMatrix {
	t.Helper()
	n := count * 10
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = 1
			if i/10 == j/10 {
				data[i*n+j] = 100
			}
		}
	}
	d, err := matrix.NewDenseFrom(n, n, data)
	require.NoError(t, err)
	m, err := matrix.NewContactMatrix(d, nil, 25_000)
	require.NoError(t, err)

	return m
}

func jobs(t *testing.T, chroms ...string) []fanout.Job {
	t.Helper()
	out := make([]fanout.Job, len(chroms))
	for i, c := range chroms {
		p := tad.DefaultParams(c)
		p.Eigenvalues = 3
		p.WindowSize = 30
		out[i] = fanout.Job{Matrix: blockMatrix(t, 3), Params: p, Levels: 2}
	}

	return out
}

func TestRun_Order(t *testing.T) {
	t.Parallel()

	chroms := []string{"chr1", "chr2", "chr3", "chr4", "chr5"}
	core, logs := observer.New(zapcore.InfoLevel)
	res, err := fanout.Run(context.Background(), jobs(t, chroms...), fanout.WithWorkers(2), fanout.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Len(t, res, len(chroms))
	for i, r := range res {
		assert.Equal(t, chroms[i], r.Hierarchy.Chrom)
		assert.Len(t, r.Hierarchy.Level(1), 3)
		for _, d := range r.Hierarchy.Domains() {
			assert.Equal(t, chroms[i], d.Chrom)
		}
	}
	assert.Equal(t, len(chroms), logs.FilterMessage("job done").Len())
	assert.Equal(t, len(chroms), logs.FilterMessage("job started").Len())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, err := fanout.Run(context.Background(), nil)
	require.ErrorIs(t, err, fanout.ErrNoJobs)

	bad := jobs(t, "chr1", "", "chr3")
	_, err = fanout.Run(context.Background(), bad, fanout.WithWorkers(1))
	require.ErrorIs(t, err, tad.ErrMissingChromosome)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fanout.Run(ctx, jobs(t, "chr1"))
	require.ErrorIs(t, err, context.Canceled)
}

func ExampleRun() {
	n := 30
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = 1
			if i/10 == j/10 {
				data[i*n+j] = 100
			}
		}
	}
	d, _ := matrix.NewDenseFrom(n, n, data)
	m, _ := matrix.NewContactMatrix(d, nil, 25_000)

	p := tad.DefaultParams("chr1")
	p.Eigenvalues = 3
	p.WindowSize = 30
	res, err := fanout.Run(context.Background(), []fanout.Job{{Matrix: m, Params: p, Levels: 1}})
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(len(res[0].Hierarchy.Level(1)), "domains")
	// Output: 3 domains
}
