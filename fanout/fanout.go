// SPDX-License-Identifier: MIT

// Package fanout runs one tad.BuildHierarchy per chromosome on a bounded
// pool of goroutines.
//
// Jobs share nothing: every job owns its matrix for the duration of the
// call. The first failing job cancels the context; jobs that have not
// started yet are not started, builds already running finish on their own.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/katalvlaran/lvtad/tad"
)

// ErrNoJobs indicates an empty job list.
var ErrNoJobs = errors.New("fanout: no jobs")

// Job is one chromosome to call.
type Job struct {
	Matrix *matrix.ContactMatrix
	Params tad.Params // Params.Chrom names the chromosome
	Levels int
}

// Result is the outcome of one Job.
type Result struct {
	Hierarchy tad.Hierarchy
	Elapsed   time.Duration
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	log     *zap.Logger
}

// WithWorkers bounds the number of concurrent jobs; n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger for job events; it is also handed to
// tad.BuildHierarchy. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Run calls every job and returns the results in job order.
// Errors: ErrNoJobs, ctx.Err(), or the first job error wrapped with its
// chromosome.
func Run(ctx context.Context, jobs []Job, opts ...Option) ([]Result, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	o := options{log: zap.NewNop()}
	for _, set := range opts {
		set(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := run(jobs[i], o.log)
			if err != nil {
				return err
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.log.Error("fan-out failed", zap.Error(err))

		return nil, err
	}

	return results, nil
}

// run builds one hierarchy and logs its outcome.
func run(job Job, log *zap.Logger) (Result, error) {
	log = log.With(zap.String("chrom", job.Params.Chrom))
	log.Info("job started", zap.Int("bins", size(job.Matrix)), zap.Int("levels", job.Levels))

	began := time.Now()
	h, err := tad.BuildHierarchy(job.Matrix, job.Params, job.Levels, tad.WithLogger(log))
	elapsed := time.Since(began)
	if err != nil {
		log.Warn("job failed", zap.Error(err), zap.Duration("elapsed", elapsed))

		return Result{}, fmt.Errorf("fanout: %s: %w", job.Params.Chrom, err)
	}

	perLevel := make([]int, h.Depth())
	for k := range perLevel {
		perLevel[k] = len(h.Level(k + 1))
	}
	log.Info("job done", zap.Ints("domains_per_level", perLevel), zap.Duration("elapsed", elapsed))

	return Result{Hierarchy: h, Elapsed: elapsed}, nil
}

func size(m *matrix.ContactMatrix) int {
	if m == nil {
		return 0
	}

	return m.Size()
}
