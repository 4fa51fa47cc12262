// SPDX-License-Identifier: MIT

package tad

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtad/matrix"
)

// BuildHierarchy calls level 1 with Process and refines every level-(k-1)
// domain into level k, for exactly levels levels.
// Implementation:
//   - Stage 1: validate m, p and levels; the matrix must span at least one
//     window (WindowSize bins, by default ⌈WindowSpan/resolution⌉).
//   - Stage 2: level 1 = Process(m, p).
//   - Stage 3: for k = 2..levels, each level-(k-1) domain narrower than
//     2·MinSize bins, or with fewer than 2·MinSize non-zero rows, passes
//     through; the others are re-called on their sub-matrix view with the
//     ZScore policy and no quality filter. A domain that yields no
//     sub-domains passes through as well.
//
// Behavior highlights:
//   - Every level is materialised even when nothing changes.
//   - Level k+1 domains equal or lie inside a level k domain.
//   - Identical inputs give identical output.
//
// Errors:
//   - everything Process returns, ErrMatrixTooSmall, ErrBadParams (levels < 1).
//
// Complexity:
//   - levels × the cost of Process on the whole matrix, in the worst case.
func BuildHierarchy(m *matrix.ContactMatrix, p Params, levels int, opts ...Option) (Hierarchy, error) {
	if err := validate(m, p); err != nil {
		return Hierarchy{}, fmt.Errorf("BuildHierarchy: %w", err)
	}
	if levels < 1 {
		return Hierarchy{}, fmt.Errorf("BuildHierarchy: %w", paramErrorf("levels %d < 1", levels))
	}
	p = p.resolved(m.Resolution())
	if m.Size() < p.WindowSize {
		return Hierarchy{}, fmt.Errorf("BuildHierarchy: %d bins, window %d: %w", m.Size(), p.WindowSize, ErrMatrixTooSmall)
	}

	o := gatherOptions(opts...)
	top := caller{m: m, p: p, log: o.log}
	first, err := top.process()
	if err != nil {
		return Hierarchy{}, fmt.Errorf("BuildHierarchy: level 1: %w", err)
	}
	o.log.Debug("level done", zap.String("chrom", p.Chrom), zap.Int("level", 1), zap.Int("domains", len(first)))

	h := Hierarchy{Chrom: p.Chrom, Resolution: m.Resolution(), Levels: make([][]Domain, 0, levels)}
	h.Levels = append(h.Levels, first)

	sub := p
	sub.Policy = ZScore
	sub.QualityFilter = false
	for k := 2; k <= levels; k++ {
		next, err := refine(m, sub, h.Levels[k-2], k, o.log)
		if err != nil {
			return Hierarchy{}, fmt.Errorf("BuildHierarchy: level %d: %w", k, err)
		}
		o.log.Debug("level done", zap.String("chrom", p.Chrom), zap.Int("level", k), zap.Int("domains", len(next)))
		h.Levels = append(h.Levels, next)
	}

	return h, nil
}

// refine splits every parent domain into level-k children, or passes it through.
func refine(m *matrix.ContactMatrix, p Params, parents []Domain, k int, log *zap.Logger) ([]Domain, error) {
	out := make([]Domain, 0, len(parents))
	for _, parent := range parents {
		children, err := subdivide(m, p, parent, log)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", parent, err)
		}
		if len(children) == 0 {
			out = append(out, passThrough(parent))

			continue
		}
		out = append(out, children...)
	}
	for i := range out {
		out[i].Level = k
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Start < out[b].Start })

	return out, nil
}

// subdivide calls the domains inside parent, nil when parent is too small
// or too sparse to split.
func subdivide(m *matrix.ContactMatrix, p Params, parent Domain, log *zap.Logger) ([]Domain, error) {
	width := parent.Bins(m.Resolution())
	if width < 2*p.MinSize {
		return nil, nil
	}
	lo, err := m.IndexOf(parent.Start)
	if err != nil {
		return nil, err
	}
	view, err := m.Slice(lo, lo+width)
	if err != nil {
		return nil, err
	}
	if view.NonZeroRows() < 2*p.MinSize {
		return nil, nil
	}

	return caller{m: view, p: p, log: log}.process()
}

// passThrough copies d for the next level without sharing its Score.
func passThrough(d Domain) Domain {
	if d.Score != nil {
		s := *d.Score
		d.Score = &s
	}

	return d
}
