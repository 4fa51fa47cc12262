// SPDX-License-Identifier: MIT

package tad

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/katalvlaran/lvtad/spectral"
)

// caller binds one matrix to one parameter set for the duration of a call.
type caller struct {
	m   *matrix.ContactMatrix
	p   Params // resolved: WindowSize > 0
	log *zap.Logger
}

// windowResult is the outcome of one window.
type windowResult struct {
	groups  [][]int // absolute bin indices per group, ascending
	found   bool    // at least one interior boundary
	skipped bool    // too few bins left, or no spectral structure
}

// accumulator carries the groups emitted so far from one window to the next.
type accumulator struct {
	groups [][]int
}

func (a accumulator) add(groups ...[]int) accumulator {
	a.groups = append(a.groups, groups...)

	return a
}

// Process calls domains along the diagonal of m with a sliding window.
// Implementation:
//   - Stage 1: validate m and p; fill in the default window size.
//   - Stage 2: slide the window (see package doc); each window is an index
//     view of m, filtered by GapThreshold, embedded and cut by p.Policy.
//   - Stage 3: every accumulated group becomes [label(first), label(last)+res);
//     groups narrower than MinSize bins are dropped.
//   - Stage 4: with Silhouette and QualityFilter, score each domain and drop
//     those with score ≤ MinScore.
//
// Behavior highlights:
//   - Windows that are too sparse or have no spectral structure are skipped.
//   - A window without any boundary emits nothing unless it starts at a
//     boundary found earlier and is the last window; a matrix with no
//     structure therefore yields no domains.
//   - Domains are sorted by Start, non-overlapping, Level 1.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrMissingChromosome, ErrResolutionTooCoarse,
//     ErrBadParams, spectral.ErrEigenFailed.
//
// Complexity:
//   - Time O(W·w³) for W windows of width w, Space O(w²).
func Process(m *matrix.ContactMatrix, p Params, opts ...Option) ([]Domain, error) {
	if err := validate(m, p); err != nil {
		return nil, fmt.Errorf("Process: %w", err)
	}
	o := gatherOptions(opts...)
	c := caller{m: m, p: p.resolved(m.Resolution()), log: o.log}

	return c.process()
}

// validate runs the checks shared by Process and BuildHierarchy.
func validate(m *matrix.ContactMatrix, p Params) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if p.Chrom == "" {
		return ErrMissingChromosome
	}
	if m.Resolution() > MaxResolution {
		return fmt.Errorf("resolution %d: %w", m.Resolution(), ErrResolutionTooCoarse)
	}

	return p.validate()
}

// process runs the window loop on c.m.
func (c caller) process() ([]Domain, error) {
	n := c.m.Size()
	ws := c.p.WindowSize
	last := n - 1
	start, end := 0, min(ws, n)-1

	var acc accumulator
	anchored := false // start sits on a boundary found by an earlier window
	for {
		w, err := c.window(start, end)
		if err != nil {
			return nil, err
		}

		if w.skipped {
			if end == last {
				break
			}
			start = end
			end = min(start+ws, last)
			anchored = false
			if start == last {
				break
			}

			continue
		}

		if end == last {
			if w.found || anchored {
				acc = acc.add(w.groups...)
			}

			break
		}

		if w.found {
			k := len(w.groups) - 1
			acc = acc.add(w.groups[:k]...)
			start = w.groups[k][0]
			end = start + ws - 1
			anchored = true
		} else {
			end = max(start+2*ws, end+ws) - 1
		}
		if end > last || last-end < ws {
			end = last
		}
	}

	domains, kept := c.aggregate(acc)
	if c.p.Policy == Silhouette && c.p.QualityFilter {
		return c.qualityFilter(domains, kept)
	}

	return domains, nil
}

// window filters, embeds and cuts the window [start, end].
func (c caller) window(start, end int) (windowResult, error) {
	view, err := c.m.Slice(start, end+1)
	if err != nil {
		return windowResult{}, fmt.Errorf("window [%d,%d]: %w", start, end, err)
	}

	width := end - start + 1
	limit := int(math.Floor(c.p.GapThreshold * float64(width)))
	retained := make([]int, 0, width)
	for i, z := range view.ZeroCounts() {
		if z <= limit {
			retained = append(retained, i)
		}
	}
	if len(retained) < 2*c.p.MinSize {
		c.log.Debug("window skipped",
			zap.String("chrom", c.p.Chrom), zap.Int("start", start), zap.Int("end", end),
			zap.Int("retained", len(retained)))

		return windowResult{skipped: true}, nil
	}

	sub := view.Select(retained)
	emb, err := spectral.Embed(sub, c.p.Eigenvalues)
	if errors.Is(err, spectral.ErrDegenerate) {
		c.log.Debug("window degenerate",
			zap.String("chrom", c.p.Chrom), zap.Int("start", start), zap.Int("end", end))

		return windowResult{skipped: true}, nil
	}
	if err != nil {
		return windowResult{}, fmt.Errorf("window [%d,%d]: %w", start, end, err)
	}
	gaps := spectral.Gaps(emb.Rows)

	var cuts []int
	switch c.p.Policy {
	case Silhouette:
		dis, err := matrix.Dissimilarity(sub)
		if err != nil {
			return windowResult{}, fmt.Errorf("window [%d,%d]: %w", start, end, err)
		}
		cuts = silhouetteCuts(gaps, dis, c.p.MinSize)
	default:
		cuts = zscoreCuts(gaps, c.p.MinSize)
	}

	c.log.Debug("window",
		zap.String("chrom", c.p.Chrom), zap.Int("start", start), zap.Int("end", end),
		zap.Int("retained", len(retained)), zap.Int("eigenpairs", len(emb.Values)),
		zap.Ints("cuts", cuts))

	return windowResult{groups: split(start, retained, cuts), found: len(cuts) > 0}, nil
}

// split turns window-relative retained bins and cuts into absolute groups.
func split(offset int, retained, cuts []int) [][]int {
	groups := make([][]int, 0, len(cuts)+1)
	lo := 0
	for _, hi := range append(cuts, len(retained)) {
		g := make([]int, hi-lo)
		for i := range g {
			g[i] = offset + retained[lo+i]
		}
		groups = append(groups, g)
		lo = hi
	}

	return groups
}

// aggregate maps groups to domains and keeps those of at least MinSize bins.
// It also returns the surviving groups, aligned with the domains.
func (c caller) aggregate(acc accumulator) ([]Domain, [][]int) {
	res := c.m.Resolution()
	domains := make([]Domain, 0, len(acc.groups))
	kept := make([][]int, 0, len(acc.groups))
	for _, g := range acc.groups {
		d := Domain{
			Chrom: c.p.Chrom,
			Start: c.m.Label(g[0]),
			End:   c.m.Label(g[len(g)-1]) + res,
			Level: 1,
		}
		if d.Bins(res) < c.p.MinSize {
			continue
		}
		domains = append(domains, d)
		kept = append(kept, g)
	}
	sort.Sort(byStart{domains, kept})

	return domains, kept
}

// byStart sorts domains and their groups together.
type byStart struct {
	d []Domain
	g [][]int
}

func (s byStart) Len() int           { return len(s.d) }
func (s byStart) Less(i, j int) bool { return s.d[i].Start < s.d[j].Start }
func (s byStart) Swap(i, j int) {
	s.d[i], s.d[j] = s.d[j], s.d[i]
	s.g[i], s.g[j] = s.g[j], s.g[i]
}
