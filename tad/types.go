// SPDX-License-Identifier: MIT

package tad

import (
	"fmt"
	"strings"
)

// Genomic limits of the caller.
const (
	// MaxResolution is the coarsest accepted bin width, in bp.
	MaxResolution int64 = 200_000

	// WindowSpan is the genomic span of the default window, in bp.
	WindowSpan int64 = 2_000_000

	// MinScore is the silhouette width a domain must exceed to survive the
	// quality filter.
	MinScore = 0.15

	// ZThreshold is the gap z-score above which a position is a boundary candidate.
	ZThreshold = 2.0
)

// Policy selects how boundaries are picked inside a window.
//
//   - ZScore     — every gap whose z-score exceeds ZThreshold, thinned left
//     to right so retained boundaries are at least MinSize bins apart.
//   - Silhouette — the cluster count k whose greedy k-way cut of the gap
//     signal has the best average silhouette width (first local peak).
type Policy int

const (
	// ZScore selects boundaries by standardised gap height.
	ZScore Policy = iota

	// Silhouette selects boundaries by silhouette-optimal cluster count.
	Silhouette
)

// String returns the lower-case policy name used by the CLI and config.
func (p Policy) String() string {
	switch p {
	case ZScore:
		return "zscore"
	case Silhouette:
		return "silhouette"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "zscore" or "silhouette" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zscore", "z-score", "z":
		return ZScore, nil
	case "silhouette", "sil":
		return Silhouette, nil
	default:
		return 0, paramErrorf("policy %q", s)
	}
}

// Params configures Process and BuildHierarchy.
//
// Fields:
//   - Chrom         — chromosome label copied into every Domain (required).
//   - Policy        — boundary policy of level 1; deeper levels use ZScore.
//   - MinSize       — smallest domain, in bins (≥ 1).
//   - Eigenvalues   — eigenvectors used for the embedding (≥ 2).
//   - WindowSize    — window width in bins; 0 means ⌈WindowSpan/resolution⌉.
//   - GapThreshold  — fraction of zeros a bin may hold inside a window
//     before it is dropped, in [0,1]; 1 keeps every bin.
//   - QualityFilter — score level-1 Silhouette domains and drop those with
//     a silhouette width ≤ MinScore.
type Params struct {
	Chrom         string
	Policy        Policy
	MinSize       int
	Eigenvalues   int
	WindowSize    int
	GapThreshold  float64
	QualityFilter bool
}

// DefaultParams returns the default configuration for chrom.
func DefaultParams(chrom string) Params {
	return Params{
		Chrom:        chrom,
		Policy:       ZScore,
		MinSize:      5,
		Eigenvalues:  2,
		GapThreshold: 1,
	}
}

// DefaultWindowSize returns ⌈WindowSpan/resolution⌉ bins.
func DefaultWindowSize(resolution int64) int {
	return int((WindowSpan + resolution - 1) / resolution)
}

// validate checks every field except the chromosome label.
func (p Params) validate() error {
	if p.Policy != ZScore && p.Policy != Silhouette {
		return paramErrorf("policy %d", int(p.Policy))
	}
	if p.MinSize < 1 {
		return paramErrorf("min_size %d < 1", p.MinSize)
	}
	if p.Eigenvalues < 2 {
		return paramErrorf("eigenvalues %d < 2", p.Eigenvalues)
	}
	if !(p.GapThreshold >= 0 && p.GapThreshold <= 1) {
		return paramErrorf("gap_threshold %v not in [0,1]", p.GapThreshold)
	}
	if p.WindowSize < 0 {
		return paramErrorf("window_size %d < 0", p.WindowSize)
	}
	if p.WindowSize > 0 && p.WindowSize < 2*p.MinSize {
		return paramErrorf("window_size %d < 2*min_size %d", p.WindowSize, 2*p.MinSize)
	}

	return nil
}

// resolved returns p with the default window size filled in.
func (p Params) resolved(resolution int64) Params {
	if p.WindowSize == 0 {
		p.WindowSize = DefaultWindowSize(resolution)
	}

	return p
}

// Domain is one called domain: the half-open interval [Start, End) in bp.
// Score is the mean silhouette width of the domain's bins when the quality
// filter ran, nil otherwise.
type Domain struct {
	Chrom string
	Start int64
	End   int64
	Level int
	Score *float64
}

// Bins returns the domain width in bins of size resolution.
func (d Domain) Bins(resolution int64) int {
	return int((d.End - d.Start) / resolution)
}

// Contains reports whether o lies inside d.
func (d Domain) Contains(o Domain) bool {
	return d.Chrom == o.Chrom && d.Start <= o.Start && o.End <= d.End
}

// String renders chrom:start-end.
func (d Domain) String() string {
	return fmt.Sprintf("%s:%d-%d", d.Chrom, d.Start, d.End)
}

// Hierarchy holds the domains of every level of one chromosome.
// Levels[k-1] is level k, sorted by Start.
type Hierarchy struct {
	Chrom      string
	Resolution int64
	Levels     [][]Domain
}

// Depth returns the number of levels.
func (h Hierarchy) Depth() int { return len(h.Levels) }

// Level returns the domains of level k (1-based), nil when k is out of range.
func (h Hierarchy) Level(k int) []Domain {
	if k < 1 || k > len(h.Levels) {
		return nil
	}

	return h.Levels[k-1]
}

// Domains returns every domain, level by level in ascending order.
func (h Hierarchy) Domains() []Domain {
	var total int
	for _, l := range h.Levels {
		total += len(l)
	}
	out := make([]Domain, 0, total)
	for _, l := range h.Levels {
		out = append(out, l...)
	}

	return out
}
