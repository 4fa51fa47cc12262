// SPDX-License-Identifier: MIT

package tad

import (
	"sort"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/katalvlaran/lvtad/spectral"
)

// A cut is a position p in (0, n) of a window with n retained bins: it
// separates bins p-1 and p, so p is also the number of bins left of it.

// zscoreCuts keeps every gap whose z-score exceeds ZThreshold and whose cut
// lies more than minSize bins from the window start, then walks left to
// right dropping any cut closer than minSize to the last retained one.
// A flat gap signal has no cuts.
func zscoreCuts(gaps []float64, minSize int) []int {
	var cuts []int
	prev := 0
	for g, z := range spectral.ZScores(gaps) {
		if !(z > ZThreshold) {
			continue
		}
		p := g + 1
		if p <= minSize {
			continue
		}
		if len(cuts) > 0 && p-prev < minSize {
			continue
		}
		cuts = append(cuts, p)
		prev = p
	}

	return cuts
}

// silhouetteCuts picks the cluster count k by silhouette width.
// Implementation:
//   - Stage 1: order gaps by descending height (stable, so equal gaps keep
//     left-to-right order).
//   - Stage 2: for k = 2..⌈n/minSize⌉ accept the next gap in that order whose
//     cut is at least minSize bins from both window edges and from every
//     accepted cut; score the k-way partition with the average silhouette
//     width over dis. k=1 scores 0. Stop early when no gap can be accepted.
//   - Stage 3: choose the k just before the first drop in score; without a
//     drop, the first k with the highest score.
//
// Complexity: O(K·n²) for K candidate counts.
func silhouetteCuts(gaps []float64, dis *matrix.Dense, minSize int) []int {
	n := len(gaps) + 1
	kmax := (n + minSize - 1) / minSize

	order := make([]int, len(gaps))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return gaps[order[a]] > gaps[order[b]] })

	scores := []float64{0}
	cutsets := [][]int{nil}
	var accepted []int
	next := 0
	for k := 2; k <= kmax; k++ {
		p, ok := 0, false
		for ; next < len(order); next++ {
			if c := order[next] + 1; separated(c, accepted, n, minSize) {
				p, ok = c, true
				next++

				break
			}
		}
		if !ok {
			break
		}
		accepted = append(accepted, p)
		cuts := append([]int(nil), accepted...)
		sort.Ints(cuts)
		scores = append(scores, spectral.AverageWidth(dis, membership(n, cuts)))
		cutsets = append(cutsets, cuts)
	}

	return cutsets[firstPeak(scores)]
}

// separated reports whether cut p keeps minSize bins to both window edges
// and to every accepted cut.
func separated(p int, accepted []int, n, minSize int) bool {
	if p < minSize || n-p < minSize {
		return false
	}
	for _, a := range accepted {
		if d := p - a; d < minSize && d > -minSize {
			return false
		}
	}

	return true
}

// firstPeak returns the index before the first negative first difference of
// scores, or the first index of the maximum when scores never drop.
func firstPeak(scores []float64) int {
	for i := 0; i+1 < len(scores); i++ {
		if scores[i+1]-scores[i] < 0 {
			return i
		}
	}
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}

	return best
}

// membership labels n bins with group indices 0..len(cuts), given sorted cuts.
func membership(n int, cuts []int) []int {
	labels := make([]int, n)
	g := 0
	for i := range labels {
		for g < len(cuts) && i >= cuts[g] {
			g++
		}
		labels[i] = g
	}

	return labels
}
