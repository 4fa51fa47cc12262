// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"github.com/katalvlaran/lvtad/matrix"
)

// Widths returns the silhouette width of every observation.
// dis is a square dissimilarity matrix and membership assigns each row a
// cluster label (any int).
//
// For observation i in cluster C:
//
//	a(i) = mean dissimilarity to the other members of C
//	b(i) = min over clusters D ≠ C of the mean dissimilarity to D
//	s(i) = (b(i) − a(i)) / max(a(i), b(i))
//
// Members of singleton clusters, and every observation when only one cluster
// exists, get s(i) = 0.
// Complexity: O(n²).
func Widths(dis *matrix.Dense, membership []int) []float64 {
	n := len(membership)
	widths := make([]float64, n)

	labels := make(map[int]int) // label -> dense cluster index
	sizes := make([]int, 0)
	dense := make([]int, n)
	for i, l := range membership {
		c, ok := labels[l]
		if !ok {
			c = len(sizes)
			labels[l] = c
			sizes = append(sizes, 0)
		}
		dense[i] = c
		sizes[c]++
	}
	if len(sizes) < 2 {
		return widths
	}

	sums := make([]float64, len(sizes))
	for i := 0; i < n; i++ {
		own := dense[i]
		if sizes[own] == 1 {
			continue
		}
		for c := range sums {
			sums[c] = 0
		}
		row := dis.Row(i)
		for j := 0; j < n; j++ {
			if j != i {
				sums[dense[j]] += row[j]
			}
		}

		a := sums[own] / float64(sizes[own]-1)
		b := math.Inf(1)
		for c, s := range sums {
			if c == own {
				continue
			}
			if mean := s / float64(sizes[c]); mean < b {
				b = mean
			}
		}
		if d := math.Max(a, b); d > 0 {
			widths[i] = (b - a) / d
		}
	}

	return widths
}

// AverageWidth is the mean silhouette width over all observations, 0 when
// membership is empty.
func AverageWidth(dis *matrix.Dense, membership []int) float64 {
	if len(membership) == 0 {
		return 0
	}
	var sum float64
	for _, w := range Widths(dis, membership) {
		sum += w
	}

	return sum / float64(len(membership))
}

// ClusterWidths returns the mean silhouette width of every cluster label.
func ClusterWidths(dis *matrix.Dense, membership []int) map[int]float64 {
	widths := Widths(dis, membership)
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for i, l := range membership {
		sums[l] += widths[i]
		counts[l]++
	}
	for l := range sums {
		sums[l] /= float64(counts[l])
	}

	return sums
}
