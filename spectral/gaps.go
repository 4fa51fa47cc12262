// SPDX-License-Identifier: MIT

package spectral

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvtad/matrix"
)

// FlatSpread is the standard deviation under which a gap signal is treated
// as flat: embedding rows live on the unit sphere, so gaps are O(1) and
// anything below this is round-off.
const FlatSpread = 1e-10

// Gaps returns the Euclidean distances between consecutive rows of emb:
// gaps[i] = ‖row(i+1) − row(i)‖₂, len(gaps) == emb.Rows()-1.
// Complexity: O(n·k).
func Gaps(emb *matrix.Dense) []float64 {
	n := emb.Rows()
	if n < 2 {
		return nil
	}
	gaps := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		gaps[i] = floats.Distance(emb.Row(i+1), emb.Row(i), 2)
	}

	return gaps
}

// ZScores standardises x with its mean and sample standard deviation.
// A flat signal (sd ≤ FlatSpread, or fewer than two values) yields all
// zeros, so no position ever stands out.
// Complexity: O(n).
func ZScores(x []float64) []float64 {
	z := make([]float64, len(x))
	if len(x) < 2 {
		return z
	}
	mean, sd := stat.MeanStdDev(x, nil)
	if !(sd > FlatSpread) {
		return z
	}
	for i, v := range x {
		z[i] = (v - mean) / sd
	}

	return z
}
