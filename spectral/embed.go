// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtad/matrix"
)

var (
	// ErrEigenFailed indicates that the symmetric eigen-decomposition failed.
	ErrEigenFailed = errors.New("spectral: eigen decomposition failed")

	// ErrDegenerate indicates a window without any positive spectral
	// component (e.g. an all-zero window). Callers skip such windows.
	ErrDegenerate = errors.New("spectral: window has no spectral structure")

	// ErrBadRank indicates a requested number of eigenvectors < 1.
	ErrBadRank = errors.New("spectral: number of eigenvectors must be >= 1")
)

// ZeroEigenRatio is the relative magnitude under which an eigenvalue counts
// as zero: λ ≤ ZeroEigenRatio·λmax carries no cluster structure.
const ZeroEigenRatio = 1e-9

// Embedding is the unit-sphere embedding of a window.
type Embedding struct {
	// Values are the retained eigenvalues, descending.
	Values []float64
	// Rows is the n×len(Values) embedding; every non-degenerate row has unit L2 norm.
	Rows *matrix.Dense
}

// Embed computes the spectral embedding of the square, symmetric window a
// using its top k eigenpairs.
// Implementation:
//   - Stage 1: S = D^-1/2·A·D^-1/2 (matrix.DegreeNormalize).
//   - Stage 2: full symmetric eigen-decomposition of S (gonum EigenSym);
//     eigenpairs ordered by descending eigenvalue, stopping at the first
//     λ ≤ ZeroEigenRatio·λmax or after k pairs.
//   - Stage 3: each eigenvector is unit-normalised, scaled by √n and oriented
//     so that its first entry is non-positive (v ← -sign(v₀)·v when v₀ ≠ 0).
//   - Stage 4: every row is L2-normalised onto the unit sphere.
//
// Behavior highlights:
//   - Deterministic: LAPACK ordering plus the explicit sign rule remove the
//     eigenvector sign ambiguity.
//   - Fewer than k columns are returned when S has fewer positive eigenvalues.
//
// Errors:
//   - ErrBadRank (k < 1), ErrDegenerate (λmax ≤ 0), ErrEigenFailed,
//     matrix validation errors from DegreeNormalize.
//
// Complexity:
//   - Time O(n³) (eigen-decomposition), Space O(n²).
func Embed(a *matrix.Dense, k int) (Embedding, error) {
	if k < 1 {
		return Embedding{}, ErrBadRank
	}
	s, _, err := matrix.DegreeNormalize(a)
	if err != nil {
		return Embedding{}, fmt.Errorf("Embed: %w", err)
	}
	n := s.Rows()

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, s.RawData()), true); !ok {
		return Embedding{}, fmt.Errorf("Embed(n=%d): %w", n, ErrEigenFailed)
	}
	values := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	lmax := values[n-1]
	if !(lmax > 0) {
		return Embedding{}, ErrDegenerate
	}

	cols := make([]int, 0, k)
	for c := n - 1; c >= 0 && len(cols) < k; c-- {
		if values[c] <= ZeroEigenRatio*lmax {
			break
		}
		cols = append(cols, c)
	}

	m := len(cols)
	data := make([]float64, n*m)
	kept := make([]float64, m)
	scale := math.Sqrt(float64(n))
	v := make([]float64, n)
	for out, c := range cols {
		kept[out] = values[c]
		mat.Col(v, c, &vecs)
		orient(v, scale)
		for i := 0; i < n; i++ {
			data[i*m+out] = v[i]
		}
	}

	raw, err := matrix.NewDenseFrom(n, m, data)
	if err != nil {
		return Embedding{}, fmt.Errorf("Embed: %w", err)
	}
	rows, _, err := matrix.NormalizeRowsL2(raw)
	if err != nil {
		return Embedding{}, fmt.Errorf("Embed: %w", err)
	}

	return Embedding{Values: kept, Rows: rows}, nil
}

// orient unit-normalises v, scales it by scale and fixes its sign so that
// v[0] ≤ 0. A vector whose first entry is exactly zero keeps its sign.
func orient(v []float64, scale float64) {
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	f := scale / norm
	if v[0] > 0 {
		f = -f
	}
	for i := range v {
		v[i] *= f
	}
}
