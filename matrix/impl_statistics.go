// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the normalisation transforms used by spectral clustering of
//     contact matrices as deterministic loops over Dense storage.
//
// Exposed API:
//   - DegreeNormalize(A)  -> (D^-1/2 A D^-1/2, degrees) // symmetric degree normalisation
//   - NormalizeRowsL2(X)  -> (Y, norms)                  // L2 row normalisation (degenerate rows unchanged)
//   - Dissimilarity(A)    -> 1/(1+A)                     // contact counts to dissimilarities
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Every transform allocates exactly one output Dense; inputs are never mutated.
//
// AI-Hints:
//   - Pass compact matrices (Select output) to keep rows contiguous.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDegreeNormalize = "DegreeNormalize"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opDissimilarity   = "Dissimilarity"
)

// DegreeNormalize returns S = D^-1/2 · A · D^-1/2 where D = diag(row sums of A).
// Implementation:
//   - Stage 1: ValidateSquare(A).
//   - Stage 2: degrees d_i = Σ_j A[i,j]; inverse roots r_i = 1/√d_i (0 when d_i == 0).
//   - Stage 3: S[i,j] = r_i · A[i,j] · r_j.
//
// Behavior highlights:
//   - Isolated bins (zero degree) produce all-zero rows and columns instead of NaN.
//   - S is symmetric whenever A is.
//
// Returns:
//   - *Dense: freshly allocated S (n×n).
//   - []float64: degrees (len n).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "DegreeNormalize").
//
// Complexity:
//   - Time O(n²), Space O(n²).
func DegreeNormalize(a *Dense) (*Dense, []float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, nil, contactErrorf(opDegreeNormalize, err)
	}

	n := a.r
	degrees := make([]float64, n)
	inv := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		for _, v := range a.Row(i) {
			degrees[i] += v
		}
		if degrees[i] > 0 {
			inv[i] = 1 / math.Sqrt(degrees[i])
		}
	}

	out := &Dense{r: n, c: n, stride: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		row := a.Row(i)
		base := i * n
		for j = 0; j < n; j++ {
			out.data[base+j] = inv[i] * row[j] * inv[j]
		}
	}

	return out, degrees, nil
}

// NormalizeRowsL2 scales each row to have L2-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: compute per-row L2 norms deterministically.
//   - Stage 3: scale rows by 1/norm; rows with norm == 0 are copied unchanged.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) are left unchanged (stable policy).
//
// Returns:
//   - *Dense: normalised copy (r×c).
//   - []float64: original row norms (len r).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL2(x *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, contactErrorf(opNormalizeRowsL2, err)
	}

	r, c := x.r, x.c
	norms := make([]float64, r)
	out := &Dense{r: r, c: c, stride: c, data: make([]float64, r*c)}
	var i, j int
	var s float64
	for i = 0; i < r; i++ {
		row := x.Row(i)
		s = 0
		for j = 0; j < c; j++ {
			s += row[j] * row[j]
		}
		norms[i] = math.Sqrt(s)

		scale := 1.0
		if norms[i] > 0 {
			scale = 1 / norms[i]
		}
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = row[j] * scale
		}
	}

	return out, norms, nil
}

// Dissimilarity maps contact counts to dissimilarities D[i,j] = 1/(1+A[i,j]).
// High contact means low dissimilarity; the diagonal is forced to 0 so every
// bin is at distance zero from itself.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func Dissimilarity(a *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, contactErrorf(opDissimilarity, err)
	}

	n := a.r
	out := &Dense{r: n, c: n, stride: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		row := a.Row(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out.data[i*n+j] = 1 / (1 + row[j])
		}
	}

	return out, nil
}
