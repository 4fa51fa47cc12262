// Package matrix offers the canonical contact-matrix representation used by
// the TAD caller.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix whose views share storage, so
//     diagonal sub-blocks of a chromosome cost O(1) to carve out.
//   - ContactMatrix, a validated square, symmetric, non-negative matrix of
//     contact counts labelled with bin start coordinates and a resolution.
//   - Validators and sentinel errors (errors.Is friendly).
//   - Normalisations for spectral clustering: degree normalisation
//     D^-1/2·A·D^-1/2, L2 row normalisation and count dissimilarity.
//
// Matrices are dense: a window of w bins costs O(w²) memory, which is the
// working set the spectral step needs anyway.
package matrix
