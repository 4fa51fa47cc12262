// Package spectral turns a window of a contact matrix into a spectral
// embedding and the signals the TAD caller reads boundaries from.
//
// 🚀 Pipeline:
//
//	A  ──DegreeNormalize──▶  D^-1/2·A·D^-1/2  ──EigenSym──▶  top-k eigenvectors
//	   ──√n scale, sign fix──▶  rows onto the unit sphere  ──▶  Gaps / ZScores
//
// ✨ Key pieces:
//   - Embed: the "unit circle" embedding of a square window.
//   - Gaps: Euclidean distance between consecutive embedding rows; a spike is
//     a candidate domain boundary.
//   - ZScores: standardisation with the sample standard deviation.
//   - Widths / AverageWidth: silhouette widths over a dissimilarity matrix.
//
// Eigen-decomposition is delegated to gonum (mat.EigenSym), statistics to
// gonum/stat and distances to gonum/floats.
package spectral
