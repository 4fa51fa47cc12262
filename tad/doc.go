// SPDX-License-Identifier: MIT

// Package tad calls hierarchical topologically associating domains (TADs)
// along the diagonal of a chromosome contact matrix.
//
// Two entry points:
//
//   - Process slides a window along the diagonal, embeds every window with
//     spectral.Embed and cuts it where the embedding jumps. Boundaries are
//     chosen by one of two policies: ZScore (gap z-score > 2) or Silhouette
//     (cluster count maximising the average silhouette width).
//   - BuildHierarchy runs Process on the whole matrix for level 1 and then
//     on every level-(k-1) domain for level k, always with ZScore, passing
//     domains that cannot be split through unchanged.
//
// Window loop (0-based, inclusive):
//
//	start=0, end=min(ws,n)-1
//	  ├─ drop bins with more than ⌊gap·width⌋ zeros in the window
//	  ├─ < 2·min_size bins left → start=end, end=start+ws
//	  ├─ embed → gaps → boundaries → groups
//	  └─ end < n-1 → keep all groups but the last, restart at its first bin
//	     end = n-1 → keep every group, stop
//
// Every window is computed on an index view of the matrix; recursion into a
// domain slices the parent matrix without copying. Results are threaded
// through the loop as an explicit accumulator value.
//
// The package is single-threaded and synchronous; see package fanout for
// running many chromosomes concurrently.
package tad
