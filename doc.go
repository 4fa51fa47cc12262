// Package lvtad calls hierarchical topologically associating domains (TADs)
// from Hi-C contact matrices with windowed spectral clustering.
//
// 🚀 What is lvtad?
//
//	A deterministic, pure-Go TAD caller that brings together:
//		• Contact matrices: validated, labelled, with zero-copy diagonal views
//		• Spectral embedding: degree normalisation, eigenvectors, unit-sphere rows
//		• Boundary policies: gap z-score or silhouette-optimal cluster count
//		• Hierarchy: level 1 on the chromosome, deeper levels inside each domain
//		• I/O: sparse, full and bed-augmented tables in; BED and BEDPE out
//		• Fan-out: many chromosomes on a bounded worker pool
//
// ✨ Why choose lvtad?
//
//   - Reproducible – fixed tie-breaks and eigenvector orientation
//   - No cgo – gonum for the linear algebra
//   - Observable – zap logging per window, level and chromosome
//
// Packages:
//
//	matrix/   — Dense, ContactMatrix, validators, normalisations
//	spectral/ — embedding, gap signal, z-scores, silhouette widths
//	tad/      — Process (sliding window) and BuildHierarchy
//	ingest/   — table readers, shape detection, resolution inference
//	format/   — BED / BEDPE writers
//	fanout/   — per-chromosome worker pool
//	config/   — YAML configuration and logger
//	cmd/lvtad — command-line interface
//
// Quick ASCII example:
//
//	█████░░░░░░░░░
//	█████░░░░░░░░░     three blocks on the diagonal
//	░░░░░█████░░░░  →  three level-1 domains
//	░░░░░█████░░░░
//	░░░░░░░░░░████
//
//	go install github.com/katalvlaran/lvtad/cmd/lvtad@latest
package lvtad
