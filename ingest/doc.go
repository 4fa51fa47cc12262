// SPDX-License-Identifier: MIT

// Package ingest reads contact matrices from text tables and turns them into
// canonical matrix.ContactMatrix values.
//
// Three layouts are recognised by their width w and row count n:
//
//	w == 3      sparse triplets   start_i  start_j  count
//	w == n      full matrix       n×n counts
//	w == n+3    bed-augmented     chrom  start  end  c_1 … c_n
//
// Blank lines and lines starting with '#' are ignored; a first line whose
// last field is not a number is a header and is skipped. Fields are
// separated by any run of spaces or tabs. ReadFile decompresses gzip input
// transparently.
//
// Sparse input lists each pair once or twice; both triangles are filled.
// Bins missing from the table are zero. The resolution is the most common
// step between consecutive distinct bin starts unless WithResolution fixes
// it (ties go to the smaller step).
package ingest
