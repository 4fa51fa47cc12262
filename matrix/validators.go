// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for contact-matrix checks.
//  - Keep constructors minimal by delegating shape/finite/symmetry/label checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Assumes m is non-nil.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.at(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects negative counts (NaN is not negative; run
// ValidateFinite first).
// Assumes m is non-nil.
// Complexity: O(r*c).
func ValidateNonNegative(m *Dense) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.at(i, j) < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j]-A[j,i]| ≤ tol for every i<j.
// Assumes m is square; tol must be finite (negative tol is taken as |tol|).
// Complexity: O(n²) on the strict upper triangle, early exit on first violation.
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.at(i, j)-m.at(j, i)) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateLabels checks that labels has length n and increases by exactly
// resolution at each step.
// Complexity: O(n).
func ValidateLabels(labels []int64, n int, resolution int64) error {
	if resolution <= 0 {
		return validatorErrorf("ValidateLabels", ErrBadResolution)
	}
	if len(labels) != n {
		return validatorErrorf(fmt.Sprintf("ValidateLabels: len=%d want %d", len(labels), n), ErrBadLabels)
	}
	for i := 1; i < n; i++ {
		if labels[i]-labels[i-1] != resolution {
			return validatorErrorf(fmt.Sprintf("ValidateLabels(%d)", i), ErrBadLabels)
		}
	}

	return nil
}
