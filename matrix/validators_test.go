// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSymmetric covers nil, non-square, tolerance and violations.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense
		tol  float64
		want error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"2x3", mustDense(t, 2, 3, []float64{0, 0, 0, 0, 0, 0}), 0, matrix.ErrNonSquare},
		{"nan tol", mustDense(t, 1, 1, []float64{1}), math.NaN(), matrix.ErrNaNInf},
		{"exact", mustDense(t, 2, 2, []float64{1, 2, 2, 1}), 0, nil},
		{"within tol", mustDense(t, 2, 2, []float64{1, 2, 2.001, 1}), 0.01, nil},
		{"negative tol is abs", mustDense(t, 2, 2, []float64{1, 2, 2.001, 1}), -0.01, nil},
		{"violation", mustDense(t, 2, 2, []float64{1, 2, 2.1, 1}), 0.01, matrix.ErrAsymmetry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.tol)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateLabels covers resolution and step checks.
func TestValidateLabels(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateLabels([]int64{0, 25, 50}, 3, 25))
	require.ErrorIs(t, matrix.ValidateLabels([]int64{0, 25, 50}, 3, -25), matrix.ErrBadResolution)
	require.ErrorIs(t, matrix.ValidateLabels([]int64{0, 25}, 3, 25), matrix.ErrBadLabels)
	require.ErrorIs(t, matrix.ValidateLabels([]int64{0, 25, 75}, 3, 25), matrix.ErrBadLabels)
}
