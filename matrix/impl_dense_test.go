// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// and its storage-sharing views.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestViewSharesStorage checks that views alias the parent and respect bounds.
func TestViewSharesStorage(t *testing.T) {
	m := mustDense(t, 4, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, v.Row(0))
	require.Equal(t, []float64{9, 10}, v.Row(1))

	// Writes through the view land in the parent.
	require.NoError(t, v.Set(1, 1, 99))
	got, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 99.0, got)

	// Clone and RawData are compact copies.
	c := v.Clone()
	require.Equal(t, []float64{5, 6, 9, 99}, c.RawData())
	require.NoError(t, c.Set(0, 0, -1))
	got, _ = m.At(1, 1)
	require.Equal(t, 5.0, got)

	_, err = m.View(3, 3, 2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.View(0, 0, 0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestString renders rows deterministically.
func TestString(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2.5, 3, 4})
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}
