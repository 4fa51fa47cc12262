// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

func TestDegreeNormalize(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3, []float64{
		2, 2, 0,
		2, 6, 0,
		0, 0, 0,
	})
	s, deg, err := matrix.DegreeNormalize(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8, 0}, deg)

	want := []float64{
		2 / 4.0, 2 / math.Sqrt(32), 0,
		2 / math.Sqrt(32), 6 / 8.0, 0,
		0, 0, 0,
	}
	assert.InDeltaSlice(t, want, s.RawData(), epsTight)

	_, _, err = matrix.DegreeNormalize(mustDense(t, 1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestNormalizeRowsL2(t *testing.T) {
	t.Parallel()

	x := mustDense(t, 3, 2, []float64{3, 4, 0, 0, -1, 0})
	y, norms, err := matrix.NormalizeRowsL2(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 1}, norms)
	assert.InDeltaSlice(t, []float64{0.6, 0.8, 0, 0, -1, 0}, y.RawData(), epsTight)

	_, _, err = matrix.NormalizeRowsL2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDissimilarity(t *testing.T) {
	t.Parallel()

	d, err := matrix.Dissimilarity(mustDense(t, 2, 2, []float64{9, 3, 3, 0}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.25, 0}, d.RawData())
}
