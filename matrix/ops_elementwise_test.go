// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.True(t, matrix.Equal(a, a.Clone()))

	b := a.Clone()
	require.NoError(t, b.Set(1, 1, 5))
	require.False(t, matrix.Equal(a, b))

	require.False(t, matrix.Equal(a, MustDense[int](t, 1, 4)))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal[int](nil, nil))
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-9, 0) // relative only
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, MustDense[float64](t, 2, 3), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllCloseNaNNeverClose(t *testing.T) {
	a := MustRows(t, [][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	ok, err := matrix.AllClose(a, a, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	inf := MustRows(t, [][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	ok, err = matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}
