// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for cofactor-expansion determinants.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDeterminantSmall(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want int
	}{
		{"1x1", [][]int{{5}}, 5},
		{"2x2", [][]int{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]int{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}}, 9},
		{"singular", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"permutation", [][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Det(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDeterminantFloat(t *testing.T) {
	d, err := matrix.NewDeterminant(MustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	got, err := d.Value()
	require.NoError(t, err)
	require.Equal(t, -2.0, got)

	id, err := matrix.NewIdentity[float64](5)
	require.NoError(t, err)
	one, err := matrix.Det(id)
	require.NoError(t, err)
	require.Equal(t, 1.0, one)
}

func TestDeterminantErrors(t *testing.T) {
	_, err := matrix.NewDeterminant(MustDense[int](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Det[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewDeterminantOf[int](0)
	require.NoError(t, err)
	_, err = empty.Value()
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDeterminantOf[int](-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDeterminantOwnership(t *testing.T) {
	src := MustRows(t, [][]int{{1, 2}, {3, 4}})
	d, err := matrix.NewDeterminant(src)
	require.NoError(t, err)
	require.Equal(t, 2, d.Size())

	require.NoError(t, src.Set(0, 0, 100)) // deep-copied in
	v, err := d.Value()
	require.NoError(t, err)
	require.Equal(t, -2, v)

	view := d.Matrix()
	require.NoError(t, view.Set(0, 0, 100)) // copy out
	v, err = d.Value()
	require.NoError(t, err)
	require.Equal(t, -2, v)

	cl := d.Clone()
	moved := d.Take()
	require.Equal(t, 0, d.Size())
	require.Nil(t, d.Matrix())
	_, err = d.Value()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	for _, x := range []*matrix.Determinant[int]{cl, moved} {
		v, err = x.Value()
		require.NoError(t, err)
		require.Equal(t, -2, v)
	}
}

func TestDeterminantFromData(t *testing.T) {
	d, err := matrix.NewDeterminantFromData(3, []int{2, 0, 0, 0, 3, 0, 0, 0, 4})
	require.NoError(t, err)
	v, err := d.Value()
	require.NoError(t, err)
	require.Equal(t, 24, v)

	short, err := matrix.NewDeterminantFromData(2, []int{1, 2, 3}) // (2,2) stays zero
	require.NoError(t, err)
	v, err = short.Value()
	require.NoError(t, err)
	require.Equal(t, -6, v)
}

// TestDeterminantProperties checks det(AB) = det(A)det(B) and det(Aᵀ) = det(A)
// on exact integer matrices.
func TestDeterminantProperties(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		a := RandomInts(t, 4, 4, 4, seed)
		b := RandomInts(t, 4, 4, 4, seed+50)

		da, err := matrix.Det(a)
		require.NoError(t, err)
		db, err := matrix.Det(b)
		require.NoError(t, err)

		ab, err := matrix.Mul(a, b)
		require.NoError(t, err)
		dab, err := matrix.Det(ab)
		require.NoError(t, err)
		require.Equal(t, da*db, dab, "seed=%d", seed)

		at, err := matrix.Transpose(a)
		require.NoError(t, err)
		dat, err := matrix.Det(at)
		require.NoError(t, err)
		require.Equal(t, da, dat, "seed=%d", seed)
	}
}

func TestDeterminantMatchesGonum(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		a := MustDense[float64](t, n, n)
		fillDenseRand(t, a, int64(10+n))

		got, err := matrix.Det(a)
		require.NoError(t, err)
		require.InDelta(t, mat.Det(toGonum(t, a)), got, 1e-9)
	}
}

func TestDeterminantSingularIffNotInvertible(t *testing.T) {
	singular := MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}})
	d, err := matrix.Det(singular)
	require.NoError(t, err)
	require.Zero(t, d)
	require.False(t, matrix.Invertible(singular))

	regular := MustRows(t, [][]float64{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}})
	d, err = matrix.Det(regular)
	require.NoError(t, err)
	require.InDelta(t, 9.0, d, approxTol)
	require.True(t, matrix.Invertible(regular))
}
