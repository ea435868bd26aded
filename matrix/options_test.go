// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that gathered defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.Increment != matrix.DefaultCapacityIncrement {
		t.Fatalf("increment default mismatch: got %v, want %v", o.Increment, matrix.DefaultCapacityIncrement)
	}
	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
}

// 2) TestOptions_LastWriterWins ensures each Option toggles exactly its field, last one winning.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultCapacityIncrement, o.Increment)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithCapacityIncrement(4), matrix.WithCapacityIncrement(3))
	require.Equal(t, 3, o.Increment)
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
}

// 3) TestOptions_IncrementFloor verifies that factors below the minimum are raised.
func TestOptions_IncrementFloor(t *testing.T) {
	for _, k := range []int{-5, 0, 1} {
		o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithCapacityIncrement(k))
		require.Equal(t, matrix.MinCapacityIncrement, o.Increment, "k=%d", k)
	}
}

// 4) TestOptions_NilSkipped ensures nil Option values are ignored.
func TestOptions_NilSkipped(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithNoValidateNaNInf(), nil)
	require.False(t, o.ValidateNaNInf)
}

// 5) TestOptions_PropagateToDerived verifies derived matrices inherit the policy.
func TestOptions_PropagateToDerived(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithNoValidateNaNInf(), matrix.WithCapacityIncrement(3))
	want := matrix.OptionsOf_TestOnly(m)

	derived := map[string]func() (*matrix.Dense[float64], error){
		"Clone":     func() (*matrix.Dense[float64], error) { return m.Clone(), nil },
		"Block":     func() (*matrix.Dense[float64], error) { return m.Block(0, 0, 1, 1) },
		"RowSplit":  func() (*matrix.Dense[float64], error) { return m.RowSplit(1, matrix.Below) },
		"MinorOf":   func() (*matrix.Dense[float64], error) { return m.MinorOf(1, 1) },
		"Add":       func() (*matrix.Dense[float64], error) { return matrix.Add(m, m) },
		"Mul":       func() (*matrix.Dense[float64], error) { return matrix.Mul(m, m) },
		"Transpose": func() (*matrix.Dense[float64], error) { return matrix.Transpose(m) },
		"RowReduce": func() (*matrix.Dense[float64], error) { return matrix.RowReduce(m) },
		"ZerosLike": func() (*matrix.Dense[float64], error) { return matrix.ZerosLike(m) },
	}
	for name, build := range derived {
		t.Run(name, func(t *testing.T) {
			d, err := build()
			require.NoError(t, err)
			require.Equal(t, want, matrix.OptionsOf_TestOnly(d))
			require.NoError(t, d.Set(0, 0, math.Inf(1)))
		})
	}
}
