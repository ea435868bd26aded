// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and reducers.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// approxTol is the absolute tolerance used by float comparisons in tests.
const approxTol = 1e-9

// approx makes cmp treat float64 values within approxTol as equal.
var approx = cmpopts.EquateApprox(0, approxTol)

// MustDense ALLOCATES an r×c zero matrix or fails the test.
// Works for tests and benchmarks (testing.TB).
func MustDense[T matrix.Number](tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c, opts...)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a matrix from literal rows or fails the test.
func MustRows[T matrix.Number](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt READS a 0-based cell or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RequireRows asserts exact equality of m with the literal rows.
func RequireRows[T matrix.Number](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, m)
	if diff := cmp.Diff(want, m.ToRows(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// RequireRowsApprox asserts element-wise equality within approxTol.
func RequireRowsApprox(t *testing.T, want [][]float64, m *matrix.Dense[float64]) {
	t.Helper()
	require.NotNil(t, m)
	if diff := cmp.Diff(want, m.ToRows(), approx, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// RequireGonumApprox asserts m matches a gonum reference within approxTol.
func RequireGonumApprox(t *testing.T, want mat.Matrix, m *matrix.Dense[float64]) {
	t.Helper()
	r, c := want.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = want.At(i, j)
		}
	}
	RequireRowsApprox(t, rows, m)
}

// fillDenseRand FILLS m with deterministic uniform values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	err := m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 })
	if err != nil {
		tb.Fatalf("fillDenseRand: %v", err)
	}
}

// RandomInts BUILDS an r×c integer matrix with values in [-lim, lim].
func RandomInts(tb testing.TB, r, c, lim int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense[int](tb, r, c)
	err := m.Apply(func(_, _ int, _ int) int { return rng.Intn(2*lim+1) - lim })
	if err != nil {
		tb.Fatalf("RandomInts: %v", err)
	}

	return m
}

// DiagDominant BUILDS an n×n strictly diagonally dominant (hence invertible
// and well-conditioned) float matrix.
func DiagDominant(tb testing.TB, n int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	m := MustDense[float64](tb, n, n)
	fillDenseRand(tb, m, seed)
	for i := 0; i < n; i++ {
		v := MustAt(tb, m, i, i)
		if err := m.Set(i, i, v+float64(n)+1); err != nil {
			tb.Fatalf("DiagDominant: %v", err)
		}
	}

	return m
}

// toGonum EXPORTS m for use as a gonum reference operand.
func toGonum(tb testing.TB, m *matrix.Dense[float64]) *mat.Dense {
	tb.Helper()
	g, err := matrix.ToGonum(m)
	if err != nil {
		tb.Fatalf("ToGonum: %v", err)
	}

	return g
}
