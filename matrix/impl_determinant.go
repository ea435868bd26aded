// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor (Laplace) expansion.
//
// Purpose:
//   - Determinant owns one square matrix and evaluates it on demand.
//   - Value recomputes from scratch on every call (no cached result) and
//     expands along the first row, wrapping each minor in its own Determinant.
//
// Complexity:
//   - Value is O(N!) in time with no memoisation of repeated minors; it is the
//     reference algorithm, intended for small N.

package matrix

import "fmt"

// Determinant wraps an exclusively-owned square matrix.
type Determinant[T Number] struct {
	m *Dense[T]
}

// NewDeterminant deep-copies the square matrix m.
// Errors: ErrNilMatrix, ErrNonSquare.
func NewDeterminant[T Number](m *Dense[T]) (*Determinant[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	return &Determinant[T]{m: m.Clone()}, nil
}

// NewDeterminantOf returns a zero n×n determinant.
// Errors: ErrBadShape (n < 0).
func NewDeterminantOf[T Number](n int, opts ...Option) (*Determinant[T], error) {
	m, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	return &Determinant[T]{m: m}, nil
}

// NewDeterminantFromData returns an n×n determinant filled row-major from
// data; min(len(data), n*n) values are copied, the rest are zero.
// Errors: ErrBadShape, ErrNaNInf.
func NewDeterminantFromData[T Number](n int, data []T, opts ...Option) (*Determinant[T], error) {
	m, err := NewFromSlice(n, n, data, opts...)
	if err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	return &Determinant[T]{m: m}, nil
}

// Size is the order N of the determinant (0 after Take).
func (d *Determinant[T]) Size() int {
	if d.m == nil {
		return 0
	}

	return d.m.r
}

// Matrix returns a copy of the wrapped matrix, or nil after Take.
func (d *Determinant[T]) Matrix() *Dense[T] {
	if d.m == nil {
		return nil
	}

	return d.m.Clone()
}

// Clone deep-copies the determinant.
func (d *Determinant[T]) Clone() *Determinant[T] {
	return &Determinant[T]{m: d.Matrix()}
}

// Take moves the wrapped matrix into a new Determinant and leaves d empty;
// Value on an emptied determinant returns ErrNilMatrix.
func (d *Determinant[T]) Take() *Determinant[T] {
	moved := &Determinant[T]{m: d.m}
	d.m = nil

	return moved
}

// Value evaluates the determinant.
// Implementation:
//   - Base case N=1: the sole element.
//   - Otherwise, for j = 1..N: minor = MinorOf(1, j), recursively evaluate it,
//     accumulate sign·a(1,j)·minor with sign = +1 for odd j, −1 for even j.
//
// Behavior highlights:
//   - Pure accumulation in T's arithmetic; no floating tolerance.
//   - Minors are adopted by their sub-Determinant without an extra copy.
//
// Errors:
//   - ErrNilMatrix (nil or emptied determinant), ErrBadShape (N = 0).
//
// Complexity:
//   - Time O(N!), Space O(N^2) per recursion level.
func (d *Determinant[T]) Value() (T, error) {
	if d == nil || d.m == nil {
		return 0, matrixErrorf(opDeterminant, ErrNilMatrix)
	}
	n := d.m.r
	switch n {
	case 0:
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("order 0: %w", ErrBadShape))
	case 1:
		return d.m.store.buf[0], nil
	}

	var sum, sign T = 0, 1
	for j := 0; j < n; j++ {
		minor, err := d.m.MinorOf(1, j+1)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		sub := &Determinant[T]{m: minor}
		v, err := sub.Value()
		if err != nil {
			return 0, err
		}
		sum += sign * d.m.store.buf[j] * v
		sign = -sign
	}

	return sum, nil
}
