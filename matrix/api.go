// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Each facade delegates to the canonical implementation; none adds logic
//     beyond composing constructors.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros/NewOnes to build square matrices with neutral elements.
//   - ZerosLike/IdentityLike inherit the source matrix's options.
//   - Det is the one-shot form of NewDeterminant(m).Value().

package matrix

// ---------- Constructors ----------

// NewZeros returns an n×n zero matrix.
// Errors: ErrBadShape (n < 0).
func NewZeros[T Number](n int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](n, n, opts...)
}

// NewOnes returns an n×n matrix of ones.
// Errors: ErrBadShape (n < 0).
func NewOnes[T Number](n int, opts ...Option) (*Dense[T], error) {
	return NewFilled[T](n, n, 1, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
// Errors: ErrBadShape (n < 0).
func NewIdentity[T Number](n int, opts ...Option) (*Dense[T], error) {
	id, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.store.buf[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a zero matrix with m's shape and options.
// Errors: ErrNilMatrix.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newDenseLike(m, m.r, m.c), nil
}

// IdentityLike returns I with dimension Rows(m); m must be square.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return identityLike(m), nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add.
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// T is an alias for Transpose.
func T[E Number](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale.
func ScaleBy[T Number](m *Dense[T], k T) (*Dense[T], error) { return Scale(m, k) }

// ---------- Linear algebra aliases ----------

// InverseOf is an alias for Inverse.
func InverseOf[T Float](m *Dense[T]) (*Dense[T], error) { return Inverse(m) }

// Det evaluates the determinant of the square matrix m by cofactor expansion.
// m is copied; it is never modified.
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadShape (0×0).
// Complexity: O(N!).
func Det[T Number](m *Dense[T]) (T, error) {
	d, err := NewDeterminant(m)
	if err != nil {
		return 0, err
	}

	return d.Value()
}
