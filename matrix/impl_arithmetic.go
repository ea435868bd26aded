// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic kernels over Dense: negation,
// element-wise addition and subtraction, scalar and matrix products,
// transpose and integer powers. All functions perform strict fail-fast
// validation and return fresh matrices; operands are never mutated.
//
// Purpose:
//   - Define operation tags and the shared error wrapper used across kernels.
//   - Keep every loop over the flat row-major buffer (no per-element bounds checks).
//
// Notes:
//   - Results inherit the options of the left (or only) operand.
//   - Add, Sub, Scale, Mul and Power check their results against that
//     operand's numeric policy, so an overflow to ±Inf is ErrNaNInf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNeg          = "Neg"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opPower        = "Power"
	opInsertRow    = "InsertRow"
	opInsertColumn = "InsertColumn"
	opDeleteRow    = "DeleteRow"
	opDeleteColumn = "DeleteColumn"
	opClearRow     = "ClearRow"
	opClearColumn  = "ClearColumn"
	opBlock        = "Block"
	opCombine      = "CombineWith"
	opRowSplit     = "RowSplit"
	opColumnSplit  = "ColumnSplit"
	opMinor        = "MinorOf"
	opRowReduce    = "RowReduce"
	opRank         = "Rank"
	opInverse      = "Inverse"
	opDeterminant  = "Determinant"
	opAllClose     = "AllClose"
	opGonum        = "Gonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Neg returns -m.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Neg[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res := newDenseLike(m, m.r, m.c)
	src, dst := m.live(), res.live()
	for k := range src {
		dst[k] = -src[k]
	}

	return res, nil
}

// addSub computes element-wise out = a + b (sub=false) or a − b (sub=true).
// Inputs must have identical shapes (VerifyHomo); a fresh Dense is allocated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T Number](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDenseLike(a, a.r, a.c)
	av, bv, out := a.live(), b.live(), res.live()
	if sub {
		for k := range out {
			out[k] = av[k] - bv[k]
		}
	} else {
		for k := range out {
			out[k] = av[k] + bv[k]
		}
	}
	if err := res.checkFinite(out); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ), ErrNaNInf.
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ), ErrNaNInf.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Scale returns m·k (scalar on the right).
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Number](m *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDenseLike(m, m.r, m.c)
	src, dst := m.live(), res.live()
	for i := range src {
		dst[i] = src[i] * k
	}
	if err := res.checkFinite(dst); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// ScaleLeft returns k·m (scalar on the left). Multiplication by a scalar
// commutes, so this delegates to Scale.
func ScaleLeft[T Number](k T, m *Dense[T]) (*Dense[T], error) { return Scale(m, k) }

// Mul computes the matrix product C = A × B with the classical triple loop.
// Implementation:
//   - Stage 1: validate non-nil operands and A.Cols == B.Rows.
//   - Stage 2: i→k→j loop order; the inner loop walks a row of B and a row of
//     C contiguously.
//
// Behavior highlights:
//   - Each C[i,j] accumulates A[i,k]*B[k,j] for k ascending, matching the
//     textbook i→j→k summation order per cell.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy on, non-finite result).
//
// Complexity:
//   - Time O(R_a*C_b*C_a), Space O(R_a*C_b).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newDenseLike(a, a.r, b.c)
	n := a.c
	ad, bd, cd := a.store.buf, b.store.buf, res.store.buf
	var i, j, k, aBase, bBase, cBase int
	var aik T
	for i = 0; i < a.r; i++ {
		aBase = i * n
		cBase = i * b.c
		for k = 0; k < n; k++ {
			aik = ad[aBase+k]
			bBase = k * b.c
			for j = 0; j < b.c; j++ {
				cd[cBase+j] += aik * bd[bBase+j]
			}
		}
	}
	if err := res.checkFinite(cd[:a.r*b.c]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns the C×R matrix with (i,j) ↦ (j,i).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDenseLike(m, m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.store.buf[j*m.r+i] = m.store.buf[i*m.c+j]
		}
	}

	return res, nil
}

// Power returns mⁿ by repeated multiplication starting from the identity;
// n = 0 yields the identity.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNegativeExponent, ErrNaNInf.
// Complexity: Time O(n*N^3), Space O(N^2).
func Power[T Number](m *Dense[T], n int) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("n=%d: %w", n, ErrNegativeExponent))
	}

	res := identityLike(m)
	var err error
	for step := 0; step < n; step++ {
		if res, err = Mul(res, m); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return res, nil
}

// identityLike builds I_R with m's options.
func identityLike[T Number](m *Dense[T]) *Dense[T] {
	id := newDenseLike(m, m.r, m.r)
	for i := 0; i < m.r; i++ {
		id.store.buf[i*m.r+i] = 1
	}

	return id
}
