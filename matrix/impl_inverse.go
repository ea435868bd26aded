// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Invertible reports whether m is square with Rank(m) == Rows(m).
// A nil matrix is not invertible. Complexity: O(N^3).
func Invertible[T Float](m *Dense[T]) bool {
	if m == nil || m.r != m.c {
		return false
	}
	rank, err := Rank(m)

	return err == nil && rank == m.r
}

// Inverse computes A⁻¹ by Gauss-Jordan reduction of the augmented [A | I].
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: build [A | I_N] with CombineWith(I, Right).
//   - Stage 3: reduce the augmented matrix in place.
//   - Stage 4: staircase rank of the left N×N block; < N ⇒ ErrSingular.
//   - Stage 5: ColumnSplit(N+1, Right) yields the right block.
//
// Behavior highlights:
//   - m is never modified; the augmented matrix is private.
//   - ErrSingular is an expected outcome for rank-deficient input and is
//     returned, never panicked.
//   - 0×0 input returns an empty 0×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(N^3), Space O(N^2).
func Inverse[T Float](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	if n == 0 {
		return newDenseLike(m, 0, 0), nil
	}

	aug, err := m.CombineWith(identityLike(m), Right)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = reduceInPlace(aug); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if rank := staircaseRank(aug, n); rank < n {
		return nil, matrixErrorf(opInverse, fmt.Errorf("rank %d of %d: %w", rank, n, ErrSingular))
	}

	inv, err := aug.ColumnSplit(n+1, Right)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
