// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan row reduction and the staircase rank.
//
// Purpose:
//   - Reduce a private clone of the input to row-reduced echelon form using
//     only the elementary row operations in impl_elementary.go.
//   - Derive the rank by counting leading "staircase" rows of that exact form.
//
// Numeric policy:
//   - Pivot search, elimination guards and the rank count compare against the
//     zero scalar exactly. No tolerance is applied: any non-zero value, however
//     small, is accepted as a pivot.
//
// Shape policy:
//   - Pivot slots run over i = 0..min(R,C)-1, so tall and wide matrices are
//     accepted. For rectangular or rank-deficient inputs the final reordering
//     pass follows the same column-i-for-row-i scheme and does not guarantee a
//     canonical RREF; Rank stays coupled to this placement.

package matrix

// RowReduce returns the row-reduced echelon form of m; m is not modified.
// Implementation:
//   - Stage 1 (forward): for each slot i, find the first row p ≥ i with a
//     non-zero entry in column i; skip the slot if none. Swap p into i, scale
//     row i by 1/pivot, eliminate column i below the pivot.
//   - Stage 2 (backward): for i descending, if (i,i) ≠ 0 eliminate column i
//     in every row above.
//   - Stage 3 (reorder): for i ascending, if (i,i) == 0 swap in the first row
//     j ≥ i whose column-i entry is non-zero; stop at the first slot with none.
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Fixed loop orders; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(min(R,C)*R*C), Space O(R*C) for the working clone.
func RowReduce[T Float](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}
	w := m.Clone()
	if err := reduceInPlace(w); err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}

	return w, nil
}

// reduceInPlace runs the three reduction stages on w.
func reduceInPlace[T Float](w *Dense[T]) error {
	steps := min(w.r, w.c)
	at := func(i, j int) T { return w.store.buf[i*w.c+j] }

	var i, j, p int
	var err error
	for i = 0; i < steps; i++ {
		for p = i; p < w.r && at(p, i) == 0; p++ {
		}
		if p == w.r {
			continue // no pivot for this slot
		}
		if p != i {
			if err = w.rowInterchange(p, i); err != nil {
				return err
			}
		}
		if err = w.rowScaling(i, 1/at(i, i)); err != nil {
			return err
		}
		for j = i + 1; j < w.r; j++ {
			if err = w.rowAddition(i, -at(j, i), j); err != nil {
				return err
			}
		}
	}

	for i = steps - 1; i >= 0; i-- {
		if at(i, i) == 0 {
			continue
		}
		for j = 0; j < i; j++ {
			if err = w.rowAddition(i, -at(j, i), j); err != nil {
				return err
			}
		}
	}

	for i = 0; i < steps; i++ {
		if at(i, i) != 0 {
			continue
		}
		for j = i; j < w.r && at(j, i) == 0; j++ {
		}
		if j == w.r {
			break
		}
		if err = w.rowInterchange(i, j); err != nil {
			return err
		}
	}

	return nil
}

// staircaseRank counts leading rows of a reduced matrix whose entries from
// the diagonal position rightward (up to column cols-1) are not all zero,
// stopping at the first row that is.
func staircaseRank[T Number](w *Dense[T], cols int) int {
	var i, j int
	for i = 0; i < w.r; i++ {
		row := w.rowSlice(i)
		for j = i; j < cols && row[j] == 0; j++ {
		}
		if j >= cols {
			break
		}
	}

	return i
}

// Rank reduces a clone of m and returns its staircase rank.
// Errors: ErrNilMatrix.
// Complexity: Time O(min(R,C)*R*C).
func Rank[T Float](m *Dense[T]) (int, error) {
	w, err := RowReduce(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return staircaseRank(w, w.c), nil
}
