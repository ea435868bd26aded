// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels.
//
// Purpose:
//   - Exact and tolerance-based equality for same-shaped matrices.
//   - Used by callers (and tests) to check algebraic identities such as
//     A·A⁻¹ == I that only hold within floating tolerance.

package matrix

import (
	"fmt"
	"math"
)

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: Time O(r*c), Space O(1).
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !VerifyHomo(a, b) {
		return false
	}
	bv := b.live()
	for k, v := range a.live() {
		if v != bv[k] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - NaN never compares close.
//
// Errors:
//   - ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("tolerance: %w", ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	bd := b.live()
	for k, v := range a.live() {
		av, bv = float64(v), float64(bd[k])
		if av == bv {
			continue // covers matching infinities
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}
