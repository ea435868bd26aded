// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum's mat package.
//
// ToGonum exports any Dense as a *mat.Dense (float64); FromGonum imports any
// mat.Matrix as a Dense[float64]. Both copy: no buffer is ever shared across
// the boundary. gonum cannot represent zero-sized matrices, so exporting an
// empty Dense fails with ErrBadShape.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense, converting elements to float64.
// Errors: ErrNilMatrix, ErrBadShape (R == 0 or C == 0).
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum[T Number](m *Dense[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGonum, err)
	}
	if m.IsEmpty() {
		return nil, matrixErrorf(opGonum, fmt.Errorf("export %dx%d: %w", m.r, m.c, ErrBadShape))
	}
	data := make([]float64, m.Len())
	for k, v := range m.live() {
		data[k] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any mat.Matrix into a new Dense[float64].
// Options apply to the result; with the default numeric policy a NaN/Inf
// element is rejected.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: Time O(r*c), Space O(k*r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*Dense[float64], error) {
	if a == nil {
		return nil, matrixErrorf(opGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	res := newDenseWith[float64](r, c, gatherOptions(opts...))
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = a.At(i, j)
			if res.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opGonum, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.store.buf[i*c+j] = v
		}
	}

	return res, nil
}
