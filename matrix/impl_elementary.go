// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// These three primitives are the only way the reduction routines touch a
// working matrix. They operate in place on 0-based row indices and are kept
// unexported: callers reach them through RowReduce, Rank and Inverse, which
// always work on a private clone.

package matrix

import "fmt"

const (
	ctxRowInterchange = "rowInterchange"
	ctxRowScaling     = "rowScaling"
	ctxRowAddition    = "rowAddition"
)

// validateRow checks a 0-based row index.
func (m *Dense[T]) validateRow(tag string, r int) error {
	if r < 0 || r >= m.r {
		return fmt.Errorf("Dense.%s: row %d of %d: %w", tag, r, m.r, ErrOutOfRange)
	}

	return nil
}

// rowSlice returns the live elements of 0-based row r (shares storage).
func (m *Dense[T]) rowSlice(r int) []T {
	return m.store.buf[r*m.c : (r+1)*m.c]
}

// rowInterchange swaps rows r1 and r2 element by element.
// Complexity: Time O(C), Space O(1).
func (m *Dense[T]) rowInterchange(r1, r2 int) error {
	if err := m.validateRow(ctxRowInterchange, r1); err != nil {
		return err
	}
	if err := m.validateRow(ctxRowInterchange, r2); err != nil {
		return err
	}
	if r1 == r2 {
		return nil
	}
	a, b := m.rowSlice(r1), m.rowSlice(r2)
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// rowScaling multiplies every element of row r by k.
// Errors: ErrOutOfRange, ErrInvalidScaleFactor (k == 0).
// Complexity: Time O(C), Space O(1).
func (m *Dense[T]) rowScaling(r int, k T) error {
	if err := m.validateRow(ctxRowScaling, r); err != nil {
		return err
	}
	if k == 0 {
		return fmt.Errorf("Dense.%s: row %d: %w", ctxRowScaling, r, ErrInvalidScaleFactor)
	}
	row := m.rowSlice(r)
	for j := range row {
		row[j] *= k
	}

	return nil
}

// rowAddition performs trg ← trg + k·src. Any k, including 0, is accepted.
// Complexity: Time O(C), Space O(1).
func (m *Dense[T]) rowAddition(src int, k T, trg int) error {
	if err := m.validateRow(ctxRowAddition, src); err != nil {
		return err
	}
	if err := m.validateRow(ctxRowAddition, trg); err != nil {
		return err
	}
	s, t := m.rowSlice(src), m.rowSlice(trg)
	for j := range t {
		t[j] += k * s[j]
	}

	return nil
}
