// SPDX-License-Identifier: MIT

// Package matrix - element traversal.
//
// Every traversal walks the live buffer in row-major order and stops as soon
// as the callback (or the range loop body) asks it to. Callback forms come in
// index-free and index-carrying variants; All/Values plug into range-over-func;
// Iterator is a restartable cursor for callers that need to pause a scan.

package matrix

import "iter"

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.store.buf[base+j]) {
				return
			}
		}
	}
}

// DoValues is the index-free form of Do.
func (m *Dense[T]) DoValues(f func(v T) bool) {
	for _, v := range m.live() {
		if !f(v) {
			return
		}
	}
}

// ForEach hands f a pointer to each live element together with its 1-based
// linear index, allowing in-place edits. Stops when f returns false.
// Writes through the pointer bypass the numeric policy.
func (m *Dense[T]) ForEach(f func(p *T, idx int) bool) {
	data := m.live()
	for k := range data {
		if !f(&data[k], k+1) {
			return
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute new value via f.
//   - Stage 2: reject NaN/Inf if the policy is enabled.
//   - Stage 3: write back.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.store.buf[base+j])
			if m.validateNaNInf && isNonFinite(float64(nv)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.store.buf[base+j] = nv
		}
	}

	return nil
}

// All yields every (cell, value) pair in row-major order.
// Each range loop starts a fresh scan.
func (m *Dense[T]) All() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		m.Do(func(i, j int, v T) bool { return yield(Cell{Row: i, Col: j}, v) })
	}
}

// Values yields every element in row-major order.
func (m *Dense[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) { m.DoValues(yield) }
}

// Iterator is a restartable row-major cursor over a Dense.
// Structural mutation of the matrix invalidates the cursor position; call
// Reset afterwards.
type Iterator[T Number] struct {
	m   *Dense[T]
	pos int // linear offset of the current element; -1 before the first Next
}

// Iterator returns a cursor positioned before the first element.
func (m *Dense[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{m: m, pos: -1}
}

// Next advances the cursor and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	if it.pos+1 >= it.m.Len() {
		it.pos = it.m.Len()
		return false
	}
	it.pos++

	return true
}

// Cell returns the 0-based coordinate of the current element.
func (it *Iterator[T]) Cell() Cell {
	return Cell{Row: it.pos / it.m.c, Col: it.pos % it.m.c}
}

// Value returns the current element. Valid only after Next returned true.
func (it *Iterator[T]) Value() T { return it.m.store.buf[it.pos] }

// Reset rewinds the cursor to before the first element.
func (it *Iterator[T]) Reset() { it.pos = -1 }
