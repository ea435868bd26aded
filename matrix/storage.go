// SPDX-License-Identifier: MIT

// Package matrix - growable contiguous element storage.
//
// Purpose:
//   - Own exactly one flat buffer whose length is the capacity.
//   - Keep capacity ≥ live size (rows*cols) as an explicit invariant.
//   - Grow by a fixed multiplicative factor, preserving element order.
//
// The live region is buf[:rows*cols]; the tail up to len(buf) is spare room
// for structural inserts. Dense is the only owner; nothing outside this file
// reallocates buf.

package matrix

// storage is the exclusively-owned row-major buffer behind a Dense.
type storage[T Number] struct {
	buf       []T // len(buf) == capacity
	increment int // growth factor (>= MinCapacityIncrement)
}

// newStorage allocates capacity = increment × live, zero-filled.
// An increment below MinCapacityIncrement (the zero value included) is
// replaced by DefaultCapacityIncrement.
// Complexity: O(increment*live).
func newStorage[T Number](live, increment int) storage[T] {
	increment = normIncrement(increment)

	return storage[T]{
		buf:       make([]T, increment*live),
		increment: increment,
	}
}

// normIncrement maps an unusable growth factor to the default.
func normIncrement(k int) int {
	if k < MinCapacityIncrement {
		return DefaultCapacityIncrement
	}

	return k
}

// capacity reports the number of element slots owned.
func (s *storage[T]) capacity() int { return len(s.buf) }

// expand reallocates to capacity × increment and copies the old contents.
// An empty buffer grows to exactly increment slots.
// Complexity: Time O(capacity), Space O(capacity*increment).
func (s *storage[T]) expand() {
	s.increment = normIncrement(s.increment)
	next := len(s.buf) * s.increment
	if next == 0 {
		next = s.increment
	}
	grown := make([]T, next)
	copy(grown, s.buf)
	s.buf = grown
}

// reserve expands until at least need slots are available.
func (s *storage[T]) reserve(need int) {
	for len(s.buf) < need {
		s.expand()
	}
}

// release drops the buffer; the storage must be re-created before reuse.
func (s *storage[T]) release() {
	s.buf = nil
}
