// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a growable row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Offer both 0-based (At/Set) and 1-based (ElementAt/SetElement) addressing.
//   - Model exclusive buffer ownership: Clone deep-copies, Take transfers.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(k*r*c) zero-init (k = capacity increment); At/Set: O(1);
//     Clone: O(r*c); Take: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxElementAt  = "ElementAt"
	ctxSetElement = "SetElement"
	ctxApply      = "Apply"
	ctxFill       = "Fill"
	ctxRow        = "Row"
	ctxCol        = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; preserves the sentinel for errors.Is.
// Complexity: Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over element type T.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - store owns a flat buffer of capacity ≥ r*c; live cells are store.buf[:r*c]
//     in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes.
//
// A Dense exclusively owns its buffer. Clone duplicates it; Take moves it.
// The zero value is an empty 0×0 matrix with the default capacity increment
// and the numeric policy off; it grows through AddRow/AddColumn or Reset.
// Dense is not safe for concurrent mutation.
type Dense[T Number] struct {
	r, c           int
	store          storage[T]
	validateNaNInf bool
}

// Compile-time assertions for interface conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: resolve options (capacity increment, numeric policy).
//   - Stage 3: allocate capacity = increment*rows*cols, zero-filled by make.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal; an empty matrix can be grown with AddRow/AddColumn.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(k*r*c), Space O(k*r*c).
func NewDense[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newDenseWith[T](rows, cols, gatherOptions(opts...)), nil
}

// newDenseWith is the internal constructor; shape is assumed validated.
func newDenseWith[T Number](rows, cols int, o Options) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		store:          newStorage[T](rows*cols, o.increment),
		validateNaNInf: o.validateNaNInf,
	}
}

// newDenseLike allocates a rows×cols zero matrix carrying m's options.
func newDenseLike[T Number](m *Dense[T], rows, cols int) *Dense[T] {
	return newDenseWith[T](rows, cols, m.options())
}

// NewFilled creates an r×c matrix whose every live cell equals v.
// Errors: ErrBadShape, ErrNaNInf (v non-finite under the numeric policy).
func NewFilled[T Number](rows, cols int, v T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(v); err != nil {
		return nil, err
	}

	return m, nil
}

// NewFromSlice creates an r×c matrix from row-major data.
// Copies min(len(data), rows*cols) values; missing cells stay zero and excess
// values are ignored.
// Errors: ErrBadShape, ErrNaNInf.
// Complexity: Time O(r*c), Space O(k*r*c).
func NewFromSlice[T Number](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.checkFinite(data); err != nil {
		return nil, fmt.Errorf("NewFromSlice(%d,%d): %w", rows, cols, err)
	}
	copy(m.live(), data)

	return m, nil
}

// NewFromRows creates a matrix from a rectangular slice of rows.
// An empty input yields 0×0.
// Errors: ErrDimensionMismatch (ragged rows), ErrNaNInf.
func NewFromRows[T Number](rows [][]T, opts ...Option) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := newDenseWith[T](r, c, gatherOptions(opts...))
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		if err := m.checkFinite(row); err != nil {
			return nil, fmt.Errorf("NewFromRows: row %d: %w", i, err)
		}
		copy(m.store.buf[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len is the number of live elements (rows*cols).
func (m *Dense[T]) Len() int { return m.r * m.c }

// Capacity is the number of element slots currently owned (≥ Len).
func (m *Dense[T]) Capacity() int { return m.store.capacity() }

// IsEmpty reports whether the matrix holds no live elements.
func (m *Dense[T]) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// live returns the live row-major region (shares storage).
func (m *Dense[T]) live() []T { return m.store.buf[:m.r*m.c] }

// isNonFinite reports NaN/±Inf. Integer values always pass.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// checkFinite enforces the numeric policy over a batch of incoming values.
func (m *Dense[T]) checkFinite(vals []T) error {
	if !m.validateNaNInf {
		return nil
	}
	for _, v := range vals {
		if isNonFinite(float64(v)) {
			return ErrNaNInf
		}
	}

	return nil
}

// indexOf computes the 0-based row-major offset or returns ErrOutOfRange.
// Complexity: Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at 0-based (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.store.buf[off], nil
}

// Set stores v at 0-based (row, col).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(float64(v)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.store.buf[off] = v

	return nil
}

// ElementAt returns the value at 1-based (row, col): row ∈ [1,R], col ∈ [1,C].
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense[T]) ElementAt(row, col int) (T, error) {
	if m == nil {
		return 0, denseErrorf(ctxElementAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row-1, col-1)
	if err != nil {
		return 0, denseErrorf(ctxElementAt, row, col, err)
	}

	return m.store.buf[off], nil
}

// SetElement stores v at 1-based (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
func (m *Dense[T]) SetElement(row, col int, v T) error {
	if m == nil {
		return denseErrorf(ctxSetElement, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row-1, col-1)
	if err != nil {
		return denseErrorf(ctxSetElement, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(float64(v)) {
		return denseErrorf(ctxSetElement, row, col, ErrNaNInf)
	}
	m.store.buf[off] = v

	return nil
}

// Clone returns a deep copy: a freshly sized buffer holding the r*c live
// elements, with the same capacity increment and numeric policy.
// Complexity: Time O(r*c), Space O(k*r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := newDenseLike(m, m.r, m.c)
	copy(cp.store.buf, m.live())

	return cp
}

// Take transfers buffer ownership to a new *Dense and leaves m empty (0×0,
// no buffer). The emptied m keeps its options and can be reused after Reset
// or by growing it with AddRow/AddColumn.
// Complexity: O(1).
func (m *Dense[T]) Take() *Dense[T] {
	moved := &Dense[T]{
		r:              m.r,
		c:              m.c,
		store:          m.store,
		validateNaNInf: m.validateNaNInf,
	}
	m.r, m.c = 0, 0
	m.store.release()

	return moved
}

// Reset reinitialises m as a rows×cols zero matrix with a new buffer,
// keeping its options.
// Errors: ErrBadShape.
func (m *Dense[T]) Reset(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Dense.Reset(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m.r, m.c = rows, cols
	m.store = newStorage[T](rows*cols, m.store.increment)

	return nil
}

// Expand grows the capacity by the increment factor, preserving the live
// elements. Structural inserts call it on demand; calling it directly only
// pre-allocates.
func (m *Dense[T]) Expand() { m.store.expand() }

// Data returns a copy of the live elements in row-major order.
func (m *Dense[T]) Data() []T {
	out := make([]T, m.r*m.c)
	copy(out, m.live())

	return out
}

// ToRows returns a copy of the matrix as a slice of rows.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.store.buf[i*m.c:(i+1)*m.c])
	}

	return out
}

// Row returns a copy of 0-based row i.
// Errors: ErrOutOfRange.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.store.buf[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of 0-based column j.
// Errors: ErrOutOfRange.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.store.buf[i*m.c+j]
	}

	return out, nil
}

// Fill sets every live cell to v.
// Errors: ErrNaNInf under the numeric policy.
func (m *Dense[T]) Fill(v T) error {
	if m.validateNaNInf && isNonFinite(float64(v)) {
		return denseErrorf(ctxFill, 0, 0, ErrNaNInf)
	}
	data := m.live()
	for k := range data {
		data[k] = v
	}

	return nil
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths. Complexity: Time O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.store.buf[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
