// SPDX-License-Identifier: MIT

// Package matrix - structural editing of Dense (insert/delete, blocks,
// concatenation, splitting, minors).
//
// Purpose:
//   - Mutate shape in place while keeping the buffer strictly row-major.
//   - Build derived matrices (Block, CombineWith, splits, minors) as deep copies
//     carrying the receiver's options.
//
// Indexing:
//   - Insert/Delete/Clear/Split/MinorOf positions are 1-based.
//   - Block is 0-based.
//
// Determinism:
//   - All shifts are performed with copy (memmove semantics) in a fixed order;
//     no temporary buffers beyond an occasional growth.

package matrix

import "fmt"

// InsertRow inserts data as a new row at 1-based position pos ∈ [1, R+1].
// Implementation:
//   - Stage 1: validate pos; on a 0×0 matrix the first row fixes C = len(data).
//   - Stage 2: reserve capacity for (R+1)*C (may Expand one or more times).
//   - Stage 3: shift rows pos..R down by one row in a single block move.
//   - Stage 4: copy min(len(data), C) values; zero-fill the rest of the row.
//
// Behavior highlights:
//   - Excess values beyond C are ignored; short data is zero-padded.
//   - On error the matrix is left unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (pos==0 or pos>R+1), ErrNaNInf.
//
// Complexity:
//   - Time O(R*C) worst case (one contiguous move), Space O(1) unless growing.
func (m *Dense[T]) InsertRow(pos int, data []T) error {
	if m == nil {
		return matrixErrorf(opInsertRow, ErrNilMatrix)
	}
	if err := validateInsertPos(pos, m.r); err != nil {
		return matrixErrorf(opInsertRow, fmt.Errorf("pos %d: %w", pos, err))
	}
	cols := m.c
	if m.r == 0 && m.c == 0 {
		cols = len(data)
	}
	n := min(len(data), cols)
	if err := m.checkFinite(data[:n]); err != nil {
		return matrixErrorf(opInsertRow, err)
	}

	m.c = cols
	m.store.reserve((m.r + 1) * cols)
	buf := m.store.buf
	p := pos - 1
	// rows p..r-1 move one row down; copy handles the overlap.
	copy(buf[(p+1)*cols:(m.r+1)*cols], buf[p*cols:m.r*cols])

	row := buf[p*cols : (p+1)*cols]
	copy(row, data[:n])
	clear(row[n:])
	m.r++

	return nil
}

// InsertColumn inserts data as a new column at 1-based position pos ∈ [1, C+1].
// Implementation:
//   - Stage 1: validate pos; on a 0×0 matrix the first column fixes R = len(data).
//   - Stage 2: reserve capacity for R*(C+1).
//   - Stage 3: walk rows bottom-up; each row is split around pos and moved
//     to its widened location (R distinct shifts), then the new cell is written.
//
// Behavior highlights:
//   - Copies min(len(data), R) values; the remaining new cells are zero.
//   - Bottom-up order guarantees no unread source cell is overwritten.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (pos==0 or pos>C+1), ErrNaNInf.
//
// Complexity:
//   - Time O(R*C), Space O(1) unless growing.
func (m *Dense[T]) InsertColumn(pos int, data []T) error {
	if m == nil {
		return matrixErrorf(opInsertColumn, ErrNilMatrix)
	}
	if err := validateInsertPos(pos, m.c); err != nil {
		return matrixErrorf(opInsertColumn, fmt.Errorf("pos %d: %w", pos, err))
	}
	rows := m.r
	if m.r == 0 && m.c == 0 {
		rows = len(data)
	}
	n := min(len(data), rows)
	if err := m.checkFinite(data[:n]); err != nil {
		return matrixErrorf(opInsertColumn, err)
	}

	m.r = rows
	oc := m.c
	nc := oc + 1
	m.store.reserve(rows * nc)
	buf := m.store.buf
	p := pos - 1

	var src, dst int
	for i := rows - 1; i >= 0; i-- {
		src, dst = i*oc, i*nc
		copy(buf[dst+p+1:dst+nc], buf[src+p:src+oc]) // right of the new column
		copy(buf[dst:dst+p], buf[src:src+p])         // left of the new column
		if i < n {
			buf[dst+p] = data[i]
		} else {
			buf[dst+p] = 0
		}
	}
	m.c = nc

	return nil
}

// AddRow appends data as the last row (InsertRow at R+1).
func (m *Dense[T]) AddRow(data []T) error {
	if m == nil {
		return matrixErrorf(opInsertRow, ErrNilMatrix)
	}

	return m.InsertRow(m.r+1, data)
}

// AddColumn appends data as the last column (InsertColumn at C+1).
func (m *Dense[T]) AddColumn(data []T) error {
	if m == nil {
		return matrixErrorf(opInsertColumn, ErrNilMatrix)
	}

	return m.InsertColumn(m.c+1, data)
}

// DeleteRow removes 1-based row pos ∈ [1, R]. Capacity is kept.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(R*C).
func (m *Dense[T]) DeleteRow(pos int) error {
	if m == nil {
		return matrixErrorf(opDeleteRow, ErrNilMatrix)
	}
	if err := validatePos(pos, m.r); err != nil {
		return matrixErrorf(opDeleteRow, fmt.Errorf("pos %d: %w", pos, err))
	}
	buf := m.store.buf
	p := pos - 1
	copy(buf[p*m.c:], buf[(p+1)*m.c:m.r*m.c])
	clear(buf[(m.r-1)*m.c : m.r*m.c])
	m.r--

	return nil
}

// DeleteColumn removes 1-based column pos ∈ [1, C]. Capacity is kept.
// Rows are compacted top-down so every destination precedes its source.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(R*C).
func (m *Dense[T]) DeleteColumn(pos int) error {
	if m == nil {
		return matrixErrorf(opDeleteColumn, ErrNilMatrix)
	}
	if err := validatePos(pos, m.c); err != nil {
		return matrixErrorf(opDeleteColumn, fmt.Errorf("pos %d: %w", pos, err))
	}
	buf := m.store.buf
	p := pos - 1
	oc, nc := m.c, m.c-1

	var src, dst int
	for i := 0; i < m.r; i++ {
		src, dst = i*oc, i*nc
		copy(buf[dst:dst+p], buf[src:src+p])
		copy(buf[dst+p:dst+nc], buf[src+p+1:src+oc])
	}
	clear(buf[m.r*nc : m.r*oc])
	m.c = nc

	return nil
}

// ClearRow zeroes 1-based row pos.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense[T]) ClearRow(pos int) error {
	if m == nil {
		return matrixErrorf(opClearRow, ErrNilMatrix)
	}
	if err := validatePos(pos, m.r); err != nil {
		return matrixErrorf(opClearRow, err)
	}
	clear(m.store.buf[(pos-1)*m.c : pos*m.c])

	return nil
}

// ClearColumn zeroes 1-based column pos.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense[T]) ClearColumn(pos int) error {
	if m == nil {
		return matrixErrorf(opClearColumn, ErrNilMatrix)
	}
	if err := validatePos(pos, m.c); err != nil {
		return matrixErrorf(opClearColumn, err)
	}
	for i := 0; i < m.r; i++ {
		m.store.buf[i*m.c+pos-1] = 0
	}

	return nil
}

// Block copies the rowSpan×colSpan window whose top-left corner is the
// 0-based cell (rowStart, colStart).
// Implementation:
//   - Stage 1: validate rowStart ∈ [0,R), colStart ∈ [0,C), spans ≥ 0.
//   - Stage 2: clamp spans to the rows/cols remaining after the start.
//   - Stage 3: copy row segments into a new matrix.
//
// Behavior highlights:
//   - Oversized spans never fail; they are clamped silently.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (start outside the matrix), ErrBadShape (negative span).
//
// Complexity:
//   - Time O(rowSpan*colSpan), Space O(rowSpan*colSpan).
func (m *Dense[T]) Block(rowStart, colStart, rowSpan, colSpan int) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opBlock, ErrNilMatrix)
	}
	if rowStart < 0 || rowStart >= m.r || colStart < 0 || colStart >= m.c {
		return nil, matrixErrorf(opBlock, fmt.Errorf("start (%d,%d) in %dx%d: %w", rowStart, colStart, m.r, m.c, ErrOutOfRange))
	}
	if rowSpan < 0 || colSpan < 0 {
		return nil, matrixErrorf(opBlock, fmt.Errorf("span (%d,%d): %w", rowSpan, colSpan, ErrBadShape))
	}
	rowSpan = min(rowSpan, m.r-rowStart)
	colSpan = min(colSpan, m.c-colStart)

	res := newDenseLike(m, rowSpan, colSpan)
	var src int
	for i := 0; i < rowSpan; i++ {
		src = (rowStart+i)*m.c + colStart
		copy(res.store.buf[i*colSpan:(i+1)*colSpan], m.store.buf[src:src+colSpan])
	}

	return res, nil
}

// place copies src into dst with src's (0,0) landing on dst's (r0,c0).
// Caller guarantees the target window fits.
func place[T Number](dst, src *Dense[T], r0, c0 int) {
	var off int
	for i := 0; i < src.r; i++ {
		off = (r0+i)*dst.c + c0
		copy(dst.store.buf[off:off+src.c], src.store.buf[i*src.c:(i+1)*src.c])
	}
}

// CombineWith concatenates m with other, placing other on side d.
// Implementation:
//   - Left/Above/TopLeft/TopRight are built directly.
//   - Right, Below, BotLeft, BotRight call the mirror direction
//     (Left, Above, TopRight, TopLeft) with the operands swapped, so m ends
//     up on the side opposite to d.
//
// Behavior highlights:
//   - Left/Right require equal row counts; Above/Below equal column counts.
//   - Corner variants need no shape agreement: the result is
//     (R₁+R₂)×(C₁+C₂), other fills the named corner, m the opposite one,
//     and every uncovered cell is zero.
//   - The result carries m's options regardless of operand order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDirection.
//
// Complexity:
//   - Time O(size of result), Space O(size of result).
func (m *Dense[T]) CombineWith(other *Dense[T], d Direction) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	return combine(m, other, d, m.options())
}

// combine is CombineWith with the result options pinned by the caller, so
// mirrored calls keep the original receiver's policy.
func combine[T Number](self, other *Dense[T], d Direction, o Options) (*Dense[T], error) {
	switch d {
	case Left:
		if self.r != other.r {
			return nil, matrixErrorf(opCombine, fmt.Errorf("%v: rows %d vs %d: %w", d, self.r, other.r, ErrDimensionMismatch))
		}
		res := newDenseWith[T](self.r, other.c+self.c, o)
		place(res, other, 0, 0)
		place(res, self, 0, other.c)
		return res, nil

	case Right:
		return combine(other, self, Left, o)

	case Above:
		if self.c != other.c {
			return nil, matrixErrorf(opCombine, fmt.Errorf("%v: cols %d vs %d: %w", d, self.c, other.c, ErrDimensionMismatch))
		}
		res := newDenseWith[T](other.r+self.r, self.c, o)
		place(res, other, 0, 0)
		place(res, self, other.r, 0)
		return res, nil

	case Below:
		return combine(other, self, Above, o)

	case TopLeft:
		res := newDenseWith[T](self.r+other.r, self.c+other.c, o)
		place(res, other, 0, 0)
		place(res, self, other.r, other.c)
		return res, nil

	case TopRight:
		res := newDenseWith[T](self.r+other.r, self.c+other.c, o)
		place(res, other, 0, self.c)
		place(res, self, other.r, 0)
		return res, nil

	case BotLeft:
		return combine(other, self, TopRight, o)

	case BotRight:
		return combine(other, self, TopLeft, o)
	}

	return nil, matrixErrorf(opCombine, fmt.Errorf("%v: %w", d, ErrInvalidDirection))
}

// clampIndex clamps a 1-based split index into [1, limit].
func clampIndex(index, limit int) int {
	return max(1, min(index, limit))
}

// RowSplit keeps one side of the 1-based splitter row index.
//   - Above keeps rows [1, index]; Below keeps rows [index, R].
//   - index is clamped into [1, R]; the splitter row appears in both halves,
//     so RowSplit(k, Above) and RowSplit(k, Below) overlap on row k.
//
// Errors: ErrNilMatrix, ErrInvalidDirection (anything but Above/Below).
// Complexity: Time O(kept*C).
func (m *Dense[T]) RowSplit(index int, d Direction) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opRowSplit, ErrNilMatrix)
	}
	if d != Above && d != Below {
		return nil, matrixErrorf(opRowSplit, fmt.Errorf("%v: %w", d, ErrInvalidDirection))
	}
	if m.r == 0 {
		return newDenseLike(m, 0, m.c), nil
	}
	n := clampIndex(index, m.r)

	first, count := 0, n // Above
	if d == Below {
		first, count = n-1, m.r-n+1
	}
	res := newDenseLike(m, count, m.c)
	copy(res.store.buf, m.store.buf[first*m.c:(first+count)*m.c])

	return res, nil
}

// ColumnSplit keeps one side of the 1-based splitter column index.
//   - Left keeps columns [1, index]; Right keeps columns [index, C].
//   - index is clamped into [1, C]; the splitter column appears in both halves.
//
// Errors: ErrNilMatrix, ErrInvalidDirection (anything but Left/Right).
// Complexity: Time O(R*kept).
func (m *Dense[T]) ColumnSplit(index int, d Direction) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opColumnSplit, ErrNilMatrix)
	}
	if d != Left && d != Right {
		return nil, matrixErrorf(opColumnSplit, fmt.Errorf("%v: %w", d, ErrInvalidDirection))
	}
	if m.c == 0 {
		return newDenseLike(m, m.r, 0), nil
	}
	n := clampIndex(index, m.c)

	first, count := 0, n // Left
	if d == Right {
		first, count = n-1, m.c-n+1
	}
	res := newDenseLike(m, m.r, count)
	var src int
	for i := 0; i < m.r; i++ {
		src = i*m.c + first
		copy(res.store.buf[i*count:(i+1)*count], m.store.buf[src:src+count])
	}

	return res, nil
}

// MinorOf returns the (R-1)×(C-1) matrix left after deleting 1-based row
// row and column col, preserving the relative order of the other elements.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: Time O(R*C).
func (m *Dense[T]) MinorOf(row, col int) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := validatePos(row, m.r); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("row %d: %w", row, err))
	}
	if err := validatePos(col, m.c); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("col %d: %w", col, err))
	}

	res := newDenseLike(m, m.r-1, m.c-1)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == row-1 {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == col-1 {
				continue
			}
			res.store.buf[k] = m.store.buf[i*m.c+j]
			k++
		}
	}

	return res, nil
}
