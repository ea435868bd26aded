// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, structural editing and the
// linear-algebra kernels. This file contains ONLY type declarations (scalar
// constraints, Direction, Cell, Shaped).
package matrix

import "fmt"

// Signed is the set of signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating-point element types. Routines that divide
// (RowReduce, Rank, Invertible, Inverse) require it.
type Float interface {
	~float32 | ~float64
}

// Number is the set of element types a Dense can hold.
// Unsigned types are excluded: negation, cofactor signs and elimination all
// need additive inverses.
type Number interface {
	Signed | Float
}

// Shaped is the minimal read-only view of a matrix shape.
// Validators accept it so they work on any implementation.
type Shaped interface {
	Rows() int
	Cols() int
}

// Direction names the relative placement of a second operand in CombineWith,
// and the kept side in RowSplit/ColumnSplit. It carries no state.
type Direction int

// Direction values.
const (
	Left Direction = iota
	Right
	Above
	Below
	TopLeft
	TopRight
	BotLeft
	BotRight
)

var directionNames = [...]string{
	Left:     "Left",
	Right:    "Right",
	Above:    "Above",
	Below:    "Below",
	TopLeft:  "TopLeft",
	TopRight: "TopRight",
	BotLeft:  "BotLeft",
	BotRight: "BotRight",
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d < Left || d > BotRight {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// Cell is a 0-based (row, column) coordinate yielded by traversals.
type Cell struct {
	Row, Col int
}
