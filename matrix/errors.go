// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag (matrixErrorf / denseErrorf); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> dimension mismatch -> square -> numeric outcome
// (singular).

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when a requested shape or span is invalid
	// (negative rows/cols/spans, determinant of an empty matrix).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index or insert position (row or column)
	// is outside the valid bounds of the requested operation.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows, or a
	// concatenation along an edge of different length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Power, MinorOf, Determinant, Inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the reduced left block of [A | I]
	// does not reach full rank. Unlike the other sentinels it is an expected
	// runtime outcome, not a contract violation.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidScaleFactor signals an elementary row scaling by exactly zero.
	ErrInvalidScaleFactor = errors.New("matrix: row scale factor must be non-zero")

	// ErrInvalidDirection signals a Direction that the operation does not accept
	// (e.g. RowSplit with Left) or an unknown Direction value.
	ErrInvalidDirection = errors.New("matrix: invalid direction")

	// ErrNegativeExponent signals Power called with n < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrNaNInf signals a NaN or ±Inf value was written while the numeric
	// policy (WithValidateNaNInf) is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
