// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Wrap sentinels with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VerifyHomo reports whether a and b have identical (rows, cols).
// It is a pure predicate: no nil handling, no error.
// Complexity: O(1).
func VerifyHomo(a, b Shaped) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// ValidateNotNil ensures the matrix pointer is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions (VerifyHomo gate).
// Assumes both are non-nil.
// Return: nil or wrapped ErrDimensionMismatch.
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare.
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows for the product a×b.
// Errors: ErrDimensionMismatch.
func ValidateMulCompatible(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil[T Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// validateInsertPos checks a 1-based insert position against [1, limit+1].
func validateInsertPos(pos, limit int) error {
	if pos < 1 || pos > limit+1 {
		return validatorErrorf("validateInsertPos", ErrOutOfRange)
	}

	return nil
}

// validatePos checks a 1-based position against [1, limit].
func validatePos(pos, limit int) error {
	if pos < 1 || pos > limit {
		return validatorErrorf("validatePos", ErrOutOfRange)
	}

	return nil
}
