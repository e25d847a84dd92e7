// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors (tagged by validator) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows ≥ 1, cols ≥ 1 and that rows*cols fits in an int.
// Every constructor and Reshape goes through it, so len(data) == rows*cols
// can never be satisfied by a wrapped product.
//
// Returns ErrInvalidShape otherwise.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 || cols > math.MaxInt/rows {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidShape)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNotSquare.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%s)", m.Shape()), ErrNotSquare)
	}

	return nil
}

// ValidateProduct checks a.Cols == b.Rows for Dot.
// Assumes a and b are non-nil.
func ValidateProduct(a, b *Dense) error {
	if a.c != b.r {
		return &ShapeError{A: a.Shape(), B: b.Shape()}
	}

	return nil
}

// ValidateTProduct checks a.Rows == b.Rows for TDot.
// Assumes a and b are non-nil.
func ValidateTProduct(a, b *Dense) error {
	if a.r != b.r {
		return &ShapeError{A: a.Shape(), B: b.Shape()}
	}

	return nil
}

// validateAxis checks 1 ≤ i ≤ n for a single 1-based axis index.
func validateAxis(i, n int) bool { return i >= 1 && i <= n }
