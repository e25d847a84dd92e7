// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed diagnostics.
// This file defines ONLY package-level error values used across the matrix
// package. Every fallible operation returns one of these sentinels (possibly
// wrapped) and tests MUST check them via errors.Is / errors.As. No operation
// panics on caller-supplied input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add the operation tag through
// matrixErrorf ("Dot: matrix: non-conformant shapes ..."), so callers always
// match with errors.Is against the sentinels below.

var (
	// ErrInvalidShape is returned when rows or cols is < 1 at construction or reshape.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch signals that a source length or shape disagrees with the
	// declared or required shape (FromFlat, Assign, Reshape element count).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfBounds indicates that a flat, point or block index resolves
	// outside [1, dimension].
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonConformantShapes indicates that operand shapes satisfy none of the
	// broadcasting or product rules.
	ErrNonConformantShapes = errors.New("matrix: non-conformant shapes")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: square matrix required")

	// ErrDegenerate is returned by LUP when no pivot above tolerance exists.
	// It is an expected outcome for singular input, not a programming error.
	ErrDegenerate = errors.New("matrix: degenerate matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupportedOp marks an element-wise operator absent from the registry.
	ErrUnsupportedOp = errors.New("matrix: unsupported operator")
)

// BoundsError reports the resolved 1-based bounds of a rejected index.
// It matches ErrIndexOutOfBounds under errors.Is.
type BoundsError struct {
	RowLo, RowHi int // resolved row interval
	ColLo, ColHi int // resolved column interval
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s {%d..%d, %d..%d}", ErrIndexOutOfBounds, e.RowLo, e.RowHi, e.ColLo, e.ColHi)
}

// Is reports whether target is ErrIndexOutOfBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrIndexOutOfBounds }

// ShapeError reports the two operand shapes of a non-conformant operation.
// It matches ErrNonConformantShapes under errors.Is.
type ShapeError struct {
	A, B Shape
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s %s, %s", ErrNonConformantShapes, e.A, e.B)
}

// Is reports whether target is ErrNonConformantShapes.
func (e *ShapeError) Is(target error) bool { return target == ErrNonConformantShapes }

// IsDegenerate reports whether err carries ErrDegenerate.
// Convenience for callers that branch on singular input without importing errors.
func IsDegenerate(err error) bool { return errors.Is(err, ErrDegenerate) }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with a Dense method tag and a single index argument.
func denseErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, idx, err)
}

// shapeErrorf builds a tagged *ShapeError for operands a and b.
func shapeErrorf(tag string, a, b Shape) error {
	return matrixErrorf(tag, &ShapeError{A: a, B: b})
}
