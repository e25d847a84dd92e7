// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical constructors.
//   - Avoid any logic duplication: each facade delegates to the implementation.

package matrix

// NewZeros returns a rows×cols zero matrix. Thin alias of New without options.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) { return New(rows, cols) }

// NewFilled returns a rows×cols matrix with every cell set to v.
// Equivalent to New(rows, cols, WithFill(v)).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	return New(rows, cols, WithFill(v))
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense(m.r, m.c), nil
}

// IdentityLike returns I_n for a square m.
// Errors: ErrNilMatrix, ErrNotSquare.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}

// Det returns det(m) via LUP; a degenerate matrix has determinant 0.
// Errors: ErrNilMatrix, ErrNotSquare.
func Det(m *Dense, opts ...Option) (float64, error) {
	f, err := LUP(m, opts...)
	if err != nil {
		if IsDegenerate(err) {
			return 0, nil
		}
		return 0, err
	}

	return f.Det(), nil
}

// Solve returns X with m·X = b via LUP.
// Errors: ErrNilMatrix, ErrNotSquare, ErrDegenerate, ErrNonConformantShapes.
func Solve(m, b *Dense, opts ...Option) (*Dense, error) {
	f, err := LUP(m, opts...)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}

// Inverse returns m⁻¹ via LUP.
// Errors: ErrNilMatrix, ErrNotSquare, ErrDegenerate.
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	f, err := LUP(m, opts...)
	if err != nil {
		return nil, err
	}

	return f.Inverse()
}
