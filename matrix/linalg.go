// SPDX-License-Identifier: MIT
// Package matrix provides transpose, matrix product and the fused
// transpose-product over column-major Dense matrices. All functions perform
// fail-fast validation and return fresh results; operands are never mutated.

package matrix

// ZeroSum is the initial accumulator value for products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opDot       = "Dot"
	opTDot      = "TDot"
)

// Transpose returns mᵀ with shape (cols, rows).
// Source (r,c) lands at destination (c,r).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate cols×rows.
//   - Stage 2: read the source sequentially (column-major) and scatter with stride cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDense(m.c, m.r)

	var i, j, src, dst int
	for j = 0; j < m.c; j++ {
		dst = j // row j of the result, column 0
		for i = 0; i < m.r; i++ {
			res.data[dst] = m.data[src]
			src++
			dst += m.c
		}
	}

	return res, nil
}

// Dot performs the matrix product C = A × B.
// MAIN DESCRIPTION:
//   - Requires A.Cols == B.Rows; result shape (A.Rows, B.Cols).
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimensions.
//   - Stage 2: for each result column j, accumulate A[:,k]*B[k,j] over k, so
//     both A's columns and C's column are walked contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrNonConformantShapes (*ShapeError).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c). Zero B[k,j] entries are skipped.
func Dot(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	if err := ValidateProduct(a, b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	if err := ValidateShape(a.r, b.c); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	res := newDense(rows, cols)

	var (
		i, j, k          int
		colC, colB, colA int
		bv               float64
	)
	for j = 0; j < cols; j++ {
		colC = j * rows
		colB = j * inner
		for k = 0; k < inner; k++ {
			bv = b.data[colB+k]
			if bv == 0 {
				continue // skip zero for performance
			}
			colA = k * rows
			for i = 0; i < rows; i++ {
				res.data[colC+i] += a.data[colA+i] * bv
			}
		}
	}

	return res, nil
}

// TDot computes Aᵀ × B without materializing Aᵀ.
// Requires A.Rows == B.Rows; result shape (A.Cols, B.Cols).
// Each result cell is the dot product of column i of A with column j of B,
// both contiguous in the column-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrNonConformantShapes (*ShapeError).
//
// Complexity:
//   - Time O(a.c*b.c*a.r), Space O(a.c*b.c).
func TDot(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTDot, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTDot, err)
	}
	if err := ValidateTProduct(a, b); err != nil {
		return nil, matrixErrorf(opTDot, err)
	}
	if err := ValidateShape(a.c, b.c); err != nil {
		return nil, matrixErrorf(opTDot, err)
	}

	n, rows, cols := a.r, a.c, b.c
	res := newDense(rows, cols)

	var (
		i, j, k    int
		colA, colB int
		sum        float64
	)
	for j = 0; j < cols; j++ {
		colB = j * n
		for i = 0; i < rows; i++ {
			colA = i * n
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += a.data[colA+k] * b.data[colB+k]
			}
			res.data[j*rows+i] = sum
		}
	}

	return res, nil
}

// T returns the transpose of m. See Transpose.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }

// Dot returns m × other. See Dot.
func (m *Dense) Dot(other *Dense) (*Dense, error) { return Dot(m, other) }

// TDot returns mᵀ × other. See TDot.
func (m *Dense) TDot(other *Dense) (*Dense, error) { return TDot(m, other) }
