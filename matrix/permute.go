// SPDX-License-Identifier: MIT

// Package matrix - in-place row/column permutation and reshape.
// All three mutate the receiver and require exclusive access to it.

package matrix

import "fmt"

const (
	opSwapRows    = "SwapRows"
	opSwapColumns = "SwapColumns"
	opReshape     = "Reshape"
)

// SwapRows exchanges rows r1 and r2 (1-based) in place.
// Equal indices are a no-op that leaves the buffer untouched.
//
// Errors:
//   - ErrIndexOutOfBounds when either index ∉ [1, rows].
//
// Complexity:
//   - Time O(cols), Space O(1).
func (m *Dense) SwapRows(r1, r2 int) error {
	if !validateAxis(r1, m.r) || !validateAxis(r2, m.r) {
		return matrixErrorf(opSwapRows, fmt.Errorf("rows %d, %d of %d: %w", r1, r2, m.r, ErrIndexOutOfBounds))
	}
	if r1 == r2 {
		return nil
	}
	m.swapRows(r1-1, r2-1)

	return nil
}

// swapRows exchanges 0-based rows i1 and i2, stepping one column stride at a time.
func (m *Dense) swapRows(i1, i2 int) {
	for limit := len(m.data); i1 < limit; i1, i2 = i1+m.r, i2+m.r {
		m.data[i1], m.data[i2] = m.data[i2], m.data[i1]
	}
}

// SwapColumns exchanges columns c1 and c2 (1-based) in place.
// Equal indices are a no-op.
//
// Errors:
//   - ErrIndexOutOfBounds when either index ∉ [1, cols].
//
// Complexity:
//   - Time O(rows), Space O(1).
func (m *Dense) SwapColumns(c1, c2 int) error {
	if !validateAxis(c1, m.c) || !validateAxis(c2, m.c) {
		return matrixErrorf(opSwapColumns, fmt.Errorf("cols %d, %d of %d: %w", c1, c2, m.c, ErrIndexOutOfBounds))
	}
	if c1 == c2 {
		return nil
	}
	a := m.data[(c1-1)*m.r : c1*m.r]
	b := m.data[(c2-1)*m.r : c2*m.r]
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}

	return nil
}

// Reshape relabels m as rows×cols over the unchanged column-major buffer.
// It is O(1): nothing is moved, transposed or reordered. Element k (flat,
// column-major) stays element k; only its (row, col) coordinates change.
//
// Errors:
//   - ErrInvalidShape when rows < 1 or cols < 1.
//   - ErrShapeMismatch when rows*cols != Len().
func (m *Dense) Reshape(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return matrixErrorf(opReshape, err)
	}
	if rows*cols != len(m.data) {
		return matrixErrorf(opReshape, fmt.Errorf("%s to %s: %w", m.Shape(), Shape{rows, cols}, ErrShapeMismatch))
	}
	m.r, m.c = rows, cols

	return nil
}
