// SPDX-License-Identifier: MIT

// Package matrix - slice engine: block reads and write-through assignments.
//
// Reads materialize an independent copy; writes mutate the receiver in place
// and validate everything before the first store.
// Walk order for both is column-major: destination columns colLo..colHi,
// and within each column the contiguous rows rowLo..rowHi.

package matrix

import "fmt"

const (
	opSelect = "Select"
	opSlice  = "Slice"
	opFill   = "Fill"
	opAssign = "Assign"
)

// Selection is the result of Select: a single element in ScalarAccess mode,
// otherwise a freshly allocated block.
type Selection struct {
	Mode   AccessMode
	Scalar float64 // valid when Mode == ScalarAccess
	Block  *Dense  // valid when Mode == BlockAccess
}

// Select reads the elements addressed by (row, col).
// MAIN DESCRIPTION:
//   - ScalarAccess (both axes pinned): return the element at the resolved offset.
//   - BlockAccess: allocate (rowHi-rowLo+1)×(colHi-colLo+1) and copy the sub-rectangle.
//
// Errors:
//   - ErrIndexOutOfBounds (as *BoundsError) from Resolve.
//
// Complexity:
//   - Time O(h*w) for blocks, O(1) for scalars.
func (m *Dense) Select(row, col IndexArg) (Selection, error) {
	b, err := Resolve(m, row, col)
	if err != nil {
		return Selection{}, matrixErrorf(opSelect, err)
	}
	if b.Mode == ScalarAccess {
		return Selection{Mode: ScalarAccess, Scalar: m.data[m.offset(b.RowLo, b.ColLo)]}, nil
	}

	return Selection{Mode: BlockAccess, Block: m.readBlock(b)}, nil
}

// Slice is Select that always returns a matrix; a scalar access yields a 1×1 block.
//
//	rows23, _ := m.Slice(matrix.Span(2, 3), matrix.All()) // 2×cols
func (m *Dense) Slice(row, col IndexArg) (*Dense, error) {
	b, err := Resolve(m, row, col)
	if err != nil {
		return nil, matrixErrorf(opSlice, err)
	}

	return m.readBlock(b), nil
}

// readBlock copies the validated sub-rectangle b into a new matrix.
func (m *Dense) readBlock(b Bounds) *Dense {
	s := b.Shape()
	dst := newDense(s.Rows, s.Cols)

	var j, src, k int
	for j = b.ColLo - 1; j < b.ColHi; j++ {
		src = j*m.r + b.RowLo - 1
		copy(dst.data[k:k+s.Rows], m.data[src:src+s.Rows])
		k += s.Rows
	}

	return dst
}

// Fill writes v into every cell addressed by (row, col).
// Requires exclusive access to m. On error m is untouched.
//
// Errors:
//   - ErrIndexOutOfBounds (as *BoundsError).
func (m *Dense) Fill(row, col IndexArg, v float64) error {
	b, err := Resolve(m, row, col)
	if err != nil {
		return matrixErrorf(opFill, err)
	}

	var i, j, base int
	for j = b.ColLo - 1; j < b.ColHi; j++ {
		base = j * m.r
		for i = b.RowLo - 1; i < b.RowHi; i++ {
			m.data[base+i] = v
		}
	}

	return nil
}

// Assign copies src cell-for-cell into the block addressed by (row, col).
// MAIN DESCRIPTION:
//   - Conformant write-through: src.Shape() must equal the block shape exactly.
//
// Implementation:
//   - Stage 1: validate src non-nil, resolve bounds, compare shapes.
//   - Stage 2: walk columns and copy contiguous row runs from src.
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfBounds, ErrShapeMismatch. On error m is untouched.
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (m *Dense) Assign(row, col IndexArg, src *Dense) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opAssign, err)
	}
	b, err := Resolve(m, row, col)
	if err != nil {
		return matrixErrorf(opAssign, err)
	}
	want := b.Shape()
	if src.Shape() != want {
		return matrixErrorf(opAssign, fmt.Errorf("source %s, block %s: %w", src.Shape(), want, ErrShapeMismatch))
	}

	var j, dst, k int
	for j = b.ColLo - 1; j < b.ColHi; j++ {
		dst = j*m.r + b.RowLo - 1
		copy(m.data[dst:dst+want.Rows], src.data[k:k+want.Rows])
		k += want.Rows
	}

	return nil
}
