// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a flat column-major buffer with the explicit index formula
//     (c-1)*rows + (r-1) for 1-based (r, c).
//   - Guarantee safety at the public surface: on a non-nil *Dense, accessors
//     return errors instead of panicking. Methods on a nil receiver panic.
//   - Keep algorithmic determinism (fixed loop orders, seeded randomness only).
//
// Concurrency:
//   - A *Dense is a plain value with no internal locking. Set, Fill, Assign,
//     SwapRows, SwapColumns and Reshape mutate the receiver and require
//     exclusive access; wrap the matrix in a Guarded when it is shared.
//
// Complexity quicksheet:
//   - New/Identity/Random/FromFlat: O(r*c); Get/Set/Value: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxGet   = "Get"
	ctxSet   = "Set"
	ctxValue = "Value"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "[ "
	_fmtClose = "]"
	_fmtSep   = ", "
	_fmtLast  = " "
	_fmtElide = "..."
)

// Shape is a (rows, cols) pair used in diagnostics and comparisons.
type Shape struct {
	Rows, Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Dense is a rectangular column-major matrix of float64 values.
//   - r,c hold dimensions (both ≥ 1).
//   - data is a flat buffer of length r*c; element (i,j), 1-based, lives at (j-1)*r + (i-1).
//
// A row vector is a Dense with r==1 and a column vector one with c==1;
// broadcasting relies on that distinction.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous column-major storage (len == r*c)
}

// Compile-time assertions for interface conformance.
var (
	_ fmt.Stringer = (*Dense)(nil)
	_ Operand      = (*Dense)(nil)
)

// newDense allocates a zeroed r×c matrix without validation.
// Callers must have checked r ≥ 1 and c ≥ 1.
func newDense(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// New creates a rows×cols matrix with every cell set to the fill value.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows ≥ 1 && cols ≥ 1; else ErrInvalidShape.
//   - Stage 2: resolve options (WithFill, default 0).
//   - Stage 3: allocate and fill the buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	m := newDense(rows, cols)
	if o.fill != 0 {
		for i := range m.data {
			m.data[i] = o.fill
		}
	}

	return m, nil
}

// Identity returns I_side: ones at offsets 0, side+1, 2*(side+1), … and zeros elsewhere.
// Complexity: O(side^2) zeroing + O(side) diagonal writes.
func Identity(side int) (*Dense, error) {
	if err := ValidateShape(side, side); err != nil {
		return nil, err
	}
	m := newDense(side, side)
	for i := 0; i < len(m.data); i += side + 1 {
		m.data[i] = 1
	}

	return m, nil
}

// Random returns a rows×cols matrix of uniform variates in [0, 1).
// Each cell is factor*Int31() with factor = 1/(MaxInt31+1), drawn in
// column-major order from a generator seeded by WithSeed (default DefaultSeed).
//
// Determinism:
//   - Same (rows, cols, seed) ⇒ identical buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	rng := rand.New(rand.NewSource(o.seed))
	factor := 1.0 / (float64(math.MaxInt32) + 1.0)
	m := newDense(rows, cols)
	for i := range m.data {
		m.data[i] = factor * float64(rng.Int31())
	}

	return m, nil
}

// FromFlat builds a rows×cols matrix from column-major values.
// The slice is copied; the caller keeps ownership of values.
//
// Errors:
//   - ErrInvalidShape if rows < 1 or cols < 1.
//   - ErrShapeMismatch if len(values) != rows*cols.
func FromFlat(rows, cols int, values []float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("FromFlat: %d values for %s: %w", len(values), Shape{rows, cols}, ErrShapeMismatch)
	}
	m := newDense(rows, cols)
	copy(m.data, values)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Len returns the total element count, rows*cols by invariant.
func (m *Dense) Len() int { return len(m.data) }

// IsRowVector reports whether m has exactly one row.
func (m *Dense) IsRowVector() bool { return m.r == 1 }

// IsColVector reports whether m has exactly one column.
func (m *Dense) IsColVector() bool { return m.c == 1 }

// offset returns the flat position of 1-based (row, col). No bounds check.
func (m *Dense) offset(row, col int) int { return (col-1)*m.r + (row - 1) }

// Get returns the element at 1-based flat index idx in column-major order.
//
// Errors:
//   - ErrIndexOutOfBounds when idx ∉ [1, rows*cols].
func (m *Dense) Get(idx int) (float64, error) {
	if idx < 1 || idx > len(m.data) {
		return 0, denseErrorf(ctxGet, idx, ErrIndexOutOfBounds)
	}

	return m.data[idx-1], nil
}

// Set stores v at 1-based flat index idx.
// Requires exclusive access to m.
//
// Errors:
//   - ErrIndexOutOfBounds when idx ∉ [1, rows*cols]; m is left untouched.
func (m *Dense) Set(idx int, v float64) error {
	if idx < 1 || idx > len(m.data) {
		return denseErrorf(ctxSet, idx, ErrIndexOutOfBounds)
	}
	m.data[idx-1] = v

	return nil
}

// Value returns the element at 1-based (row, col).
func (m *Dense) Value(row, col int) (float64, error) {
	if row < 1 || row > m.r || col < 1 || col > m.c {
		return 0, matrixErrorf("Dense."+ctxValue, &BoundsError{RowLo: row, RowHi: row, ColLo: col, ColHi: col})
	}

	return m.data[m.offset(row, col)], nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have the same shape and numerically equal
// values under ==: +0 equals -0 and NaN never equals NaN. A nil other is never equal.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// String renders up to MaxStringElems elements in column-major order, then "...".
// Integral values print without a fraction: a 2×2 of fives is "[ 5, 5, 5, 5 ]".
// Diagnostics only; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	limit := len(m.data)
	if limit > MaxStringElems {
		limit = MaxStringElems + 1
	}

	b.WriteString(_fmtOpen)
	for i := 0; i < limit; i++ {
		if i == MaxStringElems {
			b.WriteString(_fmtElide)
		} else {
			b.WriteString(formatElem(m.data[i]))
		}
		if i >= limit-1 {
			b.WriteString(_fmtLast)
		} else {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// maxIntegralPrint bounds the magnitude printed in plain integer form.
const maxIntegralPrint = 1e15

// formatElem prints integral values below maxIntegralPrint as integers and the rest with %g.
func formatElem(v float64) string {
	if math.Abs(v) < maxIntegralPrint && v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
