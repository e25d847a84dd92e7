// SPDX-License-Identifier: MIT

// Package matrix - bulk conversion to and from flat sequences.
// Persistence and transport are left to callers; these helpers only move
// values in and out of the column-major buffer with explicit dimensions.

package matrix

import "fmt"

// Flat is a self-describing column-major export: Data[(c-1)*Rows+(r-1)] holds (r, c).
type Flat struct {
	Rows int
	Cols int
	Data []float64
}

// ToFlat exports a copy of m's buffer with its dimensions.
// Complexity: O(r*c).
func (m *Dense) ToFlat() Flat {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return Flat{Rows: m.r, Cols: m.c, Data: data}
}

// FromFlatRecord rebuilds a matrix from a Flat export. See FromFlat for errors.
func FromFlatRecord(f Flat) (*Dense, error) {
	return FromFlat(f.Rows, f.Cols, f.Data)
}

// RowMajor returns m as a slice of rows (a fresh [][]float64).
// Complexity: O(r*c).
func (m *Dense) RowMajor() [][]float64 {
	out := make([][]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := make([]float64, m.c)
		for j = 0; j < m.c; j++ {
			row[j] = m.data[j*m.r+i]
		}
		out[i] = row
	}

	return out
}

// FromRows builds a matrix from row slices, the natural literal form:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//
// Errors:
//   - ErrInvalidShape for no rows or empty rows.
//   - ErrShapeMismatch for ragged input.
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	if err := ValidateShape(r, c); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}

	m := newDense(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), c, ErrShapeMismatch))
		}
		for j, v := range row {
			m.data[j*r+i] = v
		}
	}

	return m, nil
}
