// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Gonum indexes 0-based and (for *mat.Dense) stores row-major; Dense indexes
// 1-based and stores column-major. The adapter below hides both differences
// so a *Dense can feed gonum routines (Det, SVD, Solve, ...) without a copy,
// and FromGonum copies any gonum matrix back.

package matrix

import "gonum.org/v1/gonum/mat"

// GonumView is a read-only, zero-copy mat.Matrix over a *Dense.
// It shares storage: later mutations of the Dense are visible through the view.
type GonumView struct {
	m *Dense
}

var _ mat.Matrix = GonumView{}

// Gonum returns m as a gonum mat.Matrix.
func (m *Dense) Gonum() GonumView { return GonumView{m: m} }

// Dims implements mat.Matrix.
func (v GonumView) Dims() (r, c int) { return v.m.r, v.m.c }

// At implements mat.Matrix with 0-based indices.
// Panics with mat.ErrRowAccess / mat.ErrColAccess on out-of-range access,
// following gonum's own contract.
func (v GonumView) At(i, j int) float64 {
	if i < 0 || i >= v.m.r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= v.m.c {
		panic(mat.ErrColAccess)
	}

	return v.m.data[j*v.m.r+i]
}

// T implements mat.Matrix with gonum's implicit transpose.
func (v GonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// FromGonum copies any gonum matrix into a new Dense.
// MAIN DESCRIPTION:
//   - *mat.Dense reads its raw row-major storage; GonumView clones the source;
//     other implementations go through At.
//
// Errors:
//   - ErrNilMatrix for a nil input; ErrInvalidShape for an empty matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	switch src := a.(type) {
	case GonumView:
		if src.m == nil {
			return nil, matrixErrorf("FromGonum", ErrNilMatrix)
		}
		return src.m.Clone(), nil
	case *mat.Dense:
		if src == nil || src.IsEmpty() {
			return nil, matrixErrorf("FromGonum", ErrInvalidShape)
		}
		raw := src.RawMatrix()
		m := newDense(raw.Rows, raw.Cols)
		var i, j int
		for i = 0; i < raw.Rows; i++ {
			for j = 0; j < raw.Cols; j++ {
				m.data[j*raw.Rows+i] = raw.Data[i*raw.Stride+j]
			}
		}
		return m, nil
	}

	r, c := a.Dims()
	if err := ValidateShape(r, c); err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	m := newDense(r, c)
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			m.data[j*r+i] = a.At(i, j)
		}
	}

	return m, nil
}
