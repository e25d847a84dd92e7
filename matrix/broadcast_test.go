// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmat/matrix"
)

// BroadcastSuite groups the broadcasting rules around a shared 2×3 fixture:
//
//	A = | 1 2 3 |
//	    | 4 5 6 |
type BroadcastSuite struct {
	suite.Suite
	A   *matrix.Dense
	Col *matrix.Dense // 2×1: [10; 20]
	Row *matrix.Dense // 1×3: [100 200 300]
}

func (s *BroadcastSuite) SetupTest() {
	s.A = MustRows(s.T(), []float64{1, 2, 3}, []float64{4, 5, 6})
	s.Col = MustFlat(s.T(), 2, 1, 10, 20)
	s.Row = MustFlat(s.T(), 1, 3, 100, 200, 300)
}

func (s *BroadcastSuite) TestScalarBothSides() {
	got, err := matrix.Add(s.A, matrix.Scalar(1))
	require.NoError(s.T(), err)
	RequireFlat(s.T(), got, 2, 3, 2, 5, 3, 6, 4, 7)

	got, err = matrix.Sub(matrix.Scalar(10), s.A)
	require.NoError(s.T(), err)
	RequireFlat(s.T(), got, 2, 3, 9, 6, 8, 5, 7, 4)
}

func (s *BroadcastSuite) TestEqualShapes() {
	got, err := matrix.Mul(s.A, s.A)
	require.NoError(s.T(), err)
	RequireFlat(s.T(), got, 2, 3, 1, 16, 4, 25, 9, 36)
}

func (s *BroadcastSuite) TestColumnVector() {
	got, err := matrix.Add(s.A, s.Col)
	require.NoError(s.T(), err)
	RequireFlat(s.T(), got, 2, 3, 11, 24, 12, 25, 13, 26)

	// Left side: col - A.
	got, err = matrix.Sub(s.Col, s.A)
	require.NoError(s.T(), err)
	RequireFlat(s.T(), got, 2, 3, 9, 16, 8, 15, 7, 14)
}

func (s *BroadcastSuite) TestRowVector() {
	got, err := matrix.Add(s.A, s.Row)
	require.NoError(s.T(), err)
	RequireFlat(s.T(), got, 2, 3, 101, 104, 202, 205, 303, 306)

	got, err = matrix.Div(s.Row, s.A)
	require.NoError(s.T(), err)
	RequireFlat(s.T(), got, 2, 3, 100, 25, 100, 40, 100, 50)
}

func (s *BroadcastSuite) TestSymmetricOps() {
	for _, other := range []matrix.Operand{s.A, s.Col, s.Row, matrix.Scalar(3)} {
		for _, op := range []matrix.Op{matrix.OpAdd, matrix.OpMul} {
			ab, err := matrix.Elementwise(op, s.A, other)
			require.NoError(s.T(), err)
			ba, err := matrix.Elementwise(op, other, s.A)
			require.NoError(s.T(), err)
			require.True(s.T(), ab.Equal(ba), "%s must commute", op)
		}
	}
}

func (s *BroadcastSuite) TestScalarMinusMatrixIsNegated() {
	left, err := matrix.Sub(matrix.Scalar(2.5), s.A)
	require.NoError(s.T(), err)
	right, err := matrix.Sub(s.A, matrix.Scalar(2.5))
	require.NoError(s.T(), err)
	neg, err := matrix.Neg(right)
	require.NoError(s.T(), err)
	require.True(s.T(), left.Equal(neg))
}

func (s *BroadcastSuite) TestOperandsUntouched() {
	before := s.A.Clone()
	_, err := matrix.Pow(s.A, matrix.Scalar(2))
	require.NoError(s.T(), err)
	require.True(s.T(), s.A.Equal(before))
}

func (s *BroadcastSuite) TestNonConformant() {
	tall := MustNew(s.T(), 3, 1)
	_, err := matrix.Add(s.A, tall)
	require.ErrorIs(s.T(), err, matrix.ErrNonConformantShapes)

	var se *matrix.ShapeError
	require.ErrorAs(s.T(), err, &se)
	require.Equal(s.T(), matrix.Shape{Rows: 2, Cols: 3}, se.A)
	require.Equal(s.T(), matrix.Shape{Rows: 3, Cols: 1}, se.B)

	_, err = matrix.Mul(s.A, MustNew(s.T(), 3, 2))
	require.ErrorIs(s.T(), err, matrix.ErrNonConformantShapes)

	_, err = matrix.Add(matrix.Scalar(1), matrix.Scalar(2))
	require.ErrorIs(s.T(), err, matrix.ErrNonConformantShapes)
}

func (s *BroadcastSuite) TestNilAndUnsupported() {
	var nilDense *matrix.Dense
	_, err := matrix.Add(s.A, nilDense)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
	_, err = matrix.Add(nil, s.A)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
	_, err = matrix.Neg(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)

	_, err = matrix.Elementwise(matrix.Op(200), s.A, s.A)
	require.ErrorIs(s.T(), err, matrix.ErrUnsupportedOp)
}

func TestBroadcastSuite(t *testing.T) {
	suite.Run(t, new(BroadcastSuite))
}

func TestOps_Registry(t *testing.T) {
	t.Parallel()

	ops := matrix.Ops()
	require.Equal(t, []matrix.Op{matrix.OpAdd, matrix.OpSub, matrix.OpMul, matrix.OpDiv, matrix.OpMod, matrix.OpPow}, ops)
	require.Equal(t, "Mod", matrix.OpMod.String())
	require.Equal(t, "Op(99)", matrix.Op(99).String())

	require.Equal(t, 1.0, matrix.OpMod.Apply(7, 3))
	require.Equal(t, -1.0, matrix.OpMod.Apply(-7, 3), "Mod keeps the dividend's sign")
	require.Equal(t, 8.0, matrix.OpPow.Apply(2, 3))
	require.True(t, math.IsNaN(matrix.Op(99).Apply(1, 1)))
}

func TestDiv_IEEE(t *testing.T) {
	t.Parallel()

	got, err := matrix.Div(MustFlat(t, 1, 3, 1, -1, 0), matrix.Scalar(0))
	require.NoError(t, err)
	d := got.ToFlat().Data
	require.True(t, math.IsInf(d[0], 1))
	require.True(t, math.IsInf(d[1], -1))
	require.True(t, math.IsNaN(d[2]))
}

// Mod and Pow run through the same broadcasting cases as the arithmetic operators.
func TestModPow_BroadcastCases(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{7, -7, 9}, []float64{2, 3, 4}) // column-major: 7 2 -7 3 9 4
	tests := []struct {
		name string
		fn   func(a, b matrix.Operand) (*matrix.Dense, error)
		x, y matrix.Operand
		want []float64
	}{
		{"mod equal shape", matrix.Mod, a, MustRows(t, []float64{3, 3, 5}, []float64{2, 2, 3}), []float64{1, 0, -1, 1, 4, 1}},
		{"mod column vector", matrix.Mod, a, MustFlat(t, 2, 1, 4, 3), []float64{3, 2, -3, 0, 1, 1}},
		{"mod row vector", matrix.Mod, a, MustFlat(t, 1, 3, 5, 4, 2), []float64{2, 2, -3, 3, 1, 0}},
		{"mod row vector left", matrix.Mod, MustFlat(t, 1, 3, 10, 10, 10), a, []float64{3, 0, 3, 1, 1, 2}},
		{"pow equal shape", matrix.Pow, a, MustRows(t, []float64{2, 1, 0}, []float64{3, 2, 1}), []float64{49, 8, -7, 9, 1, 4}},
		{"pow column vector", matrix.Pow, a, MustFlat(t, 2, 1, 2, 0), []float64{49, 1, 49, 1, 81, 1}},
		{"pow row vector", matrix.Pow, a, MustFlat(t, 1, 3, 1, 2, 0), []float64{7, 2, 49, 9, 1, 1}},
		{"pow column vector left", matrix.Pow, MustFlat(t, 2, 1, 2, 3), MustRows(t, []float64{1, 2}, []float64{0, 2}), []float64{2, 1, 4, 9}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(tc.x, tc.y)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.ToFlat().Data)
		})
	}
}
