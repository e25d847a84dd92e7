// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities.
//   • Keep all data finite so comparisons stay exact or tolerance-bound.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
)

// approxTol is the absolute tolerance for float comparisons after elimination.
const approxTol = 1e-9

// MustNew ALLOCATES an r×c *Dense (optionally configured) or fails the test.
func MustNew(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(r, c, opts...)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustFlat BUILDS an r×c *Dense from column-major values or fails the test.
func MustFlat(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromFlat(r, c, vals)
	require.NoError(t, err, "FromFlat(%d,%d)", r, c)

	return m
}

// MustRows BUILDS a *Dense from row literals or fails the test.
// Prefer it for hand-written fixtures: the literal reads like the matrix.
func MustRows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows")

	return m
}

// RandDense RETURNS an r×c matrix with deterministic U(-1,1) entries.
// Implementation:
//   - Stage 1: rng := rand.New(rand.NewSource(seed)).
//   - Stage 2: write column-major values rng.Float64()*2-1.
//
// Determinism:
//   - Deterministic per seed.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustFlat(t, r, c, vals...)
}

// MustValue READS the 1-based (row, col) or fails the test.
func MustValue(t testing.TB, m *matrix.Dense, row, col int) float64 {
	t.Helper()
	v, err := m.Value(row, col)
	require.NoError(t, err, "Value(%d,%d)", row, col)

	return v
}

// RequireFlat asserts shape and exact column-major contents.
func RequireFlat(t testing.TB, m *matrix.Dense, r, c int, want ...float64) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, matrix.Shape{Rows: r, Cols: c}, m.Shape())
	require.Equal(t, want, m.ToFlat().Data)
}

// RequireClose asserts equal shapes and |a-b| ≤ approxTol element-wise,
// delegating the comparison to gonum through the zero-copy view.
func RequireClose(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Shape(), got.Shape())
	require.True(t, mat.EqualApprox(want.Gonum(), got.Gonum(), approxTol),
		"matrices differ:\nwant %v\ngot  %v", want, got)
}

// ToGonumDense COPIES m into a *mat.Dense reference operand.
func ToGonumDense(m *matrix.Dense) *mat.Dense {
	return mat.DenseCopyOf(m.Gonum())
}
