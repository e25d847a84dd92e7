// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// 1) TestDefaultOptions_Documented verifies the zero-config snapshot equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultFill, o.Fill)
	require.Equal(t, matrix.DefaultSeed, o.Seed)
	require.Equal(t, matrix.DefaultTolerance, o.Eps)
}

// 2) TestGatherOptions_LastWriterWins ensures each Option touches only its field and nil entries are skipped.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithFill(1), nil, matrix.WithFill(2), matrix.WithSeed(9))
	require.Equal(t, 2.0, o.Fill)
	require.Equal(t, int64(9), o.Seed)
	require.Equal(t, matrix.DefaultTolerance, o.Eps)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithSeed(0), matrix.WithTolerance(0))
	require.Equal(t, matrix.DefaultSeed, o.Seed, "seed 0 falls back to the default")
	require.Equal(t, 0.0, o.Eps)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithFill(math.Inf(-1)))
	require.True(t, math.IsInf(o.Fill, -1))
}

// 3) TestWithFill_AcceptsAnyValue verifies NaN and ±Inf are ordinary fill values.
func TestWithFill_AcceptsAnyValue(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var m *matrix.Dense
		require.NotPanics(t, func() { m = MustNew(t, 2, 2, matrix.WithFill(v)) }, "fill=%v", v)
		for _, got := range m.ToFlat().Data {
			if math.IsNaN(v) {
				require.True(t, math.IsNaN(got))
				continue
			}
			require.Equal(t, v, got)
		}
	}
}

// 4) TestOptions_PanicOnInvalid verifies constructor-time panics with stable messages.
func TestOptions_PanicOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		eps := eps
		require.PanicsWithValue(t, matrix.PanicToleranceInvalid_TestOnly, func() { matrix.WithTolerance(eps) }, "eps=%v", eps)
	}
}
