// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for private state.
//
// Purpose:
//   - Expose the raw buffer and option snapshot to matrix_test ONLY.
//   - Compiled only with `go test` (file name ends in _test.go).

// RawData_TestOnly returns the live backing slice of m (no copy).
// Tests use it to assert aliasing: Reshape keeps the buffer, ToFlat copies it.
func RawData_TestOnly(m *Dense) []float64 { return m.data }

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Fill float64
	Seed int64
	Eps  float64
}

// GatherOptionsSnapshot_TestOnly resolves opts like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Fill: o.fill, Seed: o.seed, Eps: o.eps}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicToleranceInvalid_TestOnly = panicToleranceInvalid
)
