// Package lvmat is a small dense linear-algebra toolkit built around a
// column-major float64 matrix.
//
// 🚀 What is in lvmat?
//
//	One package, matrix, that brings together:
//		• Storage: a flat column-major buffer with 1-based accessors
//		• Indexing: All / At / Span per axis, for point reads, block copies and writes
//		• Broadcasting: Add, Sub, Mul, Div, Mod, Pow over scalars, vectors and matrices
//		• Products: Transpose, Dot and the fused TDot (Aᵀ·B)
//		• Permutations: SwapRows, SwapColumns and an O(1) Reshape
//		• Factorization: LUP with Det, Solve and Inverse
//		• Interop: zero-copy views for gonum.org/v1/gonum/mat
//
// ✨ Why lvmat?
//
//   - Explicit layout – element (r, c) lives at (c-1)*rows + (r-1), always
//   - Errors, not panics – every operation on a non-nil matrix validates first and returns a sentinel;
//     only methods called on a nil *Dense (or a zero GonumView) panic
//   - Deterministic – fixed loop orders, seeded randomness only
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, 3}, {6, 3}})
//	f, _ := matrix.LUP(a)
//	fmt.Println(f.Det()) // -6
//
// See the matrix package documentation for the full API.
package lvmat
