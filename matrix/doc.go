// Package matrix implements a dense, column-major float64 matrix.
//
// The matrix package provides:
//
//   - Dense, a rectangular matrix over a single flat column-major buffer,
//     with constructors New, Identity, Random and FromFlat.
//   - 1-based flat access (Get/Set) and per-axis index expressions
//     (All, At, Span) for point reads, block copies, Fill and Assign.
//   - Broadcasting element-wise arithmetic (Add, Sub, Mul, Div, Mod, Pow, Neg)
//     between matrices, scalars, row vectors and column vectors.
//   - Transpose, Dot and the fused TDot (Aᵀ·B without forming Aᵀ).
//   - In-place SwapRows, SwapColumns and the O(1) Reshape relabel.
//   - LUP: LU factorization with partial pivoting, with Det, Solve and Inverse.
//   - Zero-copy interop with gonum.org/v1/gonum/mat.
//
// Reshape never moves data: a 2×3 matrix reshaped to 3×2 keeps its buffer and
// only reinterprets it. It is not a transpose.
//
// Errors are package sentinels (ErrInvalidShape, ErrShapeMismatch,
// ErrIndexOutOfBounds, ErrNonConformantShapes, ErrNotSquare, ErrDegenerate)
// matched with errors.Is. ErrDegenerate is an ordinary result for singular
// input.
//
// A *Dense is not safe for concurrent mutation; see Guarded.
package matrix
