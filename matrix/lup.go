// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial pivoting (P·M = L·U).
//
// Purpose:
//   - Factor a square matrix by Gaussian elimination with row pivoting over a
//     working copy, tracking the permutation and the number of row swaps.
//   - Report singular input as ErrDegenerate: an expected, recoverable outcome
//     that callers test with errors.Is(err, ErrDegenerate) or IsDegenerate.
//
// Determinism:
//   - Fixed i→j→k loop order; ties in the pivot search keep the lowest row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the factors plus O(n) for the permutation.

package matrix

import (
	"fmt"
	"math"
)

const (
	opLUP     = "LUP"
	opSolve   = "LUP.Solve"
	opInverse = "LUP.Inverse"
)

// LUPResult holds the factors of P·M = L·U.
type LUPResult struct {
	L     *Dense // unit lower-triangular
	U     *Dense // upper-triangular
	P     *Dense // permutation matrix, P[i][Perm[i]] = 1
	Perm  []int  // 0-based: row i of P·M is row Perm[i] of M
	Swaps int    // number of row exchanges; its parity is the sign of det(M)
}

// LUP factors the square matrix m with partial pivoting.
// MAIN DESCRIPTION:
//   - Doolittle elimination over a working copy U of m with p = [0..n-1].
//
// Implementation:
//   - Stage 1: validate m square; copy it into U; resolve tolerance (WithTolerance).
//   - Stage 2: for each pivot column i:
//     a. find the row of maximal |U[k][i]|, k ≥ i; below tolerance ⇒ ErrDegenerate;
//     b. if that row ≠ i, swap p[i]↔p[max] and rows i,max of U; count the swap;
//     c. for each row j > i store U[j][i]/U[i][i] in U[j][i] and subtract
//     multiplier·U[i][k] from U[j][k] for k > i.
//   - Stage 3: split U into L (unit diagonal, stored multipliers) and U (zeros below);
//     build P from p.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrDegenerate (no factors returned).
//
// Notes:
//   - A pivot column whose maximum is exactly zero is degenerate even with tolerance 0.
func LUP(m *Dense, opts ...Option) (*LUPResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	o := gatherOptions(opts...)

	n := m.r
	size := n * n
	u := m.Clone()
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	var (
		i, j, k, maxi, col, swaps int
		maxabs, absk, mult        float64
	)
	for i = 0; i < n; i++ {
		col = i * n
		// a. pivot search in column i, rows i..n-1.
		maxi = i
		maxabs = math.Abs(u.data[col+i])
		for k = i + 1; k < n; k++ {
			absk = math.Abs(u.data[col+k])
			if absk > maxabs {
				maxabs = absk
				maxi = k
			}
		}
		if maxabs < o.eps || maxabs == 0 {
			return nil, matrixErrorf(opLUP, fmt.Errorf("pivot column %d max %g < %g: %w", i+1, maxabs, o.eps, ErrDegenerate))
		}

		// b. row exchange.
		if maxi != i {
			p[i], p[maxi] = p[maxi], p[i]
			u.swapRows(i, maxi)
			swaps++
		}

		// c. eliminate below the pivot; multipliers stay in column i.
		for j = i + 1; j < n; j++ {
			u.data[col+j] /= u.data[col+i]
			mult = u.data[col+j]
			for k = col + n; k < size; k += n {
				u.data[k+j] -= mult * u.data[k+i]
			}
		}
	}

	lower := newDense(n, n)
	for i = 0; i < n; i++ {
		col = i * n
		lower.data[col+i] = 1
		for j = i + 1; j < n; j++ {
			lower.data[col+j] = u.data[col+j]
			u.data[col+j] = 0
		}
	}

	perm := newDense(n, n)
	for i = 0; i < n; i++ {
		perm.data[p[i]*n+i] = 1
	}

	return &LUPResult{L: lower, U: u, P: perm, Perm: p, Swaps: swaps}, nil
}

// LUP factors m. See LUP.
func (m *Dense) LUP(opts ...Option) (*LUPResult, error) { return LUP(m, opts...) }

// Det returns det(M) = (-1)^Swaps · ∏ diag(U).
// Complexity: O(n).
func (f *LUPResult) Det() float64 {
	n := f.U.r
	det := 1.0
	if f.Swaps%2 == 1 {
		det = -1.0
	}
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det
}

// Solve returns X with M·X = B for every column of b.
// Implementation:
//   - Stage 1: validate b (non-nil, b.Rows == n).
//   - Stage 2: per column: y = P·b, forward-substitute L·z = y (unit diagonal),
//     back-substitute U·x = z.
//
// Errors:
//   - ErrNilMatrix, ErrNonConformantShapes (*ShapeError).
//
// Complexity:
//   - Time O(n^2·k) for k right-hand sides, Space O(n·k).
func (f *LUPResult) Solve(b *Dense) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.U.r
	if b.r != n {
		return nil, shapeErrorf(opSolve, f.U.Shape(), b.Shape())
	}

	x := newDense(n, b.c)
	var (
		i, k, col int
		sum       float64
	)
	for col = 0; col < b.c; col++ {
		xs := x.data[col*n : (col+1)*n]
		bs := b.data[col*n : (col+1)*n]
		// Permute and forward-substitute: L has ones on the diagonal.
		for i = 0; i < n; i++ {
			sum = bs[f.Perm[i]]
			for k = 0; k < i; k++ {
				sum -= f.L.data[k*n+i] * xs[k]
			}
			xs[i] = sum
		}
		// Back-substitute against U.
		for i = n - 1; i >= 0; i-- {
			sum = xs[i]
			for k = i + 1; k < n; k++ {
				sum -= f.U.data[k*n+i] * xs[k]
			}
			xs[i] = sum / f.U.data[i*n+i]
		}
	}

	return x, nil
}

// Inverse returns M⁻¹ by solving against the identity.
// Complexity: O(n^3).
func (f *LUPResult) Inverse() (*Dense, error) {
	id, err := Identity(f.U.r)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Solve(id)
}
