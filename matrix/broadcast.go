// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One broadcasting kernel for every element-wise binary operator, parameterized
//     by the scalar function from a small operator table.
//   - Resolve operand shapes once, then run a single tight loop per case.
//
// Resolution order (Ra×Ca ⊕ Rb×Cb):
//  1. scalar ⊕ matrix, matrix ⊕ scalar → matrix shape.
//  2. equal shapes → same shape.
//  3. column vector (cols==1, rows equal to the other's rows), either side → other's shape.
//  4. row vector (rows==1, cols equal to the other's cols), either side → other's shape.
//  5. otherwise ErrNonConformantShapes reporting both shapes.
//
// Determinism & Performance:
//   - Fixed column-major loop order; one allocation for the result.
//   - Operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// Op identifies an element-wise binary operator.
type Op uint8

const (
	OpAdd Op = iota // x + y
	OpSub           // x - y
	OpMul           // x * y (element-wise, not the matrix product)
	OpDiv           // x / y
	OpMod           // math.Mod(x, y), sign of x
	OpPow           // math.Pow(x, y)
	opCount
)

// opEntry binds an operator to its name and scalar function.
type opEntry struct {
	name string
	fn   func(x, y float64) float64
}

// opTable is the operator registry; an Op is enabled iff it has an entry here.
var opTable = [opCount]opEntry{
	OpAdd: {"Add", func(x, y float64) float64 { return x + y }},
	OpSub: {"Sub", func(x, y float64) float64 { return x - y }},
	OpMul: {"Mul", func(x, y float64) float64 { return x * y }},
	OpDiv: {"Div", func(x, y float64) float64 { return x / y }},
	OpMod: {"Mod", math.Mod},
	OpPow: {"Pow", math.Pow},
}

// String returns the operator name ("Add", "Sub", ...).
func (op Op) String() string {
	if op < opCount {
		return opTable[op].name
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Apply evaluates the operator on two scalars.
// Unknown operators return NaN.
func (op Op) Apply(x, y float64) float64 {
	if op >= opCount {
		return math.NaN()
	}

	return opTable[op].fn(x, y)
}

// Ops lists the enabled operators in declaration order.
func Ops() []Op {
	out := make([]Op, 0, opCount)
	for op := Op(0); op < opCount; op++ {
		if opTable[op].fn != nil {
			out = append(out, op)
		}
	}

	return out
}

// Operand is either a Scalar or a *Dense.
// The interface is sealed; no other types implement it.
type Operand interface {
	isOperand()
}

// Scalar lifts a float64 into an Operand.
type Scalar float64

func (Scalar) isOperand() {}
func (*Dense) isOperand() {}

// Elementwise applies op across a and b with broadcasting.
// MAIN DESCRIPTION:
//   - At least one operand must be a matrix; the result is always a new *Dense.
//
// Implementation:
//   - Stage 1: classify operands (scalar or matrix), reject nil matrices.
//   - Stage 2: pick the broadcasting case from the shapes.
//   - Stage 3: run the case's loop into a freshly allocated result.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrUnsupportedOp (op outside the registry),
//     ErrNonConformantShapes (two scalars, or shapes outside the rules; *ShapeError for the latter).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Elementwise(op Op, a, b Operand) (*Dense, error) {
	tag := op.String()
	if op >= opCount || opTable[op].fn == nil {
		return nil, matrixErrorf(tag, ErrUnsupportedOp)
	}
	f := opTable[op].fn

	ma, sa, err := classify(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	mb, sb, err := classify(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	switch {
	case ma == nil && mb == nil:
		return nil, matrixErrorf(tag, fmt.Errorf("no matrix operand: %w", ErrNonConformantShapes))
	case ma == nil:
		return scalarLeft(f, sa, mb), nil
	case mb == nil:
		return scalarRight(f, ma, sb), nil
	}

	return broadcast(tag, f, ma, mb)
}

// classify splits an Operand into its matrix or scalar form.
func classify(x Operand) (*Dense, float64, error) {
	switch v := x.(type) {
	case Scalar:
		return nil, float64(v), nil
	case *Dense:
		if v == nil {
			return nil, 0, ErrNilMatrix
		}
		return v, 0, nil
	default:
		return nil, 0, ErrNilMatrix
	}
}

// scalarLeft computes out[k] = f(s, m[k]).
func scalarLeft(f func(x, y float64) float64, s float64, m *Dense) *Dense {
	out := newDense(m.r, m.c)
	for k, v := range m.data {
		out.data[k] = f(s, v)
	}

	return out
}

// scalarRight computes out[k] = f(m[k], s).
func scalarRight(f func(x, y float64) float64, m *Dense, s float64) *Dense {
	out := newDense(m.r, m.c)
	for k, v := range m.data {
		out.data[k] = f(v, s)
	}

	return out
}

// broadcast resolves cases 2–5 for two matrix operands.
func broadcast(tag string, f func(x, y float64) float64, a, b *Dense) (*Dense, error) {
	var i, j, base int

	switch {
	case a.r == b.r && a.c == b.c:
		// Same shape: single flat pass.
		out := newDense(a.r, a.c)
		for k := range out.data {
			out.data[k] = f(a.data[k], b.data[k])
		}
		return out, nil

	case b.c == 1 && b.r == a.r:
		// b is a column vector applied to every column of a.
		out := newDense(a.r, a.c)
		for j = 0; j < a.c; j++ {
			base = j * a.r
			for i = 0; i < a.r; i++ {
				out.data[base+i] = f(a.data[base+i], b.data[i])
			}
		}
		return out, nil

	case a.c == 1 && a.r == b.r:
		// a is a column vector applied to every column of b.
		out := newDense(b.r, b.c)
		for j = 0; j < b.c; j++ {
			base = j * b.r
			for i = 0; i < b.r; i++ {
				out.data[base+i] = f(a.data[i], b.data[base+i])
			}
		}
		return out, nil

	case b.r == 1 && b.c == a.c:
		// b is a row vector applied to every row of a.
		out := newDense(a.r, a.c)
		var p float64
		for j = 0; j < a.c; j++ {
			base = j * a.r
			p = b.data[j] // one value per column
			for i = 0; i < a.r; i++ {
				out.data[base+i] = f(a.data[base+i], p)
			}
		}
		return out, nil

	case a.r == 1 && a.c == b.c:
		// a is a row vector applied to every row of b.
		out := newDense(b.r, b.c)
		var p float64
		for j = 0; j < b.c; j++ {
			base = j * b.r
			p = a.data[j]
			for i = 0; i < b.r; i++ {
				out.data[base+i] = f(p, b.data[base+i])
			}
		}
		return out, nil
	}

	return nil, shapeErrorf(tag, a.Shape(), b.Shape())
}

// ---------- Facades (one per enabled operator) ----------

// Add returns a + b element-wise with broadcasting.
func Add(a, b Operand) (*Dense, error) { return Elementwise(OpAdd, a, b) }

// Sub returns a - b element-wise with broadcasting.
func Sub(a, b Operand) (*Dense, error) { return Elementwise(OpSub, a, b) }

// Mul returns a * b element-wise with broadcasting (Hadamard product for equal shapes).
// For the matrix product use Dot.
func Mul(a, b Operand) (*Dense, error) { return Elementwise(OpMul, a, b) }

// Div returns a / b element-wise with broadcasting. Division by zero follows IEEE-754.
func Div(a, b Operand) (*Dense, error) { return Elementwise(OpDiv, a, b) }

// Mod returns math.Mod(a, b) element-wise with broadcasting.
func Mod(a, b Operand) (*Dense, error) { return Elementwise(OpMod, a, b) }

// Pow returns math.Pow(a, b) element-wise with broadcasting.
func Pow(a, b Operand) (*Dense, error) { return Elementwise(OpPow, a, b) }

// Neg returns -m as a new matrix.
func Neg(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Neg", err)
	}
	out := newDense(m.r, m.c)
	for k, v := range m.data {
		out.data[k] = -v
	}

	return out, nil
}
