package gate

import (
	"math"
	"math/cmplx"

	"github.com/quantforge/qdecomp/cmatrix"
)

// Matrix2 returns the 2×2 unitary of the gate's single-qubit operation,
// ignoring controls.
//
// Rotation convention: R_σ(θ) = exp(+i·θ·σ/2). This is the mirror of the
// Q#/OpenQASM direction, which is why the textual emitters negate rotation
// angles; R1 is direction-free and emitted as is.
//
//	X  = [[0,1],[1,0]]
//	Rx = [[cos(θ/2), i·sin(θ/2)], [i·sin(θ/2), cos(θ/2)]]
//	Ry = [[cos(θ/2), sin(θ/2)],  [−sin(θ/2),  cos(θ/2)]]
//	Rz = diag(e^{iθ/2}, e^{−iθ/2})
//	R1 = diag(1, e^{iθ})
func (g Gate) Matrix2() *cmatrix.Dense {
	m, _ := cmatrix.New(2, 2)
	switch g.Axis {
	case X:
		m.Set(0, 1, 1)
		m.Set(1, 0, 1)
	case RX:
		c := complex(math.Cos(g.Angle/2), 0)
		s := complex(0, math.Sin(g.Angle/2))
		m.Set(0, 0, c)
		m.Set(0, 1, s)
		m.Set(1, 0, s)
		m.Set(1, 1, c)
	case RY:
		c := complex(math.Cos(g.Angle/2), 0)
		s := complex(math.Sin(g.Angle/2), 0)
		m.Set(0, 0, c)
		m.Set(0, 1, s)
		m.Set(1, 0, -s)
		m.Set(1, 1, c)
	case RZ:
		m.Set(0, 0, cmplx.Exp(complex(0, g.Angle/2)))
		m.Set(1, 1, cmplx.Exp(complex(0, -g.Angle/2)))
	case R1:
		m.Set(0, 0, 1)
		m.Set(1, 1, cmplx.Exp(complex(0, g.Angle)))
	}

	return m
}

// Matrix expands g to its full 2^n × 2^n unitary on a register of n qubits.
// Qubit 0 is the least significant bit of the basis-state index.
//
// For a single-qubit gate the expansion is the tensor embedding of the 2×2
// block at bit position g.Qubit. For a fully-controlled gate the full matrix
// is the identity except on the two basis states whose non-target bits are
// all ones, where the 2×2 block applies.
func Matrix(g Gate, n int) *cmatrix.Dense {
	d := 1 << n
	u := g.Matrix2()
	out := cmatrix.Identity(d)

	if g.Controlled && n > 1 {
		hi := d - 1               // all qubits |1⟩
		lo := hi - (1 << g.Qubit) // target |0⟩, controls |1⟩
		out.Set(lo, lo, u.At(0, 0))
		out.Set(lo, hi, u.At(0, 1))
		out.Set(hi, lo, u.At(1, 0))
		out.Set(hi, hi, u.At(1, 1))

		return out
	}

	bit := 1 << g.Qubit
	for i := 0; i < d; i++ {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		out.Set(i, i, u.At(0, 0))
		out.Set(i, j, u.At(0, 1))
		out.Set(j, i, u.At(1, 0))
		out.Set(j, j, u.At(1, 1))
	}

	return out
}

// StreamMatrix multiplies a gate stream back into a single 2^n × 2^n matrix,
// honouring application order (first gate applied first). The identity is
// returned for an empty stream.
func StreamMatrix(gates []Gate, n int) *cmatrix.Dense {
	d := 1 << n
	acc := cmatrix.Identity(d)
	for _, g := range gates {
		next, _ := cmatrix.Mul(Matrix(g, n), acc)
		acc = next
	}

	return acc
}
