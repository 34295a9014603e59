package kak

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
)

// Sentinel errors for the optimal two-qubit path.
var (
	// ErrNotTwoQubit indicates the input is not 4×4; the optimal path is
	// defined for two-qubit registers only.
	ErrNotTwoQubit = errors.New("kak: optimal synthesis requires a 4x4 unitary")

	// ErrEigenFailed indicates the Magic-basis diagonalisation did not
	// converge to a real orthonormal eigenbasis. For unitary input this is
	// an internal invariant failure, not a user condition.
	ErrEigenFailed = errors.New("kak: magic basis diagonalisation failed")
)

// Decompose4x4 synthesises a 4×4 unitary into a gate stream with at most
// three controlled-X gates, in application order.
//
// Pipeline: normalise det(U) to 1 tracking the pulled-out global phase;
// move to the magic basis M = B*·U·B; split M = O₁·D·Pᵀ with O₁, P real
// orthogonal and D = diag(e^{iθ_k}) from the spectrum of Mᵀ·M; read the
// outer factors back as tensor products A₁⊗A₂ = B·O₁·B*, A₃⊗A₄ = B·Pᵀ·B*;
// emit ZYZ chains for A₃, A₄, the fixed three-CNOT interaction template for
// D, ZYZ chains for A₁, A₂, and the global phase.
func Decompose4x4(u *cmatrix.Dense, eps float64) ([]gate.Gate, error) {
	if u == nil || u.Rows() != 4 || u.Cols() != 4 {
		return nil, ErrNotTwoQubit
	}
	if !cmatrix.IsUnitary(u, eps) {
		return nil, cmatrix.ErrNonUnitary
	}

	// An identity up to phase needs no template at all.
	if phase, ok := phaseOfIdentity(u, eps); ok {
		return gate.PhaseGates(phase, 0, false), nil
	}

	// Normalise to det = 1, keeping the principal fourth root as phase.
	det := determinant4(u)
	globalPhase := cmplx.Phase(det) / 4
	un := cmatrix.Scale(cmplx.Exp(complex(0, -globalPhase)), u)

	b := magicBasis()
	bh := cmatrix.ConjTranspose(b)

	m, _ := cmatrix.Mul(bh, un)
	m, _ = cmatrix.Mul(m, b)

	// Gram matrix Mᵀ·M is symmetric unitary; its real orthogonal eigenbasis
	// drives the whole split.
	g, _ := cmatrix.Mul(cmatrix.Transpose(m), m)
	p, theta, err := orthogonalEigen(g, eps)
	if err != nil {
		return nil, err
	}

	// det(D) must be +1 so that O₁ = M·P·D⁻¹ lands in SO(4). The half-phase
	// sum is defined modulo π; shift one θ by π when the branch lands on the
	// odd representative.
	sum := 0.0
	for _, t := range theta {
		sum += t
	}
	if math.Abs(cmatrix.WrapAngle(sum)) > math.Pi/2 {
		theta[0] += math.Pi
	}

	pc := realToComplex(p)
	dinv, _ := cmatrix.New(4, 4)
	for k := 0; k < 4; k++ {
		dinv.Set(k, k, cmplx.Exp(complex(0, -theta[k])))
	}
	o1, _ := cmatrix.Mul(m, pc)
	o1, _ = cmatrix.Mul(o1, dinv)
	if !isReal(o1, 1e-6) {
		return nil, ErrEigenFailed
	}

	// Outer tensor factors.
	left, _ := cmatrix.Mul(b, o1)
	left, _ = cmatrix.Mul(left, bh)
	right, _ := cmatrix.Mul(b, cmatrix.Transpose(pc))
	right, _ = cmatrix.Mul(right, bh)

	a1, a2, err := splitKron(left, eps)
	if err != nil {
		return nil, err
	}
	a3, a4, err := splitKron(right, eps)
	if err != nil {
		return nil, err
	}

	// Interaction coefficients from the magic spectrum: the Bell states
	// carry (XX, YY, ZZ) signs (+,−,+), (−,+,+), (+,+,−), (−,−,−).
	a := (theta[0] + theta[2]) / 2
	bb := (theta[1] + theta[2]) / 2
	c := (theta[0] + theta[1]) / 2

	var out []gate.Gate
	for _, part := range []struct {
		m     *cmatrix.Dense
		qubit int
	}{{a4, 0}, {a3, 1}} {
		run, err := singleQubitGates(part.m, part.qubit, eps)
		if err != nil {
			return nil, err
		}
		out = append(out, run...)
	}
	out = append(out, interactionGates(a, bb, c)...)
	for _, part := range []struct {
		m     *cmatrix.Dense
		qubit int
	}{{a2, 0}, {a1, 1}} {
		run, err := singleQubitGates(part.m, part.qubit, eps)
		if err != nil {
			return nil, err
		}
		out = append(out, run...)
	}
	out = append(out, gate.PhaseGates(cmatrix.WrapAngle(globalPhase), 0, false)...)

	return out, nil
}

// interactionGates emits the canonical interaction
//
//	N(a,b,c) = exp(i·(a·XX + b·YY + c·ZZ))
//
// as a fixed template with exactly three controlled-X gates. Writing
// C = CNOT(control 1, target 0), C′ = CNOT(control 0, target 1) and, in
// the standard exp(−iθσ/2) convention, V = Ry(π/2) on qubit 1 and
// S = R1(π/2) on qubit 0, the operator identity is
//
//	N = C · Rz(−2c)₀ · V† · Rz(2a)₁ · C′ · Rz(−2b)₁ · H₁ · R1(−π/2)₁ · S · C · S†
//
// derived by conjugating N with C (mapping XX→X₁, YY→−X₁Z₀, ZZ→Z₀),
// lowering the resulting multiplexed rotation through one CNOT, and folding
// the trailing C′·V·C into H₁·C·CZ with the CZ absorbed as phase gates
// around the last CNOT. H contributes a global π/2 phase via its
// H = e^{iπ/2}·Ry(π/2)·Rz(π) rotation form. The gates below carry the
// angles negated once more to land in this package's exp(+iθσ/2)
// convention.
func interactionGates(a, b, c float64) []gate.Gate {
	out := []gate.Gate{
		gate.Single(gate.R1, -math.Pi/2, 0), // S†
		gate.FullyControlled(gate.X, 0, 0),  // C
		gate.Single(gate.R1, math.Pi/2, 0),  // S
		gate.Single(gate.R1, -math.Pi/2, 1),
		gate.Single(gate.RZ, -math.Pi, 1), // H = e^{iπ/2}·Ry(−π/2)·Rz(−π)
		gate.Single(gate.RY, -math.Pi/2, 1),
		gate.Single(gate.RZ, 2*b, 1),
		gate.FullyControlled(gate.X, 0, 1), // C′
		gate.Single(gate.RZ, -2*a, 1),
		gate.Single(gate.RY, math.Pi/2, 1), // V†
		gate.Single(gate.RZ, 2*c, 0),
		gate.FullyControlled(gate.X, 0, 0), // C
	}

	return append(out, gate.PhaseGates(math.Pi/2, 0, false)...)
}

// singleQubitGates lowers a 2×2 unitary to a ZYZ chain on one qubit,
// global phase included. The unitarity tolerance is relaxed one order over
// eps to absorb error accumulated through the eigen stage.
func singleQubitGates(m *cmatrix.Dense, qubit int, eps float64) ([]gate.Gate, error) {
	e, err := cmatrix.ZYZ(m, math.Max(eps, 1e-8))
	if err != nil {
		return nil, err
	}

	return gate.FromEuler(e, qubit, false), nil
}

// splitKron factors a 4×4 tensor product L = A⊗B into its 2×2 parts. The
// block with the largest Frobenius mass fixes B up to scale; the remaining
// coefficients form A. The split is exact for true tensor products, which
// the magic-basis construction guarantees up to numerical error.
func splitKron(l *cmatrix.Dense, eps float64) (*cmatrix.Dense, *cmatrix.Dense, error) {
	bestI, bestJ, bestMass := 0, 0, -1.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			mass := 0.0
			for k := 0; k < 2; k++ {
				for n := 0; n < 2; n++ {
					mass += sqAbs(l.At(2*i+k, 2*j+n))
				}
			}
			if mass > bestMass {
				bestI, bestJ, bestMass = i, j, mass
			}
		}
	}

	bm, _ := cmatrix.New(2, 2)
	scale := complex(math.Sqrt(bestMass/2), 0)
	for k := 0; k < 2; k++ {
		for n := 0; n < 2; n++ {
			bm.Set(k, n, l.At(2*bestI+k, 2*bestJ+n)/scale)
		}
	}

	am, _ := cmatrix.New(2, 2)
	bh := cmatrix.ConjTranspose(bm)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var tr complex128
			for k := 0; k < 2; k++ {
				for n := 0; n < 2; n++ {
					tr += l.At(2*i+k, 2*j+n) * bh.At(n, k)
				}
			}
			am.Set(i, j, tr/2)
		}
	}

	if !cmatrix.AllClose(cmatrix.Kron(am, bm), l, math.Max(eps, 1e-7)) {
		return nil, nil, ErrEigenFailed
	}

	return am, bm, nil
}

// phaseOfIdentity reports whether u equals e^{iφ}·I and returns φ.
func phaseOfIdentity(u *cmatrix.Dense, eps float64) (float64, bool) {
	phase := cmplx.Phase(u.At(0, 0))
	scaled := cmatrix.Scale(cmplx.Exp(complex(0, -phase)), u)
	if cmatrix.AllClose(scaled, cmatrix.Identity(4), eps) {
		return phase, true
	}

	return 0, false
}

// determinant4 computes the determinant by cofactor expansion; fine at
// fixed size 4.
func determinant4(m *cmatrix.Dense) complex128 {
	minor := func(skipR, skipC int) *cmatrix.Dense {
		out, _ := cmatrix.New(3, 3)
		ri := 0
		for r := 0; r < 4; r++ {
			if r == skipR {
				continue
			}
			ci := 0
			for c := 0; c < 4; c++ {
				if c == skipC {
					continue
				}
				out.Set(ri, ci, m.At(r, c))
				ci++
			}
			ri++
		}

		return out
	}
	det3 := func(a *cmatrix.Dense) complex128 {
		return a.At(0, 0)*(a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1)) -
			a.At(0, 1)*(a.At(1, 0)*a.At(2, 2)-a.At(1, 2)*a.At(2, 0)) +
			a.At(0, 2)*(a.At(1, 0)*a.At(2, 1)-a.At(1, 1)*a.At(2, 0))
	}

	var det complex128
	sign := complex128(1)
	for c := 0; c < 4; c++ {
		det += sign * m.At(0, c) * det3(minor(0, c))
		sign = -sign
	}

	return det
}

// isReal reports whether every entry's imaginary part is below tol.
func isReal(m *cmatrix.Dense, tol float64) bool {
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if math.Abs(imag(m.At(r, c))) > tol {
				return false
			}
		}
	}

	return true
}

func sqAbs(v complex128) float64 {
	return real(v)*real(v) + imag(v)*imag(v)
}
