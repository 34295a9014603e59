package gate

import (
	"math"

	"github.com/quantforge/qdecomp/cmatrix"
)

// FromEuler lowers a ZYZ angle triple to a gate run on the given qubit, in
// application order: Rz(β), Ry(θ), Rz(α), then the global-phase gates.
// When controlled is true every emitted gate is fully controlled; inside a
// fully-controlled context the global phase acts on the controlled subspace
// only, so it is observable and always emitted.
//
// Zero-angle components are emitted anyway; the peephole optimiser owns
// identity removal.
func FromEuler(e cmatrix.Euler, qubit int, controlled bool) []Gate {
	mk := Single
	if controlled {
		mk = FullyControlled
	}

	out := []Gate{
		mk(RZ, e.Beta, qubit),
		mk(RY, e.Theta, qubit),
		mk(RZ, e.Alpha, qubit),
	}

	return append(out, PhaseGates(e.Phase, qubit, controlled)...)
}

// PhaseGates renders the scalar factor e^{iφ} as gates on one qubit:
//
//	e^{iφ}·I = Rz(2φ) · R1(2φ)
//
// Both factors are diagonal and commute. At φ = π the pair degenerates to
// angle 2π rotations that the zero-angle rewrite would wrongly delete, so
// −I uses the four-gate form R1(π)·X·R1(π)·X instead, whose X gates are
// fenced from cancellation by the interleaved phases.
func PhaseGates(phi float64, qubit int, controlled bool) []Gate {
	mk := Single
	if controlled {
		mk = FullyControlled
	}

	if math.Abs(phi) < 1e-12 {
		return nil
	}
	if math.Abs(phi-math.Pi) < 1e-12 || math.Abs(phi+math.Pi) < 1e-12 {
		return []Gate{
			mk(R1, math.Pi, qubit),
			mk(X, 0, qubit),
			mk(R1, math.Pi, qubit),
			mk(X, 0, qubit),
		}
	}

	return []Gate{
		mk(RZ, 2*phi, qubit),
		mk(R1, 2*phi, qubit),
	}
}
