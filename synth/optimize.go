package synth

import (
	"math"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
)

// Optimize applies the local peephole rewrites to a gate stream and returns
// a freshly allocated stream. Two rewrites run to fixed point:
//
//  1. X cancellation: a single-qubit X pairs with the next single-qubit X
//     on the same qubit and both are removed, provided every gate between
//     them targets other qubits and none is fully controlled (a fully
//     controlled gate either targets the qubit or holds it in its control
//     set, and blocks the pairing either way).
//  2. Identity drop: a rotation (Rx, Ry, Rz, R1) whose angle reduces to
//     within eps of zero in the canonical interval (−π, π] is removed.
//
// The pass is idempotent and preserves the stream's unitary within
// tolerance; both properties are covered by tests.
func Optimize(gates []gate.Gate, eps float64) []gate.Gate {
	out := dropIdentities(gates, eps)
	out = cancelFlips(out)

	return out
}

// dropIdentities removes rotations that reduce to the identity.
func dropIdentities(gates []gate.Gate, eps float64) []gate.Gate {
	out := make([]gate.Gate, 0, len(gates))
	for _, g := range gates {
		if g.Axis.HasAngle() && math.Abs(cmatrix.WrapAngle(g.Angle)) < eps {
			continue
		}
		out = append(out, g)
	}

	return out
}

// cancelFlips deletes adjacent X pairs in a single forward scan. pending
// maps a qubit to the index of its unpaired X; any fully controlled gate
// invalidates every pending X (its control set spans the register), and a
// single-qubit gate invalidates the pending X on its own qubit.
func cancelFlips(gates []gate.Gate) []gate.Gate {
	pending := make(map[int]int)
	dead := make([]bool, len(gates))

	for idx, g := range gates {
		if g.Controlled {
			clear(pending)

			continue
		}
		if g.Axis != gate.X {
			delete(pending, g.Qubit)

			continue
		}
		if prev, ok := pending[g.Qubit]; ok {
			dead[prev], dead[idx] = true, true
			delete(pending, g.Qubit)

			continue
		}
		pending[g.Qubit] = idx
	}

	out := make([]gate.Gate, 0, len(gates))
	for idx, g := range gates {
		if !dead[idx] {
			out = append(out, g)
		}
	}

	return out
}
