package synth

import (
	"errors"
	"math/bits"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
	"github.com/quantforge/qdecomp/twolevel"
)

// ErrNotGrayAdjacent reports a two-level factor whose index pair differs in
// more than one bit; fully-controlled synthesis requires Gray adjacency.
var ErrNotGrayAdjacent = errors.New("synth: two-level indices differ in more than one bit")

// fcGates lowers one Gray-adjacent two-level factor to gates on n qubits.
//
// Let t be the bit position where the indices differ; t is the target
// qubit, every other qubit is a control. X gates are emitted on every
// control qubit whose bit in the shared pattern is 0, so the controls read
// the pattern as the all-ones state the fully-controlled primitive
// requires; the same X gates restore the register afterwards.
//
// The inner 2×2 block becomes either a single controlled X (when the block
// is the Pauli flip, the case every basis-swap factor reduces to) or a
// controlled ZYZ chain with its global phase, which is observable under
// controls and therefore always emitted.
//
// On a single-qubit register there are no controls and the inner gates are
// emitted as plain single-qubit gates.
func fcGates(t twolevel.TwoLevel, n int, eps float64) ([]gate.Gate, error) {
	diff := t.I ^ t.J
	if bits.OnesCount(uint(diff)) != 1 {
		return nil, ErrNotGrayAdjacent
	}
	target := cmatrix.Log2(diff)

	inner, err := innerGates(t.M, target, n > 1, eps)
	if err != nil {
		return nil, err
	}
	if len(inner) == 0 {
		return nil, nil // identity block, nothing to emit
	}
	if n == 1 {
		return inner, nil
	}

	var flips []gate.Gate
	for k := 0; k < n; k++ {
		if k == target {
			continue
		}
		if t.I&(1<<k) == 0 {
			flips = append(flips, gate.Single(gate.X, 0, k))
		}
	}

	out := make([]gate.Gate, 0, 2*len(flips)+len(inner))
	out = append(out, flips...)
	out = append(out, inner...)
	for k := len(flips) - 1; k >= 0; k-- {
		out = append(out, flips[k])
	}

	return out, nil
}

// innerGates renders a 2×2 block as (controlled) gates on the target qubit.
func innerGates(m *cmatrix.Dense, target int, controlled bool, eps float64) ([]gate.Gate, error) {
	if cmatrix.AllClose(m, cmatrix.Identity(2), eps) {
		return nil, nil
	}

	pauliX, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	if cmatrix.AllClose(m, pauliX, eps) {
		if controlled {
			return []gate.Gate{gate.FullyControlled(gate.X, 0, target)}, nil
		}

		return []gate.Gate{gate.Single(gate.X, 0, target)}, nil
	}

	e, err := cmatrix.ZYZ(m, eps)
	if err != nil {
		return nil, err
	}

	return gate.FromEuler(e, target, controlled), nil
}
