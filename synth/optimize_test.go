package synth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
	"github.com/quantforge/qdecomp/synth"
)

// TestOptimize_CancelsAdjacentX verifies the basic X-pair deletion.
func TestOptimize_CancelsAdjacentX(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.X, 0, 0),
	}
	assert.Empty(t, synth.Optimize(stream, 1e-9))
}

// TestOptimize_CancelsAcrossOtherQubits verifies gates on other qubits are
// transparent for pairing.
func TestOptimize_CancelsAcrossOtherQubits(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.RY, 0.5, 1),
		gate.Single(gate.X, 0, 0),
	}
	out := synth.Optimize(stream, 1e-9)
	require.Len(t, out, 1)
	assert.Equal(t, gate.RY, out[0].Axis)
}

// TestOptimize_RotationOnSameQubitBlocks verifies a rotation on the same
// qubit fences the pair.
func TestOptimize_RotationOnSameQubitBlocks(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.RZ, 0.5, 0),
		gate.Single(gate.X, 0, 0),
	}
	assert.Len(t, synth.Optimize(stream, 1e-9), 3)
}

// TestOptimize_FullyControlledBlocks verifies any fully-controlled gate
// fences X pairing, since its control set spans the register.
func TestOptimize_FullyControlledBlocks(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 1),
		gate.FullyControlled(gate.RY, 0.5, 0),
		gate.Single(gate.X, 0, 1),
	}
	assert.Len(t, synth.Optimize(stream, 1e-9), 3)
}

// TestOptimize_NestedPairs verifies interleaved pairs on distinct qubits
// all cancel in one pass.
func TestOptimize_NestedPairs(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.X, 0, 1),
		gate.Single(gate.X, 0, 1),
		gate.Single(gate.X, 0, 0),
	}
	assert.Empty(t, synth.Optimize(stream, 1e-9))
}

// TestOptimize_DropsZeroRotations verifies the identity-drop rewrite,
// including angles that only reduce to zero modulo 2π.
func TestOptimize_DropsZeroRotations(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.RZ, 0, 0),
		gate.Single(gate.RY, 1e-12, 0),
		gate.Single(gate.R1, 2*math.Pi, 0),
		gate.Single(gate.RY, 0.5, 0),
	}
	out := synth.Optimize(stream, 1e-9)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.5, out[0].Angle, 0)
}

// TestOptimize_DropEnablesCancellation verifies the rewrites compose: a
// zero rotation between two X gates must not fence them.
func TestOptimize_DropEnablesCancellation(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.RZ, 0, 0),
		gate.Single(gate.X, 0, 0),
	}
	assert.Empty(t, synth.Optimize(stream, 1e-9))
}

// TestOptimize_Idempotent applies the pass twice and compares streams.
func TestOptimize_Idempotent(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.RY, 0.7, 1),
		gate.FullyControlled(gate.X, 0, 1),
		gate.Single(gate.RZ, 2*math.Pi, 1),
	}
	once := synth.Optimize(stream, 1e-9)
	twice := synth.Optimize(once, 1e-9)

	require.Len(t, twice, len(once))
	for k := range once {
		assert.True(t, once[k].Equal(twice[k], 1e-12), "gate %d", k)
	}
}

// TestOptimize_PreservesUnitary multiplies a stream back before and after
// optimisation; the circuit's matrix must not move beyond tolerance.
func TestOptimize_PreservesUnitary(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.RY, 0.3, 1),
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.RZ, 0, 1),
		gate.FullyControlled(gate.RY, 0.9, 0),
		gate.Single(gate.X, 0, 1),
		gate.Single(gate.X, 0, 1),
	}
	before := gate.StreamMatrix(stream, 2)
	after := gate.StreamMatrix(synth.Optimize(stream, 1e-9), 2)

	diff, err := cmatrix.Sub(before, after)
	require.NoError(t, err)
	assert.Less(t, cmatrix.FrobeniusNorm(diff), 1e-9)
}
