package gate_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
)

// TestMatrix2_Conventions pins the rotation direction exp(+iθσ/2): at
// θ = π/2 the Rz phases must carry a positive sign on |0⟩.
func TestMatrix2_Conventions(t *testing.T) {
	rz := gate.Single(gate.RZ, math.Pi/2, 0).Matrix2()
	assert.InDelta(t, math.Pi/4, cmplx.Phase(rz.At(0, 0)), 1e-12)
	assert.InDelta(t, -math.Pi/4, cmplx.Phase(rz.At(1, 1)), 1e-12)

	ry := gate.Single(gate.RY, math.Pi, 0).Matrix2()
	assert.InDelta(t, 1, real(ry.At(0, 1)), 1e-12, "Ry(π) upper-right is +1")
	assert.InDelta(t, -1, real(ry.At(1, 0)), 1e-12)

	r1 := gate.Single(gate.R1, math.Pi/2, 0).Matrix2()
	assert.Equal(t, complex128(1), r1.At(0, 0))
	assert.InDelta(t, math.Pi/2, cmplx.Phase(r1.At(1, 1)), 1e-12)
}

// TestMatrix_SingleMatchesKron verifies the tensor embedding of a
// single-qubit gate against an explicit Kronecker product on 2 qubits:
// a gate on qubit 0 is I⊗u, on qubit 1 u⊗I (qubit 0 is the LSB).
func TestMatrix_SingleMatchesKron(t *testing.T) {
	u := gate.Single(gate.RY, 0.77, 0).Matrix2()
	id := cmatrix.Identity(2)

	on0 := gate.Matrix(gate.Single(gate.RY, 0.77, 0), 2)
	assert.True(t, cmatrix.AllClose(on0, cmatrix.Kron(id, u), 1e-12))

	on1 := gate.Matrix(gate.Single(gate.RY, 0.77, 1), 2)
	assert.True(t, cmatrix.AllClose(on1, cmatrix.Kron(u, id), 1e-12))
}

// TestMatrix_FullyControlledTwoLevel verifies the controlled expansion is
// identity outside the all-ones control subspace.
func TestMatrix_FullyControlledTwoLevel(t *testing.T) {
	g := gate.FullyControlled(gate.RY, 1.2, 0)
	m := gate.Matrix(g, 2)
	u := g.Matrix2()

	want := cmatrix.Identity(4)
	want.Set(2, 2, u.At(0, 0))
	want.Set(2, 3, u.At(0, 1))
	want.Set(3, 2, u.At(1, 0))
	want.Set(3, 3, u.At(1, 1))

	assert.True(t, cmatrix.AllClose(m, want, 1e-12))
}

// TestMatrix_CNOTTruthTable expands a fully-controlled X on 2 qubits and
// checks the permutation it implements.
func TestMatrix_CNOTTruthTable(t *testing.T) {
	cnot := gate.Matrix(gate.FullyControlled(gate.X, 0, 0), 2)

	// |10⟩ ↔ |11⟩ swap, |00⟩ and |01⟩ fixed.
	assert.Equal(t, complex128(1), cnot.At(0, 0))
	assert.Equal(t, complex128(1), cnot.At(1, 1))
	assert.Equal(t, complex128(1), cnot.At(2, 3))
	assert.Equal(t, complex128(1), cnot.At(3, 2))
}

// TestStreamMatrix_Order verifies that the first stream element is applied
// first: [X₀, Z-phase] must equal the product R1·X.
func TestStreamMatrix_Order(t *testing.T) {
	stream := []gate.Gate{
		gate.Single(gate.X, 0, 0),
		gate.Single(gate.R1, math.Pi/3, 0),
	}
	got := gate.StreamMatrix(stream, 1)

	x := gate.Single(gate.X, 0, 0).Matrix2()
	r1 := gate.Single(gate.R1, math.Pi/3, 0).Matrix2()
	want, err := cmatrix.Mul(r1, x)
	require.NoError(t, err)

	assert.True(t, cmatrix.AllClose(got, want, 1e-12))
}

// TestPhaseGates_Reconstruction verifies e^{iφ}·I reconstruction for both
// the generic pair and the φ = π special form, controlled and not.
func TestPhaseGates_Reconstruction(t *testing.T) {
	for _, phi := range []float64{0.3, -1.2, math.Pi / 2, math.Pi, -math.Pi} {
		gates := gate.PhaseGates(phi, 0, false)
		got := gate.StreamMatrix(gates, 1)
		want := cmatrix.Scale(cmplx.Exp(complex(0, phi)), cmatrix.Identity(2))
		assert.True(t, cmatrix.AllClose(got, want, 1e-12), "phi=%v", phi)
	}

	// Controlled: phase applies only on the all-ones control subspace.
	gates := gate.PhaseGates(math.Pi, 1, true)
	got := gate.StreamMatrix(gates, 2)
	want := cmatrix.Identity(4)
	want.Set(1, 1, -1)
	want.Set(3, 3, -1)
	assert.True(t, cmatrix.AllClose(got, want, 1e-12))
}

// TestPhaseGates_ZeroIsEmpty confirms no gates are emitted for a
// negligible phase.
func TestPhaseGates_ZeroIsEmpty(t *testing.T) {
	assert.Empty(t, gate.PhaseGates(0, 0, false))
}

// TestFromEuler_RebuildsUnitary runs extraction plus lowering end to end
// on a fixed unitary and multiplies the stream back.
func TestFromEuler_RebuildsUnitary(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	m, _ := cmatrix.NewFromRows([][]complex128{{h, h}, {h, -h}})

	e, err := cmatrix.ZYZ(m, cmatrix.DefaultEpsilon)
	require.NoError(t, err)

	got := gate.StreamMatrix(gate.FromEuler(e, 0, false), 1)
	assert.True(t, cmatrix.AllClose(got, m, 1e-12))
}
