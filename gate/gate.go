package gate

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for gate stream validation.
var (
	// ErrQubitRange indicates a gate references a qubit outside [0, n).
	ErrQubitRange = errors.New("gate: qubit index out of register range")
	// ErrBadAxis indicates an axis value outside the defined enum.
	ErrBadAxis = errors.New("gate: unknown axis")
)

// Axis identifies the single-qubit primitive of a gate.
type Axis int

const (
	// X is the Pauli-X bit flip; it carries no angle.
	X Axis = iota
	// RX is the rotation exp(+i·θ/2·σx).
	RX
	// RY is the rotation exp(+i·θ/2·σy).
	RY
	// RZ is the rotation exp(+i·θ/2·σz).
	RZ
	// R1 is the phase gate diag(1, e^{iθ}).
	R1
)

// String returns the conventional gate mnemonic.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case RX:
		return "Rx"
	case RY:
		return "Ry"
	case RZ:
		return "Rz"
	case R1:
		return "R1"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of the defined axes.
func (a Axis) Valid() bool { return a >= X && a <= R1 }

// HasAngle reports whether the axis is parameterised. X is the only
// angle-free primitive.
func (a Axis) HasAngle() bool { return a != X }

// Gate is a tagged variant with two cases, selected by Controlled:
//
//   - Controlled == false: a single-qubit gate Axis(Angle) on Qubit.
//   - Controlled == true: a fully-controlled gate whose inner single-qubit
//     operation Axis(Angle) acts on Qubit only when every other qubit of the
//     register is |1⟩. The control set is implicit: all non-target qubits.
//
// Angle is in radians and is not reduced modulo 2π; X gates keep Angle == 0.
type Gate struct {
	Axis       Axis
	Angle      float64
	Qubit      int
	Controlled bool
}

// Single constructs a single-qubit gate.
func Single(axis Axis, angle float64, qubit int) Gate {
	return Gate{Axis: axis, Angle: angle, Qubit: qubit}
}

// FullyControlled constructs a fully-controlled gate from its inner
// single-qubit operation.
func FullyControlled(axis Axis, angle float64, target int) Gate {
	return Gate{Axis: axis, Angle: angle, Qubit: target, Controlled: true}
}

// Equal reports field-wise equality with angles compared up to eps.
func (g Gate) Equal(o Gate, eps float64) bool {
	if g.Axis != o.Axis || g.Qubit != o.Qubit || g.Controlled != o.Controlled {
		return false
	}
	if !g.Axis.HasAngle() {
		return true
	}

	return math.Abs(g.Angle-o.Angle) <= eps*math.Max(1, math.Max(math.Abs(g.Angle), math.Abs(o.Angle)))
}

// String renders the gate for debugging, e.g. "Ry(1.5708) on qubit 0" or
// "Rz(0.7854) on qubit 1, fully controlled".
func (g Gate) String() string {
	var head string
	if g.Axis.HasAngle() {
		head = fmt.Sprintf("%s(%.4f) on qubit %d", g.Axis, g.Angle, g.Qubit)
	} else {
		head = fmt.Sprintf("%s on qubit %d", g.Axis, g.Qubit)
	}
	if g.Controlled {
		return head + ", fully controlled"
	}

	return head
}

// Circuit is an ordered gate stream bound to a register of Qubits qubits.
// Gates[0] is applied first.
type Circuit struct {
	Qubits int
	Gates  []Gate
}

// NewCircuit bundles a stream with its register size after validating that
// every gate targets a qubit inside [0, Qubits).
func NewCircuit(qubits int, gates []Gate) (*Circuit, error) {
	for _, g := range gates {
		if !g.Axis.Valid() {
			return nil, ErrBadAxis
		}
		if g.Qubit < 0 || g.Qubit >= qubits {
			return nil, fmt.Errorf("gate %v in register of %d: %w", g, qubits, ErrQubitRange)
		}
	}

	return &Circuit{Qubits: qubits, Gates: gates}, nil
}

// CountControlled returns the number of fully-controlled gates in the stream.
func (c *Circuit) CountControlled() int {
	n := 0
	for _, g := range c.Gates {
		if g.Controlled {
			n++
		}
	}

	return n
}
