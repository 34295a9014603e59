package emit

import (
	"fmt"
	"strings"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
	"github.com/quantforge/qdecomp/synth"
)

// QSharp synthesises U and renders the gate stream as a Q# operation over
// a qubit register `qs`. The operation name defaults to DefaultOpName.
func QSharp(u *cmatrix.Dense, opts ...Option) (string, error) {
	o := gatherOptions(opts...)
	gates, err := synth.Decompose(u, o.synth...)
	if err != nil {
		return "", err
	}
	c, err := gate.NewCircuit(cmatrix.Log2(u.Rows()), gates)
	if err != nil {
		return "", err
	}

	return RenderQSharp(c, o.opName), nil
}

// RenderQSharp renders an existing circuit as Q# text: one operation block,
// two-space indented statements, one statement per gate.
//
// Rotation angles are negated for Rx/Ry/Rz (the Q# rotation direction is
// the mirror of the internal one); R1 angles pass through unchanged. A
// fully-controlled X with a single control renders as CNOT.
func RenderQSharp(c *gate.Circuit, opName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "operation %s (qs : Qubit[]) : Unit {\n", opName)

	lines := make([]string, 0, len(c.Gates))
	for _, g := range c.Gates {
		lines = append(lines, "  "+qsharpStatement(g, c.Qubits))
	}
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n}\n")

	return sb.String()
}

// qsharpStatement renders one gate as a Q# statement.
func qsharpStatement(g gate.Gate, n int) string {
	if !g.Controlled || n == 1 {
		switch g.Axis {
		case gate.X:
			return fmt.Sprintf("X(qs[%d]);", g.Qubit)
		case gate.R1:
			return fmt.Sprintf("R1(%.15f, qs[%d]);", g.Angle, g.Qubit)
		default:
			return fmt.Sprintf("%s(%.15f, qs[%d]);", g.Axis, -g.Angle, g.Qubit)
		}
	}

	controls := controlList(g.Qubit, n)
	if g.Axis == gate.X {
		if n == 2 {
			return fmt.Sprintf("CNOT(qs[%d],qs[%d]);", 1-g.Qubit, g.Qubit)
		}

		return fmt.Sprintf("Controlled X(%s, (qs[%d]));", controls, g.Qubit)
	}
	if g.Axis == gate.R1 {
		return fmt.Sprintf("Controlled R1(%s, (%.15f, qs[%d]));", controls, g.Angle, g.Qubit)
	}

	return fmt.Sprintf("Controlled %s(%s, (%.15f, qs[%d]));", g.Axis, controls, -g.Angle, g.Qubit)
}

// controlList renders the implicit control set of a fully-controlled gate:
// every qubit except the target, in increasing order.
func controlList(target, n int) string {
	parts := make([]string, 0, n-1)
	for q := 0; q < n; q++ {
		if q != target {
			parts = append(parts, fmt.Sprintf("qs[%d]", q))
		}
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
