package emit

import (
	"fmt"
	"strings"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
	"github.com/quantforge/qdecomp/synth"
)

// QASM synthesises U and renders the gate stream as OpenQASM 2.0 text.
func QASM(u *cmatrix.Dense, opts ...Option) (string, error) {
	o := gatherOptions(opts...)
	gates, err := synth.Decompose(u, o.synth...)
	if err != nil {
		return "", err
	}
	c, err := gate.NewCircuit(cmatrix.Log2(u.Rows()), gates)
	if err != nil {
		return "", err
	}

	return RenderQASM(c), nil
}

// RenderQASM renders an existing circuit as OpenQASM 2.0: the standard
// header with one quantum register, then one statement per gate.
//
// OpenQASM shares the Q# rotation direction, so Rx/Ry/Rz angles are
// negated here too; R1 maps onto u1 with its angle unchanged. Controlled
// gates take the qelib names where they exist (cx, ccx, crz, cry, cu1);
// deeper control sets prepend one c per control.
func RenderQASM(c *gate.Circuit) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", c.Qubits)

	for _, g := range c.Gates {
		sb.WriteString(qasmStatement(g, c.Qubits))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// qasmStatement renders one gate as an OpenQASM statement.
func qasmStatement(g gate.Gate, n int) string {
	name, angle, hasAngle := qasmName(g.Axis, g.Angle)

	if !g.Controlled || n == 1 {
		if hasAngle {
			return fmt.Sprintf("%s(%.15f) q[%d];", name, angle, g.Qubit)
		}

		return fmt.Sprintf("%s q[%d];", name, g.Qubit)
	}

	prefix := strings.Repeat("c", n-1)
	args := make([]string, 0, n)
	for q := 0; q < n; q++ {
		if q != g.Qubit {
			args = append(args, fmt.Sprintf("q[%d]", q))
		}
	}
	args = append(args, fmt.Sprintf("q[%d]", g.Qubit))

	if hasAngle {
		return fmt.Sprintf("%s%s(%.15f) %s;", prefix, name, angle, strings.Join(args, ", "))
	}

	return fmt.Sprintf("%s%s %s;", prefix, name, strings.Join(args, ", "))
}

// qasmName maps an axis to its qelib mnemonic and emission angle.
func qasmName(a gate.Axis, angle float64) (string, float64, bool) {
	switch a {
	case gate.X:
		return "x", 0, false
	case gate.RX:
		return "rx", -angle, true
	case gate.RY:
		return "ry", -angle, true
	case gate.RZ:
		return "rz", -angle, true
	default:
		return "u1", angle, true
	}
}
