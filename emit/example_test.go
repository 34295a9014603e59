package emit_test

import (
	"fmt"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/emit"
)

// ExampleQSharp compiles a bit flip into Q# source text.
func ExampleQSharp() {
	u, _ := cmatrix.NewFromRows([][]complex128{
		{0, 1},
		{1, 0},
	})

	code, _ := emit.QSharp(u, emit.WithOpName("ApplyNot"))
	fmt.Print(code)

	// Output:
	// operation ApplyNot (qs : Qubit[]) : Unit {
	//   X(qs[0]);
	// }
}

// ExampleQASM compiles a controlled bit flip into OpenQASM text.
func ExampleQASM() {
	u, _ := cmatrix.NewFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})

	code, _ := emit.QASM(u)
	fmt.Print(code)

	// Output:
	// OPENQASM 2.0;
	// include "qelib1.inc";
	//
	// qreg q[2];
	//
	// cx q[1], q[0];
}
