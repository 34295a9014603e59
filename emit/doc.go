// Package emit renders synthesised gate streams as target notations.
//
// Three surfaces are provided: Q# source text (one operation block over a
// qubit array), OpenQASM 2.0 source text, and an in-memory gate.Circuit for
// programmatic consumers. Each has a matrix-level facade that runs the
// synthesis pipeline first (QSharp, QASM, ToCircuit); the two text surfaces
// also have a Render function that works on an existing circuit.
//
// Sign contract: the internal rotation convention is exp(+iθσ/2), the
// mirror of the Q#/OpenQASM direction, so both text emitters negate the
// angles of Rx/Ry/Rz gates. R1 is a bare phase and is emitted unchanged.
// This flip is part of the package's compatibility contract and is pinned
// by tests; emitted text is byte-for-byte deterministic for equal inputs.
package emit
