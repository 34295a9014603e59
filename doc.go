// Package qdecomp compiles arbitrary register unitaries into elementary
// quantum gate circuits.
//
// Given a 2^n × 2^n unitary matrix, the library produces an ordered stream
// of single-qubit rotations and fully-controlled single-qubit gates whose
// product equals the input within numerical tolerance, and renders that
// stream as Q# or OpenQASM source text or as an in-memory circuit value.
//
// The work is organized under focused subpackages:
//
//	cmatrix/  — dense complex matrices: products, conjugate transpose,
//	            unitarity checks, ZYZ angle extraction
//	gate/     — the gate data model, circuits, gate→matrix expansion
//	twolevel/ — two-level factorisation and Gray-code adjacency
//	synth/    — fully-controlled lowering, peephole optimiser, and the
//	            Decompose entry point
//	kak/      — optimal two-qubit synthesis via the Magic basis
//	            (at most three controlled-X gates)
//	emit/     — Q# and OpenQASM text emitters, circuit conversion
//
// Everything is purely computational: no I/O, no global state, and every
// entry point is safe for concurrent use on disjoint inputs.
//
// Quick start:
//
//	u, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
//	code, err := emit.QSharp(u)
//
//	go get github.com/quantforge/qdecomp
package qdecomp
