// Package gate defines the gate stream produced by the synthesis pipeline.
//
// A Gate is a small tagged value with two cases: a single-qubit gate
// (axis + optional angle + target qubit) and a fully-controlled single-qubit
// gate, which applies its inner rotation to the target only when every other
// qubit of the register is |1⟩. Gates carry no identity of their own; two
// gates are equal when all fields match up to angle tolerance.
//
// A gate stream is an ordered slice interpreted left to right in application
// order: the first element is applied to the register first. Circuit bundles
// a stream with its register size and validates qubit indices.
//
// Matrix expands any gate to its full 2^n × 2^n unitary. It exists for the
// round-trip property tests and for unitary-preservation checks in the
// peephole optimiser; production synthesis never calls it.
package gate
