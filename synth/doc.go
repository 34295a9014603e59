// Package synth turns register unitaries into gate streams.
//
// The pipeline validates the input (square, power-of-two side, unitary
// within tolerance), factors it into Gray-adjacent two-level unitaries,
// lowers each factor to conditional bit flips around a fully-controlled
// ZYZ rotation chain, and finishes with local peephole rewrites (adjacent-X
// cancellation, zero-angle removal).
//
// For 4×4 inputs with optimisation enabled, synthesis is delegated to
// package kak, which produces a circuit with at most three controlled-X
// gates via the Magic-basis decomposition.
//
// Entry points accept functional options; defaults are documented on the
// Default* constants. The package is purely computational: no I/O, no
// global state, reentrant for concurrent calls on disjoint inputs.
package synth
