// Package kak synthesises arbitrary 4×4 unitaries into circuits with at
// most three controlled-X gates, single-qubit rotations and a global phase.
//
// The construction follows the Magic-basis (Cartan/KAK) decomposition. In
// the magic basis a two-qubit unitary splits as U = (A₁⊗A₂)·N(a,b,c)·
// (A₃⊗A₄) up to phase, where N = exp(i(a·XX + b·YY + c·ZZ)) carries all the
// entangling content. The interaction coefficients come from the spectrum
// of the symmetric unitary Mᵀ·M, M = B*·U·B, diagonalised with a real
// orthogonal eigenbasis; the outer tensor factors are read back through B
// from the two real orthogonal matrices of the splitting.
//
// N(a,b,c) is emitted through a fixed three-CNOT template interleaved with
// Rz/Ry/R1 rotations; the derivation is spelled out gate by gate on
// interactionGates. Degenerate eigenvalue clusters are re-orthonormalised
// against the imaginary part of the Gram matrix so eigenvectors stay real,
// which the symmetric inputs (identity, SWAP, CNOT) exercise directly.
package kak
