// SPDX-License-Identifier: MIT
// Package cmatrix provides dense complex-valued linear algebra primitives
// for quantum unitary synthesis.
//
// The central type is Dense, a row-major matrix of complex128 values backed
// by a flat slice. The package offers exactly the operations the
// decomposition pipeline needs: multiplication, conjugate transpose,
// Kronecker products, in-place two-level column updates, ZYZ angle
// extraction, and tolerance-based structural checks (unitarity,
// near-equality, power-of-two shape).
//
// Numeric policy:
//   - All comparisons are tolerance-based; DefaultEpsilon = 1e-9.
//   - No NaN/Inf values are ever produced by the constructors; validation
//     entry points reject malformed input with sentinel errors.
//
// Determinism:
//   - All kernels use fixed loop orders (row-major i then j).
//   - No global state; every function is safe for concurrent use on
//     disjoint inputs.
//
// Matrices returned by transformations are freshly allocated; callers that
// need in-place elimination (the two-level sweep) clone first and use the
// documented mutating helpers.
package cmatrix
