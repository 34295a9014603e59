// SPDX-License-Identifier: MIT

package cmatrix

import "errors"

// Sentinel errors for cmatrix operations. Algorithms return these sentinels
// (optionally wrapped with an operation tag via %w) and tests match them with
// errors.Is. Panics are reserved for programmer errors such as out-of-range
// indexing, mirroring the indexing contract of gonum/mat.
var (
	// ErrBadShape indicates a shape is invalid for the operation: rows or
	// cols <= 0, a ragged or empty row set, a nil or smaller-than-2×2
	// register matrix, or a non-2×2 input where a 2×2 block is required.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input was not.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNotPowerOfTwo signals that the matrix side is not a power of two,
	// so it cannot act on a whole register of qubits.
	ErrNotPowerOfTwo = errors.New("cmatrix: matrix side is not a power of two")

	// ErrNonUnitary signals that U·U* deviates from identity beyond the
	// configured tolerance.
	ErrNonUnitary = errors.New("cmatrix: matrix is not unitary within eps")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")
)
