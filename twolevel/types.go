// Package twolevel factors a register unitary into two-level unitaries and
// reorders the factors along Gray-code paths so every factor acts on a pair
// of basis states whose indices differ in exactly one bit.
package twolevel

import (
	"errors"

	"github.com/quantforge/qdecomp/cmatrix"
)

// Sentinel errors for twolevel operations.
var (
	// ErrBadIndices indicates a two-level pair violating 0 ≤ I < J < d.
	ErrBadIndices = errors.New("twolevel: indices must satisfy 0 <= i < j < d")
	// ErrBlockShape indicates the inner block is not 2×2.
	ErrBlockShape = errors.New("twolevel: inner block must be 2x2")
)

// TwoLevel is a unitary equal to the identity everywhere except rows and
// columns (I, J), where the 2×2 block M applies. Invariants: 0 ≤ I < J and
// M·M* = I within tolerance; New enforces the shape constraints.
type TwoLevel struct {
	I, J int
	M    *cmatrix.Dense
}

// New constructs a two-level unitary after validating the index pair and the
// block shape. The block is cloned so later in-place sweeps cannot alias it.
func New(i, j int, m *cmatrix.Dense) (TwoLevel, error) {
	if i < 0 || j <= i {
		return TwoLevel{}, ErrBadIndices
	}
	if m == nil || m.Rows() != 2 || m.Cols() != 2 {
		return TwoLevel{}, ErrBlockShape
	}

	return TwoLevel{I: i, J: j, M: m.Clone()}, nil
}

// FullMatrix expands the factor to its full d×d matrix.
func (t TwoLevel) FullMatrix(d int) *cmatrix.Dense {
	out := cmatrix.Identity(d)
	out.Set(t.I, t.I, t.M.At(0, 0))
	out.Set(t.I, t.J, t.M.At(0, 1))
	out.Set(t.J, t.I, t.M.At(1, 0))
	out.Set(t.J, t.J, t.M.At(1, 1))

	return out
}

// Inverse returns the factor with the conjugate-transposed block on the same
// index pair.
func (t TwoLevel) Inverse() TwoLevel {
	return TwoLevel{I: t.I, J: t.J, M: cmatrix.ConjTranspose(t.M)}
}

// MulChain multiplies factors back into a full d×d matrix in application
// order: factors[0] is applied first.
func MulChain(d int, factors []TwoLevel) (*cmatrix.Dense, error) {
	ms := make([]*cmatrix.Dense, len(factors))
	for k, f := range factors {
		ms[k] = f.FullMatrix(d)
	}

	return cmatrix.MulChain(d, ms)
}
