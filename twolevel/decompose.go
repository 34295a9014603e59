package twolevel

import (
	"math"
	"math/cmplx"

	"github.com/quantforge/qdecomp/cmatrix"
)

// Decompose factors a d×d unitary U into two-level unitaries.
//
// Description:
//
//	Returns factors [T₁, …, Tₖ] in application order, meaning
//	Tₖ · … · T₁ = U. The factor count k never exceeds d(d−1)/2.
//
// Algorithm Outline (row sweep over adjacent column pairs):
//  1. Work on a clone A of U. For each row i = 0..d−3, zero the entries
//     A[i,j] right to left for j = d−1..i+1. Each step multiplies A from the
//     right by a 2×2 unitary acting on the adjacent column pair (j−1, j):
//     either a Givens-like special unitary rotating (A[i,j−1], A[i,j]) into
//     (h, 0) with h real positive, or, when A[i,j−1] is already ~0, a plain
//     basis swap [[0,1],[1,0]]. The recorded factor is the block's
//     conjugate transpose on the same pair.
//  2. Entries with |A[i,j]| < eps are skipped outright.
//  3. Basis swaps and skipped rows can leave a unit-modulus phase on the
//     pivot A[i,i]; it is absorbed by a diagonal factor diag(phase, 1) on
//     the adjacent pair (i, i+1).
//  4. After the sweep the residual is the identity outside the trailing 2×2
//     block on (d−2, d−1), emitted last when it deviates from identity.
//
// Ordering: A·U₁·…·Uₘ = R, hence U = R·Uₘ*·…·U₁* and the application order
// is the production order of the recorded factors followed by the residual.
// A pivot-phase factor is recorded right after its row's eliminations; it
// acts only on index i, which no later factor touches, so that placement
// gives the same product. The trailing block is appended last.
//
// Numerical notes: the Givens block is built from hypot-normalised
// magnitudes to avoid cancellation; it always leaves the pivot real
// positive, so phase factors arise only from swaps and skipped rows.
//
// Complexity: O(d³) arithmetic, Θ(d²) factors.
func Decompose(u *cmatrix.Dense, eps float64) ([]TwoLevel, error) {
	if u == nil || u.Rows() != u.Cols() {
		return nil, cmatrix.ErrNonSquare
	}
	if !cmatrix.IsUnitary(u, eps) {
		return nil, cmatrix.ErrNonUnitary
	}
	d := u.Rows()

	a := u.Clone()
	var out []TwoLevel

	for i := 0; i < d-2; i++ {
		for j := d - 1; j > i; j-- {
			if cmplx.Abs(a.At(i, j)) < eps {
				continue // already zero, identity factor omitted
			}
			e := eliminatingBlock(a.At(i, j-1), a.At(i, j), eps)
			a.ApplyTwoLevelRight(e, j-1, j)
			out = append(out, TwoLevel{I: j - 1, J: j, M: cmatrix.ConjTranspose(e)})
		}
		// Swaps and skipped rows may leave a phase on the pivot.
		if p := a.At(i, i); !cmatrix.CloseScalar(p, 1, eps) {
			block, _ := cmatrix.NewFromRows([][]complex128{{p, 0}, {0, 1}})
			out = append(out, TwoLevel{I: i, J: i + 1, M: block})
			a.Set(i, i, 1)
		}
	}

	// Trailing 2×2 block on (d−2, d−1).
	block, _ := cmatrix.NewFromRows([][]complex128{
		{a.At(d-2, d-2), a.At(d-2, d-1)},
		{a.At(d-1, d-2), a.At(d-1, d-1)},
	})
	if !cmatrix.AllClose(block, cmatrix.Identity(2), eps) {
		out = append(out, TwoLevel{I: d - 2, J: d - 1, M: block})
	}

	return out, nil
}

// eliminatingBlock returns a 2×2 unitary E with (a, b)·E = (h, 0) where
// h = hypot(|a|, |b|) is real positive. When the pivot a is already ~0 the
// plain basis swap is used instead, matching the column-swap shortcut of the
// sweep; the swap moves b onto the pivot unchanged.
func eliminatingBlock(a, b complex128, eps float64) *cmatrix.Dense {
	if cmplx.Abs(a) < eps {
		x, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})

		return x
	}
	h := complex(math.Hypot(cmplx.Abs(a), cmplx.Abs(b)), 0)
	e, _ := cmatrix.NewFromRows([][]complex128{
		{cmplx.Conj(a) / h, -b / h},
		{cmplx.Conj(b) / h, a / h},
	})

	return e
}
