package twolevel

import (
	"github.com/quantforge/qdecomp/cmatrix"
)

// GrayPath returns the deterministic Gray-code walk i = g₀, g₁, …, gₘ = j in
// which consecutive values differ in exactly one bit. Differing bits are
// flipped in increasing bit-position order; this tie-break is part of the
// observable output contract.
func GrayPath(i, j int) []int {
	path := []int{i}
	cur := i
	for diff := i ^ j; diff != 0; diff &= diff - 1 {
		bit := diff & -diff // lowest set bit
		cur ^= bit
		path = append(path, cur)
	}

	return path
}

// grayExpand rewrites one factor into an equivalent run of factors in which
// every element acts on a one-bit-differing index pair. A factor already on
// such a pair passes through unchanged. Otherwise the rotation is conjugated
// by basis swaps along the Gray path: swaps in, rotated block, swaps out in
// reverse. The swap factors themselves act on one-bit pairs, so the whole
// run satisfies the adjacency contract.
func grayExpand(t TwoLevel) []TwoLevel {
	path := GrayPath(t.I, t.J)
	if len(path) == 2 {
		return []TwoLevel{t}
	}

	m := len(path) - 1
	out := make([]TwoLevel, 0, 2*m)
	for s := 0; s < m-1; s++ {
		out = append(out, swapFactor(path[s], path[s+1]))
	}
	out = append(out, orient(path[m-1], path[m], t.M))
	for s := m - 2; s >= 0; s-- {
		out = append(out, swapFactor(path[s], path[s+1]))
	}

	return out
}

// swapFactor builds the basis-swap two-level factor [[0,1],[1,0]] on the
// normalized pair {a, b}. The X block is symmetric, so orientation is free.
func swapFactor(a, b int) TwoLevel {
	if a > b {
		a, b = b, a
	}
	x, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})

	return TwoLevel{I: a, J: b, M: x}
}

// orient places the 2×2 block m on the ordered pair (a, b), transposing the
// basis when the walk reaches the pair in descending order.
func orient(a, b int, m *cmatrix.Dense) TwoLevel {
	if a < b {
		return TwoLevel{I: a, J: b, M: m.Clone()}
	}
	flipped, _ := cmatrix.NewFromRows([][]complex128{
		{m.At(1, 1), m.At(1, 0)},
		{m.At(0, 1), m.At(0, 0)},
	})

	return TwoLevel{I: b, J: a, M: flipped}
}

// DecomposeGray factors a register unitary into two-level unitaries where
// every factor acts on a pair of indices differing in exactly one bit (the
// structural precondition of fully-controlled synthesis).
//
// The input U is conjugated by the Gray-code basis permutation
// perm[x] = x XOR (x >> 1) before the sweep. The sweep only ever pairs
// adjacent indices, and adjacent indices map to consecutive Gray codes,
// which differ in exactly one bit. Every resulting factor therefore lands
// on a one-bit pair directly; grayExpand remains as the conjugation
// fallback should a multi-bit pair ever surface.
//
// The input must be a 2^n × 2^n unitary; shape and unitarity are validated
// up front. Factors are returned in application order.
func DecomposeGray(u *cmatrix.Dense, eps float64) ([]TwoLevel, error) {
	if err := cmatrix.ValidateUnitary(u, eps); err != nil {
		return nil, err
	}
	d := u.Rows()

	// B = P·U·Pᵀ with P the Gray permutation: B[i][j] = U[perm[i]][perm[j]].
	perm := make([]int, d)
	for x := 0; x < d; x++ {
		perm[x] = x ^ (x >> 1)
	}
	b, _ := cmatrix.New(d, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			b.Set(i, j, u.At(perm[i], perm[j]))
		}
	}

	plain, err := Decompose(b, eps)
	if err != nil {
		return nil, err
	}

	// Map factor indices back through the permutation, then enforce the
	// one-bit adjacency contract factor by factor.
	var out []TwoLevel
	for _, t := range plain {
		out = append(out, grayExpand(orient(perm[t.I], perm[t.J], t.M))...)
	}

	return out, nil
}
