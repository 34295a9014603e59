package kak

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/quantforge/qdecomp/cmatrix"
)

// magicBasis returns the fixed Magic-basis change matrix
//
//	B = 1/√2 · [[1,  i, 0,  0],
//	            [0,  0, i,  1],
//	            [0,  0, i, −1],
//	            [1, −i, 0,  0]]
//
// whose columns are (phased) Bell states. Conjugating by B maps the
// SU(2)⊗SU(2) subgroup onto real orthogonal matrices.
func magicBasis() *cmatrix.Dense {
	s := complex(1/math.Sqrt2, 0)
	i := complex(0, 1/math.Sqrt2)
	b, _ := cmatrix.NewFromRows([][]complex128{
		{s, i, 0, 0},
		{0, 0, i, s},
		{0, 0, i, -s},
		{s, -i, 0, 0},
	})

	return b
}

// orthogonalEigen diagonalises the symmetric unitary Gram matrix G with a
// real orthogonal eigenvector matrix P, returning P and the half-phases
// θ_k with eigenvalue_k = e^{2iθ_k}.
//
// G = Re(G) + i·Im(G) with both parts real symmetric and commuting, so a
// joint real eigenbasis exists. Re(G) is diagonalised first; inside each
// (near-)degenerate eigenvalue cluster the eigenvectors are rotated to also
// diagonalise Im(G) — the Autonne–Takagi style real-ification step that
// keeps degenerate inputs (identity, SWAP, CNOT) on real eigenvectors.
func orthogonalEigen(g *cmatrix.Dense, eps float64) (*mat.Dense, []float64, error) {
	const dim = 4

	gr := mat.NewSymDense(dim, nil)
	gi := mat.NewDense(dim, dim, nil)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			gi.Set(r, c, imag(g.At(r, c)))
			if c >= r {
				gr.SetSym(r, c, real(g.At(r, c)))
			}
		}
	}

	var es mat.EigenSym
	if !es.Factorize(gr, true) {
		return nil, nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	p := mat.NewDense(dim, dim, nil)
	es.VectorsTo(p)

	// Cluster near-equal eigenvalues of Re(G); EigenSym returns them in
	// ascending order, so clusters are contiguous.
	clusterTol := math.Max(eps, 1e-7)
	for lo := 0; lo < dim; {
		hi := lo + 1
		for hi < dim && math.Abs(vals[hi]-vals[lo]) < clusterTol {
			hi++
		}
		if hi-lo > 1 {
			rotateCluster(p, gi, lo, hi)
		}
		lo = hi
	}

	// Real orthogonal transforms need determinant +1 to map back into
	// SU(2)⊗SU(2); flipping one column fixes the sign freely.
	if mat.Det(p) < 0 {
		for r := 0; r < dim; r++ {
			p.Set(r, 0, -p.At(r, 0))
		}
	}

	// Half-phases from the diagonal of Pᵀ·G·P.
	theta := make([]float64, dim)
	for k := 0; k < dim; k++ {
		var mu complex128
		for r := 0; r < dim; r++ {
			for c := 0; c < dim; c++ {
				mu += complex(p.At(r, k), 0) * g.At(r, c) * complex(p.At(c, k), 0)
			}
		}
		if math.Abs(cmplx.Abs(mu)-1) > 1e-6 {
			return nil, nil, ErrEigenFailed
		}
		theta[k] = cmplx.Phase(mu) / 2
	}

	return p, theta, nil
}

// rotateCluster rotates the eigenvector columns [lo, hi) of p so that the
// restriction of the symmetric matrix gi to their span becomes diagonal.
func rotateCluster(p, gi *mat.Dense, lo, hi int) {
	size := hi - lo
	block := mat.NewSymDense(size, nil)
	for a := 0; a < size; a++ {
		for b := a; b < size; b++ {
			var sum float64
			for r := 0; r < 4; r++ {
				for c := 0; c < 4; c++ {
					sum += p.At(r, lo+a) * gi.At(r, c) * p.At(c, lo+b)
				}
			}
			block.SetSym(a, b, sum)
		}
	}

	var es mat.EigenSym
	if !es.Factorize(block, true) {
		return // factorisation failed; the cluster columns are left as they are
	}
	rot := mat.NewDense(size, size, nil)
	es.VectorsTo(rot)

	fresh := mat.NewDense(4, size, nil)
	for r := 0; r < 4; r++ {
		for b := 0; b < size; b++ {
			var sum float64
			for a := 0; a < size; a++ {
				sum += p.At(r, lo+a) * rot.At(a, b)
			}
			fresh.Set(r, b, sum)
		}
	}
	for r := 0; r < 4; r++ {
		for b := 0; b < size; b++ {
			p.Set(r, lo+b, fresh.At(r, b))
		}
	}
}

// realToComplex lifts a real gonum matrix into a cmatrix.Dense.
func realToComplex(m *mat.Dense) *cmatrix.Dense {
	r, c := m.Dims()
	out, _ := cmatrix.New(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, complex(m.At(i, j), 0))
		}
	}

	return out
}
