package synth

import (
	"fmt"

	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
	"github.com/quantforge/qdecomp/kak"
	"github.com/quantforge/qdecomp/twolevel"
)

// Decompose compiles a 2^n × 2^n unitary into an application-ordered gate
// stream whose product equals U within tolerance.
//
// The input is validated first: non-square, non-power-of-two or non-unitary
// matrices are rejected with the matching cmatrix sentinel before any
// synthesis work, and no partial output is ever returned.
//
// With WithOptimize and a 4×4 input, synthesis goes through the Magic-basis
// path (at most three controlled-X gates); every other input runs the
// generic pipeline: Gray-adjacent two-level factorisation, fully-controlled
// lowering, then peephole cleanup unless disabled.
func Decompose(u *cmatrix.Dense, opts ...Option) ([]gate.Gate, error) {
	o := gatherOptions(opts...)

	if err := cmatrix.ValidateUnitary(u, o.eps); err != nil {
		return nil, err
	}
	n := cmatrix.Log2(u.Rows())

	var gates []gate.Gate
	if o.optimize && u.Rows() == 4 {
		var err error
		if gates, err = kak.Decompose4x4(u, o.eps); err != nil {
			return nil, fmt.Errorf("optimal path: %w", err)
		}
	} else {
		factors, err := twolevel.DecomposeGray(u, o.eps)
		if err != nil {
			return nil, err
		}
		for _, f := range factors {
			run, err := fcGates(f, n, o.eps)
			if err != nil {
				return nil, err
			}
			gates = append(gates, run...)
		}
	}

	if o.peephole {
		gates = Optimize(gates, o.eps)
	}

	return gates, nil
}
