package emit

import (
	"github.com/quantforge/qdecomp/cmatrix"
	"github.com/quantforge/qdecomp/gate"
	"github.com/quantforge/qdecomp/synth"
)

// ToCircuit synthesises U and returns the in-memory circuit representation,
// for consumers that post-process gates programmatically instead of
// emitting text.
func ToCircuit(u *cmatrix.Dense, opts ...Option) (*gate.Circuit, error) {
	o := gatherOptions(opts...)
	gates, err := synth.Decompose(u, o.synth...)
	if err != nil {
		return nil, err
	}

	return gate.NewCircuit(cmatrix.Log2(u.Rows()), gates)
}
