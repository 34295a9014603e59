package emit

import "github.com/quantforge/qdecomp/synth"

// DefaultOpName is the operation name used by the Q# emitter when the
// caller does not override it.
const DefaultOpName = "ApplyUnitaryMatrix"

// Option configures the matrix-level emitter facades.
type Option func(*options)

type options struct {
	opName string
	synth  []synth.Option
}

// WithOpName overrides the Q# operation name. Ignored by the QASM emitter.
func WithOpName(name string) Option {
	return func(o *options) { o.opName = name }
}

// WithOptimize forwards the optimal two-qubit path flag to synthesis.
func WithOptimize() Option {
	return func(o *options) { o.synth = append(o.synth, synth.WithOptimize()) }
}

// WithEpsilon forwards the numeric tolerance to synthesis.
func WithEpsilon(eps float64) Option {
	return func(o *options) { o.synth = append(o.synth, synth.WithEpsilon(eps)) }
}

func gatherOptions(user ...Option) options {
	o := options{opName: DefaultOpName}
	for _, set := range user {
		set(&o)
	}

	return o
}
