package synth

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultEpsilon is the tolerance used for zero tests, unitarity checks
	// and angle canonicalisation across the pipeline.
	DefaultEpsilon = 1e-9

	// DefaultOptimize controls whether the optimal 4×4 path is taken for
	// two-qubit inputs. Off by default; the generic path works at any size.
	DefaultOptimize = false

	// DefaultPeephole controls whether the local rewrite pass runs over the
	// generated stream.
	DefaultPeephole = true
)

const panicEpsilonInvalid = "synth: WithEpsilon: eps must be in (0, 1]"

// Option mutates the effective configuration. Constructors panic only on
// nonsensical values (programmer error); all runtime conditions surface as
// errors from the entry points.
type Option func(*options)

type options struct {
	eps      float64
	optimize bool
	peephole bool
}

// WithEpsilon overrides the numeric tolerance. eps must lie in (0, 1];
// the constructor panics otherwise (including for NaN and +Inf).
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || eps > 1 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithOptimize enables the optimal two-qubit path: 4×4 inputs are
// synthesised through the Magic-basis decomposition with at most three
// controlled-X gates. Inputs of any other size fall back to the generic
// two-level path unchanged.
func WithOptimize() Option {
	return func(o *options) { o.optimize = true }
}

// WithoutPeephole disables the local rewrite pass. Intended for inspecting
// the raw synthesis output; the stream stays correct, only longer.
func WithoutPeephole() Option {
	return func(o *options) { o.peephole = false }
}

// gatherOptions resolves user setters over the documented defaults,
// last-writer-wins.
func gatherOptions(user ...Option) options {
	o := options{
		eps:      DefaultEpsilon,
		optimize: DefaultOptimize,
		peephole: DefaultPeephole,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
