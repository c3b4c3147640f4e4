package ambiguity

// DefaultEpsilon is the default tolerance absorbing floating-point rounding
// noise in the §3 sum checks (ΣL ≤ 1 ≤ Σ(L+G)), mirroring
// matrix.DefaultEpsilon's role in lvlath's own numeric policy.
const DefaultEpsilon = 1e-9

// buildOptions holds the resolved configuration for Build.
type buildOptions struct {
	epsilon float64
}

// Option configures Build.
type Option func(*buildOptions)

// WithEpsilon overrides the tolerance used when validating the §3 sum
// invariants. eps must be >= 0; a negative value is treated as 0 (no slack).
func WithEpsilon(eps float64) Option {
	return func(o *buildOptions) {
		if eps < 0 {
			eps = 0
		}
		o.epsilon = eps
	}
}

func resolveOptions(opts []Option) buildOptions {
	o := buildOptions{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
