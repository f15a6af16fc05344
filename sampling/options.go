package sampling

import "github.com/ctbnlab/goctbn/process"

// Option configures a ForwardSampler before its first sample.
type Option func(*config)

type config struct {
	seed    int64
	seeded  bool
	initial process.NetworkState
}

// WithSeed fixes the sampler's random-number stream for reproducibility.
// Two samplers built with the same seed and the same initial state produce
// identical sample sequences.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithInitialState fixes the state the sampler (re)starts from. Without it,
// every Reset draws a fresh uniform state per node from the sampler's
// continuing random stream.
func WithInitialState(state process.NetworkState) Option {
	return func(c *config) {
		c.initial = state
	}
}
