// Package sampling simulates continuous-time processes by the
// embedded-Markov-chain construction: every node keeps an independent
// exponential clock whose rate is the (negated) diagonal entry of its active
// CIM row, the globally earliest clock fires, and the clocks of the firing
// node and of its children are invalidated, since their rates depend on the
// parent state that just changed.
//
// A ForwardSampler is a lazy, restartable, infinite sequence of (time, state)
// samples. It is single-owner: it must not be shared across goroutines. Each
// sampler owns its own random-number stream, seeded explicitly through
// WithSeed for reproducibility or from system entropy otherwise; there is no
// hidden global seed.
//
// Generate drives a sampler to produce a whole dataset of trajectories for
// learning, tests and benchmarks.
package sampling
