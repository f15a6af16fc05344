// Package dataset holds observed state trajectories of a continuous-time
// process: a Trajectory is a strictly co-indexed pair of time points and
// state-vector rows, and a Dataset is a non-empty collection of trajectories
// over the same variables.
//
// Shape violations (time/state length mismatch, ragged variable counts) are
// caller programming errors, not runtime data errors: constructors panic
// instead of returning them as values.
package dataset
