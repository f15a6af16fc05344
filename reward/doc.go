// Package reward attaches reward structure to a continuous-time process and
// estimates expected rewards by simulation.
//
// A reward function maps each transition of the process to a lump transition
// reward plus an instantaneous reward accrued per unit of time in the
// current state. Factored assumes the reward decomposes as a sum over the
// nodes of the process.
//
// MonteCarlo estimates the expected reward of a starting state by generating
// trajectories with the forward sampler, under a finite-horizon or a
// discounted infinite-horizon criterion, stopping early once a sequential
// normal-approximation test bounds the absolute error.
package reward
