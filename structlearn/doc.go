// Package structlearn recovers the structure of a continuous-time Bayesian
// network from a dataset of trajectories.
//
// Two algorithms are provided, both learning one parent set per node and
// committing all of them to the network's adjacency matrix only after every
// node's search has completed:
//
//   - HillClimbing: score-based greedy search, toggling candidate-parent
//     membership while a scoring function (LogLikelihood or BIC, both built
//     on the Bayesian-Dirichlet marginal likelihood) strictly improves.
//   - CTPC: constraint-based search that removes a candidate parent when,
//     for some separation set, both the chi-squared test and the F test
//     agree the parent adds no information.
//
// Per-node searches run in parallel: each node's search owns its own Cache
// and only reads the shared model and dataset, and the adjacency matrix is
// mutated serially after the fork-join completes, so no locks are needed.
//
// The Cache memoizes fitted parameter blocks by canonical parent-set
// identity in two generations that track CTPC's monotonically growing
// separation-set size; the frontier-swap behavior bounds memory to the two
// cardinality classes the search can still revisit.
package structlearn
