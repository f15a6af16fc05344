// Package paramlearn estimates the parameters of a node from observed
// trajectories.
//
// SufficientStatistics reduces a dataset to the transition counts M and
// residence times T of one node under a candidate parent set; the MLE and
// Bayesian estimators then turn those statistics into a Conditional
// Intensity Matrix. Estimators write through the unchecked CIM setter: the
// row-sum invariant holds by construction, but a parent configuration with
// zero residence time (never visited in the data) yields non-finite entries.
// Callers must ensure adequate trajectory coverage; this edge is not
// defended against.
package paramlearn
