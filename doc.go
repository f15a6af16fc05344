// Package goctbn learns, parameterizes and simulates Continuous-Time
// Bayesian Networks (CTBNs): directed graphs over discrete-state variables
// whose joint dynamics form a factored continuous-time Markov process.
//
// 🚀 What is goctbn?
//
//	A library core that brings together:
//		• Process models: multi-node CTBN over an adjacency matrix, plus the
//		  single-node CTMP produced by amalgamation
//		• Parameter blocks: per-node Conditional Intensity Matrices (CIMs)
//		  together with their sufficient statistics
//		• Forward sampling: lazy, restartable competing-exponential-clocks
//		  simulation with explicit, injectable randomness
//		• Parameter estimation: maximum-likelihood and Dirichlet–Gamma
//		  Bayesian fits from transition counts and residence times
//		• Structure learning: score-based Hill-Climbing (Log-Likelihood, BIC)
//		  and the constraint-based CTPC algorithm with χ² and F hypothesis
//		  tests, parallelized across nodes
//		• Reward evaluation: factored reward functions and Monte Carlo
//		  expected-reward estimation with sequential early stopping
//
// Under the hood, everything is organized under topical subpackages:
//
//	params/      — node parameter blocks (CIM, transitions, residence times)
//	process/     — CTBN and CTMP models, adjacency, parameter indexing
//	dataset/     — trajectories and datasets of observed state sequences
//	sampling/    — forward sampler and trajectory generation
//	paramlearn/  — sufficient statistics, MLE and Bayesian estimators
//	structlearn/ — Hill-Climbing, CTPC, scores, hypothesis tests, cache
//	reward/      — reward functions and Monte Carlo reward evaluation
//
// Quick ASCII example:
//
//	    X0 ──► X1
//	     │     │
//	     ▼     ▼
//	      ► X2 ◄
//
//	a three-node chain/fork CTBN: X2's transition rates depend on the joint
//	state of its parents {X0, X1}.
//
//	go get github.com/ctbnlab/goctbn
package goctbn
