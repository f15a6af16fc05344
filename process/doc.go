// Package process defines the models a continuous-time Markov process can
// take: the multi-node CTBN, whose adjacency matrix factorizes the joint
// dynamics into per-node Conditional Intensity Matrices, and the single-node
// CTMP over the amalgamated joint state space.
//
// Nodes are addressed by integer index; the graph is held as an adjacency
// matrix indexed by node id, never as parent/child object references, so
// parent and children sets are derived by scanning a column or a row.
//
// A NetworkState is one discrete value per node, ordered by node index.
// States are compared positionally, not by label.
//
// Errors:
//
//	ErrNodeInsertion - a node could not be added (e.g. a second node on a CTMP).
//
// Calling edge or adjacency operations on a CTMP panics: the CTMP is the
// output of amalgamation and its topology is fixed by construction.
package process
