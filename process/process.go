package process

import (
	"errors"

	"github.com/ctbnlab/goctbn/params"
)

// ErrNodeInsertion indicates a node could not be added to the model.
var ErrNodeInsertion = errors.New("process: node insertion failed")

// NetworkState is a specific realization of a model: one discrete state per
// node, ordered by node index.
type NetworkState []int

// Clone returns a copy of the state vector.
func (s NetworkState) Clone() NetworkState {
	return append(NetworkState(nil), s...)
}

// Model is the contract shared by the CTBN and the CTMP: a container of
// per-node parameter blocks plus directed adjacency, with the mixed-radix
// mapping from full state assignments to CIM row indices.
type Model interface {
	// AddNode appends a node and returns its index. On a CTBN the node's
	// parameters are reset and the adjacency matrix is invalidated; a CTMP
	// stores the node as-is and rejects a second one.
	AddNode(n params.Node) (int, error)

	// AddEdge adds the directed edge parent->child and resets the child's
	// parameters, whose CIM shape became stale. Panics on a CTMP.
	AddEdge(parent, child int)

	// InitAdjacency (re)initializes the adjacency matrix to the current
	// node count with no edges. Panics on a CTMP.
	InitAdjacency()

	// NodeCount returns the number of nodes in the model.
	NodeCount() int

	// Node returns the parameter block of the node at index i. The returned
	// block is the stored one: writes through it mutate the model.
	Node(i int) params.Node

	// ParentSet returns the indices of node's parents in increasing order.
	ParentSet(node int) []int

	// ChildrenSet returns the indices of node's children in increasing order.
	ChildrenSet(node int) []int

	// ParamIndex maps a full state assignment to the CIM row index of node,
	// accumulating a mixed-radix index over node's parents in increasing
	// index order.
	ParamIndex(node int, state NetworkState) int

	// CustomParamIndex performs the same mixed-radix accumulation over an
	// explicitly supplied parent set (increasing order) instead of the
	// model's own adjacency. Used when comparing nested parent sets that
	// have not been committed to the graph.
	CustomParamIndex(state NetworkState, parentSet []int) int
}

// Cardinalities returns the domain cardinality of every node in m, ordered
// by node index.
func Cardinalities(m Model) []int {
	cards := make([]int, m.NodeCount())
	for i := range cards {
		cards[i] = m.Node(i).Cardinality()
	}

	return cards
}

// StateFromIndex decodes a joint mixed-radix index into the state of each
// node, given the per-node cardinalities. It is the inverse of encoding a
// full assignment with every node in the parent set.
func StateFromIndex(cards []int, idx int) NetworkState {
	state := make(NetworkState, len(cards))
	for i, c := range cards {
		state[i] = idx % c
		idx /= c
	}

	return state
}

// IndexOfState encodes a state as a single mixed-radix index given the
// per-node cardinalities. It is the inverse of StateFromIndex.
func IndexOfState(cards []int, state NetworkState) int {
	idx, stride := 0, 1
	for i, c := range cards {
		idx += state[i] * stride
		stride *= c
	}

	return idx
}

// JointIndex encodes a full state assignment as a single mixed-radix index
// over all nodes of m, matching the row indexing of the amalgamated CIM.
func JointIndex(m Model, state NetworkState) int {
	return IndexOfState(Cardinalities(m), state)
}
