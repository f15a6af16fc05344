package process

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/ctbnlab/goctbn/internal/logging"
	"github.com/ctbnlab/goctbn/params"
)

// CTBN is a Continuous-Time Bayesian Network: a directed graph of parameter
// blocks whose edges are held in an adjacency matrix. The index of a node in
// the container doubles as its row/column in the matrix.
//
// The adjacency matrix, once initialized, has shape NodeCount x NodeCount;
// adding a node invalidates it (it must be re-initialized before any
// adjacency query) and resets that node's parameters.
type CTBN struct {
	adj   *mat.Dense // nil until InitAdjacency; entries are 0 or 1
	nodes []params.Node
}

// NewCTBN returns an empty network.
func NewCTBN() *CTBN {
	return &CTBN{}
}

// AddNode appends n to the network, resetting its parameters and
// invalidating the adjacency matrix.
func (c *CTBN) AddNode(n params.Node) (int, error) {
	n.Reset()
	c.adj = nil
	c.nodes = append(c.nodes, n)

	return len(c.nodes) - 1, nil
}

// AddEdge adds the directed edge parent->child, initializing the adjacency
// matrix first if needed, and resets the child's parameters.
func (c *CTBN) AddEdge(parent, child int) {
	if c.adj == nil {
		c.InitAdjacency()
	}
	c.adj.Set(parent, child, 1)
	c.nodes[child].Reset()
}

// InitAdjacency (re)initializes the adjacency matrix to the current node
// count with no edges.
func (c *CTBN) InitAdjacency() {
	n := len(c.nodes)
	c.adj = mat.NewDense(n, n, nil)
}

// AdjacencyMatrix returns the adjacency matrix, or nil if not initialized.
func (c *CTBN) AdjacencyMatrix() *mat.Dense { return c.adj }

// NodeCount returns the number of nodes in the network.
func (c *CTBN) NodeCount() int { return len(c.nodes) }

// Node returns the parameter block at index i.
func (c *CTBN) Node(i int) params.Node { return c.nodes[i] }

// ParentSet returns the parents of node in increasing order, scanning the
// node's adjacency column.
func (c *CTBN) ParentSet(node int) []int {
	c.mustAdjacency()
	parents := make([]int, 0, len(c.nodes))
	for i := range c.nodes {
		if c.adj.At(i, node) > 0 {
			parents = append(parents, i)
		}
	}

	return parents
}

// ChildrenSet returns the children of node in increasing order, scanning the
// node's adjacency row.
func (c *CTBN) ChildrenSet(node int) []int {
	c.mustAdjacency()
	children := make([]int, 0, len(c.nodes))
	for i := range c.nodes {
		if c.adj.At(node, i) > 0 {
			children = append(children, i)
		}
	}

	return children
}

// ParamIndex maps a full state assignment to the CIM row index of node by
// accumulating a mixed-radix index over node's active parents in increasing
// index order.
func (c *CTBN) ParamIndex(node int, state NetworkState) int {
	c.mustAdjacency()
	idx, stride := 0, 1
	for i := range c.nodes {
		if c.adj.At(i, node) > 0 {
			idx += state[i] * stride
			stride *= c.nodes[i].Cardinality()
		}
	}

	return idx
}

// CustomParamIndex performs the mixed-radix accumulation over an explicitly
// supplied parent set in increasing order, ignoring the network's adjacency.
func (c *CTBN) CustomParamIndex(state NetworkState, parentSet []int) int {
	idx, stride := 0, 1
	for _, p := range parentSet {
		idx += state[p] * stride
		stride *= c.nodes[p].Cardinality()
	}

	return idx
}

// Amalgamate transforms the CTBN into the equivalent CTMP: a single node
// over the joint state space, whose CIM row for a joint state accumulates
// each node's transition intensity toward every joint state reachable by
// changing that node alone.
func (c *CTBN) Amalgamate() (*CTMP, error) {
	cards := Cardinalities(c)
	stateSpace := 1
	for _, card := range cards {
		stateSpace *= card
	}
	logging.New("process").Info("network amalgamation started", "joint_states", stateSpace)

	allNodes := make([]int, len(c.nodes))
	for i := range allNodes {
		allNodes[i] = i
	}

	amalgamated := mat.NewDense(stateSpace, stateSpace, nil)
	for cur := 0; cur < stateSpace; cur++ {
		state := StateFromIndex(cards, cur)
		for node := range c.nodes {
			cim := c.nodes[node].(*params.Discrete).CIM()
			u := c.ParamIndex(node, state)
			for nextNodeState := 0; nextNodeState < cards[node]; nextNodeState++ {
				next := state.Clone()
				next[node] = nextNodeState
				nextIdx := c.CustomParamIndex(next, allNodes)
				rate := cim[u].At(state[node], nextNodeState)
				amalgamated.Set(cur, nextIdx, amalgamated.At(cur, nextIdx)+rate)
			}
		}
	}

	domain := make([]string, stateSpace)
	for i := range domain {
		domain[i] = strconv.Itoa(i)
	}
	param := params.NewDiscrete("ctmp", domain)
	if err := param.SetCIM([]*mat.Dense{amalgamated}); err != nil {
		return nil, err
	}

	ctmp := NewCTMP()
	if _, err := ctmp.AddNode(param); err != nil {
		return nil, err
	}

	return ctmp, nil
}

func (c *CTBN) mustAdjacency() {
	if c.adj == nil {
		panic("process: adjacency matrix not initialized")
	}
}
