package process

import (
	"fmt"

	"github.com/ctbnlab/goctbn/params"
)

// CTMP is a Continuous-Time Markov Process: a single node over an entire
// joint state space, produced by amalgamating a CTBN. It rejects a second
// node, and all edge and adjacency operations panic - its topology is fixed
// by construction.
type CTMP struct {
	param params.Node // nil until AddNode
}

// NewCTMP returns an empty single-node process.
func NewCTMP() *CTMP {
	return &CTMP{}
}

// AddNode stores the process's single node. A second insertion fails with
// ErrNodeInsertion.
func (c *CTMP) AddNode(n params.Node) (int, error) {
	if c.param != nil {
		return 0, fmt.Errorf("%w: CTMP has only one node", ErrNodeInsertion)
	}
	c.param = n

	return 0, nil
}

// AddEdge is unsupported on a CTMP.
func (c *CTMP) AddEdge(parent, child int) {
	panic("process: CTMP has only one node")
}

// InitAdjacency is unsupported on a CTMP.
func (c *CTMP) InitAdjacency() {
	panic("process: CTMP has only one node")
}

// NodeCount returns 1 once the node has been inserted, 0 before.
func (c *CTMP) NodeCount() int {
	if c.param == nil {
		return 0
	}

	return 1
}

// Node returns the single parameter block.
func (c *CTMP) Node(i int) params.Node {
	if i != 0 || c.param == nil {
		panic("process: CTMP has only one node")
	}

	return c.param
}

// ParentSet returns the empty set: the single node has no parents.
func (c *CTMP) ParentSet(node int) []int {
	c.mustNode(node)

	return nil
}

// ChildrenSet returns the empty set: the single node has no children.
func (c *CTMP) ChildrenSet(node int) []int {
	c.mustNode(node)

	return nil
}

// ParamIndex returns the CIM row index for the single node: its own state,
// since the amalgamated CIM holds one configuration.
func (c *CTMP) ParamIndex(node int, state NetworkState) int {
	c.mustNode(node)

	return state[0]
}

// CustomParamIndex is unsupported on a CTMP.
func (c *CTMP) CustomParamIndex(state NetworkState, parentSet []int) int {
	panic("process: CTMP has only one node")
}

func (c *CTMP) mustNode(node int) {
	if c.param == nil {
		panic("process: uninitialized CTMP")
	}
	if node != 0 {
		panic("process: CTMP has only one node")
	}
}
