package reward

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ctbnlab/goctbn/process"
)

// Reward is the two-part reward of one transition: a lump sum for the
// transition itself and a rate accrued per unit of time in the current
// state.
type Reward struct {
	Transition    float64
	Instantaneous float64
}

// Function evaluates the reward of reaching current from previous. A nil
// previous means there was no transition: only the instantaneous part is
// meaningful.
type Function interface {
	Call(current, previous process.NetworkState) Reward
}

// Factored is a reward function over a factored state space: the reward is
// the sum over nodes of a per-node transition reward matrix and a per-node
// instantaneous reward vector. At most one node changes per transition, so
// the transition part reads the first differing node.
type Factored struct {
	transition    []*mat.Dense
	instantaneous []*mat.VecDense
}

// NewFactored sizes a zero reward function after the nodes of m.
func NewFactored(m process.Model) *Factored {
	f := &Factored{
		transition:    make([]*mat.Dense, m.NodeCount()),
		instantaneous: make([]*mat.VecDense, m.NodeCount()),
	}
	for i := 0; i < m.NodeCount(); i++ {
		card := m.Node(i).Cardinality()
		f.transition[i] = mat.NewDense(card, card, nil)
		f.instantaneous[i] = mat.NewVecDense(card, nil)
	}

	return f
}

// TransitionReward returns node's mutable transition reward matrix, indexed
// [from, to].
func (f *Factored) TransitionReward(node int) *mat.Dense { return f.transition[node] }

// InstantaneousReward returns node's mutable per-state reward-rate vector.
func (f *Factored) InstantaneousReward(node int) *mat.VecDense { return f.instantaneous[node] }

// Call implements Function.
func (f *Factored) Call(current, previous process.NetworkState) Reward {
	var r Reward
	for node, state := range current {
		r.Instantaneous += f.instantaneous[node].AtVec(state)
	}
	if previous == nil {
		return r
	}
	for node := range current {
		if previous[node] != current[node] {
			r.Transition = f.transition[node].At(previous[node], current[node])

			break
		}
	}

	return r
}
