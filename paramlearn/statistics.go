package paramlearn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/process"
)

// SufficientStatistics scans ds and accumulates, for one node under the
// given parent set, the transition counts M (one cardinality x cardinality
// matrix per parent configuration) and the residence times T
// (configurations x cardinality).
//
// The scan is a single linear pass over every consecutive sample pair: the
// parent-configuration row is the mixed-radix encoding of the pre-transition
// state restricted to parentSet, residence time accumulates t2-t1 for the
// node's pre-transition state, and a count accumulates when the node's state
// changed. Counts are exact; times accumulate in trajectory order.
func SufficientStatistics(net process.Model, ds *dataset.Dataset, node int, parentSet []int) ([]*mat.Dense, *mat.Dense) {
	card := net.Node(node).Cardinality()

	// Per-node strides of the mixed-radix parent-configuration encoding;
	// zero for nodes outside the parent set.
	strides := make([]int, net.NodeCount())
	configs := 1
	for _, p := range parentSet {
		strides[p] = configs
		configs *= net.Node(p).Cardinality()
	}

	m := make([]*mat.Dense, configs)
	for i := range m {
		m[i] = mat.NewDense(card, card, nil)
	}
	t := mat.NewDense(configs, card, nil)

	for _, trj := range ds.Trajectories() {
		time := trj.Time()
		events := trj.Events()
		for idx := 0; idx+1 < len(time); idx++ {
			ev1, ev2 := events[idx], events[idx+1]

			row := 0
			for _, p := range parentSet {
				row += strides[p] * ev1[p]
			}

			t.Set(row, ev1[node], t.At(row, ev1[node])+time[idx+1]-time[idx])
			if ev1[node] != ev2[node] {
				m[row].Set(ev1[node], ev2[node], m[row].At(ev1[node], ev2[node])+1)
			}
		}
	}

	return m, t
}
