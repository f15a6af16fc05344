package structlearn

import (
	"golang.org/x/sync/errgroup"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/internal/logging"
	"github.com/ctbnlab/goctbn/paramlearn"
	"github.com/ctbnlab/goctbn/process"
)

// CTPC is the constraint-based structure-learning algorithm (continuous-time
// PC): per node, starting from all other nodes as candidate parents, it
// removes a candidate as soon as both hypothesis tests agree that, given
// some separation set, the candidate adds no information. Separation sets
// grow by exactly one element per outer round, which is what the Cache's
// two-generation eviction relies on.
type CTPC struct {
	estimator paramlearn.Estimator
	fTest     FTest
	chiTest   ChiSquare
}

// NewCTPC builds the algorithm over a parameter estimator and the two
// hypothesis tests.
func NewCTPC(estimator paramlearn.Estimator, fTest FTest, chiTest ChiSquare) *CTPC {
	return &CTPC{estimator: estimator, fTest: fTest, chiTest: chiTest}
}

// FitTransform implements Algorithm. Per-node searches run fork-join in
// parallel, each with its own Cache; edges are committed serially after
// every search has returned.
func (c *CTPC) FitTransform(net process.Model, ds *dataset.Dataset) process.Model {
	checkCoherence(net, ds)

	net.InitAdjacency()
	log := logging.New("structlearn")

	learned := make([][]int, net.NodeCount())
	var g errgroup.Group
	for node := 0; node < net.NodeCount(); node++ {
		g.Go(func() error {
			log.Info("learning node", "algorithm", "ctpc", "node", node)
			learned[node] = c.learnNode(net, ds, node)

			return nil
		})
	}
	_ = g.Wait() // searches never fail; they run to exhaustion

	for child, parents := range learned {
		for _, parent := range parents {
			net.AddEdge(parent, child)
		}
	}

	return net
}

// learnNode prunes the candidate parent set of a single node.
func (c *CTPC) learnNode(net process.Model, ds *dataset.Dataset, node int) []int {
	cache := NewCache(c.estimator)

	candidates := make([]int, 0, net.NodeCount()-1)
	for i := 0; i < net.NodeCount(); i++ {
		if i != node {
			candidates = append(candidates, i)
		}
	}

	for size := 0; size < len(candidates); size++ {
		surviving := append([]int(nil), candidates...)
		for _, parent := range candidates {
			others := remove(candidates, parent)
			for _, separationSet := range subsets(others, size) {
				if c.fTest.Call(net, node, parent, separationSet, ds, cache) &&
					c.chiTest.Call(net, node, parent, separationSet, ds, cache) {
					surviving = remove(surviving, parent)

					break
				}
			}
		}
		candidates = surviving
	}

	return candidates
}

// subsets enumerates every size-k subset of the sorted set, each itself
// sorted ascending. Size 0 yields the single empty set.
func subsets(set []int, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if k > len(set) {
		return nil
	}

	combos := combin.Combinations(len(set), k)
	out := make([][]int, len(combos))
	for i, combo := range combos {
		subset := make([]int, k)
		for j, idx := range combo {
			subset[j] = set[idx]
		}
		out[i] = subset
	}

	return out
}
