package structlearn

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/internal/logging"
	"github.com/ctbnlab/goctbn/process"
)

// HillClimbing is the score-based structure-learning algorithm: per node,
// starting from the empty parent set, it repeatedly toggles candidate-parent
// membership and keeps a toggle only when the score strictly improves,
// stopping at a full pass with no improvement. The result is a local
// optimum, not guaranteed global.
type HillClimbing struct {
	score ScoreFunction

	// maxParents bounds the size of any learned parent set; 0 means no bound.
	maxParents int
}

// NewHillClimbing builds the algorithm over a scoring function. maxParents
// bounds the learned parent sets; pass 0 for no bound.
func NewHillClimbing(score ScoreFunction, maxParents int) *HillClimbing {
	return &HillClimbing{score: score, maxParents: maxParents}
}

// FitTransform implements Algorithm. Per-node searches run fork-join in
// parallel, reading net and ds only; edges are committed serially after
// every search has returned.
func (h *HillClimbing) FitTransform(net process.Model, ds *dataset.Dataset) process.Model {
	checkCoherence(net, ds)

	maxParents := h.maxParents
	if maxParents == 0 {
		maxParents = net.NodeCount()
	}

	net.InitAdjacency()
	log := logging.New("structlearn")

	learned := make([][]int, net.NodeCount())
	var g errgroup.Group
	for node := 0; node < net.NodeCount(); node++ {
		g.Go(func() error {
			log.Info("learning node", "algorithm", "hill-climbing", "node", node)
			learned[node] = h.learnNode(net, ds, node, maxParents)

			return nil
		})
	}
	_ = g.Wait() // searches never fail; they run to a local optimum

	for child, parents := range learned {
		for _, parent := range parents {
			net.AddEdge(parent, child)
		}
	}

	return net
}

// learnNode greedily searches the parent set of a single node.
func (h *HillClimbing) learnNode(net process.Model, ds *dataset.Dataset, node, maxParents int) []int {
	parentSet := map[int]bool{}
	currentScore := h.score.Call(net, node, sorted(parentSet), ds)
	oldScore := math.Inf(-1)

	for currentScore > oldScore {
		oldScore = currentScore
		for parent := 0; parent < net.NodeCount(); parent++ {
			if parent == node {
				continue
			}

			// Toggle membership, respecting the parent-set bound.
			removed := parentSet[parent]
			if removed {
				delete(parentSet, parent)
			} else if len(parentSet) < maxParents {
				parentSet[parent] = true
			} else {
				continue
			}

			score := h.score.Call(net, node, sorted(parentSet), ds)
			if score > currentScore {
				currentScore = score
			} else {
				// Revert: the toggle did not strictly improve the score.
				if removed {
					parentSet[parent] = true
				} else {
					delete(parentSet, parent)
				}
			}
		}
	}

	return sorted(parentSet)
}

func sorted(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
