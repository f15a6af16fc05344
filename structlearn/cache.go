package structlearn

import (
	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/params"
	"github.com/ctbnlab/goctbn/paramlearn"
	"github.com/ctbnlab/goctbn/process"
)

// Cache memoizes estimator results keyed by canonical parent-set identity.
//
// Entries live in two generations: "small" holds parent sets of size at most
// frontier, "big" the rest. CTPC's separation-set size grows monotonically
// by exactly one per outer iteration, so only the current and the previous
// size classes are ever revisited; when a request exceeds frontier+1 the
// generations swap, the new big generation is cleared and the frontier
// advances. This is a correctness property of CTPC's complexity bound, not
// just a memory optimization.
//
// A Cache is single-owner: each per-node search task creates its own.
// Cached blocks are shared between lookups; callers must not mutate them.
type Cache struct {
	estimator paramlearn.Estimator
	small     map[string]*params.Discrete
	big       map[string]*params.Discrete
	frontier  int // largest parent-set size held in the small generation
}

// NewCache wraps estimator with frontier-tracked memoization.
func NewCache(estimator paramlearn.Estimator) *Cache {
	return &Cache{
		estimator: estimator,
		small:     make(map[string]*params.Discrete),
		big:       make(map[string]*params.Discrete),
	}
}

// Fit returns the fitted block for node under parentSet (non-nil; empty
// means no parents), estimating and memoizing it on a miss.
func (c *Cache) Fit(net process.Model, ds *dataset.Dataset, node int, parentSet []int) *params.Discrete {
	if len(parentSet) > c.frontier+1 {
		c.small, c.big = c.big, make(map[string]*params.Discrete)
		c.frontier++
	}

	generation := c.small
	if len(parentSet) > c.frontier {
		generation = c.big
	}

	key := setKey(parentSet)
	if blk, ok := generation[key]; ok {
		return blk
	}
	blk := c.estimator.Fit(net, ds, node, parentSet)
	generation[key] = blk

	return blk
}
