package structlearn

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/process"
)

// Algorithm learns, per node, a parent set from ds and commits the result
// into net's adjacency matrix, returning the same model. The incoming
// adjacency is discarded: learning starts from scratch.
type Algorithm interface {
	FitTransform(net process.Model, ds *dataset.Dataset) process.Model
}

// checkCoherence panics when the dataset does not describe the same number
// of variables as the model. That mismatch is a caller programming error.
func checkCoherence(net process.Model, ds *dataset.Dataset) {
	if net.NodeCount() != ds.Variables() {
		panic("structlearn: dataset and network must have the same number of variables")
	}
}

// setKey is the canonical, order-independent identity of a parent set.
// Parent sets are kept sorted ascending throughout the package.
func setKey(set []int) string {
	var b strings.Builder
	for i, v := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// insertSorted returns a new sorted set with v added.
func insertSorted(set []int, v int) []int {
	out := make([]int, 0, len(set)+1)
	out = append(out, set...)
	out = append(out, v)
	sort.Ints(out)

	return out
}

// remove returns a new set with v filtered out, preserving order.
func remove(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, x := range set {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
