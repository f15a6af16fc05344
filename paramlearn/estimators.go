package paramlearn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/params"
	"github.com/ctbnlab/goctbn/process"
)

// Estimator converts the sufficient statistics of one node into a fitted
// parameter block. A nil parentSet means the node's current parent set in
// net; an empty non-nil slice means no parents.
//
// The fitted block carries the CIM together with the M and T it was
// estimated from, which hypothesis tests consume downstream.
type Estimator interface {
	Fit(net process.Model, ds *dataset.Dataset, node int, parentSet []int) *params.Discrete
}

// MLE is the maximum-likelihood estimator: CIM[i,x,y] = M[i,x,y] / T[i,x]
// off-diagonal, diagonal set to the negated row sum.
//
// A parent configuration with zero residence time produces NaN entries; see
// the package comment.
type MLE struct{}

// Fit implements Estimator.
func (MLE) Fit(net process.Model, ds *dataset.Dataset, node int, parentSet []int) *params.Discrete {
	if parentSet == nil {
		parentSet = net.ParentSet(node)
	}
	m, t := SufficientStatistics(net, ds, node, parentSet)

	card := net.Node(node).Cardinality()
	cim := make([]*mat.Dense, len(m))
	for i := range m {
		g := mat.NewDense(card, card, nil)
		for x := 0; x < card; x++ {
			rowSum := 0.0
			for y := 0; y < card; y++ {
				v := m[i].At(x, y) / t.At(i, x)
				g.Set(x, y, v)
				rowSum += v
			}
			g.Set(x, x, -rowSum)
		}
		cim[i] = g
	}

	return fitted(net, node, cim, m, t)
}

// Bayesian is the Dirichlet-Gamma conjugate estimator. The prior strengths
// Alpha and Tau are spread uniformly over the parent configurations:
// CIM[i,x,y] = (M[i,x,y] + Alpha/n) / (T[i,x] + Tau/n) off-diagonal, with
// the diagonal zeroed and then set to the negated row sum.
type Bayesian struct {
	Alpha float64
	Tau   float64
}

// Fit implements Estimator.
func (b Bayesian) Fit(net process.Model, ds *dataset.Dataset, node int, parentSet []int) *params.Discrete {
	if parentSet == nil {
		parentSet = net.ParentSet(node)
	}
	m, t := SufficientStatistics(net, ds, node, parentSet)

	alpha := b.Alpha / float64(len(m))
	tau := b.Tau / float64(len(m))

	card := net.Node(node).Cardinality()
	cim := make([]*mat.Dense, len(m))
	for i := range m {
		g := mat.NewDense(card, card, nil)
		for x := 0; x < card; x++ {
			rowSum := 0.0
			for y := 0; y < card; y++ {
				if y == x {
					continue
				}
				v := (m[i].At(x, y) + alpha) / (t.At(i, x) + tau)
				g.Set(x, y, v)
				rowSum += v
			}
			g.Set(x, x, -rowSum)
		}
		cim[i] = g
	}

	return fitted(net, node, cim, m, t)
}

// fitted clones the node's block and installs the estimate through the
// unchecked setter, keeping M and T alongside the CIM.
func fitted(net process.Model, node int, cim, m []*mat.Dense, t *mat.Dense) *params.Discrete {
	blk := net.Node(node).Clone().(*params.Discrete)
	blk.SetCIMUnchecked(cim)
	blk.SetTransitions(m)
	blk.SetResidence(t)

	return blk
}
