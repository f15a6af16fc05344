package structlearn

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/params"
	"github.com/ctbnlab/goctbn/process"
)

// HypothesisTest decides whether conditioning a node on parent adds
// information beyond the separation set alone. It fits (through the cache)
// two nested models - one on separationSet, one on separationSet plus parent
// - and compares every matched pair of CIM rows. It reports true when the
// two models are statistically indistinguishable, i.e. independence is not
// rejected at the test's significance level.
type HypothesisTest interface {
	Call(net process.Model, child, parent int, separationSet []int, ds *dataset.Dataset, cache *Cache) bool
}

// ChiSquare is the two-sample chi-squared test on transition counts.
//
// Alpha is the significance level: the probability of rejecting a true null
// hypothesis, i.e. of concluding the variables are associated when they are
// not.
type ChiSquare struct {
	Alpha float64
}

// Call implements HypothesisTest.
func (c ChiSquare) Call(net process.Model, child, parent int, separationSet []int, ds *dataset.Dataset, cache *Cache) bool {
	small, big, partial := nestedFits(net, child, parent, separationSet, ds, cache)
	cardParent := net.Node(parent).Cardinality()

	for idxBig := range big.Transitions() {
		idxSmall := smallRow(idxBig, partial, cardParent)
		if !c.CompareMatrices(idxSmall, small.Transitions(), idxBig, big.Transitions()) {
			return false
		}
	}

	return true
}

// CompareMatrices compares matrix i of the small model's count tensor m1
// with matrix j of the big model's count tensor m2, following Bregoli,
// Scutari and Stella (2021), "A constraint-based algorithm for the
// structural learning of continuous-time Bayesian networks".
//
// Per row, the counts are rescaled by K = sqrt(rowsum(M1)/rowsum(M2)) and
// L = 1/K, the per-cell statistic (K*M2 - L*M1)^2 / (M2 + M1) is summed with
// the diagonal zeroed, and the sum is referred to a chi-squared distribution
// with cardinality-1 degrees of freedom. True (independent) requires every
// row's CDF value to stay below 1-Alpha.
func (c ChiSquare) CompareMatrices(i int, m1 []*mat.Dense, j int, m2 []*mat.Dense) bool {
	g1, g2 := m1[i], m2[j]
	card, _ := g1.Dims()

	chi2 := distuv.ChiSquared{K: float64(card - 1)}
	for x := 0; x < card; x++ {
		k := math.Sqrt(rowSum(g1, x) / rowSum(g2, x))
		l := 1 / k

		statistic := 0.0
		for y := 0; y < card; y++ {
			if y == x {
				continue
			}
			diff := k*g2.At(x, y) - l*g1.At(x, y)
			statistic += diff * diff / (g2.At(x, y) + g1.At(x, y))
		}
		if !(chi2.CDF(statistic) < 1-c.Alpha) {
			return false
		}
	}

	return true
}

// FTest compares the exit rates of matched CIM rows under a
// Fisher-Snedecor distribution parameterized by the rows' total transition
// counts.
//
// Alpha is the significance level; independence requires every row's CDF
// value to lie inside [Alpha/2, 1-Alpha/2].
type FTest struct {
	Alpha float64
}

// Call implements HypothesisTest.
func (f FTest) Call(net process.Model, child, parent int, separationSet []int, ds *dataset.Dataset, cache *Cache) bool {
	small, big, partial := nestedFits(net, child, parent, separationSet, ds, cache)
	cardParent := net.Node(parent).Cardinality()

	for idxBig := range big.Transitions() {
		idxSmall := smallRow(idxBig, partial, cardParent)
		if !f.CompareMatrices(idxSmall, small.Transitions(), small.CIM(), idxBig, big.Transitions(), big.CIM()) {
			return false
		}
	}

	return true
}

// CompareMatrices compares matrix i of the small model against matrix j of
// the big model: per row, the ratio of diagonal (negative total) rates is
// referred to an F distribution whose degrees of freedom are the two rows'
// total transition counts.
func (f FTest) CompareMatrices(i int, m1 []*mat.Dense, cim1 []*mat.Dense, j int, m2 []*mat.Dense, cim2 []*mat.Dense) bool {
	card, _ := m1[i].Dims()

	for x := 0; x < card; x++ {
		r1 := rowSum(m1[i], x)
		r2 := rowSum(m2[j], x)
		s := cim2[j].At(x, x) / cim1[i].At(x, x)

		v := distuv.F{D1: r1, D2: r2}.CDF(s)
		if v < f.Alpha/2 || v > 1-f.Alpha/2 {
			return false
		}
	}

	return true
}

// nestedFits fits the child on the separation set alone and on the
// separation set extended with parent, and returns both blocks together
// with the product of cardinalities of separation-set members ordered
// before parent - the stride parent contributes to the big model's row
// encoding.
func nestedFits(net process.Model, child, parent int, separationSet []int, ds *dataset.Dataset, cache *Cache) (small, big *params.Discrete, partial int) {
	small = cache.Fit(net, ds, child, separationSet)
	extended := insertSorted(separationSet, parent)
	big = cache.Fit(net, ds, child, extended)

	partial = 1
	for _, p := range extended {
		if p == parent {
			break
		}
		partial *= net.Node(p).Cardinality()
	}

	return small, big, partial
}

// smallRow maps the big model's mixed-radix row index onto the small
// model's by stripping the stride contributed by the tested parent.
func smallRow(idxBig, partial, cardParent int) int {
	return idxBig%partial + idxBig/(partial*cardParent)*partial
}
