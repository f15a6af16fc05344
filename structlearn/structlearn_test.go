package structlearn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/paramlearn"
	"github.com/ctbnlab/goctbn/params"
	"github.com/ctbnlab/goctbn/process"
	"github.com/ctbnlab/goctbn/sampling"
	"github.com/ctbnlab/goctbn/structlearn"
)

// singleNodeFixture is the one-node network and tiny trajectory whose
// closed-form scores are pinned below.
func singleNodeFixture(t *testing.T) (*process.CTBN, *dataset.Dataset) {
	t.Helper()

	net := process.NewCTBN()
	_, err := net.AddNode(params.NewDiscrete("n1", []string{"A", "B"}))
	require.NoError(t, err)
	net.InitAdjacency()

	ds := dataset.NewDataset([]*dataset.Trajectory{
		dataset.NewTrajectory(
			[]float64{0, 0.1, 0.3},
			[][]int{{0}, {1}, {1}},
		),
	})

	return net, ds
}

// chainForkNetwork builds the parameterized chain/fork 0 -> 1, 0 -> 2,
// 1 -> 2 the learners should recover. Each child reacts strongly to every
// parent configuration.
func chainForkNetwork(t *testing.T) *process.CTBN {
	t.Helper()

	net := process.NewCTBN()
	for _, label := range []string{"n1", "n2", "n3"} {
		_, err := net.AddNode(params.NewDiscrete(label, []string{"A", "B"}))
		require.NoError(t, err)
	}
	net.AddEdge(0, 1)
	net.AddEdge(0, 2)
	net.AddEdge(1, 2)

	require.NoError(t, net.Node(0).(*params.Discrete).SetCIM([]*mat.Dense{
		mat.NewDense(2, 2, []float64{-3, 3, 2, -2}),
	}))
	require.NoError(t, net.Node(1).(*params.Discrete).SetCIM([]*mat.Dense{
		mat.NewDense(2, 2, []float64{-1, 1, 4, -4}),
		mat.NewDense(2, 2, []float64{-6, 6, 2, -2}),
	}))
	// Node 2's configurations: index = state0 + 2*state1.
	require.NoError(t, net.Node(2).(*params.Discrete).SetCIM([]*mat.Dense{
		mat.NewDense(2, 2, []float64{-1, 1, 4, -4}),
		mat.NewDense(2, 2, []float64{-6, 6, 2, -2}),
		mat.NewDense(2, 2, []float64{-10, 10, 1, -1}),
		mat.NewDense(2, 2, []float64{-2, 2, 8, -8}),
	}))

	return net
}

// TestLogLikelihood_ClosedForm pins the marginal log-likelihood of the
// single-node fixture: ln 2 - 3 ln 1.1 - 2 ln 1.2.
func TestLogLikelihood_ClosedForm(t *testing.T) {
	net, ds := singleNodeFixture(t)
	ll := structlearn.NewLogLikelihood(1, 1.0)

	assert.InDelta(t, 0.04257, ll.Call(net, 0, []int{}, ds), 1e-4)
}

// TestBIC_ClosedForm pins the penalized score of the same fixture: the
// log-likelihood minus ln(2)/2 * 2 parameters.
func TestBIC_ClosedForm(t *testing.T) {
	net, ds := singleNodeFixture(t)
	bic := structlearn.NewBIC(1, 1.0)

	assert.InDelta(t, -0.65058, bic.Call(net, 0, []int{}, ds), 1e-4)
}

// TestNewLogLikelihood_NegativeTau panics: the Gamma prior needs a
// non-negative rate.
func TestNewLogLikelihood_NegativeTau(t *testing.T) {
	assert.Panics(t, func() { structlearn.NewLogLikelihood(1, -0.5) })
}

// countingEstimator wraps an estimator and counts Fit invocations, to
// observe the cache from outside.
type countingEstimator struct {
	inner paramlearn.Estimator
	calls int
}

func (c *countingEstimator) Fit(net process.Model, ds *dataset.Dataset, node int, parentSet []int) *params.Discrete {
	c.calls++

	return c.inner.Fit(net, ds, node, parentSet)
}

// TestCache_Memoizes ensures a repeated parent set estimates only once.
func TestCache_Memoizes(t *testing.T) {
	net := chainForkNetwork(t)
	ds, err := sampling.Generate(net, 2, 10.0, sampling.WithSeed(31))
	require.NoError(t, err)

	counting := &countingEstimator{inner: paramlearn.MLE{}}
	cache := structlearn.NewCache(counting)

	first := cache.Fit(net, ds, 2, []int{0})
	second := cache.Fit(net, ds, 2, []int{0})
	assert.Same(t, first, second, "a hit returns the memoized block")
	assert.Equal(t, 1, counting.calls)
}

// TestCache_GenerationEviction verifies the two-generation policy: sets two
// sizes behind the frontier are re-estimated, the previous size class
// survives the swap.
func TestCache_GenerationEviction(t *testing.T) {
	net := chainForkNetwork(t)
	ds, err := sampling.Generate(net, 2, 10.0, sampling.WithSeed(37))
	require.NoError(t, err)

	counting := &countingEstimator{inner: paramlearn.MLE{}}
	cache := structlearn.NewCache(counting)

	cache.Fit(net, ds, 2, []int{})     // size 0, small generation
	cache.Fit(net, ds, 2, []int{0})    // size 1, big generation
	cache.Fit(net, ds, 2, []int{0, 1}) // size 2, swaps generations
	require.Equal(t, 3, counting.calls)

	cache.Fit(net, ds, 2, []int{0})
	assert.Equal(t, 3, counting.calls, "the previous size class survives the swap")

	cache.Fit(net, ds, 2, []int{})
	assert.Equal(t, 4, counting.calls, "size classes two behind the frontier are evicted")
}

// proportionalCounts are two count tensors drawn from the same transition
// distribution at different sample sizes; the chi-square statistic is
// exactly zero for them.
func proportionalCounts() ([]*mat.Dense, []*mat.Dense) {
	m1 := []*mat.Dense{mat.NewDense(3, 3, []float64{
		0, 20, 30,
		40, 0, 60,
		70, 80, 0,
	})}
	m2 := []*mat.Dense{mat.NewDense(3, 3, []float64{
		0, 200, 300,
		400, 0, 600,
		700, 800, 0,
	})}

	return m1, m2
}

// TestChiSquare_CompareMatrices_Proportional accepts proportional counts as
// indistinguishable.
func TestChiSquare_CompareMatrices_Proportional(t *testing.T) {
	m1, m2 := proportionalCounts()
	chi := structlearn.ChiSquare{Alpha: 0.1}

	assert.True(t, chi.CompareMatrices(0, m1, 0, m2))
}

// TestChiSquare_CompareMatrices_Skewed rejects counts whose off-diagonal
// distribution is flipped.
func TestChiSquare_CompareMatrices_Skewed(t *testing.T) {
	m1, _ := proportionalCounts()
	m2 := []*mat.Dense{mat.NewDense(3, 3, []float64{
		0, 300, 200,
		600, 0, 400,
		800, 700, 0,
	})}
	chi := structlearn.ChiSquare{Alpha: 0.1}

	assert.False(t, chi.CompareMatrices(0, m1, 0, m2))
}

// TestFTest_CompareMatrices accepts equal exit rates and rejects rates an
// order of magnitude apart.
func TestFTest_CompareMatrices(t *testing.T) {
	m1, m2 := proportionalCounts()
	cim1 := []*mat.Dense{mat.NewDense(3, 3, []float64{
		-5, 2, 3,
		4, -10, 6,
		7, 8, -15,
	})}
	cimSame := []*mat.Dense{mat.DenseCopyOf(cim1[0])}
	f := structlearn.FTest{Alpha: 0.1}

	assert.True(t, f.CompareMatrices(0, m1, cim1, 0, m2, cimSame),
		"identical rates must not be rejected")

	cimScaled := []*mat.Dense{mat.NewDense(3, 3, []float64{
		-50, 20, 30,
		40, -100, 60,
		70, 80, -150,
	})}
	assert.False(t, f.CompareMatrices(0, m1, cim1, 0, m2, cimScaled),
		"a tenfold rate gap must be rejected")
}

// TestHillClimbing_RecoversStructure learns the chain/fork's structure from a long
// seeded sample with the BIC score.
func TestHillClimbing_RecoversStructure(t *testing.T) {
	net := chainForkNetwork(t)
	ds, err := sampling.Generate(net, 100, 100.0, sampling.WithSeed(6347747169756259))
	require.NoError(t, err)

	hc := structlearn.NewHillClimbing(structlearn.NewBIC(1, 0.1), 0)
	hc.FitTransform(net, ds)

	assert.Empty(t, net.ParentSet(0), "the root has no parents")
	assert.Equal(t, []int{0}, net.ParentSet(1))
	assert.Equal(t, []int{0, 1}, net.ParentSet(2))
}

// TestHillClimbing_MaxParents bounds the learned parent sets.
func TestHillClimbing_MaxParents(t *testing.T) {
	net := chainForkNetwork(t)
	ds, err := sampling.Generate(net, 30, 30.0, sampling.WithSeed(41))
	require.NoError(t, err)

	hc := structlearn.NewHillClimbing(structlearn.NewBIC(1, 0.1), 1)
	hc.FitTransform(net, ds)

	for node := 0; node < net.NodeCount(); node++ {
		assert.LessOrEqual(t, len(net.ParentSet(node)), 1,
			"node %d exceeds the parent bound", node)
	}
}

// TestCTPC_RecoversStructure learns the chain/fork's structure with the
// constraint-based algorithm.
func TestCTPC_RecoversStructure(t *testing.T) {
	net := chainForkNetwork(t)
	ds, err := sampling.Generate(net, 100, 100.0, sampling.WithSeed(6347747169756259))
	require.NoError(t, err)

	ctpc := structlearn.NewCTPC(
		paramlearn.Bayesian{Alpha: 1, Tau: 1},
		structlearn.FTest{Alpha: 1e-6},
		structlearn.ChiSquare{Alpha: 1e-4},
	)
	ctpc.FitTransform(net, ds)

	assert.Empty(t, net.ParentSet(0), "the root has no parents")
	assert.Equal(t, []int{0}, net.ParentSet(1))
	assert.Equal(t, []int{0, 1}, net.ParentSet(2))
}

// TestFitTransform_CoherencePanic rejects a dataset describing a different
// number of variables than the network.
func TestFitTransform_CoherencePanic(t *testing.T) {
	net := chainForkNetwork(t)
	ds := dataset.NewDataset([]*dataset.Trajectory{
		dataset.NewTrajectory([]float64{0, 1}, [][]int{{0}, {1}}),
	})

	hc := structlearn.NewHillClimbing(structlearn.NewBIC(1, 0.1), 0)
	assert.Panics(t, func() { hc.FitTransform(net, ds) })
}
