package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ctbnlab/goctbn/params"
	"github.com/ctbnlab/goctbn/process"
	"github.com/ctbnlab/goctbn/sampling"
)

// chainNetwork builds the parameterized binary chain 0 -> 1 used across
// sampling tests: node 1 flips faster when it disagrees with its parent.
func chainNetwork(t *testing.T) *process.CTBN {
	t.Helper()

	net := process.NewCTBN()
	n0, err := net.AddNode(params.NewDiscrete("n1", []string{"A", "B"}))
	require.NoError(t, err)
	n1, err := net.AddNode(params.NewDiscrete("n2", []string{"A", "B"}))
	require.NoError(t, err)
	net.AddEdge(n0, n1)

	require.NoError(t, net.Node(n0).(*params.Discrete).SetCIM([]*mat.Dense{
		mat.NewDense(2, 2, []float64{-3, 3, 2, -2}),
	}))
	require.NoError(t, net.Node(n1).(*params.Discrete).SetCIM([]*mat.Dense{
		mat.NewDense(2, 2, []float64{-1, 1, 4, -4}),
		mat.NewDense(2, 2, []float64{-6, 6, 2, -2}),
	}))

	return net
}

// TestForwardSampler_RejectsUnparameterized fails construction when any
// node misses its CIM.
func TestForwardSampler_RejectsUnparameterized(t *testing.T) {
	net := process.NewCTBN()
	_, err := net.AddNode(params.NewDiscrete("n1", []string{"A", "B"}))
	require.NoError(t, err)
	net.InitAdjacency()

	_, err = sampling.NewForwardSampler(net)
	assert.ErrorIs(t, err, params.ErrParametersNotInitialized,
		"construction must surface the missing CIM")
}

// TestForwardSampler_FirstSample emits the initial state at t=0 before any
// transition.
func TestForwardSampler_FirstSample(t *testing.T) {
	net := chainNetwork(t)
	initial := process.NetworkState{1, 0}

	sampler, err := sampling.NewForwardSampler(net,
		sampling.WithSeed(42), sampling.WithInitialState(initial))
	require.NoError(t, err)

	first := sampler.Next()
	assert.Equal(t, 0.0, first.T)
	assert.Equal(t, initial, first.State)
}

// TestForwardSampler_SingleFlipPerTransition verifies times strictly
// increase and exactly one node changes per step.
func TestForwardSampler_SingleFlipPerTransition(t *testing.T) {
	net := chainNetwork(t)
	sampler, err := sampling.NewForwardSampler(net, sampling.WithSeed(7))
	require.NoError(t, err)

	previous := sampler.Next()
	for i := 0; i < 200; i++ {
		current := sampler.Next()
		require.Greater(t, current.T, previous.T, "time must strictly increase")

		flips := 0
		for n := range current.State {
			if current.State[n] != previous.State[n] {
				flips++
			}
		}
		require.Equal(t, 1, flips, "exactly one node transitions per step")
		previous = current
	}
}

// TestForwardSampler_Deterministic checks two samplers with the same seed
// and initial state produce identical sequences.
func TestForwardSampler_Deterministic(t *testing.T) {
	net := chainNetwork(t)
	initial := process.NetworkState{0, 1}

	a, err := sampling.NewForwardSampler(net,
		sampling.WithSeed(99), sampling.WithInitialState(initial))
	require.NoError(t, err)
	b, err := sampling.NewForwardSampler(net,
		sampling.WithSeed(99), sampling.WithInitialState(initial))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		sa, sb := a.Next(), b.Next()
		require.Equal(t, sa.T, sb.T, "times diverge at step %d", i)
		require.Equal(t, sa.State, sb.State, "states diverge at step %d", i)
	}
}

// TestForwardSampler_Reset re-enters the fixed initial state at t=0 without
// reseeding the random stream.
func TestForwardSampler_Reset(t *testing.T) {
	net := chainNetwork(t)
	initial := process.NetworkState{1, 1}

	sampler, err := sampling.NewForwardSampler(net,
		sampling.WithSeed(5), sampling.WithInitialState(initial))
	require.NoError(t, err)

	firstRun := sampler.Next()
	for i := 0; i < 10; i++ {
		sampler.Next()
	}

	sampler.Reset()
	restarted := sampler.Next()
	assert.Equal(t, 0.0, restarted.T, "Reset restarts the clock")
	assert.Equal(t, initial, restarted.State, "Reset restores the initial state")

	// The continuing stream makes the second run differ after the start.
	assert.Equal(t, firstRun.State, restarted.State)
}

// TestGenerate_Shape verifies trajectory count, horizon closure and the
// duplicated final state.
func TestGenerate_Shape(t *testing.T) {
	net := chainNetwork(t)
	const (
		n    = 5
		tEnd = 10.0
	)

	ds, err := sampling.Generate(net, n, tEnd, sampling.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, ds.Trajectories(), n)
	assert.Equal(t, 2, ds.Variables())

	for _, trj := range ds.Trajectories() {
		time := trj.Time()
		events := trj.Events()

		require.GreaterOrEqual(t, trj.Len(), 2)
		assert.Equal(t, 0.0, time[0], "trajectories start at t=0")
		assert.Equal(t, tEnd, time[len(time)-1], "trajectories close at the horizon")
		assert.Equal(t, events[len(events)-2], events[len(events)-1],
			"the closing sample repeats the last state")

		for i := 0; i+1 < len(time); i++ {
			require.Less(t, time[i], time[i+1], "times must strictly increase")
		}
	}
}

// TestGenerate_Unparameterized propagates the construction error.
func TestGenerate_Unparameterized(t *testing.T) {
	net := process.NewCTBN()
	_, err := net.AddNode(params.NewDiscrete("n1", []string{"A", "B"}))
	require.NoError(t, err)
	net.InitAdjacency()

	_, err = sampling.Generate(net, 1, 1.0)
	assert.ErrorIs(t, err, params.ErrParametersNotInitialized)
}
