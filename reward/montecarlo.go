package reward

import (
	"math"

	"golang.org/x/sync/errgroup"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ctbnlab/goctbn/process"
	"github.com/ctbnlab/goctbn/sampling"
)

// Criterion selects how trajectory rewards are aggregated over time.
type Criterion int

const (
	// FiniteHorizon integrates undiscounted rewards up to the end time.
	FiniteHorizon Criterion = iota

	// InfiniteHorizon discounts rewards exponentially by the evaluator's
	// discount factor.
	InfiniteHorizon
)

// Evaluator estimates the expected reward of starting states of a process.
type Evaluator interface {
	// EvaluateStateSpace evaluates every joint state, keyed by its
	// mixed-radix joint index (see process.JointIndex).
	EvaluateStateSpace(m process.Model, rf Function) map[int]float64

	// EvaluateState evaluates a single starting state.
	EvaluateState(m process.Model, rf Function, state process.NetworkState) float64
}

// MonteCarlo approximates expected rewards by simulating trajectories with
// the forward sampler. Estimation of one state stops after MaxIterations
// trajectories, or earlier once a sequential normal-approximation test at
// level AlphaStop bounds the absolute error of the running mean by
// MaxErrStop.
type MonteCarlo struct {
	MaxIterations int
	MaxErrStop    float64
	AlphaStop     float64
	EndTime       float64
	Criterion     Criterion

	// DiscountFactor applies under InfiniteHorizon only.
	DiscountFactor float64

	// Seed, when non-nil, fixes every per-state sampler stream.
	Seed *int64
}

// EvaluateStateSpace implements Evaluator, evaluating all joint states in
// parallel.
func (mc *MonteCarlo) EvaluateStateSpace(m process.Model, rf Function) map[int]float64 {
	cards := process.Cardinalities(m)
	nStates := 1
	for _, c := range cards {
		nStates *= c
	}

	values := make([]float64, nStates)
	var g errgroup.Group
	for idx := 0; idx < nStates; idx++ {
		g.Go(func() error {
			values[idx] = mc.EvaluateState(m, rf, process.StateFromIndex(cards, idx))

			return nil
		})
	}
	_ = g.Wait() // evaluation never fails; samplers are validated up front

	out := make(map[int]float64, nStates)
	for idx, v := range values {
		out[idx] = v
	}

	return out
}

// EvaluateState implements Evaluator.
func (mc *MonteCarlo) EvaluateState(m process.Model, rf Function, state process.NetworkState) float64 {
	opts := []sampling.Option{sampling.WithInitialState(state)}
	if mc.Seed != nil {
		opts = append(opts, sampling.WithSeed(*mc.Seed))
	}
	sampler, err := sampling.NewForwardSampler(m, opts...)
	if err != nil {
		panic(err) // caller supplied an unparameterized model
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	mean, squaredMean := 0.0, 0.0

	for i := 0; i < mc.MaxIterations; i++ {
		sampler.Reset()
		ret := mc.simulateOnce(sampler, rf)

		n := float64(i)
		mean = mean*n/(n+1) + ret/(n+1)
		squaredMean = squaredMean*n/(n+1) + ret*ret/(n+1)

		if i > 2 {
			variance := (n + 1) / n * (squaredMean - mean*mean)
			if mc.AlphaStop-2*normal.CDF(-math.Sqrt(n+1)*mc.MaxErrStop/math.Sqrt(variance)) > 0 {
				return mean
			}
		}
	}

	return mean
}

// simulateOnce accumulates the (possibly discounted) reward of a single
// trajectory up to the horizon.
func (mc *MonteCarlo) simulateOnce(sampler sampling.Sampler, rf Function) float64 {
	ret := 0.0
	previous := sampler.Next()

	for previous.T < mc.EndTime {
		current := sampler.Next()
		if current.T > mc.EndTime {
			// The trajectory outlives the horizon: accrue the instantaneous
			// reward of the last state up to EndTime, with no transition.
			r := rf.Call(previous.State, nil)
			ret += mc.weight(previous.T, mc.EndTime) * r.Instantaneous
		} else {
			r := rf.Call(current.State, previous.State)
			ret += mc.weight(previous.T, current.T) * r.Instantaneous
			ret += mc.lump(current.T) * r.Transition
		}
		previous = current
	}

	return ret
}

// weight is the time measure of the interval [from, to] under the
// criterion: its length, or its discounted length.
func (mc *MonteCarlo) weight(from, to float64) float64 {
	switch mc.Criterion {
	case InfiniteHorizon:
		return math.Exp(-mc.DiscountFactor*from) - math.Exp(-mc.DiscountFactor*to)
	default:
		return to - from
	}
}

// lump is the weight of a lump transition reward received at time t.
func (mc *MonteCarlo) lump(t float64) float64 {
	if mc.Criterion == InfiniteHorizon {
		return math.Exp(-mc.DiscountFactor * t)
	}

	return 1
}

// NeighborhoodRelative wraps an Evaluator and reports, per state, the
// maximum ratio between the state's expected reward and that of every state
// reachable with one transition (Hamming distance at most one).
type NeighborhoodRelative struct {
	Inner Evaluator
}

// EvaluateStateSpace implements Evaluator.
func (nr *NeighborhoodRelative) EvaluateStateSpace(m process.Model, rf Function) map[int]float64 {
	absolute := nr.Inner.EvaluateStateSpace(m, rf)
	cards := process.Cardinalities(m)

	out := make(map[int]float64, len(absolute))
	for k1, v1 := range absolute {
		s1 := process.StateFromIndex(cards, k1)
		maxVal := 1.0
		for k2, v2 := range absolute {
			s2 := process.StateFromIndex(cards, k2)
			if hamming(s1, s2) < 2 {
				maxVal = math.Max(maxVal, v1/v2)
			}
		}
		out[k1] = maxVal
	}

	return out
}

// EvaluateState is not meaningful for a relative measure.
func (nr *NeighborhoodRelative) EvaluateState(m process.Model, rf Function, state process.NetworkState) float64 {
	panic("reward: NeighborhoodRelative evaluates whole state spaces only")
}

func hamming(a, b process.NetworkState) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}

	return n
}
