package sampling

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ctbnlab/goctbn/process"
)

// Sample is one point of a simulated process: the state vector holding at
// time T.
type Sample struct {
	T     float64
	State process.NetworkState
}

// Sampler is a lazy, restartable sequence of samples.
type Sampler interface {
	// Next produces one sample and advances the internal state. The
	// sequence is infinite.
	Next() Sample

	// Reset re-enters the initial state at t=0. The random stream
	// continues; it is not reseeded.
	Reset()
}

// unscheduled marks a node whose transition clock must be redrawn.
var unscheduled = math.NaN()

// ForwardSampler simulates a process.Model by competing exponential clocks.
// It reads the model and never mutates it; the model's topology and CIMs
// must not change while sampling.
type ForwardSampler struct {
	net process.Model
	rng *rand.Rand

	currentTime  float64
	currentState process.NetworkState
	nextClock    []float64 // scheduled transition time per node; NaN = none
	initialState process.NetworkState
}

// NewForwardSampler validates that every node of net carries a CIM and
// returns a sampler in its initial state. Construction is the only point of
// failure: a successfully built sampler cannot fail to advance.
func NewForwardSampler(net process.Model, opts ...Option) (*ForwardSampler, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := 0; i < net.NodeCount(); i++ {
		if err := net.Node(i).Validate(); err != nil {
			return nil, fmt.Errorf("sampling: node %d: %w", i, err)
		}
	}

	var rng *rand.Rand
	if cfg.seeded {
		rng = rand.New(rand.NewSource(cfg.seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &ForwardSampler{
		net:          net,
		rng:          rng,
		initialState: cfg.initial,
		nextClock:    make([]float64, net.NodeCount()),
	}
	s.Reset()

	return s, nil
}

// Next emits the pre-advance (time, state) pair, then advances the
// simulation by one transition: it schedules a clock for every node without
// one, fires the globally earliest, draws that node's next state from its
// CIM row, and invalidates the clocks of the node and of its children.
func (s *ForwardSampler) Next() Sample {
	ret := Sample{T: s.currentTime, State: s.currentState.Clone()}

	for idx := range s.nextClock {
		if !math.IsNaN(s.nextClock[idx]) {
			continue
		}
		node := s.net.Node(idx)
		u := s.net.ParamIndex(idx, s.currentState)
		residence, err := node.ResidenceTime(s.currentState[idx], u, s.rng)
		if err != nil {
			panic(err) // unreachable: CIMs validated at construction
		}
		s.nextClock[idx] = s.currentTime + residence
	}

	firing := 0
	for idx, t := range s.nextClock {
		if t < s.nextClock[firing] {
			firing = idx
		}
	}

	s.currentTime = s.nextClock[firing]

	node := s.net.Node(firing)
	u := s.net.ParamIndex(firing, s.currentState)
	next, err := node.Transition(s.currentState[firing], u, s.rng)
	if err != nil {
		panic(err) // unreachable: CIMs validated at construction
	}
	s.currentState[firing] = next

	s.nextClock[firing] = unscheduled
	for _, child := range s.net.ChildrenSet(firing) {
		s.nextClock[child] = unscheduled
	}

	return ret
}

// Reset re-enters the initial state at t=0, redrawing a uniform initial
// state when none was supplied. The random stream continues.
func (s *ForwardSampler) Reset() {
	s.currentTime = 0
	if s.initialState == nil {
		s.currentState = make(process.NetworkState, s.net.NodeCount())
		for i := range s.currentState {
			s.currentState[i] = s.net.Node(i).UniformState(s.rng)
		}
	} else {
		s.currentState = s.initialState.Clone()
	}
	for i := range s.nextClock {
		s.nextClock[i] = unscheduled
	}
}
