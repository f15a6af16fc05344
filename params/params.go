package params

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// rowSumTol is the tolerance applied to CIM row sums: sqrt of the machine
// epsilon for float64.
var rowSumTol = math.Sqrt(2.220446049250313e-16)

// Node is the capability interface of a parameter block. States are
// represented positionally as indices into the node's domain.
type Node interface {
	// Label returns the node's variable name.
	Label() string

	// Cardinality returns the number of states in the node's domain, i.e.
	// the space this node reserves in the CIMs of its children.
	Cardinality() int

	// Reset clears the CIM and its sufficient statistics. It is invoked
	// whenever the node's parent set changes, since the stored CIM shape
	// becomes stale.
	Reset()

	// Validate checks the stored CIM against the node's domain.
	Validate() error

	// UniformState draws a state uniformly from the domain, disregarding
	// the node's and its parents' current states.
	UniformState(rng *rand.Rand) int

	// ResidenceTime draws an exponential residence time for the node in
	// state, under parent configuration u.
	ResidenceTime(state, u int, rng *rand.Rand) (float64, error)

	// Transition draws the node's next state given its current state and
	// parent configuration u, from the categorical distribution induced by
	// the CIM row's off-diagonal rates.
	Transition(state, u int, rng *rand.Rand) (int, error)

	// Clone returns a deep copy of the parameter block.
	Clone() Node
}

// Discrete is the parameter block of a discrete-state continuous-time node.
//
// The CIM and the transition counts are third-order tensors laid out as one
// Cardinality x Cardinality matrix per parent configuration; residence times
// are a configurations x Cardinality matrix. All three start unset and are
// populated either through the validated setter or by an estimator.
type Discrete struct {
	label  string
	domain []string

	cim         []*mat.Dense
	transitions []*mat.Dense
	residence   *mat.Dense
}

// NewDiscrete creates an empty parameter block for a node named label with
// the given ordered domain of state labels.
func NewDiscrete(label string, domain []string) *Discrete {
	return &Discrete{label: label, domain: domain}
}

// Label returns the node's variable name.
func (d *Discrete) Label() string { return d.label }

// Domain returns the ordered set of state labels.
func (d *Discrete) Domain() []string { return d.domain }

// Cardinality returns the size of the domain.
func (d *Discrete) Cardinality() int { return len(d.domain) }

// CIM returns the stored Conditional Intensity Matrix, one generator matrix
// per parent configuration, or nil if unset.
func (d *Discrete) CIM() []*mat.Dense { return d.cim }

// SetCIM stores cim after validating it. On failure the stored CIM is
// cleared, so no partially valid state is retained.
func (d *Discrete) SetCIM(cim []*mat.Dense) error {
	d.cim = cim
	if err := d.Validate(); err != nil {
		d.cim = nil
		return err
	}

	return nil
}

// SetCIMUnchecked stores cim without validation. It is meant for estimators,
// whose output satisfies the row-sum invariant by construction (up to
// floating error) and may legitimately carry non-finite entries for parent
// configurations never visited in the data.
func (d *Discrete) SetCIMUnchecked(cim []*mat.Dense) { d.cim = cim }

// Transitions returns the transition-count tensor M, or nil if unset.
func (d *Discrete) Transitions() []*mat.Dense { return d.transitions }

// SetTransitions stores the transition-count tensor M.
func (d *Discrete) SetTransitions(m []*mat.Dense) { d.transitions = m }

// Residence returns the residence-time matrix T, or nil if unset.
func (d *Discrete) Residence() *mat.Dense { return d.residence }

// SetResidence stores the residence-time matrix T.
func (d *Discrete) SetResidence(t *mat.Dense) { d.residence = t }

// Reset clears the CIM, transition counts and residence times.
func (d *Discrete) Reset() {
	d.cim = nil
	d.transitions = nil
	d.residence = nil
}

// Validate checks that the stored CIM is present, that every generator
// matrix is Cardinality x Cardinality, that no diagonal entry is positive,
// and that every row sums to zero within sqrt(machine epsilon).
func (d *Discrete) Validate() error {
	if d.cim == nil {
		return fmt.Errorf("%w: CIM not set", ErrParametersNotInitialized)
	}
	card := len(d.domain)
	for u, g := range d.cim {
		r, c := g.Dims()
		if r != card || c != card {
			return fmt.Errorf("%w: configuration %d has shape %dx%d, domain size %d",
				ErrInvalidCIM, u, r, c, card)
		}
		for x := 0; x < card; x++ {
			if g.At(x, x) > 0 {
				return fmt.Errorf("%w: positive diagonal entry at [%d,%d,%d]",
					ErrInvalidCIM, u, x, x)
			}
			var sum float64
			for y := 0; y < card; y++ {
				sum += g.At(x, y)
			}
			if math.Abs(sum) > rowSumTol {
				return fmt.Errorf("%w: row [%d,%d] sums to %g, want 0",
					ErrInvalidCIM, u, x, sum)
			}
		}
	}

	return nil
}

// UniformState draws a state uniformly from the domain.
func (d *Discrete) UniformState(rng *rand.Rand) int {
	return rng.Intn(len(d.domain))
}

// ResidenceTime draws an exponential residence time for the node in state
// under parent configuration u, by inverse-CDF sampling on a uniform draw.
func (d *Discrete) ResidenceTime(state, u int, rng *rand.Rand) (float64, error) {
	if d.cim == nil {
		return 0, fmt.Errorf("%w: CIM not set", ErrParametersNotInitialized)
	}
	lambda := -d.cim[u].At(state, state)

	return -math.Log(rng.Float64()) / lambda, nil
}

// Transition draws the node's next state given its current state and parent
// configuration u. The CIM row's off-diagonal entries, normalized by the
// total outgoing rate, form the categorical distribution; the drawn
// off-diagonal index is shifted past the current state.
func (d *Discrete) Transition(state, u int, rng *rand.Rand) (int, error) {
	if d.cim == nil {
		return 0, fmt.Errorf("%w: CIM not set", ErrParametersNotInitialized)
	}
	g := d.cim[u]
	lambda := -g.At(state, state)
	urand := rng.Float64()

	next := 0
	acc := 0.0
	for y := 0; y < len(d.domain); y++ {
		p := g.At(state, y) / lambda
		if p <= 0 {
			continue // the diagonal carries the (negative) total rate
		}
		if acc+p < urand {
			next++
		}
		acc += p
	}
	if next >= state {
		next++
	}

	return next, nil
}

// Clone returns a deep copy of the parameter block.
func (d *Discrete) Clone() Node {
	c := &Discrete{
		label:  d.label,
		domain: append([]string(nil), d.domain...),
	}
	if d.cim != nil {
		c.cim = cloneTensor(d.cim)
	}
	if d.transitions != nil {
		c.transitions = cloneTensor(d.transitions)
	}
	if d.residence != nil {
		c.residence = mat.DenseCopyOf(d.residence)
	}

	return c
}

func cloneTensor(t []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(t))
	for i, g := range t {
		out[i] = mat.DenseCopyOf(g)
	}

	return out
}
