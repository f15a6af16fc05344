package structlearn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/paramlearn"
	"github.com/ctbnlab/goctbn/process"
)

// ScoreFunction scores a candidate parent set for one node against a
// dataset. Higher is better.
type ScoreFunction interface {
	Call(net process.Model, node int, parentSet []int, ds *dataset.Dataset) float64
}

// LogLikelihood is the Bayesian-Dirichlet marginal log-likelihood of the
// node's transitions and residence times, in closed form via the log-gamma
// function. The prior strengths Alpha and Tau are spread uniformly over the
// parent configurations, mirroring the Bayesian estimator.
type LogLikelihood struct {
	Alpha float64
	Tau   float64
}

// NewLogLikelihood panics when tau is negative: the Gamma prior requires a
// non-negative rate.
func NewLogLikelihood(alpha, tau float64) LogLikelihood {
	if tau < 0 {
		panic("structlearn: tau must be >= 0")
	}

	return LogLikelihood{Alpha: alpha, Tau: tau}
}

// Call implements ScoreFunction.
func (l LogLikelihood) Call(net process.Model, node int, parentSet []int, ds *dataset.Dataset) float64 {
	score, _ := l.compute(net, node, parentSet, ds)

	return score
}

// compute returns the score together with the transition counts, which BIC
// reuses for its parameter-count penalty.
func (l LogLikelihood) compute(net process.Model, node int, parentSet []int, ds *dataset.Dataset) (float64, []*mat.Dense) {
	m, t := paramlearn.SufficientStatistics(net, ds, node, parentSet)

	alpha := l.Alpha / float64(len(m))
	tau := l.Tau / float64(len(m))

	card := net.Node(node).Cardinality()

	// Marginal likelihood of the exit rates q.
	logQ := 0.0
	for i := range m {
		for x := 0; x < card; x++ {
			transitions := rowSum(m[i], x)
			residence := t.At(i, x)
			logQ += lgamma(alpha+transitions+1) + (alpha+1)*math.Log(tau) -
				lgamma(alpha+1) - (alpha+transitions+1)*math.Log(tau+residence)
		}
	}

	// Marginal likelihood of the transition distributions theta.
	logTheta := 0.0
	for i := range m {
		for x := 0; x < card; x++ {
			logTheta += lgamma(alpha) - lgamma(alpha+rowSum(m[i], x))
			for y := 0; y < card; y++ {
				logTheta += lgamma(alpha+m[i].At(x, y)) - lgamma(alpha)
			}
		}
	}

	return logQ + logTheta, m
}

// BIC penalizes the marginal log-likelihood by half the parameter count
// times the log of the sample size.
type BIC struct {
	ll LogLikelihood
}

// NewBIC builds a BIC score over a LogLikelihood with the given prior
// strengths.
func NewBIC(alpha, tau float64) BIC {
	return BIC{ll: NewLogLikelihood(alpha, tau)}
}

// Call implements ScoreFunction.
func (b BIC) Call(net process.Model, node int, parentSet []int, ds *dataset.Dataset) float64 {
	ll, m := b.ll.compute(net, node, parentSet, ds)

	card := net.Node(node).Cardinality()
	nParameters := len(m) * card * (card - 1)
	sampleSize := ds.SampleCount()

	return ll - math.Log(float64(sampleSize))/2*float64(nParameters)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v
}

func rowSum(g *mat.Dense, row int) float64 {
	return floats.Sum(g.RawRowView(row))
}
