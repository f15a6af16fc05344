package sampling

import (
	"github.com/ctbnlab/goctbn/dataset"
	"github.com/ctbnlab/goctbn/process"
)

// Generate samples n trajectories from net, each covering [0, tEnd]. The
// last sample of every trajectory repeats the final state at exactly tEnd,
// so residence times add up to the full horizon. One sampler produces all
// trajectories, Reset between them, so a seeded run is reproducible
// end to end.
func Generate(net process.Model, n int, tEnd float64, opts ...Option) (*dataset.Dataset, error) {
	sampler, err := NewForwardSampler(net, opts...)
	if err != nil {
		return nil, err
	}

	trajectories := make([]*dataset.Trajectory, 0, n)
	for i := 0; i < n; i++ {
		var (
			time   []float64
			events [][]int
		)

		sample := sampler.Next()
		for sample.T < tEnd {
			time = append(time, sample.T)
			events = append(events, sample.State)
			sample = sampler.Next()
		}

		// Close the trajectory at the horizon with the last observed state.
		events = append(events, append([]int(nil), events[len(events)-1]...))
		time = append(time, tEnd)

		trajectories = append(trajectories, dataset.NewTrajectory(time, events))
		sampler.Reset()
	}

	return dataset.NewDataset(trajectories), nil
}
