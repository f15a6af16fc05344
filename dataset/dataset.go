package dataset

// Trajectory is one observed realization of the process: time points paired
// with the full state vector holding at each point. Row i of the events
// describes the state entered at time i and left at time i+1.
type Trajectory struct {
	time   []float64
	events [][]int
}

// NewTrajectory builds a trajectory from co-indexed time points and state
// rows. It panics when the two differ in length or the rows are ragged.
func NewTrajectory(time []float64, events [][]int) *Trajectory {
	if len(time) != len(events) {
		panic("dataset: time and events must have the same number of samples")
	}
	for _, row := range events {
		if len(row) != len(events[0]) {
			panic("dataset: ragged event rows")
		}
	}

	return &Trajectory{time: time, events: events}
}

// Time returns the trajectory's time points.
func (t *Trajectory) Time() []float64 { return t.time }

// Events returns the trajectory's state rows.
func (t *Trajectory) Events() [][]int { return t.events }

// Len returns the number of samples in the trajectory.
func (t *Trajectory) Len() int { return len(t.time) }

// Variables returns the number of process variables each row describes.
func (t *Trajectory) Variables() int {
	if len(t.events) == 0 {
		return 0
	}

	return len(t.events[0])
}

// Dataset is a non-empty collection of trajectories that all describe the
// same number of variables.
type Dataset struct {
	trajectories []*Trajectory
}

// NewDataset builds a dataset. It panics when trajectories is empty or the
// trajectories disagree on the number of variables.
func NewDataset(trajectories []*Trajectory) *Dataset {
	if len(trajectories) == 0 {
		panic("dataset: at least one trajectory is required")
	}
	vars := trajectories[0].Variables()
	for _, trj := range trajectories {
		if trj.Variables() != vars {
			panic("dataset: all trajectories must describe the same number of variables")
		}
	}

	return &Dataset{trajectories: trajectories}
}

// Trajectories returns the dataset's trajectories.
func (d *Dataset) Trajectories() []*Trajectory { return d.trajectories }

// Variables returns the number of process variables the dataset describes.
func (d *Dataset) Variables() int { return d.trajectories[0].Variables() }

// SampleCount returns the total number of consecutive sample pairs across
// all trajectories, the sample size used by penalized scores.
func (d *Dataset) SampleCount() int {
	n := 0
	for _, trj := range d.trajectories {
		n += trj.Len() - 1
	}

	return n
}
