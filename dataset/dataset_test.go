package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctbnlab/goctbn/dataset"
)

// TestNewTrajectory_Valid round-trips accessors on a well-formed trajectory.
func TestNewTrajectory_Valid(t *testing.T) {
	trj := dataset.NewTrajectory(
		[]float64{0, 0.1, 0.3},
		[][]int{{0, 1}, {1, 1}, {1, 0}},
	)

	assert.Equal(t, 3, trj.Len())
	assert.Equal(t, 2, trj.Variables())
	assert.Equal(t, []float64{0, 0.1, 0.3}, trj.Time())
	assert.Equal(t, [][]int{{0, 1}, {1, 1}, {1, 0}}, trj.Events())
}

// TestNewTrajectory_LengthMismatch panics when time and events disagree.
func TestNewTrajectory_LengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		dataset.NewTrajectory([]float64{0, 0.1}, [][]int{{0}})
	}, "time/events length mismatch must panic")
}

// TestNewTrajectory_RaggedRows panics on rows of unequal width.
func TestNewTrajectory_RaggedRows(t *testing.T) {
	assert.Panics(t, func() {
		dataset.NewTrajectory([]float64{0, 0.1}, [][]int{{0, 1}, {0}})
	}, "ragged event rows must panic")
}

// TestNewDataset_Valid checks variable and sample-pair counting.
func TestNewDataset_Valid(t *testing.T) {
	ds := dataset.NewDataset([]*dataset.Trajectory{
		dataset.NewTrajectory([]float64{0, 1, 2}, [][]int{{0}, {1}, {0}}),
		dataset.NewTrajectory([]float64{0, 1}, [][]int{{1}, {0}}),
	})

	require.Len(t, ds.Trajectories(), 2)
	assert.Equal(t, 1, ds.Variables())
	assert.Equal(t, 3, ds.SampleCount(), "two pairs plus one pair")
}

// TestNewDataset_Empty panics with no trajectories.
func TestNewDataset_Empty(t *testing.T) {
	assert.Panics(t, func() { dataset.NewDataset(nil) })
}

// TestNewDataset_VariableMismatch panics when trajectories disagree on the
// number of variables.
func TestNewDataset_VariableMismatch(t *testing.T) {
	assert.Panics(t, func() {
		dataset.NewDataset([]*dataset.Trajectory{
			dataset.NewTrajectory([]float64{0}, [][]int{{0}}),
			dataset.NewTrajectory([]float64{0}, [][]int{{0, 1}}),
		})
	})
}
