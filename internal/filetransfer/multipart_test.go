package filetransfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandb/wandb/filesync/internal/filetransfer"
)

func TestSplitWorkerTasks_EvenSplit(t *testing.T) {
	ranges, err := filetransfer.SplitWorkerTasks(8, 4)

	require.NoError(t, err)
	assert.Equal(t, []filetransfer.WorkerTaskRange{
		{Start: 0, End: 2},
		{Start: 2, End: 4},
		{Start: 4, End: 6},
		{Start: 6, End: 8},
	}, ranges)
}

func TestSplitWorkerTasks_UnevenSplit(t *testing.T) {
	ranges, err := filetransfer.SplitWorkerTasks(7, 3)

	require.NoError(t, err)
	assert.Equal(t, []filetransfer.WorkerTaskRange{
		{Start: 0, End: 3},
		{Start: 3, End: 5},
		{Start: 5, End: 7},
	}, ranges)
}

func TestSplitWorkerTasks_FewerTasksThanWorkers(t *testing.T) {
	ranges, err := filetransfer.SplitWorkerTasks(2, 8)

	require.NoError(t, err)
	assert.Len(t, ranges, 2)
	assert.Equal(t, filetransfer.WorkerTaskRange{Start: 0, End: 1}, ranges[0])
	assert.Equal(t, filetransfer.WorkerTaskRange{Start: 1, End: 2}, ranges[1])
}

func TestSplitWorkerTasks_InvalidInput(t *testing.T) {
	_, err := filetransfer.SplitWorkerTasks(0, 4)
	assert.Error(t, err)

	_, err = filetransfer.SplitWorkerTasks(4, 0)
	assert.Error(t, err)
}
