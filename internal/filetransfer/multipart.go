package filetransfer

import (
	"fmt"
)

// WorkerTaskRange allocates tasks to a worker using [SplitWorkerTasks]
type WorkerTaskRange struct {
	Start int // inclusive
	End   int // exclusive
}

// SplitWorkerTasks distributes tasks evenly among workers for parallel processing.
// If tasks cannot be divided evenly, extra tasks are distributed to earlier workers.
// If there are fewer tasks than workers, number of workers would be same as number of tasks
// instead of the max number of workers.
func SplitWorkerTasks(numTasks int, maxNumWorkers int) ([]WorkerTaskRange, error) {
	// No work is error to force caller to short circuit.
	if numTasks <= 0 {
		return nil, fmt.Errorf("numTasks must be greater than 0")
	}
	// 0 worker is likely configuration error from caller.
	if maxNumWorkers <= 0 {
		return nil, fmt.Errorf("maxNumWorkers must be greater than 0")
	}
	numWorkers := min(numTasks, maxNumWorkers)

	tasksPerWorker := numTasks / numWorkers
	workersWithOneMoreTask := numTasks % numWorkers

	var workerTasks []WorkerTaskRange
	for i := range numWorkers {
		var start, end int
		if i < workersWithOneMoreTask {
			start = (tasksPerWorker + 1) * i // All the previous workers get one more task
			end = start + tasksPerWorker + 1
		} else {
			start = workersWithOneMoreTask + tasksPerWorker*i
			end = start + tasksPerWorker
		}

		workerTasks = append(workerTasks, WorkerTaskRange{
			Start: start,
			End:   end,
		})
	}
	return workerTasks, nil
}
