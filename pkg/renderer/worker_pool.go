package renderer

import (
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   Tile
	Random *rand.Rand // Owned by the task; never shared between workers
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// TileFunc renders one tile
type TileFunc func(task TileTask) RenderStats

// WorkerPool runs tile tasks on a fixed number of goroutines
type WorkerPool struct {
	numWorkers int
	render     TileFunc
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int, render TileFunc) *WorkerPool {
	return &WorkerPool{
		numWorkers: max(1, numWorkers),
		render:     render,
	}
}

// NewTileTasks seeds one generator per tile from the base seed
func NewTileTasks(tiles []Tile, seed int64) []TileTask {
	tasks := make([]TileTask, len(tiles))
	for i, tile := range tiles {
		tasks[i] = TileTask{
			Tile:   tile,
			Random: rand.New(rand.NewSource(seed + int64(tile.Index))),
		}
	}
	return tasks
}

// Run renders every task and returns the results indexed by task position.
// Workers pull tasks from a shared queue until it is drained.
func (wp *WorkerPool) Run(tasks []TileTask) []TileResult {
	taskQueue := make(chan int, len(tasks))
	for i := range tasks {
		taskQueue <- i
	}
	close(taskQueue)

	results := make([]TileResult, len(tasks))
	var g errgroup.Group
	for w := 0; w < wp.numWorkers; w++ {
		g.Go(func() error {
			for i := range taskQueue {
				results[i] = TileResult{TaskID: i, Stats: wp.render(tasks[i])}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail; a panic aborts the process

	return results
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
