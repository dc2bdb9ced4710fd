package parallel

import (
	"fmt"
	"sync"
)

// WorkerPool fans independent tasks out over a fixed set of goroutines.
// The engine itself is synchronous; the pool exists for callers that want
// to fork-join independent computations such as cost-matrix rows.
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // protects closed vs concurrent Submit
	closed    bool
}

// ErrTooManyWorkers is returned when the worker count exceeds MaxWorkers.
var ErrTooManyWorkers = fmt.Errorf("worker count exceeds maximum")

// MaxWorkers bounds pool size; anything near it is a caller bug.
const MaxWorkers = 1 << 16

// NewWorkerPool creates a pool with the given number of workers and starts
// them. A non-positive count is treated as one worker.
func NewWorkerPool(workers int) (*WorkerPool, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, workers, MaxWorkers)
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool, nil
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		// A panicking task must not take the worker down with it.
		func() {
			defer func() { _ = recover() }()
			task()
		}()
	}
}

// Submit queues a task. Returns false if the pool is already closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return false
	}
	wp.taskQueue <- task
	return true
}

// Close stops accepting tasks and blocks until in-flight tasks finish.
// Safe to call more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}

// Wait is an alias for Close: drain and join.
func (wp *WorkerPool) Wait() {
	wp.Close()
}
