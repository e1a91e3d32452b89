// Package parallel provides the fixed-size worker pool that backs
// full-resolution renders.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size pool of goroutines for CPU-bound work.
//
// Tasks are pulled from a single shared queue. Render work arrives as one
// batch of near-equal row bands per frame, so per-worker queues and work
// stealing would buy nothing here.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// tasks is the shared work queue.
	tasks chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// New creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain remaining work so a concurrent ExecuteAll cannot
			// block forever on tasks nobody will run.
			p.drain()
			return
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		}
	}
}

// drain executes whatever is still queued.
func (p *Pool) drain() {
	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// ExecuteAll submits every task and blocks until all of them have run.
// If the pool is closed, ExecuteAll is a no-op.
func (p *Pool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))

	for _, fn := range tasks {
		task := fn
		wrapped := func() {
			defer completion.Done()
			task()
		}

		select {
		case p.tasks <- wrapped:
		case <-p.done:
			// Pool is closing; account for the task so Wait returns.
			completion.Done()
		}
	}

	completion.Wait()
}

// Close stops the pool and waits for the workers to exit.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
