// Package worker replays independent scripts on a pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/console-chess-go/internal/script"
)

// WorkItem is one script waiting to be replayed.
type WorkItem struct {
	Script script.Script
	Index  int // position in the submission order
}

// ProcessResult is the outcome of replaying a WorkItem.
type ProcessResult struct {
	Index  int
	Result script.Result
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Replay is the default ProcessFunc.
func Replay(item WorkItem) ProcessResult {
	return ProcessResult{Index: item.Index, Result: script.Replay(item.Script, nil)}
}

// Pool fans work items out to a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool of numWorkers goroutines with channels of bufferSize.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool with one worker and a buffer of 10
// unless the options say otherwise. A nil processFunc means Replay.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	if processFunc == nil {
		processFunc = Replay
	}
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues an item without blocking. It reports false if the
// channel is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued items instead of replaying them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting work, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayAll replays every script on a pool of the given size and returns
// the results in submission order. With failFast set, the first failing
// script stops the pool and the scripts not yet started are left with a
// zero Result.
func ReplayAll(scripts []script.Script, workers int, failFast bool) []script.Result {
	results := make([]script.Result, len(scripts))
	if len(scripts) == 0 {
		return results
	}
	if workers > len(scripts) {
		workers = len(scripts)
	}

	pool := NewPoolWithOptions(Replay, WithWorkers(workers), WithBufferSize(workers*2))
	pool.Start()

	go func() {
		for i, s := range scripts {
			pool.Submit(WorkItem{Script: s, Index: i})
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		results[r.Index] = r.Result
		if failFast && !r.Result.Passed() {
			pool.Stop()
		}
	}
	return results
}
