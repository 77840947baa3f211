// Package worker analyses independent positions on a pool of goroutines.
// Each work item owns its board, so workers share no chess state.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/pocketchess/internal/chess"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	FEN   string
	Index int // Input position, used to restore order
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index    int
	FEN      string
	Board    *chess.Board // Parsed position (nil if parsing failed)
	Turn     chess.Colour
	Analysis interface{} // Opaque analysis payload; typed by consumer
	Skipped  bool        // Drained after Stop without being processed
	Error    error
}

// ProcessFunc analyses a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the work and result channel capacity. Values below
// 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless
// options say otherwise. Workers start when Start is called.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
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
			p.resultChan <- ProcessResult{Index: item.Index, FEN: item.FEN, Skipped: true}
			continue
		}
		result := p.processFunc(item)
		result.Index = item.Index
		p.resultChan <- result
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued. Skipped items are still
// reported so ordered consumers are not left waiting.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true once Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel. Results arrive in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// InOrder reads results until the channel closes and passes them to emit
// in index order, starting at first. Results that arrive early are held
// until their predecessors have been emitted. The first emit error stops
// emission; remaining results are drained so workers never block.
func InOrder(results <-chan ProcessResult, first int, emit func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := first
	var emitErr error

	for result := range results {
		if emitErr != nil {
			continue
		}
		pending[result.Index] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if emitErr = emit(r); emitErr != nil {
				break
			}
		}
	}
	return emitErr
}
