package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// sequenced pairs a job or result with its submission order
type sequenced[T any] struct {
	seq  int
	item T
}

// Pool manages a pool of workers that execute jobs concurrently.
// Wait returns results in submission order.
type Pool struct {
	workers       int
	jobQueue      chan sequenced[Job]
	results       chan sequenced[Result]
	collected     []sequenced[Result]
	collectorDone chan struct{}
	ordered       []Result
	next          int
	wg            sync.WaitGroup
	ctx           context.Context
	cancelFunc    context.CancelFunc
	closeOnce     sync.Once
}

// NewPool creates a new worker pool with the specified number of workers
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:       workers,
		jobQueue:      make(chan sequenced[Job], workers*2),
		results:       make(chan sequenced[Result], workers*2),
		collectorDone: make(chan struct{}),
		ctx:           ctx,
		cancelFunc:    cancel,
	}
}

// Start starts the workers and the result collector
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go p.collect()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			// the collector drains results until every worker has exited
			p.results <- sequenced[Result]{seq: job.seq, item: job.item.Execute(p.ctx)}
		}
	}
}

// collect drains results so workers never block on a full channel
func (p *Pool) collect() {
	defer close(p.collectorDone)
	for r := range p.results {
		p.collected = append(p.collected, r)
	}
}

// Submit submits a job to the pool for execution. Submit must not be
// called concurrently with itself. Jobs submitted after Wait or Shutdown
// are dropped.
func (p *Pool) Submit(job Job) {
	if p.ctx.Err() != nil {
		return
	}
	seq := p.next
	p.next++

	select {
	case <-p.ctx.Done():
	case p.jobQueue <- sequenced[Job]{seq: seq, item: job}:
	}
}

// Wait waits for all submitted jobs and returns one slot per submission, in
// submission order. A slot is nil when its job never ran because the pool
// was cancelled.
func (p *Pool) Wait() []Result {
	p.closeOnce.Do(func() { close(p.jobQueue) })
	return p.finish()
}

// Shutdown cancels queued jobs, waits for running ones and returns the
// results gathered so far, laid out as Wait does.
func (p *Pool) Shutdown() []Result {
	p.cancelFunc()
	return p.finish()
}

func (p *Pool) finish() []Result {
	p.wg.Wait()
	if p.ordered != nil {
		return p.ordered
	}

	close(p.results)
	<-p.collectorDone
	p.cancelFunc()

	p.ordered = make([]Result, p.next)
	for _, r := range p.collected {
		p.ordered[r.seq] = r.item
	}
	return p.ordered
}
