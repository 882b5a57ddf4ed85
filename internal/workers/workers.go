package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/code-historian-client/internal/config"
	"github.com/MKhiriev/code-historian-client/internal/logger"
	"golang.org/x/sync/semaphore"
)

// ErrPoolStopped is returned by Submit after Stop.
var ErrPoolStopped = errors.New("worker pool stopped")

// ErrJobPanicked wraps the value recovered from a panicking job.
var ErrJobPanicked = errors.New("job panicked")

// Pool runs jobs on their own goroutines, at most limit of them at a time.
// Submitted jobs beyond the limit wait for a slot on their goroutine, never
// on the submitter's.
type Pool struct {
	sem    *semaphore.Weighted
	limit  int64
	active atomic.Int64

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stopped bool

	logger *logger.Logger
}

// NewPool creates a Pool sized by cfg.MaxConcurrentLaunches. A non-positive
// limit means one job at a time.
func NewPool(cfg config.ClientWorkers, logger *logger.Logger) *Pool {
	limit := int64(cfg.MaxConcurrentLaunches)
	if limit < 1 {
		limit = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		sem:    semaphore.NewWeighted(limit),
		limit:  limit,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Submit implements [Executor].
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return ErrPoolStopped
	}
	ctx := p.ctx
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		// A job that never got a slot still runs, with the cancelled
		// context, so it can finalise whatever state it owns.
		if err := p.sem.Acquire(ctx, 1); err == nil {
			defer p.sem.Release(1)
		}

		p.active.Add(1)
		defer p.active.Add(-1)

		if err := p.run(ctx, job); err != nil {
			p.logger.Warn().Err(err).Msg("background job failed")
		}
	}()

	return nil
}

func (p *Pool) run(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()

	return job(ctx)
}

// Stop implements [Executor]. It is safe to call more than once.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()

	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for %d job(s): %w", p.active.Load(), ctx.Err())
	}
}

// Active reports how many jobs are currently executing.
func (p *Pool) Active() int {
	return int(p.active.Load())
}

// Limit reports the maximum number of concurrently executing jobs.
func (p *Pool) Limit() int {
	return int(p.limit)
}
