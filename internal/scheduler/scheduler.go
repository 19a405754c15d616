// Package scheduler enqueues jobs onto a worker pool at fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval.
// With runNow the job is also enqueued immediately.
// A tick that finds the queue full is skipped rather than blocking the ticker.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, runNow bool) {
	if runNow {
		s.enqueue(job)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// RunNow enqueues a job once, outside its schedule
func (s *Scheduler) RunNow(job worker.Job) bool {
	return s.enqueue(job)
}

func (s *Scheduler) enqueue(job worker.Job) bool {
	if s.pool.TryEnqueue(job) {
		return true
	}
	logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", jobName(job))
	return false
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}

func jobName(job worker.Job) string {
	if n, ok := job.(worker.Named); ok {
		return n.Name()
	}
	return "unnamed"
}
