// Package tasks runs post-response side effects (emails, notification
// writes) off the request path. Submission never blocks the handler beyond
// queueing, outcomes are never reported back to the caller, and there is no
// retry; the only guarantee is that tests can Wait for the queue to drain
// instead of racing a timer.
package tasks

import (
	"sync"

	"github.com/hireline/applicant-tracking-api/internal/logging"
)

// Runner accepts fire-and-forget tasks.
type Runner interface {
	// Submit schedules fn to run in the background. A task that panics is
	// recovered and logged, never propagated.
	Submit(name string, fn func())

	// Wait blocks until every submitted task has finished.
	Wait()
}

// QueueRunner executes tasks on a fixed pool of workers fed by a bounded
// queue. When the queue is full Submit blocks, which backpressures the
// handler rather than dropping side effects.
type QueueRunner struct {
	queue chan task
	wg    sync.WaitGroup
	log   *logging.Logger

	closeOnce sync.Once
	done      chan struct{}
}

type task struct {
	name string
	fn   func()
}

// NewQueueRunner starts workers goroutines draining a queue of size depth.
func NewQueueRunner(workers, depth int, log *logging.Logger) *QueueRunner {
	if workers < 1 {
		workers = 1
	}
	if depth < 1 {
		depth = 64
	}

	r := &QueueRunner{
		queue: make(chan task, depth),
		log:   log,
		done:  make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go r.worker()
	}
	return r
}

func (r *QueueRunner) worker() {
	for t := range r.queue {
		r.run(t)
	}
}

func (r *QueueRunner) run(t task) {
	defer r.wg.Done()
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("background task panicked", "task", t.name, "panic", rec)
		}
	}()
	t.fn()
}

func (r *QueueRunner) Submit(name string, fn func()) {
	r.wg.Add(1)
	r.queue <- task{name: name, fn: fn}
}

func (r *QueueRunner) Wait() {
	r.wg.Wait()
}

// Close stops the workers after the queue drains.
func (r *QueueRunner) Close() {
	r.closeOnce.Do(func() {
		close(r.queue)
		close(r.done)
	})
}
