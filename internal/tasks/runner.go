// Package tasks runs best-effort background work: artifact cleanup and
// activity logging. Failures land in the operator log and never reach
// the request that queued them.
package tasks

import (
	"context"
	"log"
	"sync"
	"time"
)

type task struct {
	name string
	fn   func(ctx context.Context) error
}

// Runner executes queued tasks on a single worker goroutine.
type Runner struct {
	queue   chan task
	timeout time.Duration
	wg      sync.WaitGroup
	once    sync.Once
}

// NewRunner creates and starts a task runner. timeout bounds each task.
func NewRunner(queueSize int, timeout time.Duration) *Runner {
	if queueSize <= 0 {
		queueSize = 64
	}
	r := &Runner{
		queue:   make(chan task, queueSize),
		timeout: timeout,
	}
	r.wg.Add(1)
	go r.loop()
	return r
}

func (r *Runner) loop() {
	defer r.wg.Done()
	for t := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if err := t.fn(ctx); err != nil {
			log.Printf("TASK_FAILED: task=%s error=%v", t.name, err)
		}
		cancel()
	}
}

// Submit queues fn for execution. If the queue is full the task is
// dropped with a log line rather than blocking the caller.
func (r *Runner) Submit(name string, fn func(ctx context.Context) error) {
	select {
	case r.queue <- task{name: name, fn: fn}:
	default:
		log.Printf("TASK_DROPPED: task=%s queue full", name)
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (r *Runner) Close() {
	r.once.Do(func() { close(r.queue) })
	r.wg.Wait()
}
