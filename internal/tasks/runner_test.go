package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunner_ExecutesSubmittedTasks(t *testing.T) {
	r := NewRunner(8, time.Second)

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		r.Submit("count", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}

	r.Close()

	if got := ran.Load(); got != 5 {
		t.Errorf("expected 5 tasks executed, got %d", got)
	}
}

func TestRunner_TaskErrorDoesNotStopWorker(t *testing.T) {
	r := NewRunner(8, time.Second)

	var ran atomic.Int32
	r.Submit("fail", func(ctx context.Context) error {
		return errors.New("boom")
	})
	r.Submit("after", func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	r.Close()

	if ran.Load() != 1 {
		t.Error("task after a failing one should still run")
	}
}

func TestRunner_SubmitNeverBlocksWhenFull(t *testing.T) {
	r := NewRunner(1, time.Second)
	block := make(chan struct{})
	r.Submit("block", func(ctx context.Context) error {
		<-block
		return nil
	})

	// Fill the queue, then overflow it; Submit must return promptly.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			r.Submit("overflow", func(ctx context.Context) error { return nil })
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Submit blocked on a full queue")
	}

	close(block)
	r.Close()
}

func TestRunner_CloseIsIdempotent(t *testing.T) {
	r := NewRunner(1, time.Second)
	r.Close()
	r.Close()
}
