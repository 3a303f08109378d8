package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lingualearn/linguaflash/internal/worker"
)

type countingJob struct {
	ran  *atomic.Int32
	done chan struct{}
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(ctx context.Context) error {
	j.ran.Add(1)
	if j.done != nil {
		close(j.done)
	}
	return nil
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())
	defer pool.Stop()

	var ran atomic.Int32
	done := make(chan struct{})
	assert.True(t, pool.Submit(&countingJob{ran: &ran, done: done}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not executed")
	}
	assert.Equal(t, int32(1), ran.Load())
}

func TestPool_SubmitDropsWhenQueueFull(t *testing.T) {
	pool := worker.NewPool(1, 1) // never started, so the queue fills up

	var ran atomic.Int32
	assert.True(t, pool.Submit(&countingJob{ran: &ran}))
	assert.False(t, pool.Submit(&countingJob{ran: &ran}), "a full queue drops instead of blocking")
	assert.Equal(t, 1, pool.Pending())
}

func TestPool_StopWaitsForWorkers(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())

	var ran atomic.Int32
	pool.Submit(&countingJob{ran: &ran})

	pool.Stop()
	// After Stop returns, no goroutines are left to run anything new.
	assert.LessOrEqual(t, ran.Load(), int32(1))
}
