package pricefeed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name         string
		numTasks     int
		numWorkers   int
		failingTasks int
	}{
		{name: "More tasks than workers", numTasks: 5, numWorkers: 2},
		{name: "Failing task does not stop pool", numTasks: 4, numWorkers: 2, failingTasks: 1},
		{name: "Single worker", numTasks: 3, numWorkers: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var executed, failed atomic.Int32
			for i := 0; i < tt.numTasks; i++ {
				i := i
				err := wp.AddTask(context.Background(), func() error {
					if i < tt.failingTasks {
						failed.Add(1)
						return assert.AnError
					}
					time.Sleep(10 * time.Millisecond)
					executed.Add(1)
					return nil
				})
				require.NoError(t, err)
			}

			wp.Close()

			assert.Equal(t, int32(tt.numTasks-tt.failingTasks), executed.Load())
			assert.Equal(t, int32(tt.failingTasks), failed.Load())
		})
	}
}

func TestWorkerPool_AddTaskCanceled(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		<-block
		return nil
	}))
	// fills the buffer while the worker is busy
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error {
		t.Error("task should not run")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	close(block)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
