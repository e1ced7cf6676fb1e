package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsImmediatelyAndOnTicks(t *testing.T) {
	var runs atomic.Int64
	task := New(5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	task.Start(context.Background())
	defer task.Stop()

	require.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, time.Millisecond, "one immediate run plus ticks")
}

func TestStopHaltsTheSchedule(t *testing.T) {
	var runs atomic.Int64
	task := New(5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	task.Start(context.Background())

	require.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, time.Second, time.Millisecond)
	task.Stop()

	seen := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, seen, runs.Load(), "no run lands after Stop returns")
}

func TestStopWaitsForInFlightRuns(t *testing.T) {
	var finished atomic.Bool
	task := New(time.Hour, func(ctx context.Context) {
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})
	task.Start(context.Background())
	task.Stop()

	assert.True(t, finished.Load(), "Stop returns only once in-flight runs have")
}

func TestStopWithoutStartIsANoOp(t *testing.T) {
	task := New(time.Millisecond, func(ctx context.Context) {})
	task.Stop()
}

func TestParentCancelStopsSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int64
	task := New(5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	task.Start(ctx)

	cancel()
	select {
	case <-task.done:
	case <-time.After(time.Second):
		t.Fatal("schedule loop did not exit after parent cancel")
	}

	seen := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, runs.Load(), seen+1)
}
