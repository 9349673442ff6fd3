package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobImmediatelyOnStart(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("sweep", time.Hour, func(_ context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	s.Stop()

	// The catch-up run happens before the first tick, so even with an
	// hour-long interval the job must have run exactly once by Stop.
	assert.Equal(t, int32(1), runs.Load())
}

func TestSchedulerFailingJobDoesNotStopOthers(t *testing.T) {
	s := NewScheduler()

	var healthyRuns atomic.Int32
	s.AddJob("broken", time.Hour, func(_ context.Context) error {
		return errors.New("sweep blew up")
	})
	s.AddJob("healthy", time.Hour, func(_ context.Context) error {
		healthyRuns.Add(1)
		return nil
	})

	s.Start()
	s.Stop()

	assert.GreaterOrEqual(t, healthyRuns.Load(), int32(1))
}

func TestSchedulerStopCancelsJobContext(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("waiter", time.Millisecond, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			close(done)
		case <-time.After(5 * time.Second):
		}
		return nil
	})

	s.Start()
	s.Stop()

	select {
	case <-done:
	default:
		t.Fatal("job context was not cancelled on Stop")
	}
}
