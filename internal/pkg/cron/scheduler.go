// Package cron runs background sweeps on fixed intervals. The shift
// lifecycle job is the main tenant: it has to fire shortly after startup so
// a restarted server catches up on shifts that came due while it was down,
// which is why every job runs once immediately before its ticker begins.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Scheduler owns one goroutine per registered job. Register jobs before
// calling Start; Stop cancels them and waits for in-flight runs to finish.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job to run every interval.
func (s *Scheduler) AddJob(name string, every time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: every, run: fn})
	slog.Info("Background job registered", "job", name, "every", every)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("Background scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all jobs and blocks until their loops return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Background scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	// Catch-up run before the first tick.
	s.sweep(j)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.sweep(j)
		}
	}
}

// sweep runs one job iteration. A failing sweep is logged and retried on the
// next tick; it never takes the scheduler down.
func (s *Scheduler) sweep(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("Background job failed", "job", j.name, "error", err, "took", time.Since(start))
		return
	}
	slog.Debug("Background job completed", "job", j.name, "took", time.Since(start))
}
