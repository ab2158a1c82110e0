// Package worker runs periodic background jobs on a bounded pool.
package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

type Pool interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Refresher runs every job once per interval. A job still running from the
// previous tick is skipped rather than started twice.
type Refresher struct {
	jobs     []Job
	pool     Pool
	interval time.Duration
	running  sync.Map
	done     chan struct{}
}

func NewRefresher(interval time.Duration, pool Pool, jobs ...Job) *Refresher {
	return &Refresher{
		jobs:     jobs,
		pool:     pool,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (r *Refresher) Start(ctx context.Context) {
	zap.L().Info("refresher started", zap.Duration("interval", r.interval), zap.Int("jobs", len(r.jobs)))
	go r.run(ctx)
}

// Done is closed once the refresher has stopped and the pool is drained.
func (r *Refresher) Done() <-chan struct{} {
	return r.done
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)
	defer r.pool.Close()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping refresher")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	var g errgroup.Group
	for _, job := range r.jobs {
		job := job

		if _, loaded := r.running.LoadOrStore(job.Name, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := r.pool.AddTask(ctx, func() error {
				defer r.running.Delete(job.Name)
				if err := job.Run(ctx); err != nil {
					zap.L().Error("job failed", zap.String("job", job.Name), zap.Error(err))
				}
				return nil
			})
			if err != nil {
				r.running.Delete(job.Name)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Warn("failed to schedule jobs", zap.Error(err))
	}
}
