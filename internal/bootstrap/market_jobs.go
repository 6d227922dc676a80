package bootstrap

import (
	"context"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/config"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/scheduler"
	"github.com/osse101/SpaceBot_Go/internal/stock"
	"github.com/osse101/SpaceBot_Go/internal/worker"
)

// MarketJobs owns the worker pool and scheduler driving background price movement
type MarketJobs struct {
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// StartMarketJobs schedules a fluctuation tick every MarketTickInterval and a history
// prune every DefaultPruneEvery ticks.
func StartMarketJobs(ctx context.Context, cfg *config.Config, stocks stock.Service) *MarketJobs {
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start(ctx)

	tick := cfg.Economy.MarketTickInterval
	sched := scheduler.New(pool)
	sched.Schedule(tick, stock.NewFluctuationJob(stocks))
	sched.Schedule(pruneInterval(tick), stock.NewPruneJob(stocks))

	logger.FromContext(ctx).Info(LogMsgMarketJobsStarted, "tick", tick, "workers", cfg.WorkerCount)
	return &MarketJobs{pool: pool, scheduler: sched}
}

func pruneInterval(tick time.Duration) time.Duration {
	return max(tick*DefaultPruneEvery, MinPruneInterval)
}

// Stop halts scheduling first so no job is enqueued onto a stopped pool
func (m *MarketJobs) Stop() {
	m.scheduler.Stop()
	m.pool.Stop()
}
