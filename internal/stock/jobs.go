package stock

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/worker"
)

// FluctuationJob runs one market tick per Process call
type FluctuationJob struct {
	svc Service
}

// NewFluctuationJob wraps svc as a scheduled worker job
func NewFluctuationJob(svc Service) *FluctuationJob {
	return &FluctuationJob{svc: svc}
}

func (j *FluctuationJob) Name() string { return JobNameFluctuation }

func (j *FluctuationJob) Process(ctx context.Context) error {
	return j.svc.Fluctuate(ctx)
}

// PruneJob trims the price history per Process call
type PruneJob struct {
	svc Service
}

// NewPruneJob wraps svc as a scheduled worker job
func NewPruneJob(svc Service) *PruneJob {
	return &PruneJob{svc: svc}
}

func (j *PruneJob) Name() string { return JobNamePrune }

func (j *PruneJob) Process(ctx context.Context) error {
	_, err := j.svc.PruneHistory(ctx)
	return err
}

var (
	_ worker.Job = (*FluctuationJob)(nil)
	_ worker.Job = (*PruneJob)(nil)
)
