package repository

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Job defines the persistence needed for the job market
type Job interface {
	GetJobs(ctx context.Context) ([]domain.Job, error)
	// GetJob returns nil when the job does not exist
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)
	// InsertJob wraps domain.ErrDuplicate when the id is taken
	InsertJob(ctx context.Context, job *domain.Job) error
	GetEmployment(ctx context.Context, userID int64) (*domain.Employment, error)
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	BeginTx(ctx context.Context) (JobTx, error)
}

// JobTx defines the interface for job market transactions
type JobTx interface {
	Tx
	AccountOps
	EmploymentOps
}
