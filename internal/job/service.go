package job

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/concurrency"
	"github.com/osse101/SpaceBot_Go/internal/cooldown"
	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// Responder receives a work challenge and returns the user's answer. It must honour ctx, which
// expires with the answer window.
type Responder func(ctx context.Context, challenge domain.WorkChallenge) (int, error)

// Service defines the job market business logic
type Service interface {
	GetJobs(ctx context.Context) ([]domain.Job, error)
	// GetUserJob returns nil when the user is unemployed
	GetUserJob(ctx context.Context, userID int64) (*domain.UserJob, error)
	GetLastWorkTime(ctx context.Context, userID int64) (*time.Time, error)
	GetJobPoints(ctx context.Context, userID int64) (int64, error)

	ApplyForJob(ctx context.Context, userID int64, jobID string) (*domain.ApplicationResult, error)
	ResignFromJob(ctx context.Context, userID int64) error

	// StartWork issues a challenge; SubmitWork answers it
	StartWork(ctx context.Context, userID int64) (*domain.WorkChallenge, error)
	SubmitWork(ctx context.Context, userID int64, answer int) (*domain.WorkResult, error)
	// Work runs both phases, asking responder for the answer
	Work(ctx context.Context, userID int64, responder Responder) (*domain.WorkResult, error)

	AddJob(ctx context.Context, job *domain.Job) error
}

// Config holds the job market timings
type Config struct {
	Cooldowns          cooldown.Config
	AnswerWindow       time.Duration
	ChallengeCacheSize int
}

// DefaultConfig returns the standard job market timings
func DefaultConfig() Config {
	return Config{
		AnswerWindow:       domain.DefaultWorkAnswerWindow,
		ChallengeCacheSize: DefaultChallengeCacheSize,
	}
}

type service struct {
	repo       repository.Job
	cfg        Config
	rnd        utils.Rand
	now        func() time.Time
	challenges *challengeStore
	userLocks  *concurrency.LockManager[int64]
	working    sync.Map
}

// NewService creates a new job service
func NewService(repo repository.Job, cfg Config, rnd utils.Rand) Service {
	if rnd == nil {
		rnd = utils.DefaultRand()
	}
	if cfg.AnswerWindow <= 0 {
		cfg.AnswerWindow = domain.DefaultWorkAnswerWindow
	}
	if cfg.ChallengeCacheSize <= 0 {
		cfg.ChallengeCacheSize = DefaultChallengeCacheSize
	}
	return &service{
		repo:       repo,
		cfg:        cfg,
		rnd:        rnd,
		now:        time.Now,
		challenges: newChallengeStore(cfg.ChallengeCacheSize, cfg.AnswerWindow),
		userLocks:  concurrency.NewLockManager[int64](),
	}
}

func (s *service) GetJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.repo.GetJobs(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get jobs", "error", err)
		return nil, fmt.Errorf(ErrMsgGetJobsFailed, err)
	}
	return jobs, nil
}

func (s *service) GetUserJob(ctx context.Context, userID int64) (*domain.UserJob, error) {
	emp, err := s.repo.GetEmployment(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEmploymentFailed, err)
	}
	if emp == nil {
		return nil, nil
	}
	job, err := s.repo.GetJob(ctx, emp.JobID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetJobFailed, err)
	}
	if job == nil {
		return nil, fmt.Errorf(ErrMsgJobNotFoundFmt, emp.JobID, domain.ErrJobNotFound)
	}
	return &domain.UserJob{Employment: *emp, Job: *job}, nil
}

func (s *service) GetLastWorkTime(ctx context.Context, userID int64) (*time.Time, error) {
	emp, err := s.repo.GetEmployment(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEmploymentFailed, err)
	}
	if emp == nil {
		return nil, nil
	}
	return emp.LastWorkAt, nil
}

func (s *service) GetJobPoints(ctx context.Context, userID int64) (int64, error) {
	acc, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	return acc.JobPoints, nil
}

func (s *service) AddJob(ctx context.Context, job *domain.Job) (err error) {
	defer func() { metrics.RecordOperation(OpAddJob, err) }()

	if err := validateJob(job); err != nil {
		return err
	}
	if err := s.repo.InsertJob(ctx, job); err != nil {
		if domain.IsExpected(err) {
			return err
		}
		return fmt.Errorf(ErrMsgInsertJobFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgJobAdded, "job_id", job.JobID, "hourly_pay", job.HourlyPay)
	return nil
}

func validateJob(job *domain.Job) error {
	switch {
	case job == nil:
		return fmt.Errorf(ErrMsgInvalidJobFmt, "missing job", domain.ErrInvalidInput)
	case strings.TrimSpace(job.JobID) == "":
		return fmt.Errorf(ErrMsgInvalidJobFmt, "empty job id", domain.ErrInvalidInput)
	case strings.TrimSpace(job.Name) == "":
		return fmt.Errorf(ErrMsgInvalidJobFmt, "empty name", domain.ErrInvalidInput)
	case job.HourlyPay <= 0:
		return fmt.Errorf(ErrMsgInvalidJobFmt, "hourly pay must be positive", domain.ErrInvalidAmount)
	case job.AcceptanceChance < 0 || job.AcceptanceChance > 1:
		return fmt.Errorf(ErrMsgInvalidJobFmt, "acceptance chance outside [0, 1]", domain.ErrInvalidInput)
	}
	return nil
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.JobTx) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to begin transaction", "error", err)
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to commit transaction", "error", err)
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
