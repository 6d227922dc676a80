package job

import (
	"context"
	"fmt"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// ApplyForJob records the attempt and draws against the job's acceptance chance. The attempt
// is stored even when the job does not exist or the draw fails, so it always starts the
// per-job cooldown.
func (s *service) ApplyForJob(ctx context.Context, userID int64, jobID string) (result *domain.ApplicationResult, err error) {
	defer func() { metrics.RecordOperation(OpApplyForJob, err) }()

	now := s.now()
	var outcome error
	err = s.withTx(ctx, func(tx repository.JobTx) error {
		emp, err := tx.GetEmploymentForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetEmploymentFailed, err)
		}
		if emp != nil {
			return fmt.Errorf("%w: already working as %s", domain.ErrAlreadyEmployed, emp.JobID)
		}

		last, err := tx.GetLastApplicationForUpdate(ctx, userID, jobID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetApplicationFailed, err)
		}
		if err := s.cfg.Cooldowns.Check(domain.ActionApply, last, now); err != nil {
			return err
		}
		if err := tx.UpsertApplication(ctx, userID, jobID, now); err != nil {
			return fmt.Errorf(ErrMsgRecordApplicationFailed, err)
		}

		job, err := tx.GetJob(ctx, jobID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetJobFailed, err)
		}
		if job == nil {
			// commit the attempt, then report the missing job
			outcome = fmt.Errorf(ErrMsgJobNotFoundFmt, jobID, domain.ErrJobNotFound)
			return nil
		}

		result = &domain.ApplicationResult{Job: *job}
		if s.rnd.Float64() <= job.AcceptanceChance {
			result.Accepted = true
			if err := tx.InsertEmployment(ctx, &domain.Employment{UserID: userID, JobID: jobID, StartedAt: now}); err != nil {
				if domain.IsExpected(err) {
					return err
				}
				return fmt.Errorf(ErrMsgWriteEmploymentFailed, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return nil, outcome
	}

	log := logger.FromContext(ctx)
	if result.Accepted {
		log.Info(LogMsgApplicationAccepted, logger.AttrKeyUserID, userID, "job_id", jobID)
	} else {
		log.Info(LogMsgApplicationRejected, logger.AttrKeyUserID, userID, "job_id", jobID)
	}
	return result, nil
}

// ResignFromJob ends the user's employment once the minimum tenure has passed
func (s *service) ResignFromJob(ctx context.Context, userID int64) (err error) {
	defer func() { metrics.RecordOperation(OpResignFromJob, err) }()

	now := s.now()
	err = s.withTx(ctx, func(tx repository.JobTx) error {
		emp, err := tx.GetEmploymentForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetEmploymentFailed, err)
		}
		if emp == nil {
			return domain.ErrNotEmployed
		}
		started := emp.StartedAt
		if err := s.cfg.Cooldowns.Check(domain.ActionResign, &started, now); err != nil {
			return err
		}
		if err := tx.DeleteEmployment(ctx, userID); err != nil {
			return fmt.Errorf(ErrMsgWriteEmploymentFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.challenges.Discard(userID)
	logger.FromContext(ctx).Info(LogMsgResigned, logger.AttrKeyUserID, userID)
	return nil
}
