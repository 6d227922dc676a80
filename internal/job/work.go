package job

import (
	"context"
	"fmt"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// StartWork issues a multiplication puzzle that must be answered within the answer window.
// Issuing a new challenge replaces any pending one.
func (s *service) StartWork(ctx context.Context, userID int64) (challenge *domain.WorkChallenge, err error) {
	defer func() { metrics.RecordOperation(OpStartWork, err) }()

	unlock := s.userLocks.Lock(userID)
	defer unlock()

	emp, err := s.repo.GetEmployment(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEmploymentFailed, err)
	}
	if emp == nil {
		return nil, domain.ErrNotEmployed
	}
	now := s.now()
	if err := s.cfg.Cooldowns.Check(domain.ActionWork, emp.LastWorkAt, now); err != nil {
		return nil, err
	}

	ch := domain.WorkChallenge{
		UserID:    userID,
		A:         utils.IntBetween(s.rnd, domain.WorkOperandMin, domain.WorkOperandMax),
		B:         utils.IntBetween(s.rnd, domain.WorkOperandMin, domain.WorkOperandMax),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.AnswerWindow),
	}
	s.challenges.Put(ch)

	logger.FromContext(ctx).Info(LogMsgChallengeIssued, logger.AttrKeyUserID, userID, "expires_at", ch.ExpiresAt)
	return &ch, nil
}

// SubmitWork consumes the pending challenge. Only a correct answer inside the window pays.
func (s *service) SubmitWork(ctx context.Context, userID int64, answer int) (result *domain.WorkResult, err error) {
	defer func() { metrics.RecordOperation(OpSubmitWork, err) }()

	unlock := s.userLocks.Lock(userID)
	defer unlock()

	ch, ok := s.challenges.Take(userID)
	if !ok {
		return nil, domain.ErrNoPendingChallenge
	}

	now := s.now()
	result = &domain.WorkResult{Expected: ch.Answer()}
	log := logger.FromContext(ctx)
	if now.After(ch.ExpiresAt) {
		result.Late = true
		log.Info(LogMsgWorkFailed, logger.AttrKeyUserID, userID, "reason", "late")
		return result, nil
	}
	if answer != ch.Answer() {
		log.Info(LogMsgWorkFailed, logger.AttrKeyUserID, userID, "reason", "wrong answer")
		return result, nil
	}

	err = s.withTx(ctx, func(tx repository.JobTx) error {
		emp, err := tx.GetEmploymentForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetEmploymentFailed, err)
		}
		if emp == nil {
			return domain.ErrNotEmployed
		}
		if err := s.cfg.Cooldowns.Check(domain.ActionWork, emp.LastWorkAt, now); err != nil {
			return err
		}
		job, err := tx.GetJob(ctx, emp.JobID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetJobFailed, err)
		}
		if job == nil {
			return fmt.Errorf(ErrMsgJobNotFoundFmt, emp.JobID, domain.ErrJobNotFound)
		}

		acc, err := ledger.Credit(ctx, tx, userID, job.HourlyPay)
		if err != nil {
			return err
		}
		points := utils.Int64Between(s.rnd, domain.WorkPointsMin, domain.WorkPointsMax)
		acc.JobPoints += points
		if err := tx.UpdateAccount(ctx, acc); err != nil {
			return fmt.Errorf(ErrMsgUpdateAccountFailed, err)
		}
		if err := tx.UpdateLastWork(ctx, userID, now); err != nil {
			return fmt.Errorf(ErrMsgWriteEmploymentFailed, err)
		}

		result.Correct = true
		result.Pay = job.HourlyPay
		result.PointsBonus = points
		result.NewBalance = acc.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMint(SourceWork, result.Pay)
	log.Info(LogMsgWorkPaid, logger.AttrKeyUserID, userID, "pay", result.Pay, "points", result.PointsBonus)
	return result, nil
}

// Work runs a full shift for one user. Only one Work call per user may wait on a responder at a
// time. A responder error or timeout discards the challenge and changes nothing else.
func (s *service) Work(ctx context.Context, userID int64, responder Responder) (*domain.WorkResult, error) {
	if _, busy := s.working.LoadOrStore(userID, struct{}{}); busy {
		return nil, domain.ErrChallengeOutstanding
	}
	defer s.working.Delete(userID)

	ch, err := s.StartWork(ctx, userID)
	if err != nil {
		return nil, err
	}

	answerCtx, cancel := context.WithTimeout(ctx, s.cfg.AnswerWindow)
	defer cancel()

	answer, err := responder(answerCtx, *ch)
	if err == nil {
		err = answerCtx.Err()
	}
	if err != nil {
		s.challenges.Discard(userID)
		return nil, fmt.Errorf(ErrMsgWorkAbandonedFmt, err)
	}
	return s.SubmitWork(ctx, userID, answer)
}
