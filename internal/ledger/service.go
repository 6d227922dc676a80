package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/cooldown"
	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// Service defines the interface for balance operations
type Service interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	AddBalance(ctx context.Context, userID, amount int64) (int64, error)
	// RemoveBalance fails with domain.ErrInsufficientFunds rather than going negative
	RemoveBalance(ctx context.Context, userID, amount int64) (int64, error)
	Transfer(ctx context.Context, from, to, amount int64) error
	ClaimDaily(ctx context.Context, userID int64) (*domain.DailyResult, error)
	Rob(ctx context.Context, robberID, victimID int64) (*domain.RobResult, error)
}

// Config holds the tunable ledger rules
type Config struct {
	DailyReward         int64
	RobSuccessChance    float64
	RobMinVictimBalance int64
	RobFine             int64
	Cooldowns           cooldown.Config
}

// DefaultConfig returns the standard ledger rules
func DefaultConfig() Config {
	return Config{
		DailyReward:         domain.DefaultDailyReward,
		RobSuccessChance:    domain.DefaultRobSuccessChance,
		RobMinVictimBalance: domain.DefaultRobMinVictimBalance,
		RobFine:             domain.DefaultRobFine,
	}
}

type service struct {
	repo repository.Ledger
	cfg  Config
	rnd  utils.Rand
	now  func() time.Time
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger, cfg Config, rnd utils.Rand) Service {
	if rnd == nil {
		rnd = utils.DefaultRand()
	}
	return &service{
		repo: repo,
		cfg:  cfg,
		rnd:  rnd,
		now:  time.Now,
	}
}

func (s *service) GetBalance(ctx context.Context, userID int64) (int64, error) {
	acc, err := s.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

func (s *service) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	acc, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get account", "error", err, logger.AttrKeyUserID, userID)
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	return acc, nil
}

func (s *service) AddBalance(ctx context.Context, userID, amount int64) (balance int64, err error) {
	defer func() { metrics.RecordOperation(OpAddBalance, err) }()

	err = s.withTx(ctx, func(tx repository.LedgerTx) error {
		acc, err := Credit(ctx, tx, userID, amount)
		if err != nil {
			return err
		}
		balance = acc.Balance
		return nil
	})
	if err == nil {
		metrics.RecordMint(SourceAdmin, amount)
	}
	return balance, err
}

func (s *service) RemoveBalance(ctx context.Context, userID, amount int64) (balance int64, err error) {
	defer func() { metrics.RecordOperation(OpRemoveBalance, err) }()

	err = s.withTx(ctx, func(tx repository.LedgerTx) error {
		acc, err := Debit(ctx, tx, userID, amount)
		if err != nil {
			return err
		}
		balance = acc.Balance
		return nil
	})
	if err == nil {
		metrics.RecordBurn(SinkAdmin, amount)
	}
	return balance, err
}

func (s *service) Transfer(ctx context.Context, from, to, amount int64) (err error) {
	defer func() { metrics.RecordOperation(OpTransfer, err) }()

	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if from == to {
		return fmt.Errorf("%w: transfer to self", domain.ErrSelfTarget)
	}

	err = s.withTx(ctx, func(tx repository.LedgerTx) error {
		return Move(ctx, tx, from, to, amount)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgTransferCompleted, "from", from, "to", to, "amount", amount)
	return nil
}

func (s *service) ClaimDaily(ctx context.Context, userID int64) (result *domain.DailyResult, err error) {
	defer func() { metrics.RecordOperation(OpClaimDaily, err) }()

	now := s.now()
	err = s.withTx(ctx, func(tx repository.LedgerTx) error {
		acc, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetAccountFailed, err)
		}
		if err := s.cfg.Cooldowns.Check(domain.ActionDaily, acc.LastDailyClaim, now); err != nil {
			return err
		}

		if acc.Balance, err = addCredits(acc.Balance, s.cfg.DailyReward); err != nil {
			return err
		}
		acc.LastDailyClaim = &now
		if err := tx.UpdateAccount(ctx, acc); err != nil {
			return fmt.Errorf(ErrMsgUpdateAccountFailed, err)
		}

		result = &domain.DailyResult{Amount: s.cfg.DailyReward, NewBalance: acc.Balance, ClaimedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMint(SourceDaily, result.Amount)
	logger.FromContext(ctx).Info(LogMsgDailyClaimed, logger.AttrKeyUserID, userID, "amount", result.Amount)
	return result, nil
}

// Rob is a randomized event: success moves a share of the victim's balance to the robber,
// failure burns a fine from the robber. Either outcome starts the robber's cooldown.
func (s *service) Rob(ctx context.Context, robberID, victimID int64) (result *domain.RobResult, err error) {
	defer func() { metrics.RecordOperation(OpRob, err) }()

	if robberID == victimID {
		return nil, fmt.Errorf("%w: cannot rob yourself", domain.ErrSelfTarget)
	}

	now := s.now()
	err = s.withTx(ctx, func(tx repository.LedgerTx) error {
		robber, victim, err := LockPair(ctx, tx, robberID, victimID)
		if err != nil {
			return err
		}
		if err := s.cfg.Cooldowns.Check(domain.ActionRob, robber.LastRobAt, now); err != nil {
			return err
		}
		if victim.Balance < s.cfg.RobMinVictimBalance {
			return fmt.Errorf("%w: target holds fewer than %d credits", domain.ErrInsufficientFunds, s.cfg.RobMinVictimBalance)
		}

		result = &domain.RobResult{}
		if s.rnd.Float64() < s.cfg.RobSuccessChance {
			pct := int64(utils.IntBetween(s.rnd, domain.RobMinStealPercent, domain.RobMaxStealPercent))
			stolen := max(percentOf(victim.Balance, pct), 1)
			if robber.Balance, err = addCredits(robber.Balance, stolen); err != nil {
				return err
			}
			victim.Balance -= stolen
			result.Success = true
			result.Stolen = stolen
		} else {
			result.Fine = min(s.cfg.RobFine, robber.Balance)
			robber.Balance -= result.Fine
		}
		robber.LastRobAt = &now
		result.Balance = robber.Balance

		if err := tx.UpdateAccount(ctx, victim); err != nil {
			return fmt.Errorf(ErrMsgUpdateAccountFailed, err)
		}
		if err := tx.UpdateAccount(ctx, robber); err != nil {
			return fmt.Errorf(ErrMsgUpdateAccountFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if result.Success {
		log.Info(LogMsgRobSucceeded, "robber", robberID, "victim", victimID, "stolen", result.Stolen)
	} else {
		metrics.RecordBurn(SinkRobFine, result.Fine)
		log.Info(LogMsgRobFailed, "robber", robberID, "victim", victimID, "fine", result.Fine)
	}
	return result, nil
}

// withTx runs fn in a ledger transaction, committing only when fn succeeds
func (s *service) withTx(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
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
