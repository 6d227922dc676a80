package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// Service defines the trade escrow operations
type Service interface {
	// ProposeTrade records a pending offer. Nothing moves until the counterparty accepts.
	ProposeTrade(ctx context.Context, proposerID, counterpartyID int64, offer, request domain.TradeSide) (int64, error)
	AcceptTrade(ctx context.Context, tradeID, acceptorID int64) (*domain.TradeOffer, error)
	RejectTrade(ctx context.Context, tradeID, userID int64) (*domain.TradeOffer, error)
	CancelTrade(ctx context.Context, tradeID, userID int64) (*domain.TradeOffer, error)
	GetTrade(ctx context.Context, tradeID int64) (*domain.TradeOffer, error)
	ListPendingTrades(ctx context.Context, userID int64) ([]domain.TradeOffer, error)
}

type service struct {
	repo repository.Trade
	now  func() time.Time
}

// NewService creates a new trade escrow service
func NewService(repo repository.Trade) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ProposeTrade(ctx context.Context, proposerID, counterpartyID int64, offer, request domain.TradeSide) (tradeID int64, err error) {
	defer func() { metrics.RecordOperation(OpProposeTrade, err) }()

	if proposerID == counterpartyID {
		return 0, fmt.Errorf("%w: cannot trade with yourself", domain.ErrSelfTarget)
	}
	if err := validateSide("offer", offer); err != nil {
		return 0, err
	}
	if err := validateSide("request", request); err != nil {
		return 0, err
	}

	now := s.now()
	err = s.withTx(ctx, func(tx repository.TradeTx) error {
		if _, _, err := ledger.LockPair(ctx, tx, proposerID, counterpartyID); err != nil {
			return err
		}
		if err := requireHeld(ctx, tx, proposerID, offer); err != nil {
			return err
		}
		if err := requireHeld(ctx, tx, counterpartyID, request); err != nil {
			return err
		}
		id, err := tx.InsertTrade(ctx, &domain.TradeOffer{
			ProposerID:     proposerID,
			CounterpartyID: counterpartyID,
			Offer:          offer,
			Request:        request,
			Status:         domain.TradePending,
			CreatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf(ErrMsgInsertTradeFailed, err)
		}
		tradeID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgTradeProposed, "trade_id", tradeID, "proposer", proposerID, "counterparty", counterpartyID)
	return tradeID, nil
}

// AcceptTrade executes both legs atomically. The trade row is locked first, then both accounts
// in ascending id order. Any failing leg aborts the whole exchange and the trade stays pending.
func (s *service) AcceptTrade(ctx context.Context, tradeID, acceptorID int64) (trade *domain.TradeOffer, err error) {
	defer func() { metrics.RecordOperation(OpAcceptTrade, err) }()

	return s.resolve(ctx, tradeID, domain.TradeAccepted, func(ctx context.Context, tx repository.TradeTx, tr *domain.TradeOffer) error {
		if acceptorID != tr.CounterpartyID {
			return domain.ErrWrongAcceptor
		}
		if _, _, err := ledger.LockPair(ctx, tx, tr.ProposerID, tr.CounterpartyID); err != nil {
			return err
		}
		if err := moveSide(ctx, tx, tr.Offer, tr.ProposerID, tr.CounterpartyID); err != nil {
			return err
		}
		return moveSide(ctx, tx, tr.Request, tr.CounterpartyID, tr.ProposerID)
	})
}

// RejectTrade is reserved for the counterparty
func (s *service) RejectTrade(ctx context.Context, tradeID, userID int64) (trade *domain.TradeOffer, err error) {
	defer func() { metrics.RecordOperation(OpRejectTrade, err) }()

	return s.resolve(ctx, tradeID, domain.TradeRejected, func(_ context.Context, _ repository.TradeTx, tr *domain.TradeOffer) error {
		if userID != tr.CounterpartyID {
			return domain.ErrWrongAcceptor
		}
		return nil
	})
}

// CancelTrade may be called by either party
func (s *service) CancelTrade(ctx context.Context, tradeID, userID int64) (trade *domain.TradeOffer, err error) {
	defer func() { metrics.RecordOperation(OpCancelTrade, err) }()

	return s.resolve(ctx, tradeID, domain.TradeCancelled, func(_ context.Context, _ repository.TradeTx, tr *domain.TradeOffer) error {
		if !tr.IsParty(userID) {
			return domain.ErrNotTradeParty
		}
		return nil
	})
}

func (s *service) GetTrade(ctx context.Context, tradeID int64) (*domain.TradeOffer, error) {
	tr, err := s.repo.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTradeFailed, err)
	}
	if tr == nil {
		return nil, fmt.Errorf(ErrMsgTradeNotFoundFmt, tradeID, domain.ErrTradeNotFound)
	}
	return tr, nil
}

func (s *service) ListPendingTrades(ctx context.Context, userID int64) ([]domain.TradeOffer, error) {
	trades, err := s.repo.ListTradesForUser(ctx, userID, domain.TradePending)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list trades", "error", err, logger.AttrKeyUserID, userID)
		return nil, fmt.Errorf(ErrMsgListTradesFailed, err)
	}
	return trades, nil
}

// resolve locks a pending trade, runs fn and moves the trade to status
func (s *service) resolve(ctx context.Context, tradeID int64, status domain.TradeStatus,
	fn func(ctx context.Context, tx repository.TradeTx, tr *domain.TradeOffer) error) (*domain.TradeOffer, error) {
	now := s.now()
	var resolved *domain.TradeOffer
	err := s.withTx(ctx, func(tx repository.TradeTx) error {
		tr, err := tx.GetTradeForUpdate(ctx, tradeID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetTradeFailed, err)
		}
		if tr == nil {
			return fmt.Errorf(ErrMsgTradeNotFoundFmt, tradeID, domain.ErrTradeNotFound)
		}
		if tr.Status != domain.TradePending {
			return fmt.Errorf(ErrMsgTradeNotPendingFmt, tradeID, tr.Status, domain.ErrTradeNotPending)
		}
		if err := fn(ctx, tx, tr); err != nil {
			return err
		}
		if err := tx.UpdateTradeStatus(ctx, tradeID, status, now); err != nil {
			return fmt.Errorf(ErrMsgUpdateTradeFailed, err)
		}
		tr.Status = status
		tr.ResolvedAt = &now
		resolved = tr
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TradesResolved.WithLabelValues(string(status)).Inc()
	logger.FromContext(ctx).Info(LogMsgTradeResolved, "trade_id", tradeID, "status", status)
	return resolved, nil
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.TradeTx) error) error {
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
