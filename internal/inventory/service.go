package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/cooldown"
	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// Service defines the interface for item holdings
type Service interface {
	GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error)
	AddToInventory(ctx context.Context, userID int64, itemID string, qty int64) error
	RemoveItem(ctx context.Context, userID int64, itemID string, qty int64) error
	Dig(ctx context.Context, userID int64) (*domain.DigResult, error)
}

type service struct {
	repo      repository.Inventory
	cooldowns cooldown.Config
	rnd       utils.Rand
	now       func() time.Time
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, cooldowns cooldown.Config, rnd utils.Rand) Service {
	if rnd == nil {
		rnd = utils.DefaultRand()
	}
	return &service{
		repo:      repo,
		cooldowns: cooldowns,
		rnd:       rnd,
		now:       time.Now,
	}
}

func (s *service) GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error) {
	entries, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get inventory", "error", err, logger.AttrKeyUserID, userID)
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return entries, nil
}

func (s *service) AddToInventory(ctx context.Context, userID int64, itemID string, qty int64) (err error) {
	defer func() { metrics.RecordOperation(OpAddToInventory, err) }()

	item, err := s.repo.GetShopItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	return s.withTx(ctx, func(tx repository.InventoryTx) error {
		_, err := Grant(ctx, tx, userID, itemID, qty)
		return err
	})
}

func (s *service) RemoveItem(ctx context.Context, userID int64, itemID string, qty int64) (err error) {
	defer func() { metrics.RecordOperation(OpRemoveItem, err) }()

	return s.withTx(ctx, func(tx repository.InventoryTx) error {
		_, err := Take(ctx, tx, userID, itemID, qty)
		return err
	})
}

// Dig rolls for nothing, a credit find or one random catalog item. The cooldown starts
// whatever the outcome.
func (s *service) Dig(ctx context.Context, userID int64) (result *domain.DigResult, err error) {
	defer func() { metrics.RecordOperation(OpDig, err) }()

	catalog, err := s.repo.GetShopItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}

	now := s.now()
	err = s.withTx(ctx, func(tx repository.InventoryTx) error {
		acc, err := tx.GetAccountForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}
		if err := s.cooldowns.Check(domain.ActionDig, acc.LastDigAt, now); err != nil {
			return err
		}
		acc.LastDigAt = &now
		if err := tx.UpdateAccount(ctx, acc); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		result = s.rollDig(catalog)
		switch result.Outcome {
		case domain.DigCredits:
			_, err = ledger.Credit(ctx, tx, userID, result.Credits)
		case domain.DigItem:
			_, err = Grant(ctx, tx, userID, result.Item.ItemID, 1)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome == domain.DigCredits {
		metrics.RecordMint(SourceDig, result.Credits)
	}
	logger.FromContext(ctx).Info(LogMsgDigCompleted, logger.AttrKeyUserID, userID, "outcome", result.Outcome)
	return result, nil
}

func (s *service) rollDig(catalog []domain.ShopItem) *domain.DigResult {
	roll := s.rnd.Float64()
	switch {
	case roll < domain.DigNothingChance:
		return &domain.DigResult{Outcome: domain.DigNothing}
	case roll < domain.DigNothingChance+domain.DigCreditsChance || len(catalog) == 0:
		return &domain.DigResult{
			Outcome: domain.DigCredits,
			Credits: utils.Int64Between(s.rnd, domain.DigCreditsMin, domain.DigCreditsMax),
		}
	default:
		item := catalog[s.rnd.IntN(len(catalog))]
		return &domain.DigResult{Outcome: domain.DigItem, Item: &item}
	}
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.InventoryTx) error) error {
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
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
