package economy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// TestBuyItem_ConcurrentBuysCannotOverspend fires two purchases that each cost the whole
// balance. Exactly one may succeed.
func TestBuyItem_ConcurrentBuysCannotOverspend(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	f := newFixture(t, createTestItem("rocket", 500))
	f.fund(t, 1, 500)

	// ACT
	var wg sync.WaitGroup
	var successes, insufficient atomic.Int32
	start := make(chan struct{})
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.shop.BuyItem(ctx, 1, "rocket")
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	// ASSERT
	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(1), insufficient.Load())
	balance, err := f.ledger.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, balance)
	assert.Equal(t, int64(1), f.quantity(t, 1, "rocket"))
}

// TestSellItem_ConcurrentSellsCannotDuplicate sells the same single unit from many goroutines
func TestSellItem_ConcurrentSellsCannotDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, createTestItem("rocket", 400))
	f.fund(t, 1, 400)
	_, err := f.shop.BuyItem(ctx, 1, "rocket")
	require.NoError(t, err)

	var wg sync.WaitGroup
	var successes atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.shop.SellItem(ctx, 1, "rocket", 1); err == nil {
				successes.Add(1)
			} else if !errors.Is(err, domain.ErrItemNotOwned) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	balance, _ := f.ledger.GetBalance(ctx, 1)
	assert.Equal(t, int64(300), balance)
}
