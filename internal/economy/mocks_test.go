package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// MockRepository implements repository.Shop for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockRepository) GetShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockRepository) CountShopItems(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListShopItems(ctx context.Context, limit, offset int) ([]domain.ShopItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockRepository) InsertShopItem(ctx context.Context, item *domain.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ShopTx), args.Error(1)
}

// MockTx implements repository.ShopTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTx) UpdateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockTx) GetItemQuantityForUpdate(ctx context.Context, userID int64, itemID string) (int64, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) SetItemQuantity(ctx context.Context, userID int64, itemID string, quantity int64) error {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Error(0)
}

func createTestItem(id string, price int64) *domain.ShopItem {
	return &domain.ShopItem{ItemID: id, Name: "Test " + id, Price: price}
}
