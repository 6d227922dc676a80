package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

func TestHandleGetBalance(t *testing.T) {
	env := newTestEnv(t)
	env.fund(t, 7, 250)

	t.Run("existing user", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/users/7/balance", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, BalanceResponse{UserID: 7, Balance: 250}, decodeData[BalanceResponse](t, resp))
	})

	t.Run("unknown user starts at zero", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/users/99/balance", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, int64(0), decodeData[BalanceResponse](t, resp).Balance)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/users/abc/balance", nil)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid userID", resp.Message)
	})
}

func TestHandleTransfer(t *testing.T) {
	tests := []struct {
		name        string
		body        interface{}
		wantStatus  int
		wantMessage string
		wantFrom    int64
		wantTo      int64
	}{
		{"moves credits", TransferRequest{FromUserID: 1, ToUserID: 2, Amount: 40}, http.StatusOK, MsgTransferCompleted, 60, 40},
		{"insufficient funds", TransferRequest{FromUserID: 1, ToUserID: 2, Amount: 101}, http.StatusBadRequest, ErrMsgNotEnoughMoneyError, 100, 0},
		{"zero amount fails validation", TransferRequest{FromUserID: 1, ToUserID: 2}, http.StatusBadRequest, ErrMsgInvalidRequestSummary, 100, 0},
		{"self transfer fails validation", TransferRequest{FromUserID: 1, ToUserID: 1, Amount: 5}, http.StatusBadRequest, ErrMsgInvalidRequestSummary, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			env := newTestEnv(t)
			env.fund(t, 1, 100)

			// ACT
			resp := env.do(t, http.MethodPost, "/ledger/transfer", tt.body)

			// ASSERT
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantFrom, env.balance(t, 1))
			assert.Equal(t, tt.wantTo, env.balance(t, 2))
		})
	}
}

func TestHandleTransfer_MalformedBody(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/ledger/transfer", nil)
	req.Body = http.NoBody
	rec := httptest.NewRecorder()

	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidRequest)
}

func TestHandleTransfer_ValidationFields(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/ledger/transfer", map[string]int64{"from_user_id": 1, "to_user_id": 1})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "This field is required", resp.Fields["amount"])
	assert.Equal(t, "Must differ from fromuserid", resp.Fields["touserid"])
}

func TestHandleClaimDaily(t *testing.T) {
	env := newTestEnv(t)

	first := env.do(t, http.MethodPost, "/ledger/daily", UserRequest{UserID: 3})
	second := env.do(t, http.MethodPost, "/ledger/daily", UserRequest{UserID: 3})

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, MsgDailyClaimed, first.Message)
	assert.Equal(t, int64(1000), decodeData[domain.DailyResult](t, first).NewBalance)

	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, domain.ActionDaily)
	assert.Equal(t, int64(1000), env.balance(t, 3))
}

func TestHandleRob(t *testing.T) {
	env := newTestEnv(t)
	env.fund(t, 2, 1000)

	resp := env.do(t, http.MethodPost, "/ledger/rob", RobRequest{UserID: 1, TargetID: 2})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, MsgRobSucceeded, resp.Message)
	result := decodeData[domain.RobResult](t, resp)
	assert.True(t, result.Success)
	assert.Equal(t, int64(1000), env.balance(t, 1)+env.balance(t, 2))

	resp = env.do(t, http.MethodPost, "/ledger/rob", RobRequest{UserID: 5, TargetID: 5})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, ErrMsgSelfTargetError, resp.Message)
}

func TestHandleAdminBalance(t *testing.T) {
	env := newTestEnv(t)

	add := env.do(t, http.MethodPost, "/admin/ledger/add", AdjustBalanceRequest{UserID: 4, Amount: 500})
	remove := env.do(t, http.MethodPost, "/admin/ledger/remove", AdjustBalanceRequest{UserID: 4, Amount: 200})
	overdraw := env.do(t, http.MethodPost, "/admin/ledger/remove", AdjustBalanceRequest{UserID: 4, Amount: 301})

	assert.Equal(t, int64(500), decodeData[BalanceResponse](t, add).Balance)
	assert.Equal(t, int64(300), decodeData[BalanceResponse](t, remove).Balance)
	assert.Equal(t, http.StatusBadRequest, overdraw.Code)
	assert.Equal(t, int64(300), env.balance(t, 4))
}

// MockLedgerService lets handler tests force storage faults
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) AddBalance(ctx context.Context, userID, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) RemoveBalance(ctx context.Context, userID, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, from, to, amount int64) error {
	return m.Called(ctx, from, to, amount).Error(0)
}

func (m *MockLedgerService) ClaimDaily(ctx context.Context, userID int64) (*domain.DailyResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyResult), args.Error(1)
}

func (m *MockLedgerService) Rob(ctx context.Context, robberID, victimID int64) (*domain.RobResult, error) {
	args := m.Called(ctx, robberID, victimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RobResult), args.Error(1)
}

func TestLedgerHandler_FaultsAreHidden(t *testing.T) {
	// ARRANGE
	svc := &MockLedgerService{}
	svc.On("Transfer", mock.Anything, int64(1), int64(2), int64(10)).
		Return(assert.AnError)
	h := NewLedgerHandler(svc)
	env := newTestEnv(t)
	env.router.Post("/faulty/transfer", h.HandleTransfer)

	// ACT
	resp := env.do(t, http.MethodPost, "/faulty/transfer", TransferRequest{FromUserID: 1, ToUserID: 2, Amount: 10})

	// ASSERT
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrMsgGenericServerError, resp.Message)
	assert.NotContains(t, resp.Message, assert.AnError.Error())
	svc.AssertExpectations(t)
}
