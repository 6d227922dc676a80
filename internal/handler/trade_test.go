package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

func newTradeEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	env.addItem(t, "rocket", "Rocket", 400)
	env.give(t, 1, "rocket", 1)
	env.fund(t, 2, 300)
	return env
}

func rocketForCredits(credits int64) ProposeTradeRequest {
	return ProposeTradeRequest{
		UserID:         1,
		CounterpartyID: 2,
		Offer:          TradeSideRequest{Kind: string(domain.TradeSideItem), ItemID: "rocket"},
		Request:        TradeSideRequest{Kind: string(domain.TradeSideCredits), Credits: credits},
	}
}

func propose(t *testing.T, env *testEnv, req ProposeTradeRequest) int64 {
	t.Helper()
	resp := env.do(t, http.MethodPost, "/trades", req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Message)
	return decodeData[ProposeTradeResponse](t, resp).TradeID
}

func TestHandleTradeLifecycle_Accept(t *testing.T) {
	// ARRANGE
	env := newTradeEnv(t)
	id := propose(t, env, rocketForCredits(250))

	// ACT
	pending := env.do(t, http.MethodGet, "/users/2/trades", nil)
	wrongUser := env.do(t, http.MethodPost, fmt.Sprintf("/trades/%d/accept", id), UserRequest{UserID: 1})
	accept := env.do(t, http.MethodPost, fmt.Sprintf("/trades/%d/accept", id), UserRequest{UserID: 2})
	again := env.do(t, http.MethodPost, fmt.Sprintf("/trades/%d/accept", id), UserRequest{UserID: 2})
	get := env.do(t, http.MethodGet, fmt.Sprintf("/trades/%d", id), nil)

	// ASSERT
	require.Len(t, decodeData[[]domain.TradeOffer](t, pending), 1)

	assert.Equal(t, http.StatusConflict, wrongUser.Code)
	assert.Equal(t, ErrMsgWrongAcceptorError, wrongUser.Message)

	require.Equal(t, http.StatusOK, accept.Code)
	assert.Equal(t, MsgTradeAccepted, accept.Message)
	assert.Equal(t, domain.TradeAccepted, decodeData[domain.TradeOffer](t, accept).Status)
	assert.Equal(t, int64(250), env.balance(t, 1))
	assert.Equal(t, int64(50), env.balance(t, 2))
	assert.Equal(t, int64(0), env.quantity(t, 1, "rocket"))
	assert.Equal(t, int64(1), env.quantity(t, 2, "rocket"))

	assert.Equal(t, http.StatusConflict, again.Code)
	assert.Equal(t, ErrMsgTradeClosedError, again.Message)
	assert.Equal(t, domain.TradeAccepted, decodeData[domain.TradeOffer](t, get).Status)
}

func TestHandleTrade_RejectAndCancel(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		userID     int64
		wantStatus int
		wantState  domain.TradeStatus
	}{
		{"counterparty rejects", "reject", 2, http.StatusOK, domain.TradeRejected},
		{"proposer cannot reject", "reject", 1, http.StatusConflict, domain.TradePending},
		{"proposer cancels", "cancel", 1, http.StatusOK, domain.TradeCancelled},
		{"counterparty cancels", "cancel", 2, http.StatusOK, domain.TradeCancelled},
		{"outsider cannot cancel", "cancel", 3, http.StatusConflict, domain.TradePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTradeEnv(t)
			id := propose(t, env, rocketForCredits(100))

			resp := env.do(t, http.MethodPost, fmt.Sprintf("/trades/%d/%s", id, tt.action), UserRequest{UserID: tt.userID})

			assert.Equal(t, tt.wantStatus, resp.Code)
			got := env.do(t, http.MethodGet, fmt.Sprintf("/trades/%d", id), nil)
			assert.Equal(t, tt.wantState, decodeData[domain.TradeOffer](t, got).Status)
			assert.Equal(t, int64(1), env.quantity(t, 1, "rocket"), "nothing moves unless accepted")
			assert.Equal(t, int64(300), env.balance(t, 2))
		})
	}
}

func TestHandleProposeTrade_Failures(t *testing.T) {
	unowned := rocketForCredits(100)
	unowned.UserID = 3

	badKind := rocketForCredits(100)
	badKind.Offer.Kind = "ship"

	mixed := rocketForCredits(100)
	mixed.Request.ItemID = "rocket"

	self := rocketForCredits(100)
	self.CounterpartyID = 1

	tests := []struct {
		name        string
		body        ProposeTradeRequest
		wantStatus  int
		wantMessage string
	}{
		{"proposer lacks item", unowned, http.StatusBadRequest, ErrMsgInsufficientItemsErr},
		{"unknown side kind", badKind, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"side with item and credits", mixed, http.StatusBadRequest, ErrMsgInvalidTradeSideError},
		{"trade with self", self, http.StatusBadRequest, ErrMsgSelfTargetError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTradeEnv(t)

			resp := env.do(t, http.MethodPost, "/trades", tt.body)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestHandleGetTrade_NotFound(t *testing.T) {
	env := newTradeEnv(t)

	missing := env.do(t, http.MethodGet, "/trades/404", nil)
	badID := env.do(t, http.MethodGet, "/trades/zero", nil)

	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, ErrMsgTradeNotFoundError, missing.Message)
	assert.Equal(t, http.StatusBadRequest, badID.Code)
}
