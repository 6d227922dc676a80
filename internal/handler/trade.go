package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/trade"
)

// TradeHandler serves escrowed trades between users
type TradeHandler struct {
	service trade.Service
}

func NewTradeHandler(service trade.Service) *TradeHandler {
	return &TradeHandler{service: service}
}

// TradeSideRequest is one half of a proposal. Item sides carry item_id, credit sides credits.
type TradeSideRequest struct {
	Kind    string `json:"kind" validate:"required,side_kind"`
	ItemID  string `json:"item_id" validate:"max=64"`
	Credits int64  `json:"credits" validate:"gte=0"`
}

func (s TradeSideRequest) toDomain() domain.TradeSide {
	return domain.TradeSide{Kind: domain.TradeSideKind(s.Kind), ItemID: s.ItemID, Credits: s.Credits}
}

// ProposeTradeRequest opens a trade
type ProposeTradeRequest struct {
	UserID         int64            `json:"user_id" validate:"required,gt=0"`
	CounterpartyID int64            `json:"counterparty_id" validate:"required,gt=0"`
	Offer          TradeSideRequest `json:"offer"`
	Request        TradeSideRequest `json:"request"`
}

// ProposeTradeResponse returns the id of the new trade
type ProposeTradeResponse struct {
	TradeID int64 `json:"trade_id"`
}

func (h *TradeHandler) HandlePropose(w http.ResponseWriter, r *http.Request) {
	var req ProposeTradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Propose trade"); err != nil {
		return
	}

	id, err := h.service.ProposeTrade(r.Context(), req.UserID, req.CounterpartyID, req.Offer.toDomain(), req.Request.toDomain())
	if err != nil {
		respondServiceError(w, r, "Propose trade", err)
		return
	}
	respondOK(w, http.StatusCreated, MsgTradeProposed, ProposeTradeResponse{TradeID: id})
}

func (h *TradeHandler) HandleGetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID, ok := GetIDParam(r, w, "tradeID")
	if !ok {
		return
	}

	t, err := h.service.GetTrade(r.Context(), tradeID)
	if err != nil {
		respondServiceError(w, r, "Get trade", err)
		return
	}
	respondOK(w, http.StatusOK, "", t)
}

// HandleListPending lists the pending trades a user is party to
func (h *TradeHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetIDParam(r, w, "userID")
	if !ok {
		return
	}

	trades, err := h.service.ListPendingTrades(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "List trades", err)
		return
	}
	if trades == nil {
		trades = []domain.TradeOffer{}
	}
	respondOK(w, http.StatusOK, "", trades)
}

func (h *TradeHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "Accept trade", MsgTradeAccepted, h.service.AcceptTrade)
}

func (h *TradeHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "Reject trade", MsgTradeRejected, h.service.RejectTrade)
}

func (h *TradeHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "Cancel trade", MsgTradeCancelled, h.service.CancelTrade)
}

// resolve handles the three transitions that take the acting user in the body
func (h *TradeHandler) resolve(w http.ResponseWriter, r *http.Request, opName, message string,
	fn func(ctx context.Context, tradeID, userID int64) (*domain.TradeOffer, error)) {
	tradeID, ok := GetIDParam(r, w, "tradeID")
	if !ok {
		return
	}
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	t, err := fn(r.Context(), tradeID, req.UserID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondOK(w, http.StatusOK, message, t)
}
