package handler

import (
	"net/http"

	"github.com/osse101/SpaceBot_Go/internal/ledger"
)

// LedgerHandler serves balances, transfers and the daily and rob events
type LedgerHandler struct {
	service ledger.Service
}

func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// TransferRequest moves credits between two users
type TransferRequest struct {
	FromUserID int64 `json:"from_user_id" validate:"required,gt=0"`
	ToUserID   int64 `json:"to_user_id" validate:"required,gt=0,nefield=FromUserID"`
	Amount     int64 `json:"amount" validate:"required,gt=0"`
}

// UserRequest identifies the acting user
type UserRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// RobRequest names the robber and the target
type RobRequest struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	TargetID int64 `json:"target_id" validate:"required,gt=0"`
}

// AdjustBalanceRequest is an administrative mint or burn
type AdjustBalanceRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// BalanceResponse is returned by balance reads and adjustments
type BalanceResponse struct {
	UserID  int64 `json:"user_id"`
	Balance int64 `json:"balance"`
}

func (h *LedgerHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetIDParam(r, w, "userID")
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get balance", err)
		return
	}
	respondOK(w, http.StatusOK, "", BalanceResponse{UserID: userID, Balance: balance})
}

func (h *LedgerHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetIDParam(r, w, "userID")
	if !ok {
		return
	}

	acc, err := h.service.GetAccount(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get account", err)
		return
	}
	respondOK(w, http.StatusOK, "", acc)
}

func (h *LedgerHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Transfer"); err != nil {
		return
	}

	if err := h.service.Transfer(r.Context(), req.FromUserID, req.ToUserID, req.Amount); err != nil {
		respondServiceError(w, r, "Transfer", err)
		return
	}
	respondOK(w, http.StatusOK, MsgTransferCompleted, req)
}

func (h *LedgerHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim daily"); err != nil {
		return
	}

	result, err := h.service.ClaimDaily(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Claim daily", err)
		return
	}
	respondOK(w, http.StatusOK, MsgDailyClaimed, result)
}

func (h *LedgerHandler) HandleRob(w http.ResponseWriter, r *http.Request) {
	var req RobRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rob"); err != nil {
		return
	}

	result, err := h.service.Rob(r.Context(), req.UserID, req.TargetID)
	if err != nil {
		respondServiceError(w, r, "Rob", err)
		return
	}

	message := MsgRobFailed
	if result.Success {
		message = MsgRobSucceeded
	}
	respondOK(w, http.StatusOK, message, result)
}

// HandleAdminAddBalance mints credits into an account
func (h *LedgerHandler) HandleAdminAddBalance(w http.ResponseWriter, r *http.Request) {
	var req AdjustBalanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add balance"); err != nil {
		return
	}

	balance, err := h.service.AddBalance(r.Context(), req.UserID, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Add balance", err)
		return
	}
	respondOK(w, http.StatusOK, MsgBalanceAdjusted, BalanceResponse{UserID: req.UserID, Balance: balance})
}

// HandleAdminRemoveBalance burns credits from an account
func (h *LedgerHandler) HandleAdminRemoveBalance(w http.ResponseWriter, r *http.Request) {
	var req AdjustBalanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove balance"); err != nil {
		return
	}

	balance, err := h.service.RemoveBalance(r.Context(), req.UserID, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Remove balance", err)
		return
	}
	respondOK(w, http.StatusOK, MsgBalanceAdjusted, BalanceResponse{UserID: req.UserID, Balance: balance})
}
