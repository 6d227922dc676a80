package handler

import (
	"net/http"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/inventory"
)

// InventoryHandler serves inventories and the dig event
type InventoryHandler struct {
	service inventory.Service
}

func NewInventoryHandler(service inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// AdjustItemRequest adds or removes units of an item
type AdjustItemRequest struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	ItemID   string `json:"item_id" validate:"required,max=64"`
	Quantity int64  `json:"quantity" validate:"required,gt=0,lte=10000"`
}

// InventoryResponse lists a user's items
type InventoryResponse struct {
	UserID int64                   `json:"user_id"`
	Items  []domain.InventoryEntry `json:"items"`
}

func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetIDParam(r, w, "userID")
	if !ok {
		return
	}

	items, err := h.service.GetInventory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get inventory", err)
		return
	}
	if items == nil {
		items = []domain.InventoryEntry{}
	}
	respondOK(w, http.StatusOK, "", InventoryResponse{UserID: userID, Items: items})
}

func (h *InventoryHandler) HandleDig(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Dig"); err != nil {
		return
	}

	result, err := h.service.Dig(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Dig", err)
		return
	}
	respondOK(w, http.StatusOK, string(result.Outcome), result)
}

func (h *InventoryHandler) HandleAdminAddItem(w http.ResponseWriter, r *http.Request) {
	var req AdjustItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
		return
	}

	if err := h.service.AddToInventory(r.Context(), req.UserID, req.ItemID, req.Quantity); err != nil {
		respondServiceError(w, r, "Add item", err)
		return
	}
	respondOK(w, http.StatusOK, MsgInventoryUpdated, req)
}

func (h *InventoryHandler) HandleAdminRemoveItem(w http.ResponseWriter, r *http.Request) {
	var req AdjustItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
		return
	}

	if err := h.service.RemoveItem(r.Context(), req.UserID, req.ItemID, req.Quantity); err != nil {
		respondServiceError(w, r, "Remove item", err)
		return
	}
	respondOK(w, http.StatusOK, MsgInventoryUpdated, req)
}
