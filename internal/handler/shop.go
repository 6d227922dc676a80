package handler

import (
	"net/http"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/economy"
)

// ShopHandler serves the catalog and shop trades
type ShopHandler struct {
	service economy.Service
}

func NewShopHandler(service economy.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// BuyItemRequest buys one unit of an item
type BuyItemRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// SellItemRequest sells units back to the shop
type SellItemRequest struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	ItemID   string `json:"item_id" validate:"required,max=64"`
	Quantity int64  `json:"quantity" validate:"required,gt=0,lte=10000"`
}

// AddShopItemRequest registers a catalog entry
type AddShopItemRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
	Name   string `json:"name" validate:"required,max=100"`
	Price  int64  `json:"price" validate:"required,gt=0"`
}

// HandleListItems returns one page of the catalog (?page=, 1-based)
func (h *ShopHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	page, ok := GetOptionalIntQueryParam(r, w, "page", 1)
	if !ok {
		return
	}

	result, err := h.service.ListItems(r.Context(), page)
	if err != nil {
		respondServiceError(w, r, "List shop items", err)
		return
	}
	respondOK(w, http.StatusOK, "", result)
}

func (h *ShopHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	var req BuyItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}

	purchase, err := h.service.BuyItem(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}
	respondOK(w, http.StatusOK, MsgItemPurchased, purchase)
}

func (h *ShopHandler) HandleSellItem(w http.ResponseWriter, r *http.Request) {
	var req SellItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}

	sale, err := h.service.SellItem(r.Context(), req.UserID, req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}
	respondOK(w, http.StatusOK, MsgItemSold, sale)
}

func (h *ShopHandler) HandleAdminAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddShopItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add shop item"); err != nil {
		return
	}

	item := &domain.ShopItem{ItemID: req.ItemID, Name: req.Name, Price: req.Price}
	if err := h.service.AddShopItem(r.Context(), item); err != nil {
		respondServiceError(w, r, "Add shop item", err)
		return
	}
	respondOK(w, http.StatusCreated, MsgCreated, item)
}
