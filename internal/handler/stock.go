package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/stock"
)

// MaxHistoryLimit caps how many samples one history request may return
const MaxHistoryLimit = 1000

// StockHandler serves the stock market
type StockHandler struct {
	service stock.Service
}

func NewStockHandler(service stock.Service) *StockHandler {
	return &StockHandler{service: service}
}

// StockTradeRequest buys or sells shares
type StockTradeRequest struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	StockID  string `json:"stock_id" validate:"required,max=32"`
	Quantity int64  `json:"quantity" validate:"required,gt=0,lte=10000"`
}

// AddStockRequest lists a new ticker. Price accepts a JSON number or a decimal string.
type AddStockRequest struct {
	StockID string          `json:"stock_id" validate:"required,max=32"`
	Name    string          `json:"name" validate:"required,max=100"`
	Price   decimal.Decimal `json:"price"`
}

// HistoryResponse lists samples newest first
type HistoryResponse struct {
	StockID string               `json:"stock_id"`
	Samples []domain.PriceSample `json:"samples"`
}

// PortfolioResponse lists a user's holdings at current prices
type PortfolioResponse struct {
	UserID   int64                   `json:"user_id"`
	Holdings []domain.PortfolioEntry `json:"holdings"`
	Total    decimal.Decimal         `json:"total"`
}

// HandleMarketOverview returns one page of stocks (?order=highest|lowest&page=)
func (h *StockHandler) HandleMarketOverview(w http.ResponseWriter, r *http.Request) {
	order := domain.StockOrder(strings.ToLower(GetOptionalQueryParam(r, "order", string(domain.StockOrderHighest))))
	page, ok := GetOptionalIntQueryParam(r, w, "page", 1)
	if !ok {
		return
	}

	result, err := h.service.MarketOverview(r.Context(), order, page)
	if err != nil {
		respondServiceError(w, r, "Market overview", err)
		return
	}
	respondOK(w, http.StatusOK, "", result)
}

func (h *StockHandler) HandleMarketTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.service.MarketTrends(r.Context())
	if err != nil {
		respondServiceError(w, r, "Market trends", err)
		return
	}
	if trends == nil {
		trends = []domain.StockTrend{}
	}
	respondOK(w, http.StatusOK, "", trends)
}

// HandleHistory returns recent price samples (?limit=)
func (h *StockHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "stockID")
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", domain.DefaultHistoryLimit)
	if !ok {
		return
	}
	limit = min(max(limit, 1), MaxHistoryLimit)

	samples, err := h.service.FetchStockHistory(r.Context(), stockID, limit)
	if err != nil {
		respondServiceError(w, r, "Stock history", err)
		return
	}
	if samples == nil {
		samples = []domain.PriceSample{}
	}
	respondOK(w, http.StatusOK, "", HistoryResponse{StockID: stockID, Samples: samples})
}

func (h *StockHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req StockTradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy shares"); err != nil {
		return
	}

	result, err := h.service.Buy(r.Context(), req.UserID, req.StockID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Buy shares", err)
		return
	}
	respondOK(w, http.StatusOK, MsgSharesBought, result)
}

func (h *StockHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req StockTradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell shares"); err != nil {
		return
	}

	result, err := h.service.Sell(r.Context(), req.UserID, req.StockID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Sell shares", err)
		return
	}
	respondOK(w, http.StatusOK, MsgSharesSold, result)
}

func (h *StockHandler) HandlePortfolio(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetIDParam(r, w, "userID")
	if !ok {
		return
	}

	entries, err := h.service.Portfolio(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Portfolio", err)
		return
	}

	resp := PortfolioResponse{UserID: userID, Holdings: entries, Total: decimal.Zero}
	if resp.Holdings == nil {
		resp.Holdings = []domain.PortfolioEntry{}
	}
	for _, e := range entries {
		resp.Total = resp.Total.Add(e.Value)
	}
	respondOK(w, http.StatusOK, "", resp)
}

func (h *StockHandler) HandleAdminAddStock(w http.ResponseWriter, r *http.Request) {
	var req AddStockRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add stock"); err != nil {
		return
	}

	s := &domain.Stock{StockID: req.StockID, Name: req.Name, Price: req.Price}
	if err := h.service.AddStock(r.Context(), s); err != nil {
		respondServiceError(w, r, "Add stock", err)
		return
	}
	respondOK(w, http.StatusCreated, MsgCreated, s)
}
