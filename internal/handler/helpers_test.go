package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpaceBot_Go/internal/cooldown"
	"github.com/osse101/SpaceBot_Go/internal/database/memory"
	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/economy"
	"github.com/osse101/SpaceBot_Go/internal/inventory"
	"github.com/osse101/SpaceBot_Go/internal/job"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/stock"
	"github.com/osse101/SpaceBot_Go/internal/trade"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// testEnv wires every handler to real services over one in-memory store.
// Random rolls are pinned to zero: applications succeed, robberies succeed and digs find nothing.
type testEnv struct {
	router    chi.Router
	store     *memory.Store
	ledger    ledger.Service
	inventory inventory.Service
	shop      economy.Service
	jobs      job.Service
	stocks    stock.Service
	trades    trade.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	rnd := utils.NewSequenceRand([]float64{0}, []int{0})

	env := &testEnv{
		store:     store,
		ledger:    ledger.NewService(memory.NewLedgerRepository(store), ledger.DefaultConfig(), rnd),
		inventory: inventory.NewService(memory.NewInventoryRepository(store), cooldown.Config{}, rnd),
		shop:      economy.NewService(memory.NewShopRepository(store), economy.DefaultConfig()),
		jobs:      job.NewService(memory.NewJobRepository(store), job.DefaultConfig(), rnd),
		stocks:    stock.NewService(memory.NewStockRepository(store), stock.DefaultConfig(), rnd),
		trades:    trade.NewService(memory.NewTradeRepository(store)),
	}

	lh := NewLedgerHandler(env.ledger)
	ih := NewInventoryHandler(env.inventory)
	sh := NewShopHandler(env.shop)
	jh := NewJobHandler(env.jobs)
	kh := NewStockHandler(env.stocks)
	th := NewTradeHandler(env.trades)

	r := chi.NewRouter()
	r.Get("/users/{userID}/balance", lh.HandleGetBalance)
	r.Get("/users/{userID}/account", lh.HandleGetAccount)
	r.Get("/users/{userID}/inventory", ih.HandleGetInventory)
	r.Get("/users/{userID}/job", jh.HandleGetUserJob)
	r.Get("/users/{userID}/portfolio", kh.HandlePortfolio)
	r.Get("/users/{userID}/trades", th.HandleListPending)
	r.Post("/ledger/transfer", lh.HandleTransfer)
	r.Post("/ledger/daily", lh.HandleClaimDaily)
	r.Post("/ledger/rob", lh.HandleRob)
	r.Post("/inventory/dig", ih.HandleDig)
	r.Get("/shop", sh.HandleListItems)
	r.Post("/shop/buy", sh.HandleBuyItem)
	r.Post("/shop/sell", sh.HandleSellItem)
	r.Get("/jobs", jh.HandleGetJobs)
	r.Post("/jobs/apply", jh.HandleApply)
	r.Post("/jobs/resign", jh.HandleResign)
	r.Post("/jobs/work/start", jh.HandleStartWork)
	r.Post("/jobs/work/submit", jh.HandleSubmitWork)
	r.Get("/stocks", kh.HandleMarketOverview)
	r.Get("/stocks/trends", kh.HandleMarketTrends)
	r.Get("/stocks/{stockID}/history", kh.HandleHistory)
	r.Post("/stocks/buy", kh.HandleBuy)
	r.Post("/stocks/sell", kh.HandleSell)
	r.Post("/trades", th.HandlePropose)
	r.Get("/trades/{tradeID}", th.HandleGetTrade)
	r.Post("/trades/{tradeID}/accept", th.HandleAccept)
	r.Post("/trades/{tradeID}/reject", th.HandleReject)
	r.Post("/trades/{tradeID}/cancel", th.HandleCancel)
	r.Post("/admin/ledger/add", lh.HandleAdminAddBalance)
	r.Post("/admin/ledger/remove", lh.HandleAdminRemoveBalance)
	r.Post("/admin/inventory/add", ih.HandleAdminAddItem)
	r.Post("/admin/inventory/remove", ih.HandleAdminRemoveItem)
	r.Post("/admin/shop/items", sh.HandleAdminAddItem)
	r.Post("/admin/jobs", jh.HandleAdminAddJob)
	r.Post("/admin/stocks", kh.HandleAdminAddStock)
	env.router = r
	return env
}

// testResponse is the decoded envelope plus the raw data for further decoding
type testResponse struct {
	Code    int               `json:"-"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Fields  map[string]string `json:"fields"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) testResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	resp := testResponse{Code: rec.Code}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func decodeData[T any](t *testing.T, resp testResponse) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Data, &out), string(resp.Data))
	return out
}

func (e *testEnv) fund(t *testing.T, userID, amount int64) {
	t.Helper()
	_, err := e.ledger.AddBalance(context.Background(), userID, amount)
	require.NoError(t, err)
}

func (e *testEnv) balance(t *testing.T, userID int64) int64 {
	t.Helper()
	b, err := e.ledger.GetBalance(context.Background(), userID)
	require.NoError(t, err)
	return b
}

func (e *testEnv) addItem(t *testing.T, id, name string, price int64) {
	t.Helper()
	require.NoError(t, e.shop.AddShopItem(context.Background(), &domain.ShopItem{ItemID: id, Name: name, Price: price}))
}

func (e *testEnv) give(t *testing.T, userID int64, itemID string, qty int64) {
	t.Helper()
	require.NoError(t, e.inventory.AddToInventory(context.Background(), userID, itemID, qty))
}

func (e *testEnv) quantity(t *testing.T, userID int64, itemID string) int64 {
	t.Helper()
	entries, err := e.inventory.GetInventory(context.Background(), userID)
	require.NoError(t, err)
	for _, en := range entries {
		if en.ItemID == itemID {
			return en.Quantity
		}
	}
	return 0
}
