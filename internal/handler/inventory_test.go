package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

func TestHandleGetInventory(t *testing.T) {
	env := newTestEnv(t)
	env.addItem(t, "fuel", "Fuel Cell", 50)
	env.addItem(t, "rocket", "Rocket", 400)

	t.Run("empty inventory is an empty list", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/users/1/inventory", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"user_id":1,"items":[]}`, string(resp.Data))
	})

	t.Run("lists held items", func(t *testing.T) {
		env.give(t, 1, "rocket", 1)
		env.give(t, 1, "fuel", 3)

		resp := env.do(t, http.MethodGet, "/users/1/inventory", nil)

		inv := decodeData[InventoryResponse](t, resp)
		require.Len(t, inv.Items, 2)
		assert.Equal(t, domain.InventoryEntry{ItemID: "fuel", Name: "Fuel Cell", Quantity: 3}, inv.Items[0])
		assert.Equal(t, domain.InventoryEntry{ItemID: "rocket", Name: "Rocket", Quantity: 1}, inv.Items[1])
	})
}

func TestHandleAdminInventory(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       AdjustItemRequest
		wantStatus int
		wantQty    int64
	}{
		{"add", "/admin/inventory/add", AdjustItemRequest{UserID: 1, ItemID: "fuel", Quantity: 4}, http.StatusOK, 6},
		{"remove", "/admin/inventory/remove", AdjustItemRequest{UserID: 1, ItemID: "fuel", Quantity: 2}, http.StatusOK, 0},
		{"remove too many", "/admin/inventory/remove", AdjustItemRequest{UserID: 1, ItemID: "fuel", Quantity: 3}, http.StatusBadRequest, 2},
		{"unknown item", "/admin/inventory/add", AdjustItemRequest{UserID: 1, ItemID: "warp-core", Quantity: 1}, http.StatusNotFound, 2},
		{"zero quantity", "/admin/inventory/add", AdjustItemRequest{UserID: 1, ItemID: "fuel"}, http.StatusBadRequest, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			env := newTestEnv(t)
			env.addItem(t, "fuel", "Fuel Cell", 50)
			env.give(t, 1, "fuel", 2)

			// ACT
			resp := env.do(t, http.MethodPost, tt.path, tt.body)

			// ASSERT
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantQty, env.quantity(t, 1, "fuel"))
		})
	}
}

func TestHandleDig(t *testing.T) {
	env := newTestEnv(t)
	env.addItem(t, "fuel", "Fuel Cell", 50)

	first := env.do(t, http.MethodPost, "/inventory/dig", UserRequest{UserID: 8})
	second := env.do(t, http.MethodPost, "/inventory/dig", UserRequest{UserID: 8})

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, string(domain.DigNothing), first.Message)
	assert.Equal(t, domain.DigNothing, decodeData[domain.DigResult](t, first).Outcome)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Message, domain.ActionDig)
}
