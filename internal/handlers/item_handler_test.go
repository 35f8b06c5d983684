package handlers_test

import (
	"HomeStock/internal/config"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems_CreateAndGet(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyClamp)
	l := env.createList(t, "Groceries")

	rr := env.do(t, http.MethodPost, fmt.Sprintf("/api/lists/%d/items", l.ID),
		`{"name":"Milk","quantity_at_home":1,"quantity_to_buy":4,"price":"3.00"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	it := decodeBody[itemResp](t, rr)
	require.NotNil(t, it.ListID)
	assert.Equal(t, l.ID, *it.ListID)
	require.NotNil(t, it.Price)
	assert.Equal(t, "3.00", *it.Price)
	assert.Equal(t, "9.00", it.TotalCost)
	assert.Equal(t, int64(1), it.Version)

	rr = env.do(t, http.MethodGet, fmt.Sprintf("/api/items/%d", it.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Milk", decodeBody[itemResp](t, rr).Name)

	rr = env.do(t, http.MethodGet, fmt.Sprintf("/api/items/%d/cost", it.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	c := decodeBody[struct {
		Needed int64  `json:"needed"`
		Cost   string `json:"cost"`
	}](t, rr)
	assert.Equal(t, int64(3), c.Needed)
	assert.Equal(t, "9.00", c.Cost)
}

func TestItems_PriceDefaultsToZero(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyClamp)
	it := env.createItem(t, `{"name":"Salt","quantity_to_buy":3}`)
	require.NotNil(t, it.Price)
	assert.Equal(t, "0.00", *it.Price)
	assert.Equal(t, "0.00", it.TotalCost)
	assert.Nil(t, it.ListID)
}

func TestItems_Validation(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyClamp)

	rr := env.do(t, http.MethodPost, "/api/items", `{"name":"Eggs","quantity_at_home":-1,"price":"-2"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody[struct {
		Fields map[string]string `json:"fields"`
	}](t, rr)
	assert.Contains(t, body.Fields, "quantity_at_home")
	assert.Contains(t, body.Fields, "price")

	rr = env.do(t, http.MethodPost, "/api/items", `{"name":"Eggs","list_id":12345}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/items?order=price", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestItems_UpdateVersion(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyClamp)
	it := env.createItem(t, `{"name":"Rice","quantity_at_home":2}`)
	path := fmt.Sprintf("/api/items/%d", it.ID)

	rr := env.do(t, http.MethodPut, path, `{"quantity_to_buy":5,"version":1}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decodeBody[itemResp](t, rr)
	assert.Equal(t, int64(5), got.QuantityToBuy)
	assert.Equal(t, int64(2), got.QuantityAtHome)
	assert.Equal(t, int64(2), got.Version)

	// устаревшая версия
	rr = env.do(t, http.MethodPut, path, `{"quantity_to_buy":1,"version":1}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = env.do(t, http.MethodPut, "/api/items/999", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestItems_ListFilterOrder(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyClamp)
	env.createItem(t, `{"name":"banana","quantity_at_home":3}`)
	env.createItem(t, `{"name":"Apple","quantity_at_home":1}`)
	env.createItem(t, `{"name":"Bread","quantity_at_home":2}`)

	rr := env.do(t, http.MethodGet, "/api/items?q=B&order=name", "")
	require.Equal(t, http.StatusOK, rr.Code)
	page := decodeBody[pageResp[itemResp]](t, rr)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
}

func TestItems_Delete(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyClamp)
	l := env.createList(t, "Bath")
	it := env.createItem(t, fmt.Sprintf(`{"name":"Soap","list_id":%d}`, l.ID))

	rr := env.do(t, http.MethodDelete, fmt.Sprintf("/api/items/%d", it.ID), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = env.do(t, http.MethodDelete, fmt.Sprintf("/api/items/%d", it.ID), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// список остаётся
	rr = env.do(t, http.MethodGet, fmt.Sprintf("/api/lists/%d", l.ID), "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestItems_Adjust(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyClamp)
	it := env.createItem(t, `{"name":"Coffee","quantity_at_home":5,"quantity_to_buy":1}`)
	adjust := func(action, query string) *itemResp {
		rr := env.do(t, http.MethodPost, fmt.Sprintf("/api/items/%d/%s%s", it.ID, action, query), "")
		if rr.Code != http.StatusOK {
			return nil
		}
		v := decodeBody[itemResp](t, rr)
		return &v
	}

	got := adjust("increase", "")
	require.NotNil(t, got)
	assert.Equal(t, int64(6), got.QuantityAtHome)

	got = adjust("decrease", "?amount=2")
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.QuantityAtHome)

	got = adjust("increase-to-buy", "?amount=3")
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.QuantityToBuy)

	// clamp: ниже нуля не уходит
	got = adjust("decrease-to-buy", "?amount=10")
	require.NotNil(t, got)
	assert.Equal(t, int64(0), got.QuantityToBuy)
	assert.Equal(t, int64(4), got.QuantityAtHome)

	for _, tc := range []struct {
		path string
		code int
	}{
		{fmt.Sprintf("/api/items/%d/decrease?amount=0", it.ID), http.StatusBadRequest},
		{fmt.Sprintf("/api/items/%d/decrease?amount=-1", it.ID), http.StatusBadRequest},
		{fmt.Sprintf("/api/items/%d/decrease?amount=abc", it.ID), http.StatusBadRequest},
		{fmt.Sprintf("/api/items/%d/explode", it.ID), http.StatusNotFound},
		{"/api/items/9999/increase", http.StatusNotFound},
	} {
		rr := env.do(t, http.MethodPost, tc.path, "")
		assert.Equal(t, tc.code, rr.Code, tc.path)
	}
}

func TestItems_AdjustRejectPolicy(t *testing.T) {
	env := newTestEnv(t, new(mockUserRepo), config.PolicyReject)
	it := env.createItem(t, `{"name":"Tea","quantity_at_home":2}`)

	rr := env.do(t, http.MethodPost, fmt.Sprintf("/api/items/%d/decrease?amount=3", it.ID), "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = env.do(t, http.MethodGet, fmt.Sprintf("/api/items/%d", it.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[itemResp](t, rr)
	assert.Equal(t, int64(2), got.QuantityAtHome)
	assert.Equal(t, int64(1), got.Version)
}
