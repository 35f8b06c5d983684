package commands

import (
	"HomeStock/internal/cli/api"
	fsrepo "HomeStock/internal/cli/repo/fs"
	"HomeStock/internal/config"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// ErrNotLoggedIn: сервер ответил 401 или токена нет.
var ErrNotLoggedIn = errors.New("not logged in, run `login` first")

func tokenStore(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.AuthFSStore{Path: cfg.TokenFile}
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// call выполняет авторизованный запрос и декодирует 2xx-ответ в out (если out != nil).
func call(ctx context.Context, cfg *config.Config, method, path string, payload, out any) error {
	token, _ := tokenStore(cfg).Load()
	resp, body, err := api.Do(ctx, method, endpoint(cfg, path), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrNotLoggedIn
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return api.ErrorFromResponse(resp, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// newFlagSet: флаги команды; разбор ошибок превращается в ErrUsage.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

// DTO ответов сервера

type listView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type itemView struct {
	ID             int64   `json:"id"`
	ListID         *int64  `json:"list_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	QuantityAtHome int64   `json:"quantity_at_home"`
	QuantityToBuy  int64   `json:"quantity_to_buy"`
	Price          *string `json:"price"`
	TotalCost      string  `json:"total_cost"`
	Version        int64   `json:"version"`
}

type pageView[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
}

type summaryView struct {
	ItemCount   int    `json:"item_count"`
	ItemsToBuy  int    `json:"items_to_buy"`
	UnitsToBuy  int64  `json:"units_to_buy"`
	RestockCost string `json:"restock_cost"`
	StockValue  string `json:"stock_value"`
}

type listCostView struct {
	List    *listView   `json:"list"`
	Cost    string      `json:"cost"`
	Summary summaryView `json:"summary"`
}

func printItem(it itemView) {
	price := "-"
	if it.Price != nil {
		price = *it.Price
	}
	list := "-"
	if it.ListID != nil {
		list = strconv.FormatInt(*it.ListID, 10)
	}
	fmt.Fprintf(Out, "id:          %d\n", it.ID)
	fmt.Fprintf(Out, "name:        %s\n", it.Name)
	if it.Description != "" {
		fmt.Fprintf(Out, "description: %s\n", it.Description)
	}
	fmt.Fprintf(Out, "list:        %s\n", list)
	fmt.Fprintf(Out, "at home:     %d\n", it.QuantityAtHome)
	fmt.Fprintf(Out, "to buy:      %d\n", it.QuantityToBuy)
	fmt.Fprintf(Out, "price:       %s\n", price)
	fmt.Fprintf(Out, "total cost:  %s\n", it.TotalCost)
	fmt.Fprintf(Out, "version:     %d\n", it.Version)
}
