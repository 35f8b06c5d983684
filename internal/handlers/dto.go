package handlers

import (
	"HomeStock/internal/cost"
	"HomeStock/internal/model"
	"HomeStock/internal/service"
	"time"

	"github.com/shopspring/decimal"
)

// listDTO: представление списка в ответах API.
type listDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toListDTO(l *model.List) listDTO {
	d := listDTO{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if l.ImageID != nil && *l.ImageID != "" {
		u := "/api/images/" + *l.ImageID
		d.ImageURL = &u
	}
	return d
}

// itemDTO: представление элемента; total_cost вычисляется, не хранится.
type itemDTO struct {
	ID             int64   `json:"id"`
	ListID         *int64  `json:"list_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	QuantityAtHome int64   `json:"quantity_at_home"`
	QuantityToBuy  int64   `json:"quantity_to_buy"`
	Price          *string `json:"price"`
	TotalCost      string  `json:"total_cost"`
	Version        int64   `json:"version"`
	UpdatedAt      string  `json:"updated_at"`
}

func toItemDTO(it *model.Item) itemDTO {
	d := itemDTO{
		ID:             it.ID,
		ListID:         it.ListID,
		Name:           it.Name,
		Description:    it.Description,
		QuantityAtHome: it.QuantityAtHome,
		QuantityToBuy:  it.QuantityToBuy,
		TotalCost:      money(cost.ItemCost(*it)),
		Version:        it.Version,
		UpdatedAt:      it.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if it.Price.Valid {
		p := money(it.Price.Decimal)
		d.Price = &p
	}
	return d
}

// summaryDTO: итоги по закупке.
type summaryDTO struct {
	ItemCount   int    `json:"item_count"`
	ItemsToBuy  int    `json:"items_to_buy"`
	UnitsToBuy  int64  `json:"units_to_buy"`
	RestockCost string `json:"restock_cost"`
	StockValue  string `json:"stock_value"`
}

func toSummaryDTO(s cost.Summary) summaryDTO {
	return summaryDTO{
		ItemCount:   s.ItemCount,
		ItemsToBuy:  s.ItemsToBuy,
		UnitsToBuy:  s.UnitsToBuy,
		RestockCost: money(s.RestockCost),
		StockValue:  money(s.StockValue),
	}
}

type pageDTO[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Pages    int   `json:"pages"`
	Total    int64 `json:"total"`
}

func toPageDTO[S, T any](p service.Page[S], conv func(*S) T) pageDTO[T] {
	out := pageDTO[T]{Items: make([]T, 0, len(p.Items)), Page: p.Page, PageSize: p.PageSize, Pages: p.Pages, Total: p.Total}
	for i := range p.Items {
		out.Items = append(out.Items, conv(&p.Items[i]))
	}
	return out
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Запросы

type listRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type itemRequest struct {
	ListID         *int64           `json:"list_id"`
	DetachList     bool             `json:"detach_list"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	QuantityAtHome *int64           `json:"quantity_at_home"`
	QuantityToBuy  *int64           `json:"quantity_to_buy"`
	Price          *decimal.Decimal `json:"price"`
	Version        *int64           `json:"version"`
}

func (req itemRequest) toInput() service.ItemInput {
	in := service.ItemInput{ListID: req.ListID, Price: req.Price}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.QuantityAtHome != nil {
		in.QuantityAtHome = *req.QuantityAtHome
	}
	if req.QuantityToBuy != nil {
		in.QuantityToBuy = *req.QuantityToBuy
	}
	return in
}

func (req itemRequest) toPatch() service.ItemPatch {
	return service.ItemPatch{
		ListID:         req.ListID,
		DetachList:     req.DetachList,
		Name:           req.Name,
		Description:    req.Description,
		QuantityAtHome: req.QuantityAtHome,
		QuantityToBuy:  req.QuantityToBuy,
		Price:          req.Price,
		Version:        req.Version,
	}
}
