package service

import (
	"HomeStock/internal/cost"
	"HomeStock/internal/model"
	"HomeStock/internal/repo"
	"context"

	"github.com/shopspring/decimal"
)

// ListSummary: итоги по одному списку. List == nil для элементов вне списков.
type ListSummary struct {
	List    *model.List
	Summary cost.Summary
}

// ListCost returns the restock figures of one list.
func (s *CatalogService) ListCost(ctx context.Context, listID int64) (*model.List, cost.Summary, error) {
	l, err := s.GetList(ctx, listID)
	if err != nil {
		return nil, cost.Summary{}, err
	}
	items, err := s.AllItems(ctx, &listID)
	if err != nil {
		return nil, cost.Summary{}, err
	}
	return l, cost.Summarize(items), nil
}

// InventoryValue sums price * quantity_at_home over all items or one list.
func (s *CatalogService) InventoryValue(ctx context.Context, listID *int64) (decimal.Decimal, error) {
	items, err := s.AllItems(ctx, listID)
	if err != nil {
		return decimal.Zero, err
	}
	return cost.InventoryValue(items), nil
}

// RestockReport groups every item by list. Items without a list come last,
// only when there are any.
func (s *CatalogService) RestockReport(ctx context.Context) ([]ListSummary, cost.Summary, error) {
	items, err := s.AllItems(ctx, nil)
	if err != nil {
		return nil, cost.Summary{}, err
	}
	lists, err := s.lists.List(ctx, repo.ListFilter{})
	if err != nil {
		return nil, cost.Summary{}, err
	}

	byList := make(map[int64][]model.Item, len(lists))
	var loose []model.Item
	for _, it := range items {
		if it.ListID == nil {
			loose = append(loose, it)
			continue
		}
		byList[*it.ListID] = append(byList[*it.ListID], it)
	}

	out := make([]ListSummary, 0, len(lists)+1)
	for i := range lists {
		out = append(out, ListSummary{List: &lists[i], Summary: cost.Summarize(byList[lists[i].ID])})
	}
	if len(loose) > 0 {
		out = append(out, ListSummary{Summary: cost.Summarize(loose)})
	}
	return out, cost.Summarize(items), nil
}
