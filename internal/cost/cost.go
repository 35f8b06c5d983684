// Package cost derives money figures from inventory state. Nothing here is
// persisted; every value is recomputed from the items passed in.
package cost

import (
	"HomeStock/internal/model"

	"github.com/shopspring/decimal"
)

// Needed returns how many units must be bought to reach the desired stock.
func Needed(it model.Item) int64 {
	if n := it.QuantityToBuy - it.QuantityAtHome; n > 0 {
		return n
	}
	return 0
}

// ItemCost is max(to_buy - at_home, 0) * price. An unset price counts as zero.
func ItemCost(it model.Item) decimal.Decimal {
	return it.UnitPrice().Mul(decimal.NewFromInt(Needed(it)))
}

// ListCost sums ItemCost over items. Empty input yields zero.
func ListCost(items []model.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(ItemCost(it))
	}
	return total
}

// InventoryValue sums price * quantity_at_home, the value of what is in stock.
func InventoryValue(items []model.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice().Mul(decimal.NewFromInt(it.QuantityAtHome)))
	}
	return total
}

// Summary aggregates restock figures for a group of items.
type Summary struct {
	ItemCount   int
	ItemsToBuy  int   // items with Needed > 0
	UnitsToBuy  int64 // sum of Needed
	RestockCost decimal.Decimal
	StockValue  decimal.Decimal
}

// Summarize computes a Summary in one pass.
func Summarize(items []model.Item) Summary {
	s := Summary{ItemCount: len(items), RestockCost: decimal.Zero, StockValue: decimal.Zero}
	for _, it := range items {
		if n := Needed(it); n > 0 {
			s.ItemsToBuy++
			s.UnitsToBuy += n
		}
		s.RestockCost = s.RestockCost.Add(ItemCost(it))
		s.StockValue = s.StockValue.Add(it.UnitPrice().Mul(decimal.NewFromInt(it.QuantityAtHome)))
	}
	return s
}
