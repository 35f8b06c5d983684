package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
	"text/tabwriter"
)

type costCmd struct{}

func (costCmd) Name() string { return "cost" }
func (costCmd) Description() string {
	return "Restock cost of one item, one list or everything"
}
func (costCmd) Usage() string { return "cost [--item=ID | --list=ID]" }

func (costCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("cost")
	itemID := fs.Int64("item", 0, "item id")
	listID := fs.Int64("list", 0, "list id")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	switch {
	case *itemID < 0 || *listID < 0, *itemID > 0 && *listID > 0:
		return ErrUsage
	case *itemID > 0:
		var res struct {
			Needed int64  `json:"needed"`
			Cost   string `json:"cost"`
		}
		if err := call(ctx, cfg, http.MethodGet, fmt.Sprintf("/api/items/%d/cost", *itemID), nil, &res); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Item %d: need %d, cost %s\n", *itemID, res.Needed, res.Cost)
		return nil
	case *listID > 0:
		var res listCostView
		if err := call(ctx, cfg, http.MethodGet, fmt.Sprintf("/api/lists/%d/cost", *listID), nil, &res); err != nil {
			return err
		}
		name := ""
		if res.List != nil {
			name = res.List.Name
		}
		fmt.Fprintf(Out, "List %s: %d of %d items to buy, cost %s\n", name, res.Summary.ItemsToBuy, res.Summary.ItemCount, res.Cost)
		return nil
	}

	var res struct {
		Lists []listCostView `json:"lists"`
		Total summaryView    `json:"total"`
	}
	if err := call(ctx, cfg, http.MethodGet, "/api/inventory/restock", nil, &res); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LIST\tITEMS\tTO BUY\tUNITS\tCOST")
	for _, row := range res.Lists {
		name := "(no list)"
		if row.List != nil {
			name = row.List.Name
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", name, row.Summary.ItemCount, row.Summary.ItemsToBuy, row.Summary.UnitsToBuy, row.Cost)
	}
	_ = tw.Flush()
	fmt.Fprintf(Out, "Total restock cost: %s, stock value: %s\n", res.Total.RestockCost, res.Total.StockValue)
	return nil
}

type valueCmd struct{}

func (valueCmd) Name() string        { return "value" }
func (valueCmd) Description() string { return "Value of everything at home" }
func (valueCmd) Usage() string       { return "value [--list=ID]" }

func (valueCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("value")
	listID := fs.Int64("list", 0, "list id")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 || *listID < 0 {
		return ErrUsage
	}
	path := "/api/inventory/value"
	if *listID > 0 {
		path = fmt.Sprintf("%s?list_id=%d", path, *listID)
	}
	var res struct {
		Value string `json:"value"`
	}
	if err := call(ctx, cfg, http.MethodGet, path, nil, &res); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Inventory value: %s\n", res.Value)
	return nil
}

func init() {
	RegisterCmd(costCmd{})
	RegisterCmd(valueCmd{})
}
