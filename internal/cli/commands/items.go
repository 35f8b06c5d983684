package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"text/tabwriter"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Show items, all or of one list" }
func (itemsCmd) Usage() string {
	return "items [--list=ID] [--order=id|name|quantity] [--page=N] [<name-filter>]"
}

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("items")
	listID := fs.Int64("list", 0, "list id")
	order := fs.String("order", "", "ordering")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil || fs.NArg() > 1 || *listID < 0 {
		return ErrUsage
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(*page))
	if *order != "" {
		q.Set("order", *order)
	}
	if fs.NArg() == 1 {
		q.Set("q", fs.Arg(0))
	}
	path := "/api/items"
	if *listID > 0 {
		path = fmt.Sprintf("/api/lists/%d/items", *listID)
	}

	var res pageView[itemView]
	if err := call(ctx, cfg, http.MethodGet, path+"?"+q.Encode(), nil, &res); err != nil {
		return err
	}
	if len(res.Items) == 0 {
		fmt.Fprintln(Out, "No items")
		return nil
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAT HOME\tTO BUY\tPRICE\tCOST")
	for _, it := range res.Items {
		price := "-"
		if it.Price != nil {
			price = *it.Price
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\n", it.ID, it.Name, it.QuantityAtHome, it.QuantityToBuy, price, it.TotalCost)
	}
	_ = tw.Flush()
	fmt.Fprintf(Out, "Page %d/%d, total: %d\n", res.Page, res.Pages, res.Total)
	return nil
}

type itemRmCmd struct{}

func (itemRmCmd) Name() string        { return "item-rm" }
func (itemRmCmd) Description() string { return "Delete an item" }
func (itemRmCmd) Usage() string       { return "item-rm <item-id>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted item %d\n", id)
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemRmCmd{})
}
