package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Add an item, optionally into a list"
}
func (itemAddCmd) Usage() string {
	return "item-add [--list=ID] [--home=N] [--buy=N] [--price=P] [--desc=TEXT] <name>"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// флаги только перед позиционными аргументами
	fs := newFlagSet("item-add")
	listID := fs.Int64("list", 0, "list id")
	home := fs.Int64("home", 0, "quantity at home")
	buy := fs.Int64("buy", 0, "quantity to buy")
	price := fs.String("price", "", "unit price, e.g. 2.50")
	desc := fs.String("desc", "", "description")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}
	if *listID < 0 {
		return ErrUsage
	}

	req := map[string]any{
		"name":             fs.Arg(0),
		"quantity_at_home": *home,
		"quantity_to_buy":  *buy,
	}
	if *listID > 0 {
		req["list_id"] = *listID
	}
	if p := strings.TrimSpace(*price); p != "" {
		req["price"] = p
	}
	if *desc != "" {
		req["description"] = *desc
	}

	var it itemView
	if err := call(ctx, cfg, http.MethodPost, "/api/items", req, &it); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
