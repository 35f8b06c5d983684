package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// adjustCmd: inc/dec/buy-inc/buy-dec; все идут в POST /api/items/{id}/{action}.
type adjustCmd struct {
	name   string
	action string
	desc   string
}

func (c adjustCmd) Name() string        { return c.name }
func (c adjustCmd) Description() string { return c.desc }
func (c adjustCmd) Usage() string       { return c.name + " <item-id> [<amount>]" }

func (c adjustCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	amount := int64(1)
	if len(args) == 2 {
		if amount, err = strconv.ParseInt(args[1], 10, 64); err != nil || amount <= 0 {
			return ErrUsage
		}
	}

	var it itemView
	path := fmt.Sprintf("/api/items/%d/%s?amount=%d", id, c.action, amount)
	if err := call(ctx, cfg, http.MethodPost, path, nil, &it); err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s: at home %d, to buy %d, cost %s\n", it.Name, it.QuantityAtHome, it.QuantityToBuy, it.TotalCost)
	return nil
}

func init() {
	RegisterCmd(adjustCmd{name: "inc", action: "increase", desc: "Increase quantity at home"})
	RegisterCmd(adjustCmd{name: "dec", action: "decrease", desc: "Decrease quantity at home (stops at zero)"})
	RegisterCmd(adjustCmd{name: "buy-inc", action: "increase-to-buy", desc: "Increase quantity to buy"})
	RegisterCmd(adjustCmd{name: "buy-dec", action: "decrease-to-buy", desc: "Decrease quantity to buy (stops at zero)"})
}
