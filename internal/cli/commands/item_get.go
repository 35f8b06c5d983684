package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item" }
func (itemGetCmd) Description() string { return "Show one item" }
func (itemGetCmd) Usage() string       { return "item <item-id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var it itemView
	if err := call(ctx, cfg, http.MethodGet, fmt.Sprintf("/api/items/%d", id), nil, &it); err != nil {
		return err
	}
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
