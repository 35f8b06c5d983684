package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Change item fields: name|desc|home|buy|price|list"
}
func (itemEditCmd) Usage() string {
	return "item-edit [--version=N] <item-id> <field>=<value> [<field>=<value> ...]"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("item-edit")
	version := fs.Int64("version", 0, "expected item version")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) < 2 || *version < 0 {
		return ErrUsage
	}
	id, err := parseID(rest[0])
	if err != nil {
		return err
	}
	req, err := editRequest(rest[1:])
	if err != nil {
		return err
	}
	if *version > 0 {
		req["version"] = *version
	}

	var it itemView
	if err := call(ctx, cfg, http.MethodPut, fmt.Sprintf("/api/items/%d", id), req, &it); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printItem(it)
	return nil
}

// editRequest разбирает пары field=value в тело PUT /api/items/{id}.
// list=none убирает элемент из списка.
func editRequest(pairs []string) (map[string]any, error) {
	req := make(map[string]any, len(pairs))
	for _, p := range pairs {
		field, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, ErrUsage
		}
		switch field {
		case "name":
			req["name"] = value
		case "desc":
			req["description"] = value
		case "price":
			req["price"] = value
		case "home", "buy":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must be an integer", field)
			}
			if field == "home" {
				req["quantity_at_home"] = n
			} else {
				req["quantity_to_buy"] = n
			}
		case "list":
			if value == "none" {
				req["detach_list"] = true
				continue
			}
			id, err := parseID(value)
			if err != nil {
				return nil, err
			}
			req["list_id"] = id
		default:
			return nil, ErrUsage
		}
	}
	return req, nil
}

func init() { RegisterCmd(itemEditCmd{}) }
