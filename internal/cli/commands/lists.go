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

type listsCmd struct{}

func (listsCmd) Name() string        { return "lists" }
func (listsCmd) Description() string { return "Show lists, optionally filtered by name" }
func (listsCmd) Usage() string       { return "lists [--page=N] [<name-filter>]" }

func (listsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("lists")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil || fs.NArg() > 1 {
		return ErrUsage
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(*page))
	if fs.NArg() == 1 {
		q.Set("q", fs.Arg(0))
	}

	var res pageView[listView]
	if err := call(ctx, cfg, http.MethodGet, "/api/lists?"+q.Encode(), nil, &res); err != nil {
		return err
	}
	if len(res.Items) == 0 {
		fmt.Fprintln(Out, "No lists")
		return nil
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, l := range res.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.ID, l.Name, l.Description)
	}
	_ = tw.Flush()
	fmt.Fprintf(Out, "Page %d/%d, total: %d\n", res.Page, res.Pages, res.Total)
	return nil
}

type listAddCmd struct{}

func (listAddCmd) Name() string        { return "list-add" }
func (listAddCmd) Description() string { return "Create a list" }
func (listAddCmd) Usage() string       { return "list-add <name> [<description>]" }

func (listAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	req := map[string]string{"name": args[0]}
	if len(args) == 2 {
		req["description"] = args[1]
	}
	var l listView
	if err := call(ctx, cfg, http.MethodPost, "/api/lists", req, &l); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created list %d: %s\n", l.ID, l.Name)
	return nil
}

type listRmCmd struct{}

func (listRmCmd) Name() string        { return "list-rm" }
func (listRmCmd) Description() string { return "Delete a list with all its items" }
func (listRmCmd) Usage() string       { return "list-rm <list-id>" }

func (listRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/lists/%d", id), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted list %d\n", id)
	return nil
}

func init() {
	RegisterCmd(listsCmd{})
	RegisterCmd(listAddCmd{})
	RegisterCmd(listRmCmd{})
}
