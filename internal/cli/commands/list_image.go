package commands

import (
	"HomeStock/internal/cli/api"
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

type listImageCmd struct{}

func (listImageCmd) Name() string        { return "list-image" }
func (listImageCmd) Description() string { return "Upload a JPEG or PNG picture for a list" }
func (listImageCmd) Usage() string       { return "list-image <list-id> <file>" }

func (listImageCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	token, _ := tokenStore(cfg).Load()
	resp, body, err := api.PostMultipartImage(ctx, endpoint(cfg, fmt.Sprintf("/api/lists/%d/image", id)), filepath.Base(args[1]), data, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrNotLoggedIn
	default:
		return api.ErrorFromResponse(resp, body)
	}
	fmt.Fprintf(Out, "Image stored for list %d\n", id)
	return nil
}

func init() { RegisterCmd(listImageCmd{}) }
