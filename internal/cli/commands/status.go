package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
)

type dataResponse struct {
	Result string `json:"result"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show who the server thinks you are" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var dr dataResponse
	if err := call(ctx, cfg, http.MethodPost, "/api/user/test", nil, &dr); err != nil {
		return err
	}
	if login, err := tokenStore(cfg).LoadLogin(); err == nil && dr.Result != "anonymous" {
		fmt.Fprintf(Out, "Status: %s (%s)\n", dr.Result, login)
		return nil
	}
	fmt.Fprintln(Out, "Status:", dr.Result)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
