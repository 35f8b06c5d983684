package commands

import (
	"HomeStock/internal/cli/api"
	"HomeStock/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new user and store auth cookie" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	req := RegisterRequest{Login: args[0], Password: args[1]}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "/api/user/register"), req, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusConflict:
		return errors.New("login already in use")
	default:
		return api.ErrorFromResponse(resp, body)
	}

	store := tokenStore(cfg)
	if err := api.PersistAuthFromResponse(resp, store); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	_ = store.SaveLogin(req.Login)
	fmt.Fprintf(Out, "Registered and logged in as %s\n", req.Login)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
