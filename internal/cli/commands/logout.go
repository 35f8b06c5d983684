package commands

import (
	"HomeStock/internal/config"
	"context"
	"fmt"
	"net/http"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored auth cookie" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// сервер только стирает cookie, поэтому его недоступность не мешает выйти
	_ = call(ctx, cfg, http.MethodPost, "/api/user/logout", nil, nil)
	if err := tokenStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
