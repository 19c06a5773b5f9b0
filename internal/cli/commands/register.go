package commands

import (
	"context"
	"fmt"

	"ContactHub/internal/cli/bootstrap"
	"ContactHub/internal/cli/service"
	"ContactHub/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new user and log in" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 || args[0] == "" || args[1] == "" {
		return ErrUsage
	}
	tokens := bootstrap.Tokens(cfg)
	if err := service.NewAuthService(cfg.ServerURL, tokens, tokens).Register(ctx, args[0], args[1]); err != nil {
		return err
	}
	if err := prepareUserStore(cfg); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered as %s\n", args[0])
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
